package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/revet-dev/revet/internal/cli/config"
	"github.com/revet-dev/revet/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		cfg = &config.Config{OutputFormat: config.DefaultOutput}
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.NewLogger(cfg.Verbose),
		Renderer: r,
	}
}
