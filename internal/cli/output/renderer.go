// Package output provides the terminal renderer used by CLI commands.
// Output adapts to the environment: styled text on a TTY, plain markdown
// when piped, JSON on request.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/revet-dev/revet/pkg/core"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Critical lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
	Info     lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	FilePath lipgloss.Style
}

func defaultStyles() *Styles {
	return &Styles{
		Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		High:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Medium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Low:      lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Bold:     lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		FilePath: lipgloss.NewStyle().Underline(true),
	}
}

// Severity returns the style for a severity level.
func (s *Styles) Severity(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityCritical:
		return s.Critical
	case core.SeverityHigh:
		return s.High
	case core.SeverityMedium:
		return s.Medium
	case core.SeverityLow:
		return s.Low
	default:
		return s.Info
	}
}

// Renderer writes command output in the configured mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: defaultStyles()}
}

// EffectiveMode resolves ModeAuto: text on a TTY, markdown otherwise.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if f, ok := r.out.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
			return ModeText
		}
	}
	return ModeMarkdown
}

// Styles returns the style set. Styles render as plain text outside text
// mode and when color is disabled via NO_COLOR.
func (r *Renderer) Styles() *Styles {
	if r.EffectiveMode() != ModeText || termenv.EnvNoColor() {
		return &Styles{} // zero styles render unstyled
	}
	return r.styles
}

// Printf writes formatted output.
func (r *Renderer) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

// Println writes a line of output.
func (r *Renderer) Println(args ...any) {
	fmt.Fprintln(r.out, args...)
}

// Success writes a success message.
func (r *Renderer) Success(msg string) {
	fmt.Fprintln(r.out, r.Styles().Success.Render(msg))
}

// Errorf writes a formatted message to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	fmt.Fprintf(r.errOut, format, args...)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
