package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revet-dev/revet/internal/cli/output"
	"github.com/revet-dev/revet/pkg/core"
)

func TestEffectiveMode(t *testing.T) {
	buf := new(bytes.Buffer)

	tests := []struct {
		mode output.Mode
		want output.Mode
	}{
		{output.ModeText, output.ModeText},
		{output.ModeMarkdown, output.ModeMarkdown},
		{output.ModeJSON, output.ModeJSON},
		// Auto resolves to markdown when not writing to a terminal.
		{output.ModeAuto, output.ModeMarkdown},
		{"", output.ModeMarkdown},
	}

	for _, tt := range tests {
		r := output.NewRenderer(buf, buf, tt.mode)
		assert.Equal(t, tt.want, r.EffectiveMode())
	}
}

func TestStylesUnstyledOutsideText(t *testing.T) {
	buf := new(bytes.Buffer)
	r := output.NewRenderer(buf, buf, output.ModeMarkdown)

	// Zero styles render their input unchanged.
	assert.Equal(t, "hello", r.Styles().Bold.Render("hello"))
	assert.Equal(t, "boom", r.Styles().Critical.Render("boom"))
}

func TestStylesSeverityLookup(t *testing.T) {
	s := &output.Styles{}
	for _, sev := range core.Severities {
		assert.Equal(t, sev.String(), s.Severity(sev).Render(sev.String()))
	}
}

func TestRendererWrites(t *testing.T) {
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	r := output.NewRenderer(out, errOut, output.ModeMarkdown)

	r.Printf("count=%d\n", 3)
	r.Println("done")
	r.Errorf("warn: %s\n", "x")

	assert.Equal(t, "count=3\ndone\n", out.String())
	assert.Equal(t, "warn: x\n", errOut.String())
}

func TestRendererJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	r := output.NewRenderer(buf, buf, output.ModeJSON)

	require.NoError(t, r.JSON(map[string]int{"findings": 2}))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded["findings"])
}
