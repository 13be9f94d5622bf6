// Package terminal renders tables as styled terminal output.
package terminal

import (
	"fmt"
	"io"

	"github.com/wolfe-services/tabcat/pkg/styles"
	"github.com/wolfe-services/tabcat/pkg/table"
)

// Renderer writes styled tables, with bold headers when color is on.
type Renderer struct {
	output   io.Writer
	style    table.Style
	maxWidth int
	color    bool
}

// New creates a new terminal renderer
func New(output io.Writer, style table.Style, maxWidth int, color bool) *Renderer {
	return &Renderer{output: output, style: style, maxWidth: maxWidth, color: color}
}

// RenderTable renders the table in the configured style. A write
// failure on the sink is the only error and is returned unchanged.
func (r *Renderer) RenderTable(t *table.Table) error {
	return t.WriteTo(r.output, r.style, table.RenderConfig{
		MaxWidth: r.maxWidth,
		Color:    r.color,
	})
}

// RenderError renders an error with the Error style
func (r *Renderer) RenderError(err error) error {
	prefix := "Error:"
	if r.color {
		prefix = styles.Get("Error").Render(prefix)
	}
	_, writeErr := fmt.Fprintf(r.output, "%s %v\n", prefix, err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
