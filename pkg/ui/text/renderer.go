// Package text renders tables as plain text without any styling
package text

import (
	"fmt"
	"io"

	"github.com/wolfe-services/tabcat/pkg/table"
)

// Renderer writes tables without colors or escape sequences, suitable
// for pipes and redirected output.
type Renderer struct {
	output   io.Writer
	style    table.Style
	maxWidth int
}

// New creates a new text renderer
func New(output io.Writer, style table.Style, maxWidth int) *Renderer {
	return &Renderer{output: output, style: style, maxWidth: maxWidth}
}

// RenderTable renders the table with color disabled
func (r *Renderer) RenderTable(t *table.Table) error {
	return t.WriteTo(r.output, r.style, table.RenderConfig{MaxWidth: r.maxWidth})
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, writeErr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return writeErr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
