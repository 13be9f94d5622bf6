// Package ui provides a unified interface for rendering tables in
// different output formats: styled table, plain text, and JSON.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/wolfe-services/tabcat/pkg/table"
	"github.com/wolfe-services/tabcat/pkg/ui/json"
	"github.com/wolfe-services/tabcat/pkg/ui/terminal"
	"github.com/wolfe-services/tabcat/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderTable renders a table to the output
	RenderTable(t *table.Table) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options carries the table rendering parameters shared by the
// format-specific renderers.
type Options struct {
	Style    table.Style
	MaxWidth int
	Color    bool
}

// NewRenderer creates a renderer for the specified format. FormatAuto
// detects terminal capabilities when the output is a file.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		return NewRenderer(FormatTable, output, opts)
	case FormatTable:
		return terminal.New(output, opts.Style, opts.MaxWidth, opts.Color), nil
	case FormatText:
		return text.New(output, opts.Style, opts.MaxWidth), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
