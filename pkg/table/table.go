// Package table renders tabular data as formatted text blocks.
//
// A Table owns its column definitions and row data. Rendering is a pure
// function of the table plus a RenderConfig: the same table can be
// rendered any number of times with different widths and color settings
// and is never mutated by a render call.
package table

import (
	"fmt"
	"strings"
)

// Alignment controls how cell content is padded within a column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// String returns the string representation of the alignment
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseAlignment parses a string into an Alignment value
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "left", "l", "":
		return AlignLeft, nil
	case "right", "r":
		return AlignRight, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	default:
		return AlignLeft, fmt.Errorf("unknown alignment: %s", s)
	}
}

// Column defines one column of a table. Columns are value types and are
// not modified after the table is constructed.
//
// MaxWidth of zero means the column width is uncapped. A non-zero
// MaxWidth below the minimum column width of 5 is treated as 5.
type Column struct {
	Header   string
	Align    Alignment
	MinWidth int
	MaxWidth int
}

// Style selects the visual format a table is rendered in.
type Style int

const (
	// StylePlain renders a header row, a dash separator and data rows,
	// with columns joined by a three-space gap.
	StylePlain Style = iota
	// StyleBordered renders Unicode box-drawing borders around every cell.
	StyleBordered
	// StyleMarkdown renders a GitHub-Flavored-Markdown table.
	StyleMarkdown
	// StyleCompact renders data rows only, single-space separated, for
	// piping to other tools.
	StyleCompact
)

// String returns the string representation of the style
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleBordered:
		return "bordered"
	case StyleMarkdown:
		return "markdown"
	case StyleCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// ParseStyle parses a string into a Style value
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "plain", "":
		return StylePlain, nil
	case "bordered", "border", "box":
		return StyleBordered, nil
	case "markdown", "md":
		return StyleMarkdown, nil
	case "compact":
		return StyleCompact, nil
	default:
		return StylePlain, fmt.Errorf("unknown style: %s", s)
	}
}

// Styles lists every supported style in display order.
func Styles() []Style {
	return []Style{StylePlain, StyleBordered, StyleMarkdown, StyleCompact}
}

// RenderConfig carries the per-render parameters. It is supplied to
// each render call and never stored on the table.
//
// MaxWidth is the total width budget for the rendered block, typically
// the terminal width. Zero disables width-constrained shrinking.
type RenderConfig struct {
	MaxWidth int
	Color    bool
}

// Table holds column definitions and row data.
type Table struct {
	columns []Column
	rows    [][]string
}

// New creates a table with the given columns.
func New(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a data row. Rows are normalized to the column count:
// missing cells are padded with the empty string and cells beyond the
// column count are dropped, so every stored row has exactly one cell
// per column.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Columns returns a copy of the column definitions.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// RowValues returns a copy of the row data.
func (t *Table) RowValues() [][]string {
	rows := make([][]string, len(t.rows))
	for i, r := range t.rows {
		row := make([]string, len(r))
		copy(row, r)
		rows[i] = row
	}
	return rows
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}
