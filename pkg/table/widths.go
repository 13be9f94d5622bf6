package table

import (
	"github.com/mattn/go-runewidth"
)

// minColumnWidth is the floor below which a column is never shrunk or
// capped. A table whose columns all sit at the floor may still overflow
// the width budget; that is tolerated rather than reported.
const minColumnWidth = 5

// separatorOverhead returns the display width consumed by inter-column
// separators and borders for the given style and column count.
func separatorOverhead(style Style, columns int) int {
	if columns == 0 {
		return 0
	}
	switch style {
	case StyleBordered, StyleMarkdown:
		// "│ a │ b │" and "| a | b |": one leading border plus
		// "x │ " per column.
		return 3*columns + 1
	case StyleCompact:
		return columns - 1
	default:
		// Plain: three-space gap between columns.
		return 3 * (columns - 1)
	}
}

// allocateWidths computes one display width per column.
//
// Each column starts at max(header width, MinWidth), grows to its
// widest cell, and is capped at MaxWidth when configured. If the total,
// including separator overhead, exceeds maxWidth, every column above
// the floor is reduced by an equal share, ceil(excess/columns). The
// ceiling division can overshoot the needed reduction by up to
// columns-1 characters; that slack is accepted in exchange for a
// single-pass reduction.
func allocateWidths(cols []Column, rows [][]string, style Style, maxWidth int) []int {
	widths := make([]int, len(cols))
	for i, c := range cols {
		w := runewidth.StringWidth(c.Header)
		if c.MinWidth > w {
			w = c.MinWidth
		}
		for _, row := range rows {
			if cw := runewidth.StringWidth(row[i]); cw > w {
				w = cw
			}
		}
		if c.MaxWidth > 0 {
			capWidth := c.MaxWidth
			if capWidth < minColumnWidth {
				capWidth = minColumnWidth
			}
			if w > capWidth {
				w = capWidth
			}
		}
		widths[i] = w
	}

	if maxWidth <= 0 || len(cols) == 0 {
		return widths
	}

	total := separatorOverhead(style, len(cols))
	for _, w := range widths {
		total += w
	}
	if total <= maxWidth {
		return widths
	}

	excess := total - maxWidth
	reduce := (excess + len(cols) - 1) / len(cols)
	for i := range widths {
		switch {
		case widths[i] <= minColumnWidth:
			// Already at or below the floor, leave it alone.
		case widths[i]-reduce < minColumnWidth:
			widths[i] = minColumnWidth
		default:
			widths[i] -= reduce
		}
	}
	return widths
}
