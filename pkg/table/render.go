package table

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

const (
	plainGap = "   "
	ellipsis = "..."
)

// headerStyle is pinned to the ANSI profile so that bold headers render
// the same escape sequences regardless of the terminal the process
// happens to be attached to. Callers decide whether color is applied at
// all via RenderConfig.Color.
var headerStyle = lipgloss.NewRenderer(io.Discard, termenv.WithProfile(termenv.ANSI)).
	NewStyle().Bold(true)

// Render produces the formatted text block for the table in the given
// style. The returned string ends with a newline. Rendering the same
// table with the same config twice yields byte-identical output.
func (t *Table) Render(style Style, cfg RenderConfig) string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := allocateWidths(t.columns, t.rows, style, cfg.MaxWidth)

	var lines []string
	switch style {
	case StyleBordered:
		lines = t.renderBordered(widths, cfg)
	case StyleMarkdown:
		lines = t.renderMarkdown(widths)
	case StyleCompact:
		lines = t.renderCompact(widths)
	default:
		lines = t.renderPlain(widths, cfg)
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteTo renders the table and writes it to w. The only failure mode
// is the sink's write error, which is returned unchanged.
func (t *Table) WriteTo(w io.Writer, style Style, cfg RenderConfig) error {
	_, err := io.WriteString(w, t.Render(style, cfg))
	return err
}

func (t *Table) renderPlain(widths []int, cfg RenderConfig) []string {
	lines := make([]string, 0, len(t.rows)+2)
	last := len(t.columns) - 1

	header := make([]string, len(t.columns))
	dashes := make([]string, len(t.columns))
	for i, c := range t.columns {
		cell := pad(c.Header, widths[i], c.Align)
		if i == last {
			cell = trimRight(cell)
		}
		if cfg.Color {
			cell = headerStyle.Render(cell)
		}
		header[i] = cell
		dashes[i] = strings.Repeat("-", widths[i])
	}
	lines = append(lines, strings.Join(header, plainGap))
	lines = append(lines, strings.Join(dashes, plainGap))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = pad(v, widths[i], t.columns[i].Align)
			// Only the last cell's own padding is dropped; the
			// three-space separator before it always survives, even
			// when the cell is empty.
			if i == last {
				cells[i] = trimRight(cells[i])
			}
		}
		lines = append(lines, strings.Join(cells, plainGap))
	}
	return lines
}

func (t *Table) renderBordered(widths []int, cfg RenderConfig) []string {
	lines := make([]string, 0, len(t.rows)+4)
	lines = append(lines, borderLine(widths, "┌", "┬", "┐"))

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		cell := pad(c.Header, widths[i], c.Align)
		if cfg.Color {
			cell = headerStyle.Render(cell)
		}
		header[i] = cell
	}
	lines = append(lines, "│ "+strings.Join(header, " │ ")+" │")
	lines = append(lines, borderLine(widths, "├", "┼", "┤"))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = pad(v, widths[i], t.columns[i].Align)
		}
		lines = append(lines, "│ "+strings.Join(cells, " │ ")+" │")
	}
	lines = append(lines, borderLine(widths, "└", "┴", "┘"))
	return lines
}

func (t *Table) renderMarkdown(widths []int) []string {
	lines := make([]string, 0, len(t.rows)+2)

	header := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = pad(c.Header, widths[i], c.Align)
		rules[i] = markdownRule(widths[i], c.Align)
	}
	lines = append(lines, "| "+strings.Join(header, " | ")+" |")
	lines = append(lines, "|"+strings.Join(rules, "|")+"|")

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = pad(v, widths[i], t.columns[i].Align)
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}
	return lines
}

func (t *Table) renderCompact(widths []int) []string {
	lines := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = pad(v, widths[i], t.columns[i].Align)
		}
		lines = append(lines, trimRight(strings.Join(cells, " ")))
	}
	return lines
}

func borderLine(widths []int, left, mid, right string) string {
	runs := make([]string, len(widths))
	for i, w := range widths {
		runs[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(runs, mid) + right
}

// markdownRule builds the GFM alignment rule segment for one column.
// The segment is width+2 characters so it lines up with the padded
// cells above it.
func markdownRule(width int, align Alignment) string {
	switch align {
	case AlignRight:
		return strings.Repeat("-", width+1) + ":"
	case AlignCenter:
		return ":" + strings.Repeat("-", width) + ":"
	default:
		return ":" + strings.Repeat("-", width+1)
	}
}

// pad truncates or pads content to exactly width display columns.
// Overlong content is cut to width-3 with a trailing ellipsis, the only
// lossy transformation the renderer performs. Centering puts the odd
// leftover space on the right.
func pad(s string, width int, align Alignment) string {
	if runewidth.StringWidth(s) > width {
		if width <= len(ellipsis) {
			return strings.Repeat(".", width)
		}
		s = runewidth.Truncate(s, width-len(ellipsis), "") + ellipsis
	}
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func trimRight(s string) string {
	return strings.TrimRight(s, " ")
}
