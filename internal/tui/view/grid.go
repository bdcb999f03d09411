package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

// GridStyles groups the styles used to draw the grid.
type GridStyles struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Cursor lipgloss.Style
	Dimmed lipgloss.Style
	Drop   lipgloss.Style
}

// GridView holds everything needed to draw the grid.
type GridView struct {
	Geometry Geometry
	Headers  []string
	Rows     [][]string

	CursorRow int // -1 selects the header line
	CursorCol int

	DimRow  int // dragged row, -1 for none
	DimCol  int // dragged column, -1 for none
	DropRow int // row under the pointer during a drag, -1 for none
	DropCol int // header under the pointer during a column drag, -1 for none

	Editing  bool
	EditView string // rendered text input shown in the cursor cell

	Styles GridStyles
}

// RenderGrid draws the header and the visible rows inside box-drawing borders.
func RenderGrid(v GridView) string {
	geo := v.Geometry
	lines := make([]string, 0, geo.Height())

	lines = append(lines, v.border("┌", "┬", "┐"))
	lines = append(lines, v.headerLine())
	lines = append(lines, v.border("├", "┼", "┤"))
	for r := geo.Offset; r < geo.Offset+geo.Visible && r < len(v.Rows); r++ {
		lines = append(lines, v.rowLines(r)...)
	}
	lines = append(lines, v.border("└", "┴", "┘"))

	return strings.Join(lines, "\n")
}

func (v GridView) border(left, mid, right string) string {
	segs := make([]string, v.Geometry.Columns)
	for i := range segs {
		segs[i] = strings.Repeat("─", v.Geometry.ColWidth)
	}
	return v.Styles.Border.Render(left + strings.Join(segs, mid) + right)
}

func (v GridView) joinCells(cells []string) string {
	bar := v.Styles.Border.Render("│")
	if len(cells) == 0 {
		return bar + bar
	}
	return bar + strings.Join(cells, bar) + bar
}

func (v GridView) headerLine() string {
	w := v.Geometry.ColWidth
	cells := make([]string, v.Geometry.Columns)
	for c := range cells {
		label := ""
		if c < len(v.Headers) {
			label = v.Headers[c]
		}
		text := PadRight(ansi.Truncate(label, w, ellipsis), w)
		if v.Editing && v.CursorRow == -1 && v.CursorCol == c {
			text = PadRight(ansi.Truncate(v.EditView, w, ""), w)
		}
		cells[c] = v.headerStyle(c).Render(text)
	}
	return v.joinCells(cells)
}

func (v GridView) headerStyle(c int) lipgloss.Style {
	switch {
	case c == v.DimCol:
		return v.Styles.Dimmed
	case c == v.DropCol:
		return v.Styles.Drop
	case v.CursorRow == -1 && c == v.CursorCol:
		return v.Styles.Cursor
	default:
		return v.Styles.Header
	}
}

func (v GridView) rowLines(r int) []string {
	geo := v.Geometry
	blocks := make([][]string, geo.Columns)
	for c := range blocks {
		text := ""
		if c < len(v.Rows[r]) {
			text = v.Rows[r][c]
		}
		if v.Editing && v.CursorRow == r && v.CursorCol == c {
			blocks[c] = make([]string, geo.RowLines)
			blocks[c][0] = ansi.Truncate(v.EditView, geo.ColWidth, "")
			continue
		}
		blocks[c] = CellLines(text, geo.ColWidth, geo.RowLines)
	}

	out := make([]string, geo.RowLines)
	for line := range out {
		cells := make([]string, geo.Columns)
		for c := range cells {
			cells[c] = v.cellStyle(r, c).Render(PadRight(blocks[c][line], geo.ColWidth))
		}
		out[line] = v.joinCells(cells)
	}
	return out
}

func (v GridView) cellStyle(r, c int) lipgloss.Style {
	switch {
	case r == v.DimRow || c == v.DimCol:
		return v.Styles.Dimmed
	case r == v.DropRow:
		return v.Styles.Drop
	case r == v.CursorRow && c == v.CursorCol:
		return v.Styles.Cursor
	default:
		return v.Styles.Cell
	}
}

// CellLines wraps text into exactly lines lines of at most width cells.
// Text that does not fit ends with an ellipsis.
func CellLines(text string, width, lines int) []string {
	out := make([]string, lines)
	if width <= 0 || lines <= 0 || text == "" {
		return out
	}
	wrapped := strings.Split(ansi.Hardwrap(text, width, true), "\n")
	copy(out, wrapped)
	if len(wrapped) > lines {
		last := ansi.Truncate(out[lines-1], width-1, "")
		out[lines-1] = last + ellipsis
	}
	return out
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
