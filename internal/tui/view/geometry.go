package view

// Geometry places the grid on screen. The grid is drawn as a top border, a
// header line, a separator, RowLines lines per visible body row and a bottom
// border. Columns are ColWidth cells wide with a one-cell border between them.
type Geometry struct {
	Top      int // screen line of the top border
	Left     int // screen column of the left border
	ColWidth int
	RowLines int
	Columns  int
	Offset   int // index of the first visible body row
	Visible  int // number of body rows drawn
}

// HeaderY returns the screen line of the header cells.
func (g Geometry) HeaderY() int { return g.Top + 1 }

// BodyTop returns the screen line of the first visible body row.
func (g Geometry) BodyTop() int { return g.Top + 3 }

// Width returns the drawn width including borders.
func (g Geometry) Width() int {
	if g.Columns <= 0 {
		return 2
	}
	return g.Columns*(g.ColWidth+1) + 1
}

// Height returns the drawn height including borders.
func (g Geometry) Height() int {
	return 4 + g.Visible*g.RowLines
}

// RowTop returns the screen line where body row starts, if it is visible.
func (g Geometry) RowTop(row int) (int, bool) {
	if row < g.Offset || row >= g.Offset+g.Visible {
		return 0, false
	}
	return g.BodyTop() + (row-g.Offset)*g.RowLines, true
}

// RowAt returns the body row drawn on screen line y.
func (g Geometry) RowAt(y int) (int, bool) {
	rel := y - g.BodyTop()
	if rel < 0 || g.RowLines <= 0 {
		return 0, false
	}
	r := rel / g.RowLines
	if r >= g.Visible {
		return 0, false
	}
	return g.Offset + r, true
}

// ColumnAt returns the column drawn at screen column x. A column owns the
// border on its right.
func (g Geometry) ColumnAt(x int) (int, bool) {
	rel := x - g.Left - 1
	if rel < 0 || g.ColWidth <= 0 {
		return 0, false
	}
	col := rel / (g.ColWidth + 1)
	if col >= g.Columns {
		return 0, false
	}
	return col, true
}

// VisibleRows returns how many body rows fit in height screen lines.
func VisibleRows(height, rowLines, total int) int {
	if rowLines <= 0 {
		return 0
	}
	n := (height - 4) / rowLines
	if n < 0 {
		n = 0
	}
	if n > total {
		n = total
	}
	return n
}
