// Package grid defines the table model: header labels, rows of cells, and the
// structural operations that keep them aligned.
package grid

import (
	"errors"
	"fmt"
	"slices"
)

// Default dimensions of a freshly built grid.
const (
	DefaultColumns = 3
	DefaultRows    = 3
)

// ErrMisaligned is returned when a row's cell count differs from the header count.
var ErrMisaligned = errors.New("row cell count does not match header count")

// RowID identifies a row for the lifetime of a grid in memory.
// It is never persisted; restored rows get fresh ids.
type RowID uint64

type row struct {
	id    RowID
	cells []string
}

// Grid is an ordered set of header cells and an ordered set of rows,
// each row holding one cell per header.
type Grid struct {
	headers []string
	rows    []row
	nextID  RowID
}

// HeaderLabel returns the default label for the column at the given 1-based position.
func HeaderLabel(position int) string {
	return fmt.Sprintf("Header %d", position)
}

// New builds a grid with cols labeled header cells and rows empty rows.
func New(cols, rows int) *Grid {
	g := &Grid{}
	for i := 0; i < cols; i++ {
		g.headers = append(g.headers, HeaderLabel(i+1))
	}
	for i := 0; i < rows; i++ {
		g.AddRow()
	}
	return g
}

// FromCells rebuilds a grid from header labels and row contents.
// Rows get fresh ids. The input slices are copied.
func FromCells(headers []string, rows [][]string) (*Grid, error) {
	g := &Grid{headers: slices.Clone(headers)}
	if g.headers == nil {
		g.headers = []string{}
	}
	for i, cells := range rows {
		if len(cells) != len(headers) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrMisaligned, i, len(cells), len(headers))
		}
		g.appendRow(slices.Clone(cells))
	}
	return g, nil
}

func (g *Grid) appendRow(cells []string) RowID {
	g.nextID++
	if cells == nil {
		cells = []string{}
	}
	g.rows = append(g.rows, row{id: g.nextID, cells: cells})
	return g.nextID
}

// ColumnCount returns the number of header cells.
func (g *Grid) ColumnCount() int { return len(g.headers) }

// RowCount returns the number of body rows.
func (g *Grid) RowCount() int { return len(g.rows) }

// Headers returns a copy of the header labels.
func (g *Grid) Headers() []string { return slices.Clone(g.headers) }

// Header returns the label of column col.
func (g *Grid) Header(col int) (string, bool) {
	if col < 0 || col >= len(g.headers) {
		return "", false
	}
	return g.headers[col], true
}

// Rows returns a copy of every row's cells in display order.
func (g *Grid) Rows() [][]string {
	out := make([][]string, len(g.rows))
	for i, r := range g.rows {
		out[i] = slices.Clone(r.cells)
	}
	return out
}

// Cells returns a copy of the cells of row i.
func (g *Grid) Cells(i int) []string {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return slices.Clone(g.rows[i].cells)
}

// Cell returns the content at (row, col).
func (g *Grid) Cell(r, c int) (string, bool) {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r].cells) {
		return "", false
	}
	return g.rows[r].cells[c], true
}

// RowID returns the id of the row at index i.
func (g *Grid) RowID(i int) (RowID, bool) {
	if i < 0 || i >= len(g.rows) {
		return 0, false
	}
	return g.rows[i].id, true
}

// RowIndex returns the current position of the row with the given id.
func (g *Grid) RowIndex(id RowID) (int, bool) {
	for i, r := range g.rows {
		if r.id == id {
			return i, true
		}
	}
	return -1, false
}

// SetCell replaces the content at (row, col). It reports false if the cell does not exist.
func (g *Grid) SetCell(r, c int, text string) bool {
	if r < 0 || r >= len(g.rows) || c < 0 || c >= len(g.rows[r].cells) {
		return false
	}
	g.rows[r].cells[c] = text
	return true
}

// SetHeader replaces the label of column col.
func (g *Grid) SetHeader(col int, text string) bool {
	if col < 0 || col >= len(g.headers) {
		return false
	}
	g.headers[col] = text
	return true
}

// AddRow appends an empty row with one cell per header.
func (g *Grid) AddRow() RowID {
	return g.appendRow(make([]string, len(g.headers)))
}

// RemoveRow drops the last row. The only remaining row is never removed.
func (g *Grid) RemoveRow() bool {
	if len(g.rows) <= 1 {
		return false
	}
	g.rows = g.rows[:len(g.rows)-1]
	return true
}

// AddColumn appends a header labeled by its 1-based position and an empty cell to every row.
func (g *Grid) AddColumn() {
	g.headers = append(g.headers, HeaderLabel(len(g.headers)+1))
	for i := range g.rows {
		g.rows[i].cells = append(g.rows[i].cells, "")
	}
}

// RemoveColumn drops the last cell of the header and of every row.
// A grid may end up with zero columns.
func (g *Grid) RemoveColumn() bool {
	if len(g.headers) == 0 {
		return false
	}
	g.headers = g.headers[:len(g.headers)-1]
	for i := range g.rows {
		if n := len(g.rows[i].cells); n > 0 {
			g.rows[i].cells = g.rows[i].cells[:n-1]
		}
	}
	return true
}

// Validate checks that every row has exactly one cell per header.
func (g *Grid) Validate() error {
	for i, r := range g.rows {
		if len(r.cells) != len(g.headers) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d",
				ErrMisaligned, i, len(r.cells), len(g.headers))
		}
	}
	return nil
}

// Clone returns a deep copy that keeps row ids.
func (g *Grid) Clone() *Grid {
	c := &Grid{headers: slices.Clone(g.headers), nextID: g.nextID}
	c.rows = make([]row, len(g.rows))
	for i, r := range g.rows {
		c.rows[i] = row{id: r.id, cells: slices.Clone(r.cells)}
	}
	return c
}
