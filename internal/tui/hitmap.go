package tui

import (
	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/grid"
	"github.com/javiermolinar/tabula/internal/tui/view"
)

// hitMap records the screen areas that accept pointer input: header cells
// start column drags, body rows start row drags and every cell accepts edits.
// It is rebuilt from the grid alone, so built and restored grids behave the same.
type hitMap struct {
	geo     view.Geometry
	rows    []rowHit
	columns int
}

type rowHit struct {
	row  int
	rect drag.Rect
}

func buildHitMap(g *grid.Grid, geo view.Geometry) hitMap {
	if g == nil {
		return hitMap{}
	}
	h := hitMap{geo: geo, columns: g.ColumnCount()}
	for r := geo.Offset; r < geo.Offset+geo.Visible && r < g.RowCount(); r++ {
		top, ok := geo.RowTop(r)
		if !ok {
			continue
		}
		h.rows = append(h.rows, rowHit{row: r, rect: drag.Rect{Top: top, Height: geo.RowLines}})
	}
	return h
}

// empty reports whether nothing on screen accepts pointer input.
func (h hitMap) empty() bool {
	return h.columns == 0 && len(h.rows) == 0
}

// headerAt returns the header cell at screen position x, y.
func (h hitMap) headerAt(x, y int) (int, bool) {
	if h.columns == 0 || y != h.geo.HeaderY() {
		return 0, false
	}
	return h.geo.ColumnAt(x)
}

// rowAt returns the body row drawn on screen line y with its rectangle.
func (h hitMap) rowAt(y int) (rowHit, bool) {
	for _, hit := range h.rows {
		if y >= hit.rect.Top && y < hit.rect.Top+hit.rect.Height {
			return hit, true
		}
	}
	return rowHit{}, false
}

// cellAt returns the editable cell at screen position x, y. Header cells
// report row -1.
func (h hitMap) cellAt(x, y int) (Position, bool) {
	if col, ok := h.headerAt(x, y); ok {
		return Position{Row: -1, Col: col}, true
	}
	hit, ok := h.rowAt(y)
	if !ok {
		return Position{}, false
	}
	col, ok := h.geo.ColumnAt(x)
	if !ok {
		return Position{}, false
	}
	return Position{Row: hit.row, Col: col}, true
}
