// Package drag implements row and column drag-to-reorder on a grid.
//
// A drag follows the event order start → over* → drop? → end. Rows reorder
// live on every over event using the midpoint of the hovered row; columns
// reorder once, on drop, by index comparison.
package drag

import (
	"strings"

	"github.com/javiermolinar/tabula/internal/grid"
)

// Kind identifies what is being dragged.
type Kind int

const (
	KindNone Kind = iota
	KindRow
	KindColumn
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindColumn:
		return "column"
	default:
		return "none"
	}
}

// Rect is the vertical extent of a row on screen, in terminal lines.
type Rect struct {
	Top    int
	Height int
}

// Midpoint returns the vertical center of the rect.
func (r Rect) Midpoint() float64 {
	return float64(r.Top) + float64(r.Height)/2
}

// Session is the state of one in-progress drag. A session drags either a row
// or a column, never both.
type Session struct {
	Kind    Kind
	Row     grid.RowID // valid when Kind == KindRow
	Column  int        // valid when Kind == KindColumn
	Payload string     // staged transfer data: row cells tab-joined, or the header label
}

// Active reports whether the session is tracking a drag.
func (s Session) Active() bool { return s.Kind != KindNone }

// Controller owns the single drag session slot.
type Controller struct {
	session Session
	dimmed  bool
}

// New returns an idle controller.
func New() *Controller {
	return &Controller{}
}

// Session returns a copy of the current session.
func (c *Controller) Session() Session { return c.session }

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.session.Active() }

// Dimmed reports whether the dragged element shows the reduced-opacity affordance.
func (c *Controller) Dimmed() bool { return c.dimmed }

// IsDraggedRow reports whether id is the row being dragged.
func (c *Controller) IsDraggedRow(id grid.RowID) bool {
	return c.session.Kind == KindRow && c.session.Row == id
}

// IsDraggedColumn reports whether col is the column being dragged.
func (c *Controller) IsDraggedColumn(col int) bool {
	return c.session.Kind == KindColumn && c.session.Column == col
}

// StartRow begins dragging the row with the given id.
// It reports false if the row does not exist.
func (c *Controller) StartRow(g *grid.Grid, id grid.RowID) bool {
	if g == nil {
		return false
	}
	idx, ok := g.RowIndex(id)
	if !ok {
		return false
	}
	c.session = Session{
		Kind:    KindRow,
		Row:     id,
		Column:  -1,
		Payload: strings.Join(g.Cells(idx), "\t"),
	}
	c.dimmed = true
	return true
}

// StartColumn begins dragging the column at index col.
func (c *Controller) StartColumn(g *grid.Grid, col int) bool {
	if g == nil {
		return false
	}
	label, ok := g.Header(col)
	if !ok {
		return false
	}
	c.session = Session{
		Kind:    KindColumn,
		Column:  col,
		Payload: label,
	}
	c.dimmed = true
	return true
}

// OverRow handles the pointer hovering over target at pointerY. The dragged
// row moves right before target when the pointer is above the target's
// midpoint, and right after it otherwise. It reports whether the grid changed.
func (c *Controller) OverRow(g *grid.Grid, target grid.RowID, pointerY float64, rect Rect) bool {
	if g == nil || c.session.Kind != KindRow || target == c.session.Row {
		return false
	}
	if _, ok := g.RowIndex(target); !ok {
		return false
	}
	if pointerY < rect.Midpoint() {
		return g.MoveRowBefore(c.session.Row, target)
	}
	return g.MoveRowAfter(c.session.Row, target)
}

// OverColumn handles the pointer hovering over a header cell. Columns do not
// reorder until drop, so this only accepts the hover.
func (c *Controller) OverColumn() bool {
	return c.session.Kind == KindColumn
}

// DropRow handles a drop on target. The move already happened during
// OverRow; the result reports whether the grid should be persisted.
func (c *Controller) DropRow(g *grid.Grid, target grid.RowID) bool {
	if g == nil || c.session.Kind != KindRow || target == c.session.Row {
		return false
	}
	_, ok := g.RowIndex(target)
	return ok
}

// DropColumn handles a drop on the header cell at index target. It moves the
// dragged column in the header and every row and reports whether the grid
// should be persisted.
func (c *Controller) DropColumn(g *grid.Grid, target int) bool {
	if g == nil || c.session.Kind != KindColumn {
		return false
	}
	if target == c.session.Column {
		return false
	}
	if _, ok := g.Header(target); !ok {
		return false
	}
	return g.MoveColumn(c.session.Column, target)
}

// End finishes the drag whether or not a drop happened.
func (c *Controller) End() {
	c.dimmed = false
	c.session = Session{}
}
