package sheet

import (
	"context"

	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/grid"
)

// StartRowDrag begins dragging the row at index row.
func (s *Sheet) StartRowDrag(row int) bool {
	if s.grid == nil {
		return false
	}
	id, ok := s.grid.RowID(row)
	if !ok {
		return false
	}
	if !s.drag.StartRow(s.grid, id) {
		return false
	}
	s.log.Debug("drag start", "kind", drag.KindRow.String(), "row", row)
	return true
}

// StartColumnDrag begins dragging the column at index col.
func (s *Sheet) StartColumnDrag(col int) bool {
	if !s.drag.StartColumn(s.grid, col) {
		return false
	}
	s.log.Debug("drag start", "kind", drag.KindColumn.String(), "column", col)
	return true
}

// DragOverRow moves the dragged row around the row at index target according
// to the pointer position. It reports whether the order changed.
func (s *Sheet) DragOverRow(target int, pointerY float64, rect drag.Rect) bool {
	id, ok := s.rowID(target)
	if !ok {
		return false
	}
	if !s.drag.OverRow(s.grid, id, pointerY, rect) {
		return false
	}
	s.dirty = true
	return true
}

// DragOverColumn accepts a hover during a column drag.
func (s *Sheet) DragOverColumn() bool {
	return s.drag.OverColumn()
}

// DropOnRow finishes a row drop on the row at index target and saves when
// the drop is valid.
func (s *Sheet) DropOnRow(ctx context.Context, target int) (bool, error) {
	id, ok := s.rowID(target)
	if !ok {
		return false, nil
	}
	return s.dropOnRowID(ctx, id)
}

func (s *Sheet) dropOnRowID(ctx context.Context, id grid.RowID) (bool, error) {
	if !s.drag.DropRow(s.grid, id) {
		return false, nil
	}
	return true, s.Save(ctx)
}

// DropOnColumn moves the dragged column next to the column at index target
// and saves.
func (s *Sheet) DropOnColumn(ctx context.Context, target int) (bool, error) {
	if !s.drag.DropColumn(s.grid, target) {
		return false, nil
	}
	return true, s.Save(ctx)
}

// EndDrag finishes any drag, with or without a drop.
func (s *Sheet) EndDrag() {
	if s.drag.Dragging() {
		s.log.Debug("drag end", "kind", s.drag.Session().Kind.String())
	}
	s.drag.End()
}

// MoveRow shifts the row at index row by delta positions by running a full
// drag sequence against the neighbouring row. It reports the row's new index.
func (s *Sheet) MoveRow(ctx context.Context, row, delta int) (int, error) {
	target := row + delta
	if delta == 0 || s.grid == nil {
		return row, nil
	}
	targetID, ok := s.rowID(target)
	if !ok {
		return row, nil
	}
	if !s.StartRowDrag(row) {
		return row, nil
	}
	defer s.EndDrag()

	// A pointer at the top edge lands before the target, at the bottom edge after it.
	rect := drag.Rect{Top: 0, Height: 2}
	pointerY := 0.0
	if delta > 0 {
		pointerY = 2
	}
	dragged := s.drag.Session().Row
	s.drag.OverRow(s.grid, targetID, pointerY, rect)
	if _, err := s.dropOnRowID(ctx, targetID); err != nil {
		return row, err
	}
	idx, _ := s.grid.RowIndex(dragged)
	return idx, nil
}

// MoveColumn shifts the column at index col by delta positions through a
// drag sequence. It reports the column's new index.
func (s *Sheet) MoveColumn(ctx context.Context, col, delta int) (int, error) {
	target := col + delta
	if delta == 0 || s.grid == nil || target < 0 || target >= s.grid.ColumnCount() {
		return col, nil
	}
	if !s.StartColumnDrag(col) {
		return col, nil
	}
	defer s.EndDrag()

	s.DragOverColumn()
	moved, err := s.DropOnColumn(ctx, target)
	if err != nil || !moved {
		return col, err
	}
	return target, nil
}

func (s *Sheet) rowID(i int) (grid.RowID, bool) {
	if s.grid == nil {
		return 0, false
	}
	return s.grid.RowID(i)
}
