package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tabula/internal/drag"
)

// pointerState tracks the left button between press and release.
type pointerState struct {
	pressed   bool
	pressedAt Position
	wasCursor bool // the pressed cell already held the cursor

	overRow int // row under the pointer during a row drag, -1 for none
	overCol int // header under the pointer during a column drag, -1 for none
}

// handleMouseMsg turns press, motion and release into drag and click events.
// A press followed by motion starts a drag of the pressed row or header;
// the release drops it on whatever is under the pointer.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (Model, tea.Cmd) {
	LogMouse(msg)

	if m.loading || m.mode == ModeModal || m.mode == ModePrompt {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollOffset--
			m.clampScroll()
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollOffset++
			m.clampScroll()
			return m, nil
		case tea.MouseButtonLeft:
			var cmd tea.Cmd
			if m.mode == ModeEdit {
				m, cmd = m.commitEdit()
			}
			m.pressAt(msg.X, msg.Y)
			return m, cmd
		}

	case tea.MouseActionMotion:
		if m.pointer.pressed {
			return m.dragTo(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		return m.releaseAt(msg.X, msg.Y)
	}
	return m, nil
}

func (m *Model) pressAt(x, y int) {
	pos, ok := m.hits.cellAt(x, y)
	if !ok {
		m.pointer = pointerState{overRow: -1, overCol: -1}
		return
	}
	m.pointer = pointerState{
		pressed:   true,
		pressedAt: pos,
		wasCursor: pos == m.cursor,
		overRow:   -1,
		overCol:   -1,
	}
	m.cursor = pos
	LogCursorMove(pos, "mouse")
}

func (m Model) dragTo(x, y int) (Model, tea.Cmd) {
	if !m.sheet.Drag().Dragging() && !m.startDrag() {
		return m, nil
	}

	switch m.sheet.Drag().Session().Kind {
	case drag.KindRow:
		hit, ok := m.hits.rowAt(y)
		if !ok {
			m.pointer.overRow = -1
			return m, nil
		}
		// The pointer sits at the centre of its terminal cell.
		if m.sheet.DragOverRow(hit.row, float64(y)+0.5, hit.rect) {
			LogDrag("over", "kind", "row", "target", hit.row)
			m.followDraggedRow()
			m.refreshHits()
		}
		m.pointer.overRow = -1
		if hit, ok := m.hits.rowAt(y); ok && hit.row != m.cursor.Row {
			m.pointer.overRow = hit.row
		}

	case drag.KindColumn:
		col, ok := m.hits.headerAt(x, y)
		if ok && m.sheet.DragOverColumn() {
			m.pointer.overCol = col
		} else {
			m.pointer.overCol = -1
		}
	}
	return m, nil
}

func (m *Model) startDrag() bool {
	at := m.pointer.pressedAt
	var started bool
	if at.Row < 0 {
		started = m.sheet.StartColumnDrag(at.Col)
	} else {
		started = m.sheet.StartRowDrag(at.Row)
	}
	if !started {
		m.pointer.pressed = false
		return false
	}
	LogDrag("start", "row", at.Row, "col", at.Col)
	m.setMode(ModeDrag, "drag_start")
	return true
}

func (m Model) releaseAt(x, y int) (Model, tea.Cmd) {
	pointer := m.pointer
	m.pointer = pointerState{overRow: -1, overCol: -1}

	if !m.sheet.Drag().Dragging() {
		if pointer.pressed && pointer.wasCursor {
			if pos, ok := m.hits.cellAt(x, y); ok && pos == pointer.pressedAt {
				return m.startEdit()
			}
		}
		return m, nil
	}

	var (
		dropped bool
		err     error
	)
	switch m.sheet.Drag().Session().Kind {
	case drag.KindRow:
		if hit, ok := m.hits.rowAt(y); ok {
			dropped, err = m.sheet.DropOnRow(m.ctx, hit.row)
		}
		m.followDraggedRow()
	case drag.KindColumn:
		if col, ok := m.hits.headerAt(x, y); ok {
			dropped, err = m.sheet.DropOnColumn(m.ctx, col)
			if dropped {
				m.cursor.Col = col
			}
		}
	}
	LogDrag("drop", "saved", dropped)
	m.endDrag("drag_end")
	if err != nil {
		cmd := m.setError("drop", err)
		return m, cmd
	}
	return m, nil
}

// followDraggedRow keeps the cursor on the dragged row as it moves.
func (m *Model) followDraggedRow() {
	g := m.sheet.Grid()
	session := m.sheet.Drag().Session()
	if g == nil || session.Kind != drag.KindRow {
		return
	}
	if idx, ok := g.RowIndex(session.Row); ok {
		m.cursor.Row = idx
	}
}

// endDrag finishes the drag whether or not it was dropped.
func (m *Model) endDrag(reason string) {
	m.followDraggedRow()
	m.sheet.EndDrag()
	m.pointer = pointerState{overRow: -1, overCol: -1}
	m.setMode(ModeNormal, reason)
	m.attach()
}
