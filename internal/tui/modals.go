package tui

import (
	"fmt"

	"github.com/javiermolinar/tabula/internal/tui/view"
)

// renderModal draws the pending confirmation, or nothing.
func (m Model) renderModal() string {
	var c view.Confirm
	switch m.modalType {
	case ModalConfirmCreate:
		c = view.Confirm{
			Title:   "New Table",
			Message: "Replace the current table with a new one?",
		}
	case ModalConfirmClear:
		c = view.Confirm{
			Title:   "Clear Storage",
			Message: fmt.Sprintf("Delete the table stored as %q?", m.sheet.Key()),
		}
	default:
		return ""
	}
	c.Detail = m.tableSummary()
	return view.RenderConfirm(c, m.styles.Dialog)
}

func (m Model) tableSummary() string {
	g := m.sheet.Grid()
	if g == nil {
		return ""
	}
	return fmt.Sprintf("%d columns, %d rows", g.ColumnCount(), g.RowCount())
}
