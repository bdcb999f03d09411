package tui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/tui/input"
)

// statusText returns the status message, or a summary of the table.
func (m Model) statusText() string {
	if m.statusMsg != "" {
		return m.statusMsg
	}
	g := m.sheet.Grid()
	if g == nil {
		return " "
	}
	where := "header"
	if m.cursor.Row >= 0 {
		where = fmt.Sprintf("row %d", m.cursor.Row+1)
	}
	dirty := ""
	if m.sheet.Dirty() {
		dirty = " [unsaved]"
	}
	return fmt.Sprintf("%d columns × %d rows · %s, column %d%s",
		g.ColumnCount(), g.RowCount(), where, m.cursor.Col+1, dirty)
}

// helpText returns the key help for the current mode.
func (m Model) helpText() string {
	switch m.mode {
	case ModeEdit:
		return "Enter save · Esc cancel"
	case ModeDrag:
		if m.sheet.Drag().Session().Kind == drag.KindColumn {
			return "drop on a header to move the column · Esc cancel"
		}
		return "move over rows to reorder · release to drop · Esc cancel"
	case ModePrompt:
		names := make([]string, 0, len(promptCommands))
		for _, cmd := range input.Matches(m.prompt.Value(), promptCommands) {
			names = append(names, cmd.Name)
		}
		if len(names) == 0 {
			return "Enter run · Esc cancel"
		}
		return strings.Join(names, " ") + " · Tab complete"
	case ModeModal:
		return "y confirm · n cancel"
	}
	if !m.sheet.HasGrid() {
		return "n new table · / commands · q quit"
	}
	if m.sheet.Dirty() {
		return "row order unsaved · the next edit or q quit saves it"
	}
	return "n new · r/R row · c/C column · Enter edit · K/J/H/L move · drag to reorder · y/p copy/paste · X clear · q quit"
}
