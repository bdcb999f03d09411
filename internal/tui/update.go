package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tabula/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tea.MouseMsg:
		m, cmd = m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampScroll()

	case commands.LoadedMsg:
		m.loading = false
		if msg.Grid != nil {
			m.sheet.Attach(msg.Grid)
		}
		m.attach()

	case commands.ErrMsg:
		m.loading = false
		cmd = m.setError("load", msg.Err)

	case commands.ExpireStatusMsg:
		if msg.Seq == m.statusSeq {
			m.statusMsg = ""
			m.err = nil
		}
	}

	// Prompt and editor keep blinking their cursors.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		switch m.mode {
		case ModeEdit:
			var blink tea.Cmd
			m.editor, blink = m.editor.Update(msg)
			cmd = tea.Batch(cmd, blink)
		case ModePrompt:
			var blink tea.Cmd
			m.prompt, blink = m.prompt.Update(msg)
			cmd = tea.Batch(cmd, blink)
		}
	}

	m.refreshHits()
	return m, cmd
}

// attach adopts whatever grid the sheet now holds. Both the create and the
// load paths end here.
func (m *Model) attach() {
	m.clampCursor()
	m.ensureCursorVisible()
	m.refreshHits()
}

func (m *Model) refreshHits() {
	m.hits = buildHitMap(m.sheet.Grid(), m.geometry())
}

func (m *Model) clampCursor() {
	g := m.sheet.Grid()
	if g == nil {
		m.cursor = Position{}
		return
	}
	m.cursor.Col = min(max(0, m.cursor.Col), max(0, g.ColumnCount()-1))
	m.cursor.Row = min(max(-1, m.cursor.Row), g.RowCount()-1)
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.err = nil
	m.statusSeq++
	return commands.ExpireStatus(m.statusSeq, statusTTL)
}

func (m *Model) setError(context string, err error) tea.Cmd {
	LogError(context, err)
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusSeq++
	return commands.ExpireStatus(m.statusSeq, 2*statusTTL)
}

func (m *Model) setMode(to Mode, reason string) {
	if m.mode == to {
		return
	}
	LogModeChange(m.mode, to, reason)
	m.mode = to
}
