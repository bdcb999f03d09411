package tui

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tabula/internal/snapshot"
	"github.com/javiermolinar/tabula/internal/tui/commands"
	"github.com/javiermolinar/tabula/internal/tui/input"
)

var errNoTable = errors.New("no table, press n to create one")

// promptCommands are the commands accepted on the / command line.
var promptCommands = []input.Command{
	{Name: "/new", Description: "Create a new table"},
	{Name: "/addrow", Description: "Append a row"},
	{Name: "/delrow", Description: "Remove the last row"},
	{Name: "/addcol", Description: "Append a column"},
	{Name: "/delcol", Description: "Remove the last column"},
	{Name: "/rename", Description: "Rename the current column"},
	{Name: "/export", Description: "Copy the table as json, yaml or toml"},
	{Name: "/clear", Description: "Delete the stored table"},
	{Name: "/quit", Description: "Save and quit"},
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m.quit()
	}
	switch m.mode {
	case ModeEdit:
		return m.handleEditKeys(msg)
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeDrag:
		return m.handleDragKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.loading {
		if msg.String() == "q" {
			return m.quit()
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.quit()

	// Navigation
	case "h", "left":
		m.moveCursor(0, -1)
	case "l", "right":
		m.moveCursor(0, 1)
	case "k", "up":
		m.moveCursor(-1, 0)
	case "j", "down":
		m.moveCursor(1, 0)
	case "pgdown", "ctrl+d":
		m.moveCursor(max(1, m.visibleRows()), 0)
	case "pgup", "ctrl+u":
		m.moveCursor(-max(1, m.visibleRows()), 0)
	case "g", "home":
		m.moveCursor(-m.cursor.Row-1, 0)
	case "G", "end":
		if g := m.sheet.Grid(); g != nil {
			m.moveCursor(g.RowCount()-1-m.cursor.Row, 0)
		}

	// Structure
	case "n":
		return m.requestCreate()
	case "r":
		return m.mutate("add row", func() error { return m.sheet.AddRow(m.ctx) })
	case "R":
		return m.mutate("remove row", func() error { return m.sheet.RemoveRow(m.ctx) })
	case "c":
		return m.mutate("add column", func() error { return m.sheet.AddColumn(m.ctx) })
	case "C":
		return m.mutate("remove column", func() error { return m.sheet.RemoveColumn(m.ctx) })

	// Reordering
	case "K", "shift+up":
		return m.moveRow(-1)
	case "J", "shift+down":
		return m.moveRow(1)
	case "H", "shift+left":
		return m.moveColumn(-1)
	case "L", "shift+right":
		return m.moveColumn(1)

	// Content
	case "enter", "i", "e":
		return m.startEdit()
	case "x", "delete":
		return m.writeCursor("")
	case "y":
		return m.yankCell()
	case "p":
		return m.pasteCell()

	// Storage
	case "X":
		return m.openModal(ModalConfirmClear)
	case "/", ":":
		m.prompt.SetValue("/")
		m.prompt.CursorEnd()
		m.prompt.Focus()
		m.setMode(ModePrompt, "open_prompt")
		return m, textinput.Blink
	}
	return m, nil
}

// handleEditKeys handles keys while a cell is being edited. Enter commits
// and saves, Esc discards.
func (m Model) handleEditKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.setMode(ModeNormal, "cancel_edit")
		return m, nil
	case "enter", "tab":
		return m.commitEdit()
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) commitEdit() (Model, tea.Cmd) {
	text := m.editor.Value()
	m.editor.Blur()
	m.setMode(ModeNormal, "commit_edit")
	return m.writeCursor(text)
}

// handlePromptKeys handles keys on the command line.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt.Blur()
		m.prompt.SetValue("")
		m.setMode(ModeNormal, "cancel_prompt")
		return m, nil
	case "tab":
		if name, ok := input.Complete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(name + " ")
			m.prompt.CursorEnd()
		}
		return m, nil
	case "enter":
		line := m.prompt.Value()
		m.prompt.Blur()
		m.prompt.SetValue("")
		m.setMode(ModeNormal, "submit_prompt")
		return m.runPromptCommand(line)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) runPromptCommand(line string) (Model, tea.Cmd) {
	name, arg, ok := input.Parse(line)
	if !ok {
		return m, nil
	}
	switch name {
	case "/new":
		return m.requestCreate()
	case "/addrow":
		return m.mutate("add row", func() error { return m.sheet.AddRow(m.ctx) })
	case "/delrow":
		return m.mutate("remove row", func() error { return m.sheet.RemoveRow(m.ctx) })
	case "/addcol":
		return m.mutate("add column", func() error { return m.sheet.AddColumn(m.ctx) })
	case "/delcol":
		return m.mutate("remove column", func() error { return m.sheet.RemoveColumn(m.ctx) })
	case "/rename":
		return m.mutate("rename column", func() error { return m.sheet.EditHeader(m.ctx, m.cursor.Col, arg) })
	case "/export":
		return m.exportToClipboard(arg)
	case "/clear":
		return m.openModal(ModalConfirmClear)
	case "/quit":
		return m.quit()
	}
	cmd := m.setStatus(fmt.Sprintf("Unknown command %s", name))
	return m, cmd
}

// handleModalKeys handles keys while a confirmation is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.closeModal("cancel_modal")
		return m, nil
	case "enter", "y":
		modal := m.modalType
		m.closeModal("confirm_modal")
		switch modal {
		case ModalConfirmCreate:
			return m.create()
		case ModalConfirmClear:
			return m.clear()
		}
	}
	return m, nil
}

// handleDragKeys lets Esc abandon a mouse drag.
func (m Model) handleDragKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.endDrag("cancel_drag")
	}
	return m, nil
}

func (m Model) quit() (Model, tea.Cmd) {
	if m.sheet.Drag().Dragging() {
		m.endDrag("quit")
	}
	if err := m.sheet.Flush(m.ctx); err != nil {
		LogError("flush", err)
	}
	return m, tea.Quit
}

func (m *Model) moveCursor(dRow, dCol int) {
	g := m.sheet.Grid()
	if g == nil {
		return
	}
	m.cursor.Row += dRow
	m.cursor.Col += dCol
	m.clampCursor()
	m.ensureCursorVisible()
	LogCursorMove(m.cursor, "keys")
}

// mutate runs a structural change and re-attaches the result.
func (m Model) mutate(action string, fn func() error) (Model, tea.Cmd) {
	if !m.sheet.HasGrid() {
		cmd := m.setStatus(errNoTable.Error())
		return m, cmd
	}
	if err := fn(); err != nil {
		cmd := m.setError(action, err)
		return m, cmd
	}
	m.attach()
	return m, nil
}

func (m Model) requestCreate() (Model, tea.Cmd) {
	if m.sheet.HasGrid() {
		return m.openModal(ModalConfirmCreate)
	}
	return m.create()
}

func (m Model) create() (Model, tea.Cmd) {
	if err := m.sheet.Create(m.ctx); err != nil {
		m.attach()
		cmd := m.setError("create", err)
		return m, cmd
	}
	m.cursor = Position{}
	m.scrollOffset = 0
	m.attach()
	cmd := m.setStatus("Created a new table")
	return m, cmd
}

func (m Model) clear() (Model, tea.Cmd) {
	if err := m.sheet.Clear(m.ctx); err != nil {
		cmd := m.setError("clear", err)
		return m, cmd
	}
	m.cursor = Position{}
	m.scrollOffset = 0
	m.loading = true
	m.attach()
	cmd := tea.Batch(m.setStatus("Storage cleared"), commands.Load(m.ctx, m.sheet))
	return m, cmd
}

func (m Model) moveRow(delta int) (Model, tea.Cmd) {
	if !m.sheet.HasGrid() || m.cursor.Row < 0 {
		return m, nil
	}
	row, err := m.sheet.MoveRow(m.ctx, m.cursor.Row, delta)
	m.cursor.Row = row
	m.attach()
	if err != nil {
		cmd := m.setError("move row", err)
		return m, cmd
	}
	return m, nil
}

func (m Model) moveColumn(delta int) (Model, tea.Cmd) {
	if !m.sheet.HasGrid() {
		return m, nil
	}
	col, err := m.sheet.MoveColumn(m.ctx, m.cursor.Col, delta)
	m.cursor.Col = col
	m.attach()
	if err != nil {
		cmd := m.setError("move column", err)
		return m, cmd
	}
	return m, nil
}

// cursorText returns the text under the cursor.
func (m Model) cursorText() (string, bool) {
	g := m.sheet.Grid()
	if g == nil {
		return "", false
	}
	if m.cursor.Row < 0 {
		return g.Header(m.cursor.Col)
	}
	return g.Cell(m.cursor.Row, m.cursor.Col)
}

func (m Model) startEdit() (Model, tea.Cmd) {
	text, ok := m.cursorText()
	if !ok {
		return m, nil
	}
	m.editor.SetValue(text)
	m.editor.CursorEnd()
	m.editor.Width = max(1, m.config.UI.ColWidth-1)
	m.setMode(ModeEdit, "start_edit")
	cmd := m.editor.Focus()
	return m, cmd
}

// writeCursor replaces the text under the cursor and saves.
func (m Model) writeCursor(text string) (Model, tea.Cmd) {
	if _, ok := m.cursorText(); !ok {
		return m, nil
	}
	var err error
	if m.cursor.Row < 0 {
		err = m.sheet.EditHeader(m.ctx, m.cursor.Col, text)
	} else {
		err = m.sheet.EditCell(m.ctx, m.cursor.Row, m.cursor.Col, text)
	}
	if err != nil {
		cmd := m.setError("edit", err)
		return m, cmd
	}
	return m, nil
}

func (m Model) yankCell() (Model, tea.Cmd) {
	text, ok := m.cursorText()
	if !ok {
		return m, nil
	}
	if err := m.copyText(text); err != nil {
		cmd := m.setError("copy", err)
		return m, cmd
	}
	cmd := m.setStatus("Copied cell")
	return m, cmd
}

func (m Model) pasteCell() (Model, tea.Cmd) {
	if _, ok := m.cursorText(); !ok {
		return m, nil
	}
	text, err := m.pasteText()
	if err != nil {
		cmd := m.setError("paste", err)
		return m, cmd
	}
	// Cells hold a single line.
	text = strings.TrimRight(text, "\r\n")
	text = strings.ReplaceAll(text, "\n", " ")
	return m.writeCursor(text)
}

func (m Model) exportToClipboard(name string) (Model, tea.Cmd) {
	g := m.sheet.Grid()
	if g == nil {
		cmd := m.setStatus(errNoTable.Error())
		return m, cmd
	}
	if name == "" {
		name = string(snapshot.FormatJSON)
	}
	format, err := snapshot.ParseFormat(name)
	if err != nil {
		cmd := m.setError("export", err)
		return m, cmd
	}
	var buf bytes.Buffer
	if err := snapshot.Export(&buf, snapshot.FromGrid(g), format); err != nil {
		cmd := m.setError("export", err)
		return m, cmd
	}
	if err := m.copyText(buf.String()); err != nil {
		cmd := m.setError("export", err)
		return m, cmd
	}
	cmd := m.setStatus(fmt.Sprintf("Copied table as %s", format))
	return m, cmd
}

func (m Model) openModal(modal ModalType) (Model, tea.Cmd) {
	if modal == ModalConfirmClear && !m.sheet.HasGrid() {
		return m.clear()
	}
	m.modalType = modal
	m.setMode(ModeModal, "open_modal")
	return m, nil
}

func (m *Model) closeModal(reason string) {
	m.modalType = ModalNone
	m.setMode(ModeNormal, reason)
}
