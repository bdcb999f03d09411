package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// StaticTable holds a table printed outside the TUI.
type StaticTable struct {
	Width       int // 0 lets the table size itself
	Headers     []string
	Rows        [][]string
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	BorderStyle lipgloss.Style
}

// RenderStaticTable renders a read-only table using a lipgloss table.
func RenderStaticTable(state StaticTable) string {
	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return state.HeaderStyle
			}
			return state.CellStyle
		})
	if state.Width > 0 {
		t = t.Width(state.Width)
	}
	return t.Render()
}
