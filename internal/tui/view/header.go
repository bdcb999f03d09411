package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// TitleModel holds the content of the title bar.
type TitleModel struct {
	Width       int
	Title       string
	Detail      string // shown right-aligned, e.g. the table key
	TitleStyle  lipgloss.Style
	DetailStyle lipgloss.Style
	Bg          lipgloss.Color
}

// RenderTitle renders the single-line title bar.
func RenderTitle(model TitleModel) string {
	left := model.TitleStyle.Render(model.Title)
	right := model.DetailStyle.Render(model.Detail)
	gap := model.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		line := ansi.Truncate(left+" "+right, model.Width, "")
		return Fill(line, model.Width, 1, model.Bg)
	}
	fill := lipgloss.NewStyle().Background(model.Bg).Render(PadRight("", gap))
	return left + fill + right
}
