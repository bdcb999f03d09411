// Package tui provides the terminal user interface for tabula.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tabula/internal/tui/theme"
	"github.com/javiermolinar/tabula/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorError       lipgloss.Color

	AppStyle lipgloss.Style

	// Title bar
	TitleStyle       lipgloss.Style
	TitleDetailStyle lipgloss.Style

	// Grid
	BorderStyle lipgloss.Style
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
	CursorStyle lipgloss.Style
	DimmedStyle lipgloss.Style // dragged row or column
	DropStyle   lipgloss.Style // element under the pointer while dragging
	EmptyStyle  lipgloss.Style

	// Inline cell editor
	EditorTextStyle   lipgloss.Style
	EditorCursorStyle lipgloss.Style

	// Footer
	ModeStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	// Confirmation dialogs
	Dialog   view.DialogStyles
	DialogBg lipgloss.Color
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)

	s := &Styles{
		colorBg:          palette.Bg,
		colorBgHighlight: palette.BgHighlight,
		colorFg:          palette.Fg,
		colorFgMuted:     palette.FgMuted,
		colorAccent:      palette.Accent,
		colorWarning:     palette.Warning,
		colorError:       palette.Error,
	}

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.TitleDetailStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Padding(0, 1)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(palette.Border).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Header).
		Background(s.colorBgHighlight)

	s.CellStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.CursorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(palette.BgSelection)

	s.DimmedStyle = lipgloss.NewStyle().
		Foreground(palette.Dimmed).
		Background(s.colorBg).
		Italic(true)

	s.DropStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(palette.DropBg)

	s.EmptyStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.EditorTextStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(palette.BgSelection)

	s.EditorCursorStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent)

	s.ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnWarning).
		Background(s.colorWarning).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true).
		PaddingLeft(1)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorError).
		Background(s.colorBg).
		Bold(true).
		PaddingLeft(1)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	modal := palette.Modal
	s.DialogBg = modal.Bg
	on := func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(modal.Text).Background(modal.Bg)
	}
	s.Dialog = view.DialogStyles{
		Frame: on().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(modal.Border).
			Padding(1, 1).
			Width(52),
		Header:       on().Bold(true).Padding(0, 1),
		Title:        on().Bold(true),
		Body:         on(),
		Detail:       on().Foreground(modal.Muted),
		Footer:       on().Padding(0, 1),
		Button:       on().Padding(0, 2),
		ActiveButton: on().Background(modal.Highlight).Padding(0, 2).Underline(true),
	}

	return s
}

// gridStyles returns the styles used by the grid renderer.
func (s *Styles) gridStyles() view.GridStyles {
	return view.GridStyles{
		Border: s.BorderStyle,
		Header: s.HeaderStyle,
		Cell:   s.CellStyle,
		Cursor: s.CursorStyle,
		Dimmed: s.DimmedStyle,
		Drop:   s.DropStyle,
	}
}
