package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tabula/internal/tui/view"
)

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	TitleH  int
	GridH   int
	FooterH int

	StatusAuxStyle lipgloss.Style
	ErrorAuxStyle  lipgloss.Style
	HelpAuxStyle   lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	titleH := min(titleHeight, innerH)
	footerH := min(footerHeight, innerH-titleH)
	gridH := max(0, innerH-titleH-footerH)

	footerAuxStyle := lipgloss.NewStyle().
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:         innerW,
		InnerH:         innerH,
		TitleH:         titleH,
		GridH:          gridH,
		FooterH:        footerH,
		StatusAuxStyle: styles.StatusStyle.Inherit(footerAuxStyle),
		ErrorAuxStyle:  styles.ErrorStyle.Inherit(footerAuxStyle),
		HelpAuxStyle: styles.HelpStyle.Inherit(lipgloss.NewStyle().
			Padding(0, 1).
			Background(styles.colorBg)),
	}
}

// geometry places the current grid inside the grid area.
func (m Model) geometry() view.Geometry {
	g := m.sheet.Grid()
	if g == nil {
		return view.Geometry{}
	}
	layout := m.buildLayoutCache(m.width, m.height)
	rowLines := m.config.UI.RowLines
	return view.Geometry{
		Top:      layout.TitleH,
		Left:     0,
		ColWidth: m.config.UI.ColWidth,
		RowLines: rowLines,
		Columns:  g.ColumnCount(),
		Offset:   m.scrollOffset,
		Visible:  view.VisibleRows(layout.GridH, rowLines, g.RowCount()-m.scrollOffset),
	}
}

// visibleRows returns how many body rows fit on screen.
func (m Model) visibleRows() int {
	g := m.sheet.Grid()
	if g == nil {
		return 0
	}
	layout := m.buildLayoutCache(m.width, m.height)
	return view.VisibleRows(layout.GridH, m.config.UI.RowLines, g.RowCount())
}

// ensureCursorVisible scrolls so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if visible <= 0 {
		m.scrollOffset = 0
		return
	}
	if m.cursor.Row >= 0 && m.cursor.Row < m.scrollOffset {
		m.scrollOffset = m.cursor.Row
	}
	if m.cursor.Row >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor.Row - visible + 1
	}
	m.clampScroll()
}

func (m *Model) clampScroll() {
	g := m.sheet.Grid()
	if g == nil {
		m.scrollOffset = 0
		return
	}
	maxOffset := max(0, g.RowCount()-m.visibleRows())
	m.scrollOffset = min(max(0, m.scrollOffset), maxOffset)
}
