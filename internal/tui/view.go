package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/tui/view"
)

// View draws the title, the table and the footer, with any dialog on top.
func (m Model) View() string {
	return view.Render(m.screen())
}

func (m Model) screen() view.Screen {
	s := view.Screen{
		Width:    m.width,
		Height:   m.height,
		Base:     m.renderAppContent(),
		DialogBg: m.styles.DialogBg,
	}
	if m.mode == ModeModal {
		s.Dialog = m.renderModal()
	}
	return s
}

func (m Model) renderAppContent() string {
	layout := m.buildLayoutCache(m.width, m.height)
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	title := view.RenderTitle(view.TitleModel{
		Width:       layout.InnerW,
		Title:       "tabula",
		Detail:      m.sheet.Key(),
		TitleStyle:  m.styles.TitleStyle,
		DetailStyle: m.styles.TitleDetailStyle,
		Bg:          m.styles.colorBg,
	})
	gridBox := view.Box(layout.InnerW, layout.GridH, lipgloss.Top, m.renderGridArea(), m.styles.colorBg)
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, title, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.Fill(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) renderGridArea() string {
	if m.loading {
		return m.styles.EmptyStyle.Render(" Loading...")
	}
	g := m.sheet.Grid()
	if g == nil {
		return m.styles.EmptyStyle.Render(" No table yet. Press n to create one.")
	}
	return view.RenderGrid(m.gridView())
}

func (m Model) gridView() view.GridView {
	g := m.sheet.Grid()
	v := view.GridView{
		Geometry:  m.geometry(),
		Headers:   g.Headers(),
		Rows:      g.Rows(),
		CursorRow: m.cursor.Row,
		CursorCol: m.cursor.Col,
		DimRow:    -1,
		DimCol:    -1,
		DropRow:   -1,
		DropCol:   -1,
		Editing:   m.mode == ModeEdit,
		Styles:    m.styles.gridStyles(),
	}
	if v.Editing {
		v.EditView = m.editor.View()
	}

	ctrl := m.sheet.Drag()
	if ctrl.Dimmed() {
		session := ctrl.Session()
		switch session.Kind {
		case drag.KindRow:
			if idx, ok := g.RowIndex(session.Row); ok {
				v.DimRow = idx
			}
			v.DropRow = m.pointer.overRow
		case drag.KindColumn:
			v.DimCol = session.Column
			if m.pointer.overCol != session.Column {
				v.DropCol = m.pointer.overCol
			}
		}
	}
	return v
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	statusStyle := layout.StatusAuxStyle
	if m.err != nil {
		statusStyle = layout.ErrorAuxStyle
	}
	status := m.statusText()
	if m.mode == ModePrompt {
		status = m.prompt.View()
	}
	return view.FooterModel{
		InnerW:      layout.InnerW,
		FooterH:     layout.FooterH,
		ModeText:    m.mode.String(),
		StatusText:  status,
		HelpText:    m.helpText(),
		ModeStyle:   m.styles.ModeStyle,
		StatusStyle: statusStyle,
		HelpStyle:   layout.HelpAuxStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}
