package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/grid"
	"github.com/javiermolinar/tabula/internal/tui/theme"
	"github.com/javiermolinar/tabula/internal/tui/view"
)

func (a *App) showCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored table",
		Long: `Print the stored table without starting the editor.

The table is sized to the terminal; long cells wrap inside their column.`,
		Example: `  tabula show
  tabula show --table budget --no-color`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			s, err := a.sheet(cmd.Context())
			if err != nil {
				return err
			}
			g, err := s.Read(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g == nil {
				_, _ = fmt.Fprintf(out, "No table stored as %q. Run tabula to create one.\n", s.Key())
				return nil
			}

			_, _ = fmt.Fprintf(out, "%s %s\n", formatHeader(s.Key()),
				formatMuted(fmt.Sprintf("(%d columns × %d rows)", g.ColumnCount(), g.RowCount())))
			_, _ = fmt.Fprintln(out, renderTable(g, a.config.UI.Theme, termWidth()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// renderTable draws g as a static table no wider than maxWidth.
func renderTable(g *grid.Grid, themeName string, maxWidth int) string {
	if g.ColumnCount() == 0 {
		return formatMuted("(no columns)")
	}
	t, err := theme.Load(themeName)
	if err != nil {
		t = &theme.Theme{}
	}
	state := view.StaticTable{
		Headers:     g.Headers(),
		Rows:        g.Rows(),
		HeaderStyle: lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color(t.Header)),
		CellStyle:   lipgloss.NewStyle().Padding(0, 1),
		BorderStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Border)),
	}
	out := view.RenderStaticTable(state)
	if maxWidth > 0 && lipgloss.Width(out) > maxWidth {
		state.Width = maxWidth
		out = view.RenderStaticTable(state)
	}
	return out
}
