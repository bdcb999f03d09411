package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) clearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the stored table",
		Long: `Delete the stored table from the snapshot store.

The next start of the editor begins without a table.`,
		Example: `  tabula clear
  tabula clear --table budget --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.sheet(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !yes {
				question := formatWarn(fmt.Sprintf("Delete the table stored as %q?", s.Key()))
				if !promptYesNo(cmd.InOrStdin(), out, question) {
					_, _ = fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			if err := s.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "%s %q\n", formatOK("Cleared"), s.Key())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
