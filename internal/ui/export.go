package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/snapshot"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		formatName string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the stored table as JSON, YAML or TOML",
		Long: `Write the stored table to stdout or a file.

Without --format the format follows the extension of --output, and JSON is
used when writing to stdout.`,
		Example: `  tabula export
  tabula export --format yaml
  tabula export -o table.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := exportFormat(formatName, outputPath)
			if err != nil {
				return err
			}

			s, err := a.sheet(cmd.Context())
			if err != nil {
				return err
			}
			g, err := s.Read(cmd.Context())
			if err != nil {
				return err
			}
			if g == nil {
				return fmt.Errorf("no table stored as %q", s.Key())
			}

			var w io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				path, err := resolvePath(outputPath)
				if err != nil {
					return err
				}
				f, err := os.Create(path)
				if err != nil {
					return fmt.Errorf("creating %s: %w", path, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := snapshot.Export(w, snapshot.FromGrid(g), format); err != nil {
				return err
			}
			if outputPath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatOK("Exported"), outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format: json, yaml or toml")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	return cmd
}

// exportFormat picks the format from the flag, then the output extension.
func exportFormat(name, outputPath string) (snapshot.Format, error) {
	if name != "" {
		return snapshot.ParseFormat(name)
	}
	if outputPath != "" {
		return snapshot.FormatFromPath(outputPath)
	}
	return snapshot.FormatJSON, nil
}
