package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/grid"
	"github.com/javiermolinar/tabula/internal/sheet"
	"github.com/javiermolinar/tabula/internal/snapshot"
)

func (a *App) importCmd() *cobra.Command {
	var (
		formatName string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Load a table from a JSON, YAML or TOML file",
		Long: `Load a table from a file into the snapshot store.

The file holds a "headers" list and a "rows" list of lists, the same shape
that 'tabula export' writes. Every row must have one cell per header.

Example:
  tabula import table.yaml
  tabula import --table budget --force budget.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, data, err := readSource(args[0])
			if err != nil {
				return err
			}
			format, err := importFormat(formatName, sourcePath)
			if err != nil {
				return err
			}
			s, err := a.sheet(cmd.Context())
			if err != nil {
				return err
			}
			g, err := importTable(cmd.Context(), s, data, format, force)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %d columns × %d rows from %s as %q\n",
				formatOK("Imported"), g.ColumnCount(), g.RowCount(), filepath.Base(sourcePath), s.Key())
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Input format: json, yaml or toml (default from extension)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing table")
	return cmd
}

func importFormat(name, path string) (snapshot.Format, error) {
	if name != "" {
		return snapshot.ParseFormat(name)
	}
	return snapshot.FormatFromPath(path)
}

// readSource resolves arg and reads the regular file it names.
func readSource(arg string) (string, []byte, error) {
	path, err := resolvePath(arg)
	if err != nil {
		return "", nil, err
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", nil, fmt.Errorf("source file does not exist: %s", path)
	case err != nil:
		return "", nil, fmt.Errorf("checking source file: %w", err)
	case info.IsDir():
		return "", nil, fmt.Errorf("source path is a directory: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return path, data, nil
}

// importTable decodes data and saves it as the sheet's table. An existing
// table is only replaced when force is set.
func importTable(ctx context.Context, s *sheet.Sheet, data []byte, format snapshot.Format, force bool) (*grid.Grid, error) {
	if !force {
		existing, err := s.Read(ctx)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("table %q already exists, use --force to replace it", s.Key())
		}
	}
	snap, err := snapshot.Import(data, format)
	if err != nil {
		return nil, err
	}
	g, err := snap.Grid()
	if err != nil {
		return nil, err
	}
	s.Attach(g)
	if err := s.Save(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// resolvePath trims arg, expands a leading ~/ and makes it absolute.
func resolvePath(arg string) (string, error) {
	path := strings.TrimSpace(arg)
	if path == "" {
		return "", errors.New("empty path")
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	return filepath.Abs(path)
}
