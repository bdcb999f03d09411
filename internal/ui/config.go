package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/config"
	"github.com/javiermolinar/tabula/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  tabula config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(cmd.InOrStdin(), cmd.OutOrStdout(), config.DefaultConfigPath())
		},
	}
}

func runConfigInteractive(in io.Reader, out io.Writer, configPath string) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	// One reader for the whole session so buffered answers are not lost.
	reader := bufio.NewReader(in)

	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Storage.DBPath = promptValue(reader, out, "Database path", cfg.Storage.DBPath)
	cfg.Storage.Key = promptValue(reader, out, "Table key", cfg.Storage.Key)
	cfg.Grid.Columns = promptInt(reader, out, "Columns of a new table", cfg.Grid.Columns)
	cfg.Grid.Rows = promptInt(reader, out, "Rows of a new table", cfg.Grid.Rows)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)
	cfg.UI.ColWidth = promptInt(reader, out, fmt.Sprintf("Column width (%d-%d)", config.MinColWidth, config.MaxColWidth), cfg.UI.ColWidth)
	cfg.UI.RowLines = promptInt(reader, out, fmt.Sprintf("Lines per row (%d-%d)", config.MinRowLines, config.MaxRowLines), cfg.UI.RowLines)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, "Current configuration:")
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[storage]")
	_, _ = fmt.Fprintf(out, "  db_path   = %s\n", cfg.Storage.DBPath)
	_, _ = fmt.Fprintf(out, "  key       = %s\n", cfg.Storage.Key)
	_, _ = fmt.Fprintln(out, "\n[grid]")
	_, _ = fmt.Fprintf(out, "  columns   = %d\n", cfg.Grid.Columns)
	_, _ = fmt.Fprintf(out, "  rows      = %d\n", cfg.Grid.Rows)
	_, _ = fmt.Fprintln(out, "\n[ui]")
	_, _ = fmt.Fprintf(out, "  theme     = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(out, "  col_width = %d\n", cfg.UI.ColWidth)
	_, _ = fmt.Fprintf(out, "  row_lines = %d\n", cfg.UI.RowLines)
}

// lineReader reads answers one line at a time.
type lineReader interface {
	ReadString(delim byte) (string, error)
}

func asLineReader(in io.Reader) lineReader {
	if r, ok := in.(lineReader); ok {
		return r
	}
	return bufio.NewReader(in)
}

func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := asLineReader(in).ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader lineReader, out io.Writer, label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader lineReader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(reader lineReader, out io.Writer, current string) string {
	options := strings.Join(theme.Names(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.Exists(value) {
			return value
		}
		_, _ = fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
}
