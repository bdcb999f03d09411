// Package ui implements the tabula command line.
package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/config"
	"github.com/javiermolinar/tabula/internal/db"
	"github.com/javiermolinar/tabula/internal/logx"
	"github.com/javiermolinar/tabula/internal/sheet"
	"github.com/javiermolinar/tabula/internal/snapshot"
	"github.com/javiermolinar/tabula/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo   snapshot.Repository
	owned  bool // repo was opened here and must be closed
	config *config.Config
	root   *cobra.Command
	debug  bool   // Enable debug logging
	table  string // --table override of the storage key
}

// NewApp creates a new CLI application. A nil repo is opened lazily from
// the configured database path.
func NewApp(repo snapshot.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg}

	a.root = &cobra.Command{
		Use:   "tabula",
		Short: "An editable table in your terminal",
		Long: `Tabula is a terminal table editor.

Build a grid of editable cells, add and remove rows and columns, drag rows
and columns with the mouse to reorder them, and keep the result in a local
snapshot store between sessions.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.RunWithDebug(cmd.Context(), a.repo, a.effectiveConfig(), a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")
	a.root.PersistentFlags().StringVar(&a.table, "table", "", "Storage key of the table (default from config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.clearCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tabula %s (commit: %s)\n", Version, Commit)
		},
	}
}

// effectiveConfig returns the config with command line overrides applied.
func (a *App) effectiveConfig() *config.Config {
	if a.table == "" {
		return a.config
	}
	cfg := *a.config
	cfg.Storage.Key = a.table
	return &cfg
}

// ensureRepo opens the configured database unless a repository was injected.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	a.owned = true
	return nil
}

// sheet opens the selected table, logging through the logger bound to ctx.
func (a *App) sheet(ctx context.Context) (*sheet.Sheet, error) {
	if err := a.ensureRepo(); err != nil {
		return nil, err
	}
	cfg := a.effectiveConfig()
	return sheet.New(a.repo,
		sheet.WithKey(cfg.Storage.Key),
		sheet.WithSize(cfg.Grid.Columns, cfg.Grid.Rows),
		sheet.WithLogger(logx.Ctx(ctx)),
	), nil
}

// SetArgs overrides the command line arguments.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// SetOutput redirects command output.
func (a *App) SetOutput(out io.Writer) {
	a.root.SetOut(out)
	a.root.SetErr(out)
}

// SetInput redirects command input, used by confirmations.
func (a *App) SetInput(in io.Reader) {
	a.root.SetIn(in)
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// Close releases the repository if the app opened it.
func (a *App) Close() error {
	if !a.owned || a.repo == nil {
		return nil
	}
	a.owned = false
	return a.repo.Close()
}
