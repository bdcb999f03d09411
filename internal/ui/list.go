package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/tabula/internal/snapshot"
)

// updateTimes is implemented by stores that track when a key was written.
type updateTimes interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
}

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored tables",
		Long: `List every table in the snapshot store with its size.

The table selected by --table (or the config) is marked with *.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			keys, err := a.repo.Keys(ctx)
			if err != nil {
				return fmt.Errorf("listing tables: %w", err)
			}
			if len(keys) == 0 {
				_, _ = fmt.Fprintln(out, "No tables stored.")
				return nil
			}

			current := a.effectiveConfig().Storage.Key
			for _, key := range keys {
				marker := " "
				if key == current {
					marker = "*"
				}
				_, _ = fmt.Fprintf(out, "%s %s %s\n", marker, formatHeader(key), formatMuted(a.describe(ctx, key)))
			}
			return nil
		},
	}
}

// describe summarizes the table stored under key.
func (a *App) describe(ctx context.Context, key string) string {
	encoded, ok, err := a.repo.Get(ctx, key)
	if err != nil || !ok {
		return "(unreadable)"
	}
	snap, err := snapshot.Decode(encoded)
	if err != nil {
		return "(corrupt)"
	}
	desc := fmt.Sprintf("%d columns × %d rows", len(snap.Headers), len(snap.Rows))
	if times, ok := a.repo.(updateTimes); ok {
		if at, found, err := times.UpdatedAt(ctx, key); err == nil && found {
			desc += ", saved " + at.Local().Format("2006-01-02 15:04")
		}
	}
	return desc
}
