// Package commands holds the background work of the TUI as tea.Cmds and the
// messages they report back with.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/tabula/internal/grid"
)

// Reader reads the stored grid without attaching it.
type Reader interface {
	Read(ctx context.Context) (*grid.Grid, error)
}

// LoadedMsg carries the stored grid, or nil when nothing is stored.
type LoadedMsg struct {
	Grid *grid.Grid
}

// ErrMsg reports a failed load.
type ErrMsg struct {
	Err error
}

// ExpireStatusMsg asks to clear the status line if it still shows message
// number Seq.
type ExpireStatusMsg struct {
	Seq int
}

// Load reads the stored grid off the update loop.
func Load(ctx context.Context, r Reader) tea.Cmd {
	return func() tea.Msg {
		g, err := r.Read(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return LoadedMsg{Grid: g}
	}
}

// ExpireStatus fires ExpireStatusMsg for seq after d.
func ExpireStatus(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ExpireStatusMsg{Seq: seq}
	})
}
