// Package sheet binds a grid, its drag controller and a snapshot repository.
// Every structural change, content edit and successful drop is followed by a
// snapshot save.
package sheet

import (
	"context"
	"fmt"

	"pkt.systems/pslog"

	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/grid"
	"github.com/javiermolinar/tabula/internal/logx"
	"github.com/javiermolinar/tabula/internal/snapshot"
)

// Sheet is the editable table and its persistence.
type Sheet struct {
	repo snapshot.Repository
	key  string
	log  pslog.Logger

	initialCols int
	initialRows int

	grid  *grid.Grid // nil until built or loaded
	drag  *drag.Controller
	dirty bool // in-memory grid is ahead of the store
}

// Option configures a Sheet.
type Option func(*Sheet)

// WithKey sets the store key the grid is saved under.
func WithKey(key string) Option {
	return func(s *Sheet) {
		if key != "" {
			s.key = key
		}
	}
}

// WithSize sets the dimensions used by Create.
func WithSize(cols, rows int) Option {
	return func(s *Sheet) {
		if cols > 0 {
			s.initialCols = cols
		}
		if rows > 0 {
			s.initialRows = rows
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log pslog.Logger) Option {
	return func(s *Sheet) {
		if log != nil {
			s.log = log
		}
	}
}

// New returns a sheet with no grid.
func New(repo snapshot.Repository, opts ...Option) *Sheet {
	s := &Sheet{
		repo:        repo,
		key:         snapshot.DefaultKey,
		log:         logx.Discard(),
		initialCols: grid.DefaultColumns,
		initialRows: grid.DefaultRows,
		drag:        drag.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logx.WithTable(s.log, s.key)
	return s
}

// Key returns the store key.
func (s *Sheet) Key() string { return s.key }

// Grid returns the current grid, or nil if none exists.
func (s *Sheet) Grid() *grid.Grid { return s.grid }

// HasGrid reports whether a grid exists.
func (s *Sheet) HasGrid() bool { return s.grid != nil }

// Drag returns the drag controller.
func (s *Sheet) Drag() *drag.Controller { return s.drag }

// Dirty reports whether the grid has changes that were not saved.
func (s *Sheet) Dirty() bool { return s.dirty }

// Attach installs g as the sheet's grid. Built and restored grids both go
// through here, so they behave the same afterwards.
func (s *Sheet) Attach(g *grid.Grid) {
	s.drag.End()
	s.grid = g
	s.dirty = false
}

// Create discards any grid and builds a fresh one.
func (s *Sheet) Create(ctx context.Context) error {
	s.Attach(grid.New(s.initialCols, s.initialRows))
	s.log.Info("grid created", "columns", s.initialCols, "rows", s.initialRows)
	return s.Save(ctx)
}

// AddRow appends a row. Without a grid it does nothing.
func (s *Sheet) AddRow(ctx context.Context) error {
	if s.grid == nil {
		return nil
	}
	s.grid.AddRow()
	return s.Save(ctx)
}

// RemoveRow removes the last row unless it is the only one.
func (s *Sheet) RemoveRow(ctx context.Context) error {
	if s.grid == nil || !s.grid.RemoveRow() {
		return nil
	}
	return s.Save(ctx)
}

// AddColumn appends a column. Without a grid it does nothing.
func (s *Sheet) AddColumn(ctx context.Context) error {
	if s.grid == nil {
		return nil
	}
	s.grid.AddColumn()
	return s.Save(ctx)
}

// RemoveColumn removes the last column, down to zero columns.
func (s *Sheet) RemoveColumn(ctx context.Context) error {
	if s.grid == nil || !s.grid.RemoveColumn() {
		return nil
	}
	return s.Save(ctx)
}

// EditCell replaces the content of a body cell.
func (s *Sheet) EditCell(ctx context.Context, row, col int, text string) error {
	if s.grid == nil || !s.grid.SetCell(row, col, text) {
		return nil
	}
	return s.Save(ctx)
}

// EditHeader replaces the label of a header cell.
func (s *Sheet) EditHeader(ctx context.Context, col int, text string) error {
	if s.grid == nil || !s.grid.SetHeader(col, text) {
		return nil
	}
	return s.Save(ctx)
}

// Save writes the grid to the store. Without a grid it does nothing.
func (s *Sheet) Save(ctx context.Context) error {
	if s.grid == nil {
		return nil
	}
	encoded, err := snapshot.Encode(snapshot.FromGrid(s.grid))
	if err != nil {
		return err
	}
	if err := s.repo.Put(ctx, s.key, encoded); err != nil {
		s.log.Error("snapshot save failed", "err", err)
		return fmt.Errorf("saving table: %w", err)
	}
	s.dirty = false
	s.log.Debug("snapshot saved", "bytes", len(encoded))
	return nil
}

// Flush saves the grid if it has unsaved changes.
func (s *Sheet) Flush(ctx context.Context) error {
	if !s.dirty {
		return nil
	}
	return s.Save(ctx)
}

// Read fetches and decodes the stored grid without attaching it.
// It returns nil when nothing is stored.
func (s *Sheet) Read(ctx context.Context) (*grid.Grid, error) {
	encoded, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}
	if !ok {
		return nil, nil
	}
	snap, err := snapshot.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}
	g, err := snap.Grid()
	if err != nil {
		return nil, fmt.Errorf("loading table: %w", err)
	}
	return g, nil
}

// Load reads the stored grid and attaches it. It reports whether a grid was found.
func (s *Sheet) Load(ctx context.Context) (bool, error) {
	g, err := s.Read(ctx)
	if err != nil {
		s.log.Error("snapshot load failed", "err", err)
		return false, err
	}
	if g == nil {
		s.log.Debug("no snapshot stored")
		return false, nil
	}
	s.Attach(g)
	s.log.Debug("snapshot loaded", "columns", g.ColumnCount(), "rows", g.RowCount())
	return true, nil
}

// Clear deletes the stored grid and drops the in-memory one.
func (s *Sheet) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}
	s.drag.End()
	s.grid = nil
	s.dirty = false
	s.log.Info("snapshot cleared")
	return nil
}
