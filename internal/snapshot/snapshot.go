// Package snapshot defines the persisted form of a grid and the store it is
// written to.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/javiermolinar/tabula/internal/grid"
)

// ErrCorrupt is returned when a stored snapshot cannot be decoded into a grid.
var ErrCorrupt = errors.New("corrupt snapshot")

// Snapshot is the full content and order of a grid.
type Snapshot struct {
	Headers []string   `json:"headers" yaml:"headers" toml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows" toml:"rows"`
}

// FromGrid captures the current state of g.
func FromGrid(g *grid.Grid) Snapshot {
	s := Snapshot{
		Headers: g.Headers(),
		Rows:    g.Rows(),
	}
	return s.normalized()
}

// normalized replaces nil slices with empty ones so encodings are stable.
func (s Snapshot) normalized() Snapshot {
	if s.Headers == nil {
		s.Headers = []string{}
	}
	if s.Rows == nil {
		s.Rows = [][]string{}
	}
	for i, r := range s.Rows {
		if r == nil {
			s.Rows[i] = []string{}
		}
	}
	return s
}

// Grid rebuilds a grid from the snapshot.
func (s Snapshot) Grid() (*grid.Grid, error) {
	g, err := grid.FromCells(s.Headers, s.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return g, nil
}

// Encode serializes the snapshot to the stored string form.
func Encode(s Snapshot) (string, error) {
	data, err := json.Marshal(s.normalized())
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored string back into a snapshot.
func Decode(data string) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return s.normalized(), nil
}
