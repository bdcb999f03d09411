package grid

import (
	"reflect"
	"testing"
)

func lettered(t *testing.T) *Grid {
	t.Helper()
	g, err := FromCells(
		[]string{"A", "B", "C", "D"},
		[][]string{
			{"a0", "b0", "c0", "d0"},
			{"a1", "b1", "c1", "d1"},
		},
	)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return g
}

func TestMoveColumn(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantRow  []string
	}{
		{
			name:    "rightward inserts after target",
			from:    0,
			to:      2,
			want:    []string{"B", "C", "A", "D"},
			wantRow: []string{"b0", "c0", "a0", "d0"},
		},
		{
			name:    "leftward inserts before target",
			from:    3,
			to:      1,
			want:    []string{"A", "D", "B", "C"},
			wantRow: []string{"a0", "d0", "b0", "c0"},
		},
		{
			name:    "adjacent swap rightward",
			from:    1,
			to:      2,
			want:    []string{"A", "C", "B", "D"},
			wantRow: []string{"a0", "c0", "b0", "d0"},
		},
		{
			name:    "adjacent swap leftward",
			from:    2,
			to:      1,
			want:    []string{"A", "C", "B", "D"},
			wantRow: []string{"a0", "c0", "b0", "d0"},
		},
		{
			name:    "last to first",
			from:    3,
			to:      0,
			want:    []string{"D", "A", "B", "C"},
			wantRow: []string{"d0", "a0", "b0", "c0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := lettered(t)
			if !g.MoveColumn(tt.from, tt.to) {
				t.Fatal("MoveColumn reported no change")
			}
			if got := g.Headers(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("headers = %v, want %v", got, tt.want)
			}
			if got := g.Cells(0); !reflect.DeepEqual(got, tt.wantRow) {
				t.Errorf("row 0 = %v, want %v", got, tt.wantRow)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestMoveColumnNoOps(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
	}{
		{name: "onto self", from: 1, to: 1},
		{name: "negative source", from: -1, to: 1},
		{name: "target past end", from: 0, to: 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := lettered(t)
			if g.MoveColumn(tt.from, tt.to) {
				t.Fatal("expected no-op")
			}
			if got := g.Headers(); !reflect.DeepEqual(got, []string{"A", "B", "C", "D"}) {
				t.Errorf("headers changed: %v", got)
			}
		})
	}
}

func firstCells(g *Grid) []string {
	var out []string
	for i := 0; i < g.RowCount(); i++ {
		c, _ := g.Cell(i, 0)
		out = append(out, c)
	}
	return out
}

func rowGrid(t *testing.T, labels ...string) *Grid {
	t.Helper()
	rows := make([][]string, len(labels))
	for i, l := range labels {
		rows[i] = []string{l}
	}
	g, err := FromCells([]string{"H"}, rows)
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	return g
}

func TestMoveRow(t *testing.T) {
	tests := []struct {
		name          string
		dragged, onto int
		after         bool
		want          []string
		wantChanged   bool
	}{
		{name: "last before first", dragged: 2, onto: 0, want: []string{"r2", "r0", "r1"}, wantChanged: true},
		{name: "last after first", dragged: 2, onto: 0, after: true, want: []string{"r0", "r2", "r1"}, wantChanged: true},
		{name: "first after last", dragged: 0, onto: 2, after: true, want: []string{"r1", "r2", "r0"}, wantChanged: true},
		{name: "first before second stays", dragged: 0, onto: 1, want: []string{"r0", "r1", "r2"}, wantChanged: false},
		{name: "second after first stays", dragged: 1, onto: 0, after: true, want: []string{"r0", "r1", "r2"}, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := rowGrid(t, "r0", "r1", "r2")
			d, _ := g.RowID(tt.dragged)
			o, _ := g.RowID(tt.onto)

			var changed bool
			if tt.after {
				changed = g.MoveRowAfter(d, o)
			} else {
				changed = g.MoveRowBefore(d, o)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if got := firstCells(g); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveRowKeepsIdentity(t *testing.T) {
	g := rowGrid(t, "r0", "r1", "r2")
	d, _ := g.RowID(0)
	o, _ := g.RowID(2)

	g.MoveRowAfter(d, o)

	if idx, _ := g.RowIndex(d); idx != 2 {
		t.Fatalf("dragged row at %d, want 2", idx)
	}
	if idx, _ := g.RowIndex(o); idx != 1 {
		t.Fatalf("target row at %d, want 1", idx)
	}
}

func TestMoveRowUnknownIDs(t *testing.T) {
	g := rowGrid(t, "r0", "r1")
	d, _ := g.RowID(0)

	if g.MoveRowBefore(d, d) {
		t.Error("moving onto self should be a no-op")
	}
	if g.MoveRowBefore(d, 999) {
		t.Error("unknown target should be a no-op")
	}
	if g.MoveRowAfter(999, d) {
		t.Error("unknown dragged row should be a no-op")
	}
}
