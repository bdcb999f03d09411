package sheet

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/javiermolinar/tabula/internal/drag"
	"github.com/javiermolinar/tabula/internal/snapshot"
)

func newTestSheet(t *testing.T, opts ...Option) (*Sheet, *snapshot.Memory) {
	t.Helper()
	repo := snapshot.NewMemory()
	return New(repo, opts...), repo
}

func stored(t *testing.T, repo snapshot.Repository, key string) string {
	t.Helper()
	v, ok, err := repo.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("nothing stored under %q", key)
	}
	return v
}

func encoded(t *testing.T, s *Sheet) string {
	t.Helper()
	v, err := snapshot.Encode(snapshot.FromGrid(s.Grid()))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return v
}

func TestOperationsWithoutGridAreNoOps(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"AddRow":       func() error { return s.AddRow(ctx) },
		"RemoveRow":    func() error { return s.RemoveRow(ctx) },
		"AddColumn":    func() error { return s.AddColumn(ctx) },
		"RemoveColumn": func() error { return s.RemoveColumn(ctx) },
		"EditCell":     func() error { return s.EditCell(ctx, 0, 0, "x") },
		"Save":         func() error { return s.Save(ctx) },
	}
	for name, op := range ops {
		if err := op(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if s.HasGrid() {
		t.Fatal("no grid should exist")
	}
	if keys, _ := repo.Keys(ctx); len(keys) != 0 {
		t.Fatalf("nothing should be stored, got %v", keys)
	}
}

func TestCreateSaves(t *testing.T) {
	s, repo := newTestSheet(t)

	if err := s.Create(context.Background()); err != nil {
		t.Fatalf("Create: %v", err)
	}

	want := `{"headers":["Header 1","Header 2","Header 3"],"rows":[["","",""],["","",""],["","",""]]}`
	if got := stored(t, repo, snapshot.DefaultKey); got != want {
		t.Fatalf("stored = %s\nwant %s", got, want)
	}
}

func TestCreateReplacesExisting(t *testing.T) {
	s, _ := newTestSheet(t)
	ctx := context.Background()
	_ = s.Create(ctx)
	_ = s.AddColumn(ctx)
	_ = s.EditCell(ctx, 0, 0, "old")

	if err := s.Create(ctx); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Grid().ColumnCount() != 3 {
		t.Fatalf("columns = %d, want 3", s.Grid().ColumnCount())
	}
	if c, _ := s.Grid().Cell(0, 0); c != "" {
		t.Fatalf("cell kept old content %q", c)
	}
}

func TestWithSizeAndKey(t *testing.T) {
	s, repo := newTestSheet(t, WithSize(2, 5), WithKey("budget"))

	if err := s.Create(context.Background()); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.Grid().ColumnCount() != 2 || s.Grid().RowCount() != 5 {
		t.Fatalf("size = %dx%d", s.Grid().ColumnCount(), s.Grid().RowCount())
	}
	stored(t, repo, "budget")
}

func TestEveryMutationSaves(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()
	_ = s.Create(ctx)

	steps := []struct {
		name string
		op   func() error
	}{
		{name: "add row", op: func() error { return s.AddRow(ctx) }},
		{name: "add column", op: func() error { return s.AddColumn(ctx) }},
		{name: "edit cell", op: func() error { return s.EditCell(ctx, 1, 2, "hello") }},
		{name: "edit header", op: func() error { return s.EditHeader(ctx, 0, "Name") }},
		{name: "remove column", op: func() error { return s.RemoveColumn(ctx) }},
		{name: "remove row", op: func() error { return s.RemoveRow(ctx) }},
	}
	for _, step := range steps {
		if err := step.op(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if got, want := stored(t, repo, snapshot.DefaultKey), encoded(t, s); got != want {
			t.Fatalf("after %s stored = %s\nwant %s", step.name, got, want)
		}
		if err := s.Grid().Validate(); err != nil {
			t.Fatalf("after %s: %v", step.name, err)
		}
	}
}

func TestRemoveOnlyRowIsNoOp(t *testing.T) {
	s, _ := newTestSheet(t, WithSize(3, 1))
	ctx := context.Background()
	_ = s.Create(ctx)

	if err := s.RemoveRow(ctx); err != nil {
		t.Fatalf("RemoveRow: %v", err)
	}
	if s.Grid().RowCount() != 1 {
		t.Fatalf("rows = %d, want 1", s.Grid().RowCount())
	}
}

func TestLoadReproducesStoredSnapshot(t *testing.T) {
	repo := snapshot.NewMemory()
	ctx := context.Background()
	const data = `{"headers":["A","B"],"rows":[["1","2"],["3","4"]]}`
	if err := repo.Put(ctx, snapshot.DefaultKey, data); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s := New(repo)
	found, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("expected a grid")
	}
	if got := encoded(t, s); got != data {
		t.Fatalf("loaded grid encodes to %s, want %s", got, data)
	}

	// Restored cells and rows behave like built ones.
	if err := s.EditCell(ctx, 1, 1, "x"); err != nil {
		t.Fatalf("EditCell: %v", err)
	}
	if !s.StartRowDrag(1) {
		t.Fatal("restored row should be draggable")
	}
	s.EndDrag()
	if !s.StartColumnDrag(1) {
		t.Fatal("restored header should be draggable")
	}
	s.EndDrag()
}

func TestLoadMissing(t *testing.T) {
	s, _ := newTestSheet(t)

	found, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found || s.HasGrid() {
		t.Fatal("no grid should exist without a snapshot")
	}
}

func TestLoadCorrupt(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()
	_ = repo.Put(ctx, snapshot.DefaultKey, "<table><tr><td>x</td></tr></table>")

	_, err := s.Load(ctx)
	if !errors.Is(err, snapshot.ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
	if s.HasGrid() {
		t.Fatal("corrupt snapshot must not attach a grid")
	}
}

func TestRoundTrip(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()

	_ = s.Create(ctx)
	_ = s.EditCell(ctx, 0, 0, "first")
	_ = s.EditCell(ctx, 1, 0, "second")
	_ = s.AddRow(ctx)
	_ = s.AddRow(ctx)
	_ = s.AddColumn(ctx)

	// Row 0 to position 2: drag it below row 2.
	if !s.StartRowDrag(0) {
		t.Fatal("StartRowDrag failed")
	}
	s.DragOverRow(2, 9, drag.Rect{Top: 7, Height: 2})
	if ok, err := s.DropOnRow(ctx, 1); err != nil || !ok {
		t.Fatalf("DropOnRow = %v, %v", ok, err)
	}
	s.EndDrag()

	before := s.Grid()
	if c, _ := before.Cell(2, 0); c != "first" {
		t.Fatalf("row 0 should be at position 2, got %q there", c)
	}

	restored := New(repo)
	if _, err := restored.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(restored.Grid().Headers(), before.Headers()) {
		t.Errorf("headers = %v, want %v", restored.Grid().Headers(), before.Headers())
	}
	if !reflect.DeepEqual(restored.Grid().Rows(), before.Rows()) {
		t.Errorf("rows = %v, want %v", restored.Grid().Rows(), before.Rows())
	}
}

func TestDropOnSelfDoesNotSaveButFlushDoes(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()
	_ = s.Create(ctx)
	_ = s.EditCell(ctx, 2, 0, "moved")
	saved := stored(t, repo, snapshot.DefaultKey)

	s.StartRowDrag(2)
	if !s.DragOverRow(0, 0, drag.Rect{Top: 0, Height: 2}) {
		t.Fatal("expected a live move")
	}
	// The dragged row now sits at index 0, under the pointer.
	if ok, _ := s.DropOnRow(ctx, 0); ok {
		t.Fatal("drop on the dragged row must not save")
	}
	s.EndDrag()

	if got := stored(t, repo, snapshot.DefaultKey); got != saved {
		t.Fatal("store changed without a valid drop")
	}
	if !s.Dirty() {
		t.Fatal("live move should leave the sheet dirty")
	}
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := stored(t, repo, snapshot.DefaultKey); got != encoded(t, s) {
		t.Fatal("Flush should persist the live move")
	}
	if s.Dirty() {
		t.Fatal("Flush should clear the dirty flag")
	}
}

func TestColumnDropSaves(t *testing.T) {
	s, repo := newTestSheet(t, WithSize(4, 1))
	ctx := context.Background()
	_ = s.Create(ctx)

	s.StartColumnDrag(0)
	s.DragOverColumn()
	if ok, err := s.DropOnColumn(ctx, 2); err != nil || !ok {
		t.Fatalf("DropOnColumn = %v, %v", ok, err)
	}
	s.EndDrag()

	want := []string{"Header 2", "Header 3", "Header 1", "Header 4"}
	if got := s.Grid().Headers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("headers = %v, want %v", got, want)
	}
	if got := stored(t, repo, snapshot.DefaultKey); got != encoded(t, s) {
		t.Fatal("column drop should save")
	}
}

func TestMoveRowAndColumnByKeyboard(t *testing.T) {
	s, _ := newTestSheet(t, WithSize(3, 3))
	ctx := context.Background()
	_ = s.Create(ctx)
	for i := 0; i < 3; i++ {
		_ = s.EditCell(ctx, i, 0, string(rune('a'+i)))
	}

	idx, err := s.MoveRow(ctx, 0, 1)
	if err != nil || idx != 1 {
		t.Fatalf("MoveRow down = %d, %v", idx, err)
	}
	idx, err = s.MoveRow(ctx, 2, -1)
	if err != nil || idx != 1 {
		t.Fatalf("MoveRow up = %d, %v", idx, err)
	}
	col0 := func() []string {
		var out []string
		for i := 0; i < s.Grid().RowCount(); i++ {
			c, _ := s.Grid().Cell(i, 0)
			out = append(out, c)
		}
		return out
	}
	if got := col0(); !reflect.DeepEqual(got, []string{"b", "c", "a"}) {
		t.Fatalf("order = %v", got)
	}
	if idx, _ := s.MoveRow(ctx, 0, -1); idx != 0 {
		t.Fatal("moving the first row up should stay put")
	}

	idx, err = s.MoveColumn(ctx, 0, 1)
	if err != nil || idx != 1 {
		t.Fatalf("MoveColumn = %d, %v", idx, err)
	}
	if h, _ := s.Grid().Header(1); h != "Header 1" {
		t.Fatalf("header 1 = %q", h)
	}
	if idx, _ := s.MoveColumn(ctx, 2, 1); idx != 2 {
		t.Fatal("moving the last column right should stay put")
	}
	if s.Drag().Dragging() {
		t.Fatal("keyboard moves must end their drag")
	}
}

func TestClear(t *testing.T) {
	s, repo := newTestSheet(t)
	ctx := context.Background()
	_ = s.Create(ctx)

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if s.HasGrid() {
		t.Fatal("grid should be dropped")
	}
	if _, ok, _ := repo.Get(ctx, snapshot.DefaultKey); ok {
		t.Fatal("snapshot should be deleted")
	}

	reloaded := New(repo)
	if found, _ := reloaded.Load(ctx); found {
		t.Fatal("reload after clear should find nothing")
	}
}

type failingRepo struct{ *snapshot.Memory }

var errDiskFull = errors.New("disk full")

func (failingRepo) Put(context.Context, string, string) error { return errDiskFull }

func TestSaveErrorIsWrapped(t *testing.T) {
	s := New(failingRepo{snapshot.NewMemory()})

	err := s.Create(context.Background())
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("expected wrapped errDiskFull, got %v", err)
	}
}
