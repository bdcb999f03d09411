package db

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/javiermolinar/tabula/internal/snapshot"
)

func TestGet_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	value, ok, err := repo.Get(context.Background(), snapshot.DefaultKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected missing key, got %q (ok=%v)", value, ok)
	}
}

func TestPutAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, snapshot.DefaultKey, `{"headers":["A"],"rows":[["1"]]}`); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	value, ok, err := repo.Get(ctx, snapshot.DefaultKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected key to exist")
	}
	if value != `{"headers":["A"],"rows":[["1"]]}` {
		t.Errorf("unexpected value %q", value)
	}
}

func TestPut_Overwrites(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, v := range []string{"first", "second", "third"} {
		if err := repo.Put(ctx, snapshot.DefaultKey, v); err != nil {
			t.Fatalf("Put(%q) failed: %v", v, err)
		}
	}

	value, _, err := repo.Get(ctx, snapshot.DefaultKey)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "third" {
		t.Errorf("expected last write to win, got %q", value)
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 {
		t.Errorf("expected one key, got %v", keys)
	}
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, snapshot.DefaultKey, "value"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := repo.Delete(ctx, snapshot.DefaultKey); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := repo.Get(ctx, snapshot.DefaultKey); ok {
		t.Error("expected key to be deleted")
	}

	// Deleting again is not an error
	if err := repo.Delete(ctx, snapshot.DefaultKey); err != nil {
		t.Fatalf("Delete of missing key failed: %v", err)
	}
}

func TestKeys_Sorted(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, k := range []string{"zeta", "alpha", "mid"} {
		if err := repo.Put(ctx, k, "x"); err != nil {
			t.Fatalf("Put(%q) failed: %v", k, err)
		}
	}

	keys, err := repo.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if !reflect.DeepEqual(keys, []string{"alpha", "mid", "zeta"}) {
		t.Errorf("unexpected keys %v", keys)
	}
}

func TestUpdatedAt(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, ok, err := repo.UpdatedAt(ctx, "missing"); ok || err != nil {
		t.Fatalf("UpdatedAt(missing) = %v, %v", ok, err)
	}

	before := time.Now().Add(-time.Second)
	if err := repo.Put(ctx, snapshot.DefaultKey, "x"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	at, ok, err := repo.UpdatedAt(ctx, snapshot.DefaultKey)
	if err != nil || !ok {
		t.Fatalf("UpdatedAt = %v, %v", ok, err)
	}
	if at.Before(before.Truncate(time.Second)) {
		t.Errorf("updated_at %v is before %v", at, before)
	}
}

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.Put(ctx, snapshot.DefaultKey, "persisted"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	value, ok, err := repo.Get(ctx, snapshot.DefaultKey)
	if err != nil || !ok || value != "persisted" {
		t.Fatalf("Get after reopen = %q, %v, %v", value, ok, err)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "data", "tabula.db")

	repo, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("database file missing: %v", err)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
