package favorites

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return store
}

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	queries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("List() = %v, want empty", queries)
	}
}

func TestAddAndList(t *testing.T) {
	store := newTestStore(t)

	added, err := store.Add("London++")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !added {
		t.Error("Add() = false, want true for new query")
	}

	if _, err := store.Add("paris+"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	queries, err := store.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	want := []string{"london++", "paris+"}
	if len(queries) != len(want) {
		t.Fatalf("List() = %v, want %v", queries, want)
	}
	for i := range want {
		if queries[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, queries[i], want[i])
		}
	}
}

func TestAddDuplicate(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("london"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	added, err := store.Add("  LONDON  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if added {
		t.Error("Add() = true, want false for duplicate")
	}

	queries, _ := store.List()
	if len(queries) != 1 {
		t.Errorf("List() = %v, want a single entry", queries)
	}
}

func TestAddEmpty(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Add("   "); err == nil {
		t.Error("Add() expected error for empty query")
	}
}

func TestRemove(t *testing.T) {
	store := newTestStore(t)

	store.Add("london++") //nolint:errcheck
	store.Add("paris")    //nolint:errcheck

	removed, err := store.Remove("london++")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if !removed {
		t.Error("Remove() = false, want true for saved query")
	}

	removed, err = store.Remove("tokyo")
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed {
		t.Error("Remove() = true, want false for unknown query")
	}

	queries, _ := store.List()
	if len(queries) != 1 || queries[0] != "paris" {
		t.Errorf("List() = %v, want [paris]", queries)
	}
}

func TestSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	store.Add("london") //nolint:errcheck

	reopened, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	queries, err := reopened.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(queries) != 1 || queries[0] != "london" {
		t.Errorf("List() = %v, want [london]", queries)
	}
}

func TestListCorruptFile(t *testing.T) {
	dir := t.TempDir()

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.List(); err == nil {
		t.Error("List() expected error for corrupt file")
	}
}
