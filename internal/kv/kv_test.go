// ABOUTME: Unit tests for the key-value medium backends
// ABOUTME: Runs the same contract against memory, badger, and sqlite

package kv

import (
	"errors"
	"path/filepath"
	"testing"
)

func testMediumContract(t *testing.T, m Medium) {
	t.Helper()

	if _, err := m.Get("workouts"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("expected ErrNoValue for missing key, got %v", err)
	}

	if err := m.Set("workouts", `[{"id":"a"}]`); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := m.Get("workouts")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != `[{"id":"a"}]` {
		t.Errorf("expected stored value back, got %q", got)
	}

	// Overwrite, not append
	if err := m.Set("workouts", "[]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err = m.Get("workouts")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "[]" {
		t.Errorf("expected overwritten value, got %q", got)
	}

	if err := m.Delete("workouts"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := m.Get("workouts"); !errors.Is(err, ErrNoValue) {
		t.Errorf("expected ErrNoValue after delete, got %v", err)
	}

	// Deleting an absent key is not an error
	if err := m.Delete("workouts"); err != nil {
		t.Errorf("delete of absent key failed: %v", err)
	}
}

func TestMemoryMedium(t *testing.T) {
	m := NewMemory()
	defer func() { _ = m.Close() }()
	testMediumContract(t, m)
}

func TestBadgerMedium(t *testing.T) {
	m, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	defer func() { _ = m.Close() }()
	testMediumContract(t, m)
}

func TestSQLiteMedium(t *testing.T) {
	m, err := OpenSQLite(filepath.Join(t.TempDir(), "workout.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() { _ = m.Close() }()
	testMediumContract(t, m)
}

func TestSQLiteMedium_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workout.db")

	m, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := m.Set("workouts", "[1,2,3]"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	m, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen sqlite: %v", err)
	}
	defer func() { _ = m.Close() }()

	got, err := m.Get("workouts")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != "[1,2,3]" {
		t.Errorf("expected value to survive reopen, got %q", got)
	}
}
