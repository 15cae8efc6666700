// ABOUTME: Tests for the root command helpers
// ABOUTME: Covers id prefix resolution against the workout log

package main

import (
	"testing"
	"time"

	"github.com/harper/workout/internal/kv"
	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/store"
)

func seedLog(t *testing.T, ids ...string) {
	t.Helper()

	log, err := store.Open(kv.NewMemory())
	if err != nil {
		t.Fatalf("failed to open log: %v", err)
	}

	for _, id := range ids {
		base := models.Base{
			ID:        id,
			Coords:    models.Coords{Lat: 41.88, Lng: -87.63},
			Distance:  5,
			Duration:  25,
			CreatedAt: time.Now(),
		}
		w, err := models.Restore(models.VariantRunning, base, 150)
		if err != nil {
			t.Fatalf("failed to restore workout: %v", err)
		}
		if err := log.Add(w); err != nil {
			t.Fatalf("failed to add workout: %v", err)
		}
	}

	prev := workoutLog
	workoutLog = log
	t.Cleanup(func() { workoutLog = prev })
}

func TestResolveID_FullID(t *testing.T) {
	seedLog(t, "abc123", "def456")

	got, err := resolveID("abc123")
	if err != nil {
		t.Fatalf("resolveID returned error: %v", err)
	}
	if got != "abc123" {
		t.Errorf("resolveID = %q, want %q", got, "abc123")
	}
}

func TestResolveID_UniquePrefix(t *testing.T) {
	seedLog(t, "abc123", "def456")

	got, err := resolveID("def")
	if err != nil {
		t.Fatalf("resolveID returned error: %v", err)
	}
	if got != "def456" {
		t.Errorf("resolveID = %q, want %q", got, "def456")
	}
}

func TestResolveID_Unknown(t *testing.T) {
	seedLog(t, "abc123", "def456")

	if _, err := resolveID("zzz"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestResolveID_AmbiguousPrefix(t *testing.T) {
	seedLog(t, "abc123", "abc789")

	if _, err := resolveID("abc"); err == nil {
		t.Error("expected error for ambiguous prefix")
	}
}

func TestResolveID_FullIDWinsOverPrefix(t *testing.T) {
	seedLog(t, "abc", "abc123")

	got, err := resolveID("abc")
	if err != nil {
		t.Fatalf("resolveID returned error: %v", err)
	}
	if got != "abc" {
		t.Errorf("resolveID = %q, want %q", got, "abc")
	}
}
