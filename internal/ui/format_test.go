// ABOUTME: Unit tests for terminal formatting
// ABOUTME: Tests workout rendering and relative time output

package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/notify"
)

func init() {
	// Deterministic output regardless of terminal detection.
	color.NoColor = true
}

func mustNew(t *testing.T, variant models.Variant, distance, duration, extra float64) models.Workout {
	t.Helper()
	w, err := models.New(variant, models.Coords{Lat: 41.8781, Lng: -87.6298}, distance, duration, extra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestFormatWorkout_Running(t *testing.T) {
	w := mustNew(t, models.VariantRunning, 5, 25, 150)
	out := FormatWorkout(w)

	for _, want := range []string{w.Common().Description, "5 km", "25 min", "5.0 min/km", "150 spm"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestFormatWorkout_Cycling(t *testing.T) {
	w := mustNew(t, models.VariantCycling, 30, 90, -5)
	out := FormatWorkout(w)

	for _, want := range []string{"20.0 km/h", "-5 m"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestFormatWorkout_Nil(t *testing.T) {
	if out := FormatWorkout(nil); !strings.Contains(out, "no workout") {
		t.Errorf("unexpected nil rendering: %q", out)
	}
}

func TestFormatPopup(t *testing.T) {
	w := mustNew(t, models.VariantRunning, 5, 25, 150)
	out := FormatPopup(w)

	if !strings.Contains(out, w.Common().Description) {
		t.Errorf("expected popup to contain the description, got %q", out)
	}
	if !strings.Contains(out, "41.8781") {
		t.Errorf("expected popup to contain coordinates, got %q", out)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"just now", time.Now(), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5 minutes ago"},
		{"one hour", time.Now().Add(-90 * time.Minute), "1 hour ago"},
		{"days", time.Now().Add(-49 * time.Hour), "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRelativeTime(tt.t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestTerminalPresenter_Display(t *testing.T) {
	var buf bytes.Buffer
	p := &TerminalPresenter{Out: &buf}

	p.Display("Successfully Edited", notify.Success)
	if !strings.Contains(buf.String(), "Successfully Edited") {
		t.Errorf("expected message in output, got %q", buf.String())
	}

	buf.Reset()
	p.Display("Editing in progress...", notify.Error)
	if !strings.Contains(buf.String(), "Editing in progress...") {
		t.Errorf("expected message in output, got %q", buf.String())
	}
}
