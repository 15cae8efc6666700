// ABOUTME: Unit tests for the workout collection codec
// ABOUTME: Tests round-trip fidelity, tag reconstruction, and corrupt input

package codec

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/harper/workout/internal/models"
)

func mustNew(t *testing.T, variant models.Variant, distance, duration, extra float64) models.Workout {
	t.Helper()
	w, err := models.New(variant, models.Coords{Lat: 41.8781, Lng: -87.6298}, distance, duration, extra)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return w
}

func TestRoundTrip(t *testing.T) {
	run := mustNew(t, models.VariantRunning, 5, 25, 150)
	ride := mustNew(t, models.VariantCycling, 30, 90, -5)
	run.Common().Click()
	run.Common().Click()

	data, err := Encode([]models.Workout{run, ride})
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(decoded))
	}

	got := decoded[0]
	if _, ok := got.(*models.Running); !ok {
		t.Fatalf("expected *Running, got %T", got)
	}
	if got.Common().ID != run.Common().ID {
		t.Errorf("id mismatch: %s != %s", got.Common().ID, run.Common().ID)
	}
	if got.Common().Clicks != 2 {
		t.Errorf("expected 2 clicks, got %d", got.Common().Clicks)
	}
	if got.Common().Description != run.Common().Description {
		t.Errorf("description mismatch: %q", got.Common().Description)
	}
	if got.Extra() != 150 {
		t.Errorf("expected cadence 150, got %f", got.Extra())
	}
	if got.Metric() != 5.0 {
		t.Errorf("expected pace 5.0, got %f", got.Metric())
	}
	if !got.Common().CreatedAt.Equal(run.Common().CreatedAt) {
		t.Errorf("createdAt mismatch: %v != %v", got.Common().CreatedAt, run.Common().CreatedAt)
	}

	gotRide := decoded[1]
	if _, ok := gotRide.(*models.Cycling); !ok {
		t.Fatalf("expected *Cycling, got %T", gotRide)
	}
	if gotRide.Extra() != -5 {
		t.Errorf("expected elevation gain -5, got %f", gotRide.Extra())
	}
	if gotRide.Metric() != 20.0 {
		t.Errorf("expected speed 20.0, got %f", gotRide.Metric())
	}
}

func TestRoundTrip_RandomWorkouts(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	var workouts []models.Workout
	for i := 0; i < 50; i++ {
		distance := 1 + rng.Float64()*99
		duration := 1 + rng.Float64()*300
		if rng.Intn(2) == 0 {
			workouts = append(workouts, mustNew(t, models.VariantRunning, distance, duration, 1+rng.Float64()*200))
		} else {
			workouts = append(workouts, mustNew(t, models.VariantCycling, distance, duration, rng.Float64()*2000-500))
		}
	}

	data, err := Encode(workouts)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	for i, got := range decoded {
		want := workouts[i]
		if got.Common().ID != want.Common().ID {
			t.Fatalf("workout %d: id mismatch", i)
		}
		if got.Variant() != want.Variant() {
			t.Fatalf("workout %d: variant mismatch", i)
		}
		if got.Common().Distance != want.Common().Distance {
			t.Fatalf("workout %d: distance mismatch", i)
		}
		if got.Common().Duration != want.Common().Duration {
			t.Fatalf("workout %d: duration mismatch", i)
		}
		if got.Extra() != want.Extra() {
			t.Fatalf("workout %d: extra mismatch", i)
		}
		if got.Metric() != want.Metric() {
			t.Fatalf("workout %d: derived metric mismatch: %f != %f", i, got.Metric(), want.Metric())
		}
	}
}

func TestDecode_MetricIsRecomputedNotCopied(t *testing.T) {
	// A tampered pace must not survive the decode.
	created := time.Now().Format(time.RFC3339Nano)
	data := `[{"id":"abc","type":"running","coords":[10,10],"distance":5,"duration":25,` +
		`"createdAt":"` + created + `","clicks":0,"description":"Running on May 1",` +
		`"cadence":150,"pace":99}]`

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded[0].Metric() != 5.0 {
		t.Errorf("expected recomputed pace 5.0, got %f", decoded[0].Metric())
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	decoded, err := Decode("[]")
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(decoded) != 0 {
		t.Errorf("expected empty collection, got %d entries", len(decoded))
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, data := range []string{"", "{", "not json", `{"id":"x"}`} {
		_, err := Decode(data)
		var derr *DecodeError
		if !errors.As(err, &derr) {
			t.Errorf("Decode(%q): expected *DecodeError, got %v", data, err)
		}
	}
}

func TestDecode_UnknownTag(t *testing.T) {
	data := `[{"id":"abc","type":"swimming","coords":[0,0],"distance":5,"duration":25,` +
		`"createdAt":"2026-01-01T00:00:00Z","clicks":0,"description":"x","cadence":150}]`

	_, err := Decode(data)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "swimming") {
		t.Errorf("expected error to name the unknown tag, got %q", err.Error())
	}
}

func TestDecode_MissingVariantField(t *testing.T) {
	data := `[{"id":"abc","type":"running","coords":[0,0],"distance":5,"duration":25,` +
		`"createdAt":"2026-01-01T00:00:00Z","clicks":0,"description":"x"}]`

	_, err := Decode(data)
	var derr *DecodeError
	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
	if !strings.Contains(err.Error(), "cadence") {
		t.Errorf("expected error to name the missing field, got %q", err.Error())
	}
}

func TestEncode_Empty(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	if data != "[]" {
		t.Errorf("expected empty JSON array, got %q", data)
	}
}
