// ABOUTME: JSON codec for the persisted workout collection
// ABOUTME: Rebuilds concrete variants from the type tag on decode

package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/workout/internal/models"
)

// DecodeError wraps any failure to parse a persisted collection, so callers
// can tell a corrupt store apart from an absent one.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return "decode workout log: " + e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

// envelope is the persisted layout of one workout. Exactly one of the
// cadence/pace or elevationGain/speed pairs is present, matching the tag.
type envelope struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Coords        [2]float64 `json:"coords"` // [lat, lng]
	Distance      float64    `json:"distance"`
	Duration      float64    `json:"duration"`
	CreatedAt     time.Time  `json:"createdAt"`
	Clicks        int        `json:"clicks"`
	Description   string     `json:"description"`
	Cadence       *float64   `json:"cadence,omitempty"`
	Pace          *float64   `json:"pace,omitempty"`
	ElevationGain *float64   `json:"elevationGain,omitempty"`
	Speed         *float64   `json:"speed,omitempty"`
}

// Encode serializes the full collection to a single JSON array string.
// All fields round-trip losslessly, including clicks and the derived metric.
func Encode(workouts []models.Workout) (string, error) {
	envs := make([]envelope, 0, len(workouts))
	for _, w := range workouts {
		b := w.Common()
		env := envelope{
			ID:          b.ID,
			Type:        string(w.Variant()),
			Coords:      [2]float64{b.Coords.Lat, b.Coords.Lng},
			Distance:    b.Distance,
			Duration:    b.Duration,
			CreatedAt:   b.CreatedAt,
			Clicks:      b.Clicks,
			Description: b.Description,
		}
		extra := w.Extra()
		metric := w.Metric()
		switch w.Variant() {
		case models.VariantRunning:
			env.Cadence = &extra
			env.Pace = &metric
		case models.VariantCycling:
			env.ElevationGain = &extra
			env.Speed = &metric
		default:
			return "", fmt.Errorf("encode workout %s: unknown type %q", b.ID, w.Variant())
		}
		envs = append(envs, env)
	}

	data, err := json.Marshal(envs)
	if err != nil {
		return "", fmt.Errorf("encode workout log: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted collection and reconstructs each entry as its
// concrete variant, reattaching derived-metric behavior. The metric is
// recomputed from distance and duration rather than copied from storage.
func Decode(data string) ([]models.Workout, error) {
	var envs []envelope
	if err := json.Unmarshal([]byte(data), &envs); err != nil {
		return nil, &DecodeError{Err: err}
	}

	workouts := make([]models.Workout, 0, len(envs))
	for i, env := range envs {
		base := models.Base{
			ID:          env.ID,
			Coords:      models.Coords{Lat: env.Coords[0], Lng: env.Coords[1]},
			Distance:    env.Distance,
			Duration:    env.Duration,
			CreatedAt:   env.CreatedAt,
			Description: env.Description,
			Clicks:      env.Clicks,
		}

		var extra *float64
		switch models.Variant(env.Type) {
		case models.VariantRunning:
			extra = env.Cadence
		case models.VariantCycling:
			extra = env.ElevationGain
		default:
			return nil, &DecodeError{Err: fmt.Errorf("entry %d: unknown type %q", i, env.Type)}
		}
		if extra == nil {
			return nil, &DecodeError{Err: fmt.Errorf("entry %d: missing %s field", i, extraField(env.Type))}
		}

		w, err := models.Restore(models.Variant(env.Type), base, *extra)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("entry %d: %w", i, err)}
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func extraField(typ string) string {
	if typ == string(models.VariantRunning) {
		return "cadence"
	}
	return "elevationGain"
}
