// ABOUTME: Workout domain model with Running and Cycling variants
// ABOUTME: Provides the validated factory and derived-metric computation

package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Variant discriminates the workout kinds.
type Variant string

const (
	VariantRunning Variant = "running"
	VariantCycling Variant = "cycling"
)

// Coords is a geographic point in degrees.
type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ValidateCoordinates checks if latitude and longitude are within valid ranges.
func ValidateCoordinates(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return fmt.Errorf("coordinates cannot be NaN")
	}
	if math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return fmt.Errorf("coordinates cannot be infinite")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// ValidationError reports which numeric inputs were rejected.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "inputs have to be positive numbers: " + strings.Join(e.Fields, ", ")
}

// ValidateInputs applies the creation rules for a variant: distance and
// duration must be finite and positive, running cadence must be finite and
// positive, cycling elevation gain need only be finite (it may be zero or
// negative, e.g. a net-downhill ride).
func ValidateInputs(variant Variant, distance, duration, extra float64) error {
	var bad []string
	if !isFinite(distance) || distance <= 0 {
		bad = append(bad, "distance")
	}
	if !isFinite(duration) || duration <= 0 {
		bad = append(bad, "duration")
	}
	switch variant {
	case VariantRunning:
		if !isFinite(extra) || extra <= 0 {
			bad = append(bad, "cadence")
		}
	case VariantCycling:
		if !isFinite(extra) {
			bad = append(bad, "elevation")
		}
	default:
		return fmt.Errorf("unknown workout type %q", variant)
	}
	if len(bad) > 0 {
		return &ValidationError{Fields: bad}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Workout is one logged activity entry. Concrete types are *Running and
// *Cycling; the variant tag decides which extra input and derived metric
// the entry carries.
type Workout interface {
	// Common returns the fields shared by every variant.
	Common() *Base
	Variant() Variant
	// Metric is the derived value: pace (min/km) for running,
	// speed (km/h) for cycling.
	Metric() float64
	// Extra is the raw variant input: cadence or elevation gain.
	Extra() float64
	SetExtra(v float64)
	// Recompute refreshes the derived metric from distance and duration.
	Recompute()
}

// Base holds the fields shared by all workout variants.
type Base struct {
	ID          string
	Coords      Coords
	Distance    float64 // km
	Duration    float64 // min
	CreatedAt   time.Time
	Description string
	Clicks      int
}

// Common implements Workout for the embedding variants.
func (b *Base) Common() *Base { return b }

// Click records one activation of the workout's marker.
func (b *Base) Click() { b.Clicks++ }

// Running is a run with cadence input and derived pace.
type Running struct {
	Base
	Cadence float64 // steps/min
	Pace    float64 // min/km
}

func (r *Running) Variant() Variant   { return VariantRunning }
func (r *Running) Metric() float64    { return r.Pace }
func (r *Running) Extra() float64     { return r.Cadence }
func (r *Running) SetExtra(v float64) { r.Cadence = v }
func (r *Running) Recompute()         { r.Pace = r.Duration / r.Distance }

// Cycling is a ride with elevation-gain input and derived speed.
type Cycling struct {
	Base
	ElevationGain float64 // meters
	Speed         float64 // km/h
}

func (c *Cycling) Variant() Variant   { return VariantCycling }
func (c *Cycling) Metric() float64    { return c.Speed }
func (c *Cycling) Extra() float64     { return c.ElevationGain }
func (c *Cycling) SetExtra(v float64) { c.ElevationGain = v }
func (c *Cycling) Recompute()         { c.Speed = c.Distance / (c.Duration / 60) }

// New creates a validated workout of the given variant with a fresh id,
// computed derived metric and description.
func New(variant Variant, coords Coords, distance, duration, extra float64) (Workout, error) {
	if err := ValidateCoordinates(coords.Lat, coords.Lng); err != nil {
		return nil, err
	}
	if err := ValidateInputs(variant, distance, duration, extra); err != nil {
		return nil, err
	}

	base := Base{
		ID:        uuid.NewString(),
		Coords:    coords,
		Distance:  distance,
		Duration:  duration,
		CreatedAt: time.Now(),
	}
	base.Description = Describe(variant, base.CreatedAt)
	return Restore(variant, base, extra)
}

// Restore rebuilds a concrete workout from persisted fields, keyed by the
// variant tag. The derived metric is recomputed, never trusted from storage.
func Restore(variant Variant, base Base, extra float64) (Workout, error) {
	switch variant {
	case VariantRunning:
		w := &Running{Base: base, Cadence: extra}
		w.Recompute()
		return w, nil
	case VariantCycling:
		w := &Cycling{Base: base, ElevationGain: extra}
		w.Recompute()
		return w, nil
	default:
		return nil, fmt.Errorf("unknown workout type %q", variant)
	}
}

// Describe renders the display title, e.g. "Running on September 1".
func Describe(variant Variant, at time.Time) string {
	name := string(variant)
	name = strings.ToUpper(name[:1]) + name[1:]
	return fmt.Sprintf("%s on %s %d", name, at.Month(), at.Day())
}
