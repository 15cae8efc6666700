// ABOUTME: The ordered, id-indexed workout collection with write-through persistence
// ABOUTME: Every mutation re-serializes the whole collection to the medium

package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/harper/workout/internal/codec"
	"github.com/harper/workout/internal/kv"
	"github.com/harper/workout/internal/models"
)

// Key is the single medium key the collection is persisted under.
const Key = "workouts"

// ErrNotFound is returned when an id is absent from the collection.
var ErrNotFound = errors.New("workout not found")

// ErrBadSortKey is returned for sort keys other than distance or duration.
var ErrBadSortKey = errors.New("unknown sort key")

// Sort keys accepted by SortBy.
const (
	SortByDistance = "distance"
	SortByDuration = "duration"
)

// Log is the workout collection. Entries keep creation order; sorting
// produces a separate presentation view and never touches the backing order.
type Log struct {
	medium   kv.Medium
	workouts []models.Workout
}

// Open loads the collection from the medium. An absent value silently
// starts an empty log. A corrupt value returns a usable empty log together
// with the *codec.DecodeError, and leaves the stored bytes in place until
// the next successful mutation, so the caller can surface the problem
// without destroying the data.
func Open(m kv.Medium) (*Log, error) {
	l := &Log{medium: m}

	raw, err := m.Get(Key)
	if errors.Is(err, kv.ErrNoValue) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load workouts: %w", err)
	}

	workouts, err := codec.Decode(raw)
	if err != nil {
		return l, err
	}
	l.workouts = workouts
	return l, nil
}

// Len reports the number of workouts in the collection.
func (l *Log) Len() int { return len(l.workouts) }

// All returns the workouts in creation order.
func (l *Log) All() []models.Workout {
	out := make([]models.Workout, len(l.workouts))
	copy(out, l.workouts)
	return out
}

// Find returns the workout with the given id, or ErrNotFound.
func (l *Log) Find(id string) (models.Workout, error) {
	for _, w := range l.workouts {
		if w.Common().ID == id {
			return w, nil
		}
	}
	return nil, ErrNotFound
}

// Add appends a workout and persists the collection. If persistence fails
// the workout is not kept, so the log never holds a half-applied mutation.
func (l *Log) Add(w models.Workout) error {
	l.workouts = append(l.workouts, w)
	if err := l.persist(); err != nil {
		l.workouts = l.workouts[:len(l.workouts)-1]
		return err
	}
	return nil
}

// Remove deletes the workout with the given id and persists the collection.
func (l *Log) Remove(id string) error {
	idx := -1
	for i, w := range l.workouts {
		if w.Common().ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	removed := l.workouts[idx]
	l.workouts = append(l.workouts[:idx], l.workouts[idx+1:]...)
	if err := l.persist(); err != nil {
		l.workouts = append(l.workouts[:idx], append([]models.Workout{removed}, l.workouts[idx:]...)...)
		return err
	}
	return nil
}

// RemoveAll clears the collection and persists the empty state. The caller
// is responsible for having confirmed the operation with the user.
func (l *Log) RemoveAll() error {
	old := l.workouts
	l.workouts = nil
	if err := l.persist(); err != nil {
		l.workouts = old
		return err
	}
	return nil
}

// Edit re-validates the inputs under the record's existing variant, applies
// them, recomputes the derived metric, and persists. On validation or
// persistence failure the record is left exactly as it was.
func (l *Log) Edit(id string, distance, duration, extra float64) (models.Workout, error) {
	w, err := l.Find(id)
	if err != nil {
		return nil, err
	}
	if err := models.ValidateInputs(w.Variant(), distance, duration, extra); err != nil {
		return nil, err
	}

	b := w.Common()
	oldDistance, oldDuration, oldExtra := b.Distance, b.Duration, w.Extra()

	b.Distance = distance
	b.Duration = duration
	w.SetExtra(extra)
	w.Recompute()

	if err := l.persist(); err != nil {
		b.Distance = oldDistance
		b.Duration = oldDuration
		w.SetExtra(oldExtra)
		w.Recompute()
		return nil, err
	}
	return w, nil
}

// SortBy returns a presentation ordering by descending distance or duration.
// Ties keep their original relative order. The backing order is untouched
// and nothing is persisted.
func (l *Log) SortBy(key string) ([]models.Workout, error) {
	var value func(models.Workout) float64
	switch key {
	case SortByDistance:
		value = func(w models.Workout) float64 { return w.Common().Distance }
	case SortByDuration:
		value = func(w models.Workout) float64 { return w.Common().Duration }
	default:
		return nil, ErrBadSortKey
	}

	out := l.All()
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i]) > value(out[j])
	})
	return out, nil
}

// Visit increments the click counter of a workout. The count is
// observational and rides along on the next full-collection persist.
func (l *Log) Visit(id string) (models.Workout, error) {
	w, err := l.Find(id)
	if err != nil {
		return nil, err
	}
	w.Common().Click()
	return w, nil
}

func (l *Log) persist() error {
	raw, err := codec.Encode(l.workouts)
	if err != nil {
		return err
	}
	return l.medium.Set(Key, raw)
}
