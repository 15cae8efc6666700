// ABOUTME: The workout app event surface tying the log, edit lock, and notifier
// ABOUTME: UI events arrive here; failures flow out as notifications

package app

import (
	"errors"
	"fmt"

	"github.com/harper/workout/internal/models"
	"github.com/harper/workout/internal/notify"
	"github.com/harper/workout/internal/store"
)

// User-facing notification texts.
const (
	MsgInvalidInputs  = "Inputs have to be positive numbers"
	MsgEditInProgress = "Editing in progress..."
	MsgEdited         = "Successfully Edited"
	MsgBadSortKey     = "Pick a valid sorting option"
	MsgNoPosition     = "Could not get your position"

	// PromptDeleteAll is the confirmation shown before a bulk delete.
	PromptDeleteAll = "Are you sure you want to delete all workouts?"
)

// Resolver supplies a geographic coordinate once, on demand. It may fail
// (denial or unavailability) and is never retried at this layer.
type Resolver interface {
	Resolve() (models.Coords, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() (models.Coords, error)

func (f ResolverFunc) Resolve() (models.Coords, error) { return f() }

// ConfirmFunc is a blocking yes/no prompt used before destructive bulk
// operations.
type ConfirmFunc func(prompt string) bool

// App processes the UI event surface. Mutations run to completion,
// including persistence, before the next event is handled.
type App struct {
	log      *store.Log
	notifier *notify.Scheduler
	sessions Coordinator
	resolver Resolver
	confirm  ConfirmFunc
	pending  *models.Coords
}

// New wires an app around an opened log.
func New(log *store.Log, notifier *notify.Scheduler, resolver Resolver, confirm ConfirmFunc) *App {
	return &App{
		log:      log,
		notifier: notifier,
		resolver: resolver,
		confirm:  confirm,
	}
}

// SetConfirm replaces the confirmation prompt. Callers use it to bypass the
// prompt when the user pre-confirmed (for example via a --confirm flag).
func (a *App) SetConfirm(confirm ConfirmFunc) {
	a.confirm = confirm
}

// Log exposes the underlying collection for read-side callers.
func (a *App) Log() *store.Log { return a.log }

// Sessions exposes the edit lock state for read-side callers.
func (a *App) Sessions() *Coordinator { return &a.sessions }

// ResolveLocation asks the positioning resolver for a coordinate. A failure
// is reported once via the notifier and returned; there is no retry.
func (a *App) ResolveLocation() (models.Coords, error) {
	coords, err := a.resolver.Resolve()
	if err != nil {
		a.notifier.Show(MsgNoPosition, notify.Error)
		return models.Coords{}, fmt.Errorf("resolve location: %w", err)
	}
	return coords, nil
}

// SelectLocation handles the location-selected event: it opens a creation
// session anchored at coords. Refused while any session is open.
func (a *App) SelectLocation(coords models.Coords) error {
	if err := a.sessions.BeginCreate(); err != nil {
		a.notifier.Show(MsgEditInProgress, notify.Error)
		return err
	}
	a.pending = &coords
	return nil
}

// SubmitCreate handles the create-submitted event. The creation session
// closes whether the inputs validate or not; only success mutates the log.
func (a *App) SubmitCreate(variant models.Variant, distance, duration, extra float64) (models.Workout, error) {
	if a.sessions.Phase() != PhaseAwaitingCreationInput || a.pending == nil {
		return nil, ErrNoOpenSession
	}
	coords := *a.pending
	a.pending = nil
	a.sessions.End()

	w, err := models.New(variant, coords, distance, duration, extra)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			a.notifier.Show(MsgInvalidInputs, notify.Error)
		}
		return nil, err
	}

	if err := a.log.Add(w); err != nil {
		return nil, err
	}
	return w, nil
}

// CancelCreate closes an open creation session without mutating anything.
func (a *App) CancelCreate() {
	if a.sessions.Phase() == PhaseAwaitingCreationInput {
		a.pending = nil
		a.sessions.End()
	}
}

// RequestEdit handles the edit-requested event: it opens an edit session
// for id. Refused while any session is open, anywhere in the collection.
func (a *App) RequestEdit(id string) error {
	if _, err := a.log.Find(id); err != nil {
		return err
	}
	if err := a.sessions.BeginEdit(id); err != nil {
		a.notifier.Show(MsgEditInProgress, notify.Error)
		return err
	}
	return nil
}

// SubmitEdit handles the edit-submitted event. Invalid inputs are reported
// and leave both the record and the session untouched; the form stays open
// for correction. A valid edit commits, closes the session, and reports
// success.
func (a *App) SubmitEdit(id string, distance, duration, extra float64) (models.Workout, error) {
	editing, ok := a.sessions.Editing()
	if !ok || editing != id {
		return nil, ErrNoOpenSession
	}

	w, err := a.log.Edit(id, distance, duration, extra)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			a.notifier.Show(MsgInvalidInputs, notify.Error)
		}
		return nil, err
	}

	a.sessions.End()
	a.notifier.Show(MsgEdited, notify.Success)
	return w, nil
}

// CancelEdit handles the edit-cancelled event: the session closes, the
// record is untouched.
func (a *App) CancelEdit(id string) error {
	editing, ok := a.sessions.Editing()
	if !ok || editing != id {
		return ErrNoOpenSession
	}
	a.sessions.End()
	return nil
}

// Delete removes a single workout.
func (a *App) Delete(id string) error {
	return a.log.Remove(id)
}

// DeleteAll clears the collection after the blocking confirmation prompt.
// It reports whether the deletion actually happened.
func (a *App) DeleteAll() (bool, error) {
	if !a.confirm(PromptDeleteAll) {
		return false, nil
	}
	if err := a.log.RemoveAll(); err != nil {
		return false, err
	}
	return true, nil
}

// Sort handles the sort-requested event and returns the presentation
// ordering. An empty or unknown key is reported via the notifier.
func (a *App) Sort(key string) ([]models.Workout, error) {
	sorted, err := a.log.SortBy(key)
	if err != nil {
		a.notifier.Show(MsgBadSortKey, notify.Error)
		return nil, err
	}
	return sorted, nil
}

// Visit handles the record-activated event: the workout's click counter is
// incremented and the workout returned for the renderer.
func (a *App) Visit(id string) (models.Workout, error) {
	return a.log.Visit(id)
}
