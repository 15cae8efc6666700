// ABOUTME: Single-flight edit lock governing the record lifecycle
// ABOUTME: At most one creation or edit session may be open at a time

package app

import "errors"

// ErrEditInProgress is returned when a session is requested while another
// creation or edit session is already open. The lock is collection-wide,
// not per record.
var ErrEditInProgress = errors.New("editing in progress")

// ErrNoOpenSession is returned when a submit or cancel arrives without a
// matching open session.
var ErrNoOpenSession = errors.New("no open session")

// Phase is the lifecycle state of the coordinator.
type Phase int

const (
	// PhaseIdle means no session is open.
	PhaseIdle Phase = iota
	// PhaseAwaitingCreationInput means a location was chosen and the
	// create form is open.
	PhaseAwaitingCreationInput
	// PhaseEditingRecord means an existing record's edit form is open.
	PhaseEditingRecord
)

// Coordinator is the process-wide edit lock. The zero value is Idle.
type Coordinator struct {
	phase   Phase
	editing string
}

// Phase returns the current lifecycle state.
func (c *Coordinator) Phase() Phase { return c.phase }

// Editing returns the id under edit when the phase is PhaseEditingRecord.
func (c *Coordinator) Editing() (string, bool) {
	if c.phase != PhaseEditingRecord {
		return "", false
	}
	return c.editing, true
}

// BeginCreate opens a creation session. Refused unless Idle.
func (c *Coordinator) BeginCreate() error {
	if c.phase != PhaseIdle {
		return ErrEditInProgress
	}
	c.phase = PhaseAwaitingCreationInput
	return nil
}

// BeginEdit opens an edit session for the given id. Refused unless Idle,
// including when the id is the one already under edit.
func (c *Coordinator) BeginEdit(id string) error {
	if c.phase != PhaseIdle {
		return ErrEditInProgress
	}
	c.phase = PhaseEditingRecord
	c.editing = id
	return nil
}

// End closes any open session and returns to Idle.
func (c *Coordinator) End() {
	c.phase = PhaseIdle
	c.editing = ""
}
