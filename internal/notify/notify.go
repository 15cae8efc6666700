// ABOUTME: Short-lived status message scheduler with cancel-and-replace timers
// ABOUTME: Only the newest message ever runs its full display lifecycle

package notify

import (
	"sync"
	"time"
)

// Severity styles a notification.
type Severity string

const (
	Error   Severity = "error"
	Success Severity = "success"
)

// Display lifecycle: a message is visible for VisibleFor, then hides over
// Transition, after which its content and styling are cleared.
const (
	VisibleFor = 4000 * time.Millisecond
	Transition = 500 * time.Millisecond
)

// Presenter receives the visibility transitions of a message lifecycle.
type Presenter interface {
	Display(message string, severity Severity)
	BeginHide()
	Clear()
}

// Handle is the pair of cancellable delays behind one shown message.
type Handle struct {
	hide  *time.Timer
	clear *time.Timer
}

// CancelHide stops the pending hide transition.
func (h *Handle) CancelHide() { h.hide.Stop() }

// CancelClear stops the pending content clear.
func (h *Handle) CancelClear() { h.clear.Stop() }

// Cancel stops both pending delays.
func (h *Handle) Cancel() {
	h.hide.Stop()
	h.clear.Stop()
}

// Scheduler owns at most one message lifecycle at a time, process-wide.
type Scheduler struct {
	mu         sync.Mutex
	presenter  Presenter
	visibleFor time.Duration
	transition time.Duration
	active     *Handle
}

// NewScheduler creates a scheduler with the standard display durations.
func NewScheduler(p Presenter) *Scheduler {
	return NewSchedulerWithDurations(p, VisibleFor, Transition)
}

// NewSchedulerWithDurations creates a scheduler with custom durations.
// Tests use this to shrink the timing windows.
func NewSchedulerWithDurations(p Presenter, visibleFor, transition time.Duration) *Scheduler {
	return &Scheduler{
		presenter:  p,
		visibleFor: visibleFor,
		transition: transition,
	}
}

// Show displays a message immediately and schedules its hide and clear
// transitions. Any pending transitions from an earlier message are
// cancelled first: the scheduler replaces, it never queues.
func (s *Scheduler) Show(message string, severity Severity) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		s.active.Cancel()
	}

	s.presenter.Display(message, severity)
	h := &Handle{
		hide:  time.AfterFunc(s.visibleFor, s.presenter.BeginHide),
		clear: time.AfterFunc(s.visibleFor+s.transition, s.presenter.Clear),
	}
	s.active = h
	return h
}
