package wizard

import (
	"sync"

	"github.com/go-logr/logr"
)

// Status describes where a session is in its lifecycle.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// SessionOption customises a Session.
type SessionOption func(*Session)

// WithLogger routes transition logs to logger. Sessions log nothing by default.
func WithLogger(logger logr.Logger) SessionOption {
	return func(s *Session) {
		s.log = logger
	}
}

// WithStartIndex positions a new session on index instead of the first step.
// Indexes outside the step list are clamped.
func WithStartIndex(index int) SessionOption {
	return func(s *Session) {
		s.index = index
	}
}

// Session tracks the mutable position of a wizard. The step list is copied on
// construction and never changes afterwards. Session is safe for concurrent
// use so a host can toggle the busy flag from a save goroutine.
type Session struct {
	mu     sync.Mutex
	steps  []Step
	index  int
	busy   bool
	status Status
	log    logr.Logger
}

// NewSession starts a session on the first step of steps.
func NewSession(steps []Step, opts ...SessionOption) *Session {
	s := &Session{
		steps:  cloneSteps(steps),
		status: StatusActive,
		log:    logr.Discard(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.index = clampIndex(s.index, len(s.steps))
	return s
}

// Steps returns a copy of the session's step list.
func (s *Session) Steps() []Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSteps(s.steps)
}

// Index returns the 0-based current step index.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Current returns the current step, or false when the session has no steps.
func (s *Session) Current() (Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.steps) == 0 {
		return Step{}, false
	}
	return s.steps[s.index], true
}

// Busy reports whether navigation is currently gated.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Status reports the lifecycle status.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetBusy toggles the saving flag.
func (s *Session) SetBusy(busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy == busy {
		return
	}
	s.busy = busy
	s.log.V(1).Info("busy changed", "busy", busy, "index", s.index)
}

// Back moves to the previous step. On the first step it is a no-op.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.navigableLocked(); err != nil {
		return err
	}
	if s.index == 0 {
		return nil
	}
	s.index--
	s.log.V(1).Info("moved back", "index", s.index, "step", s.steps[s.index].ID)
	return nil
}

// Next validates the current step against values and advances. On the last
// step it returns ErrLastStep without moving.
func (s *Session) Next(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.navigableLocked(); err != nil {
		return err
	}
	if err := s.validateLocked(values); err != nil {
		return err
	}
	if s.index >= len(s.steps)-1 {
		return ErrLastStep
	}
	s.index++
	s.log.V(1).Info("moved next", "index", s.index, "step", s.steps[s.index].ID)
	return nil
}

// Cancel closes the session without completing it.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != StatusActive {
		return ErrSessionClosed
	}
	if s.busy {
		return ErrBusy
	}
	s.status = StatusCancelled
	s.log.Info("wizard cancelled", "index", s.index)
	return nil
}

// Complete validates the final step and closes the session. It must be called
// on the last step.
func (s *Session) Complete(values map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.navigableLocked(); err != nil {
		return err
	}
	if s.index < len(s.steps)-1 {
		return ErrNotLastStep
	}
	if err := s.validateLocked(values); err != nil {
		return err
	}
	s.status = StatusCompleted
	s.log.Info("wizard completed", "steps", len(s.steps))
	return nil
}

// Input builds the tracker input for the session's current position. The step
// list is a copy. Nil callbacks suppress the matching control.
func (s *Session) Input(title string, onBack, onCancel func()) Input {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Input{
		Title:        title,
		Steps:        cloneSteps(s.steps),
		CurrentIndex: s.index,
		Busy:         s.busy,
		OnBack:       onBack,
		OnCancel:     onCancel,
	}
}

// State is shorthand for Track(s.Input(title, onBack, onCancel)).
func (s *Session) State(title string, onBack, onCancel func()) State {
	return Track(s.Input(title, onBack, onCancel))
}

func (s *Session) navigableLocked() error {
	if s.status != StatusActive {
		return ErrSessionClosed
	}
	if s.busy {
		return ErrBusy
	}
	if len(s.steps) == 0 {
		return ErrNoSteps
	}
	return nil
}

func (s *Session) validateLocked(values map[string]any) error {
	step := s.steps[s.index]
	if missing := step.Missing(values); len(missing) > 0 {
		return &IncompleteStepError{StepID: step.ID, Missing: missing}
	}
	return nil
}

func clampIndex(index, total int) int {
	if total == 0 || index < 0 {
		return 0
	}
	if index >= total {
		return total - 1
	}
	return index
}
