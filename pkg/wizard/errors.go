package wizard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBusy is returned when navigation is attempted while a save is in flight.
	ErrBusy = errors.New("wizard: session is busy")
	// ErrSessionClosed is returned once a session was cancelled or completed.
	ErrSessionClosed = errors.New("wizard: session is closed")
	// ErrLastStep is returned by Next on the final step; hosts call Complete.
	ErrLastStep = errors.New("wizard: already at last step")
	// ErrNotLastStep is returned by Complete before the final step is reached.
	ErrNotLastStep = errors.New("wizard: not at last step")
	// ErrNoSteps is returned when navigating a session without steps.
	ErrNoSteps = errors.New("wizard: session has no steps")
)

// IncompleteStepError reports required fields that are still missing for the
// step identified by StepID.
type IncompleteStepError struct {
	StepID  string
	Missing []string
}

func (e *IncompleteStepError) Error() string {
	return fmt.Sprintf("wizard: step %q is missing required fields: %s", e.StepID, strings.Join(e.Missing, ", "))
}
