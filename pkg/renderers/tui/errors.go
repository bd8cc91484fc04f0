package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrUnknownAction is returned when a prompt driver selects an index that
	// does not map to a menu entry.
	ErrUnknownAction = errors.New("tui: unknown action")
)
