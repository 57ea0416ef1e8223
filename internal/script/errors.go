package script

import "errors"

// Errors returned by script execution.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when a script runs past its timeout.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrActionFailed is raised inside Lua when a dispatched action fails.
	ErrActionFailed = errors.New("action failed")
)
