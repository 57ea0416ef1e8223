package dispatcher

import "errors"

// Dispatcher errors.
var (
	// ErrUnknownAction indicates no handler was found for an action.
	ErrUnknownAction = errors.New("dispatcher: unknown action")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")

	// ErrInvalidAction indicates the action is invalid.
	ErrInvalidAction = errors.New("dispatcher: invalid action")
)
