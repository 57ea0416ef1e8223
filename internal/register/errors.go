package register

import "errors"

// Errors returned by register operations.
var (
	// ErrInvalidKey indicates a register key that is not a printable,
	// non-space rune.
	ErrInvalidKey = errors.New("invalid register key")

	// ErrUnknownKind indicates an OperationKind outside the defined set.
	ErrUnknownKind = errors.New("unknown operation kind")

	// ErrClipboard wraps failures of the clipboard provider.
	ErrClipboard = errors.New("clipboard")
)
