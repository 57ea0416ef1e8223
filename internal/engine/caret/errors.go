package caret

import "errors"

// Errors returned by Caret.Set.
var (
	// ErrStalePosition indicates the position was computed against another
	// buffer or an older revision.
	ErrStalePosition = errors.New("stale caret position")

	// ErrVirtualSpace indicates virtual columns where they are not allowed.
	ErrVirtualSpace = errors.New("virtual space not allowed")

	// ErrOffsetOutOfRange indicates an offset outside the snapshot or inside
	// a line break.
	ErrOffsetOutOfRange = errors.New("caret offset out of range")
)
