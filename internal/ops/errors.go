package ops

import (
	"errors"
	"fmt"

	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/register"
)

// Errors returned by Engine operations.
var (
	// ErrStaleCaret indicates the caret was not set against the snapshot the
	// operation read.
	ErrStaleCaret = caret.ErrStalePosition

	// ErrInvalidInput indicates a replace input that is neither a literal
	// nor a line break.
	ErrInvalidInput = errors.New("invalid replace input")

	// ErrUnknownKind indicates an operation kind outside the closed set.
	ErrUnknownKind = register.ErrUnknownKind

	// ErrCountTooLarge indicates a paste whose repeated text would exceed
	// MaxPasteSize.
	ErrCountTooLarge = errors.New("count too large")
)

// MaxPasteSize is the largest text, in bytes, a single paste may insert.
const MaxPasteSize = 1 << 26

// checkPasteSize rejects count copies of size bytes that would not fit in
// MaxPasteSize.
func checkPasteSize(op string, size, count int) error {
	if size > 0 && count > MaxPasteSize/size {
		return opError(op, fmt.Errorf("%w: %d copies of %d bytes", ErrCountTooLarge, count, size))
	}
	return nil
}

func opError(op string, err error) error {
	return fmt.Errorf("ops: %s: %w", op, err)
}
