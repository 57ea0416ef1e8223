package buffer

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrSpanInvalid      = errors.New("invalid span")
)

// Buffer holds the current snapshot of a document and replaces it on every
// edit. Snapshots handed out earlier keep their content.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	id         ID
	snap       *Snapshot
	lineEnding LineEnding
	detect     bool
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		id:         NewID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	b.snap = newSnapshot(b.id, b.lineEnding, splitLines(""))
	return b
}

// NewBufferFromString creates a buffer with initial content.
// Line endings are converted to the buffer's style, which is taken from s
// itself under WithDetectedLineEnding.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	if b.detect {
		b.lineEnding = DetectLineEnding(s)
	}
	b.snap = newSnapshot(b.id, b.lineEnding, splitLines(b.lineEnding.Normalize(s)))
	return b
}

// NewBufferFromLines creates a buffer whose lines are joined by the buffer's
// line ending. The last line gets no break.
func NewBufferFromLines(lines []string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	text := strings.Join(lines, "\n")
	b.snap = newSnapshot(b.id, b.lineEnding, splitLines(b.lineEnding.Normalize(text)))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	// Read everything first; a CRLF may be split across reads.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read buffer: %w", err)
	}
	return NewBufferFromString(string(data), opts...), nil
}

// ID returns the buffer's identity.
func (b *Buffer) ID() ID {
	return b.id
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// Snapshot returns the current snapshot.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

// RevisionID returns the revision of the current snapshot.
func (b *Buffer) RevisionID() RevisionID {
	return b.Snapshot().RevisionID()
}

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	return b.Snapshot().Text()
}

// Len returns the length of the buffer in characters.
func (b *Buffer) Len() Offset {
	return b.Snapshot().Len()
}

// IsEmpty returns true if the buffer holds no characters.
func (b *Buffer) IsEmpty() bool {
	return b.Snapshot().IsEmpty()
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return b.Snapshot().LineCount()
}

// Apply applies a single edit and makes the resulting snapshot current.
// Breaks in the inserted text are converted to the buffer's line ending,
// so EditResult.NewText may differ from edit.NewText.
// On error the buffer is left unchanged.
func (b *Buffer) Apply(edit Edit) (EditResult, error) {
	edit.NewText = b.lineEnding.Normalize(edit.NewText)

	b.mu.Lock()
	defer b.mu.Unlock()

	next, res, err := b.snap.Apply(edit)
	if err != nil {
		return EditResult{}, fmt.Errorf("apply %s: %w", edit, err)
	}
	b.snap = next
	return res, nil
}

// Insert inserts text at offset.
func (b *Buffer) Insert(offset Offset, text string) (EditResult, error) {
	return b.Apply(NewInsert(offset, text))
}

// Delete removes the text in [start, end).
func (b *Buffer) Delete(start, end Offset) (EditResult, error) {
	return b.Apply(NewDelete(start, end))
}

// Replace replaces the text in [start, end) with text.
func (b *Buffer) Replace(start, end Offset, text string) (EditResult, error) {
	return b.Apply(NewReplace(start, end, text))
}
