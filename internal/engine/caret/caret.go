package caret

import (
	"fmt"
	"sync"

	"github.com/dshills/vimops/internal/engine/buffer"
)

// Source provides the current snapshot a caret is validated against.
// *buffer.Buffer satisfies it.
type Source interface {
	Snapshot() *buffer.Snapshot
}

// Caret is the editing position of one buffer.
// All methods are thread-safe.
type Caret struct {
	mu  sync.RWMutex
	src Source
	pos Position
}

// New creates a caret at offset 0 of src's current snapshot.
func New(src Source) *Caret {
	return &Caret{
		src: src,
		pos: At(src.Snapshot(), 0),
	}
}

// Position returns the caret position as last set.
func (c *Caret) Position() Position {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pos
}

// Set moves the caret to pos. The position must belong to the current
// snapshot and must not point inside a line break. Virtual columns are
// accepted only when allowVirtualSpace is true and pos is at the end of the
// last line. On error the caret is unchanged.
func (c *Caret) Set(pos Position, allowVirtualSpace bool) error {
	snap := c.src.Snapshot()

	if !pos.ValidFor(snap) {
		return fmt.Errorf("%w: %s, current revision %d", ErrStalePosition, pos, snap.RevisionID())
	}
	if pos.Offset < 0 || pos.Offset > snap.Len() {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrOffsetOutOfRange, pos.Offset, snap.Len())
	}

	pt := snap.OffsetToPoint(pos.Offset)
	if pt.Column > snap.LineLen(pt.Line) {
		return fmt.Errorf("%w: %d is inside a line break", ErrOffsetOutOfRange, pos.Offset)
	}

	switch {
	case pos.Virtual < 0:
		return fmt.Errorf("%w: negative virtual columns", ErrVirtualSpace)
	case pos.Virtual > 0 && !allowVirtualSpace:
		return ErrVirtualSpace
	case pos.Virtual > 0 && pos.Offset != snap.Len():
		return fmt.Errorf("%w: only at the end of the last line", ErrVirtualSpace)
	}

	c.mu.Lock()
	c.pos = pos
	c.mu.Unlock()
	return nil
}

// MoveTo moves the caret to offset in the current snapshot.
func (c *Caret) MoveTo(offset Offset) error {
	return c.Set(At(c.src.Snapshot(), offset), false)
}

// SetPoint moves the caret to line/column p in the current snapshot.
func (c *Caret) SetPoint(p Point) error {
	pos, err := AtPoint(c.src.Snapshot(), p)
	if err != nil {
		return err
	}
	return c.Set(pos, false)
}

// Point returns the caret's line/column in the current snapshot.
func (c *Caret) Point() Point {
	return c.Position().Point(c.src.Snapshot())
}

// IsStale returns true if the caret was set against an older snapshot.
func (c *Caret) IsStale() bool {
	return !c.Position().ValidFor(c.src.Snapshot())
}
