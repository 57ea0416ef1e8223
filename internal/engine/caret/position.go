package caret

import (
	"fmt"

	"github.com/dshills/vimops/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Position is a caret location stamped with the snapshot it belongs to.
// Position is an immutable value type.
type Position struct {
	Buffer   buffer.ID
	Revision buffer.RevisionID
	Offset   Offset
	Virtual  int // columns past the end of the last line
}

// At returns a position at offset in snapshot s.
func At(s *buffer.Snapshot, offset Offset) Position {
	return Position{
		Buffer:   s.BufferID(),
		Revision: s.RevisionID(),
		Offset:   offset,
	}
}

// AtPoint returns a position at line/column p in snapshot s.
func AtPoint(s *buffer.Snapshot, p Point) (Position, error) {
	off, err := s.PointToOffset(p)
	if err != nil {
		return Position{}, fmt.Errorf("%w: %s", ErrOffsetOutOfRange, p)
	}
	return At(s, off), nil
}

// MoveTo returns a new position at offset on the same snapshot, without
// virtual columns.
func (p Position) MoveTo(offset Offset) Position {
	p.Offset = offset
	p.Virtual = 0
	return p
}

// MoveBy returns a new position shifted by delta characters.
func (p Position) MoveBy(delta int) Position {
	return p.MoveTo(p.Offset + delta)
}

// WithVirtual returns a copy of p with n virtual columns.
func (p Position) WithVirtual(n int) Position {
	p.Virtual = n
	return p
}

// IsVirtual returns true if the position lies in virtual space.
func (p Position) IsVirtual() bool {
	return p.Virtual > 0
}

// ValidFor returns true if p was computed against snapshot s.
func (p Position) ValidFor(s *buffer.Snapshot) bool {
	return p.Buffer == s.BufferID() && p.Revision == s.RevisionID()
}

// Point returns the line/column of p in snapshot s. Virtual columns are not
// included.
func (p Position) Point(s *buffer.Snapshot) Point {
	return s.OffsetToPoint(p.Offset)
}

// String returns a string representation of the position.
func (p Position) String() string {
	if p.Virtual > 0 {
		return fmt.Sprintf("Position(%d+%d@%d)", p.Offset, p.Virtual, p.Revision)
	}
	return fmt.Sprintf("Position(%d@%d)", p.Offset, p.Revision)
}
