package buffer

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Offset is an absolute character (rune) position within a Snapshot.
type Offset = int

// Point represents a line and column position.
// Both Line and Column are 0-indexed; Column is measured in characters.
type Point struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// ID identifies a buffer across all of its snapshots.
type ID = uuid.UUID

// NewID returns a fresh buffer identity.
func NewID() ID {
	return uuid.New()
}

// RevisionID uniquely identifies a snapshot generation.
// Each applied edit creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
