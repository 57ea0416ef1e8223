package buffer

import "fmt"

// Span represents a character range in a snapshot.
// Start is inclusive, End is exclusive: [Start, End).
type Span struct {
	Start Offset
	End   Offset
}

// NewSpan creates a new Span from start and end offsets.
func NewSpan(start, end Offset) Span {
	return Span{Start: start, End: end}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in characters.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsValid returns true if 0 <= Start <= End.
func (s Span) IsValid() bool {
	return s.Start >= 0 && s.Start <= s.End
}

// Contains returns true if the given offset is within the span.
func (s Span) Contains(offset Offset) bool {
	return offset >= s.Start && offset < s.End
}
