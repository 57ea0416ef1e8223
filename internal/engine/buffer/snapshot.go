package buffer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Line is a single line of a snapshot: its text without the break, plus the
// break that terminates it.
type Line struct {
	Text  string
	Break Break
}

// Len returns the number of characters in the line, excluding the break.
func (l Line) Len() int {
	return utf8.RuneCountInString(l.Text)
}

// HasBreak returns true if the line is terminated by a break.
func (l Line) HasBreak() bool {
	return l.Break != BreakNone
}

// String returns the line text followed by its break.
func (l Line) String() string {
	return l.Text + l.Break.Sequence()
}

// line is the stored form of a Line with its cached character count.
type line struct {
	text  string
	runes int
	brk   Break
}

func (l line) fullLen() int {
	return l.runes + l.brk.Len()
}

func (l line) full() string {
	return l.text + l.brk.Sequence()
}

// Snapshot provides a read-only view of a buffer at one edit generation.
// It never changes: Apply returns a new Snapshot and leaves this one intact.
// Snapshots are safe for concurrent access.
type Snapshot struct {
	bufferID   ID
	revisionID RevisionID
	lineEnding LineEnding
	lines      []line
	starts     []Offset
	length     Offset
}

// NewSnapshot parses text into a standalone snapshot with a fresh identity.
// Line breaks are kept exactly as they appear in text.
func NewSnapshot(text string, le LineEnding) *Snapshot {
	return newSnapshot(NewID(), le, splitLines(text))
}

func newSnapshot(id ID, le LineEnding, lines []line) *Snapshot {
	s := &Snapshot{
		bufferID:   id,
		revisionID: NewRevisionID(),
		lineEnding: le,
		lines:      lines,
		starts:     make([]Offset, len(lines)),
	}

	off := 0
	for i, l := range lines {
		s.starts[i] = off
		off += l.fullLen()
	}
	s.length = off

	return s
}

// splitLines splits text into lines. The final line never carries a break;
// text ending in a break yields a trailing empty line.
func splitLines(text string) []line {
	lines := make([]line, 0, strings.Count(text, "\n")+1)
	start := 0

	for i := 0; i < len(text); i++ {
		var brk Break
		width := 1

		switch text[i] {
		case '\n':
			brk = BreakLF
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				brk, width = BreakCRLF, 2
			} else {
				brk = BreakCR
			}
		default:
			continue
		}

		t := text[start:i]
		lines = append(lines, line{text: t, runes: utf8.RuneCountInString(t), brk: brk})
		i += width - 1
		start = i + 1
	}

	t := text[start:]
	return append(lines, line{text: t, runes: utf8.RuneCountInString(t)})
}

// BufferID returns the identity of the buffer this snapshot belongs to.
func (s *Snapshot) BufferID() ID {
	return s.bufferID
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineEnding returns the line ending used for breaks the buffer writes.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}

// Len returns the total length of the snapshot in characters.
func (s *Snapshot) Len() Offset {
	return s.length
}

// IsEmpty returns true if the snapshot holds no characters.
func (s *Snapshot) IsEmpty() bool {
	return s.length == 0
}

// LineCount returns the number of lines. It is always at least 1.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// LastLine returns the number of the last line.
func (s *Snapshot) LastLine() int {
	return len(s.lines) - 1
}

func (s *Snapshot) validLine(n int) bool {
	return n >= 0 && n < len(s.lines)
}

// Line returns line n. The second result is false if n is out of range.
func (s *Snapshot) Line(n int) (Line, bool) {
	if !s.validLine(n) {
		return Line{}, false
	}
	l := s.lines[n]
	return Line{Text: l.text, Break: l.brk}, true
}

// Lines returns all lines of the snapshot.
func (s *Snapshot) Lines() []Line {
	out := make([]Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = Line{Text: l.text, Break: l.brk}
	}
	return out
}

// LineText returns the text of line n without its break.
// Returns "" if n is out of range.
func (s *Snapshot) LineText(n int) string {
	if !s.validLine(n) {
		return ""
	}
	return s.lines[n].text
}

// LineLen returns the length of line n in characters, excluding the break.
func (s *Snapshot) LineLen(n int) int {
	if !s.validLine(n) {
		return 0
	}
	return s.lines[n].runes
}

// LineBreak returns the break terminating line n.
func (s *Snapshot) LineBreak(n int) Break {
	if !s.validLine(n) {
		return BreakNone
	}
	return s.lines[n].brk
}

// LineStart returns the offset of the first character of line n.
// Lines past the end map to Len().
func (s *Snapshot) LineStart(n int) Offset {
	if n < 0 {
		return 0
	}
	if n >= len(s.lines) {
		return s.length
	}
	return s.starts[n]
}

// LineEnd returns the offset just past the last character of line n,
// before its break.
func (s *Snapshot) LineEnd(n int) Offset {
	if !s.validLine(n) {
		return s.LineStart(n)
	}
	return s.starts[n] + s.lines[n].runes
}

// LineEndIncludingBreak returns the offset just past the break of line n.
// For the last line this equals LineEnd.
func (s *Snapshot) LineEndIncludingBreak(n int) Offset {
	if !s.validLine(n) {
		return s.LineStart(n)
	}
	return s.starts[n] + s.lines[n].fullLen()
}

// LineAt returns the line containing offset. An offset inside a break
// belongs to the line the break terminates. Out-of-range offsets clamp to
// the first or last line.
func (s *Snapshot) LineAt(offset Offset) int {
	if offset <= 0 {
		return 0
	}
	if offset >= s.length {
		return len(s.lines) - 1
	}
	return sort.Search(len(s.starts), func(i int) bool {
		return s.starts[i] > offset
	}) - 1
}

// OffsetToPoint converts an offset to line/column.
func (s *Snapshot) OffsetToPoint(offset Offset) Point {
	offset = min(max(offset, 0), s.length)
	n := s.LineAt(offset)
	return Point{Line: n, Column: offset - s.starts[n]}
}

// PointToOffset converts line/column to an offset. The column may be at most
// the line length.
func (s *Snapshot) PointToOffset(p Point) (Offset, error) {
	if !s.validLine(p.Line) || p.Column < 0 || p.Column > s.lines[p.Line].runes {
		return 0, ErrOffsetOutOfRange
	}
	return s.starts[p.Line] + p.Column, nil
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	var b strings.Builder
	for _, l := range s.lines {
		b.WriteString(l.text)
		b.WriteString(l.brk.Sequence())
	}
	return b.String()
}

// TextRange returns the text in [start, end). The range is clamped to the
// snapshot; an empty or inverted range yields "".
func (s *Snapshot) TextRange(start, end Offset) string {
	start = max(start, 0)
	end = min(end, s.length)
	if start >= end {
		return ""
	}

	var b strings.Builder
	for i := s.LineAt(start); i < len(s.lines) && s.starts[i] < end; i++ {
		l := s.lines[i]
		from := max(start-s.starts[i], 0)
		to := min(end-s.starts[i], l.fullLen())
		b.WriteString(runeSlice(l.full(), from, to))
	}
	return b.String()
}

// Apply returns a new snapshot with edit applied. The receiver is unchanged.
// Text is inserted verbatim; line-ending normalization is the Buffer's job.
func (s *Snapshot) Apply(edit Edit) (*Snapshot, EditResult, error) {
	sp := edit.Span
	if !sp.IsValid() || sp.End > s.length {
		return nil, EditResult{}, ErrSpanInvalid
	}

	first := s.LineAt(sp.Start)
	last := s.LineAt(sp.End)

	// A break inserted right after a CR must be able to fuse into CRLF.
	if first > 0 && sp.Start == s.starts[first] && s.lines[first-1].brk == BreakCR {
		first--
	}

	head := runeSlice(s.lines[first].full(), 0, sp.Start-s.starts[first])
	tailLine := s.lines[last]
	tail := runeSlice(tailLine.full(), sp.End-s.starts[last], tailLine.fullLen())

	region := splitLines(head + edit.NewText + tail)
	if last < len(s.lines)-1 {
		// The region ends with the break of an interior line; the empty
		// remainder is the start of the next stored line.
		region = region[:len(region)-1]
	}

	lines := make([]line, 0, len(s.lines)-(last-first+1)+len(region))
	lines = append(lines, s.lines[:first]...)
	lines = append(lines, region...)
	lines = append(lines, s.lines[last+1:]...)

	next := newSnapshot(s.bufferID, s.lineEnding, lines)
	inserted := utf8.RuneCountInString(edit.NewText)

	return next, EditResult{
		OldSpan:  sp,
		NewSpan:  Span{Start: sp.Start, End: sp.Start + inserted},
		OldText:  s.TextRange(sp.Start, sp.End),
		NewText:  edit.NewText,
		Revision: next.revisionID,
		Snapshot: next,
	}, nil
}

// runeSlice returns the characters of s in [from, to).
func runeSlice(s string, from, to int) string {
	if from >= to {
		return ""
	}

	start, end := -1, len(s)
	i := 0
	for b := range s {
		if i == from {
			start = b
		}
		if i == to {
			end = b
			break
		}
		i++
	}

	if start < 0 {
		return ""
	}
	return s[start:end]
}
