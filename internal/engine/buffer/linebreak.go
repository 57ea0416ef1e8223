package buffer

import (
	"fmt"
	"strings"
)

// Break is the line-break marker that terminates a line.
// The last line of a snapshot always has BreakNone.
type Break uint8

const (
	BreakNone Break = iota // No break (last line)
	BreakLF                // \n
	BreakCRLF              // \r\n
	BreakCR                // \r
)

// String returns the escaped form of the break.
func (b Break) String() string {
	switch b {
	case BreakNone:
		return "none"
	case BreakLF:
		return "\\n"
	case BreakCRLF:
		return "\\r\\n"
	case BreakCR:
		return "\\r"
	default:
		return fmt.Sprintf("Break(%d)", uint8(b))
	}
}

// Sequence returns the characters of the break.
func (b Break) Sequence() string {
	switch b {
	case BreakLF:
		return "\n"
	case BreakCRLF:
		return "\r\n"
	case BreakCR:
		return "\r"
	default:
		return ""
	}
}

// Len returns the number of character positions the break occupies.
func (b Break) Len() int {
	switch b {
	case BreakLF, BreakCR:
		return 1
	case BreakCRLF:
		return 2
	default:
		return 0
	}
}

// LineEnding specifies the line ending style of a buffer.
// It decides how inserted breaks are written and how missing breaks are
// synthesized.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// ParseLineEnding parses "lf", "crlf" or "cr" (case-insensitive).
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lf", "unix":
		return LineEndingLF, nil
	case "crlf", "dos", "windows":
		return LineEndingCRLF, nil
	case "cr", "mac":
		return LineEndingCR, nil
	default:
		return LineEndingLF, fmt.Errorf("unknown line ending %q", s)
	}
}

// Break returns the line break written for this style.
func (le LineEnding) Break() Break {
	switch le {
	case LineEndingCRLF:
		return BreakCRLF
	case LineEndingCR:
		return BreakCR
	default:
		return BreakLF
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	return le.Break().Sequence()
}

// Normalize converts all line endings in s to this style.
func (le LineEnding) Normalize(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	switch le {
	case LineEndingCRLF:
		s = strings.ReplaceAll(s, "\n", "\r\n")
	case LineEndingCR:
		s = strings.ReplaceAll(s, "\n", "\r")
	}
	return s
}

// IsBreakRune reports whether r starts a line break.
func IsBreakRune(r rune) bool {
	return r == '\n' || r == '\r'
}

// HasTrailingBreak reports whether s ends with a line break.
func HasTrailingBreak(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}
