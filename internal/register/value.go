package register

import (
	"fmt"
	"strings"
	"unicode"
)

// OperationKind tells whether text is handled by characters or whole lines.
type OperationKind uint8

const (
	// CharacterWise text is pasted inside a line.
	CharacterWise OperationKind = iota

	// LineWise text is pasted as whole lines.
	LineWise
)

// String returns the kind name.
func (k OperationKind) String() string {
	switch k {
	case CharacterWise:
		return "charwise"
	case LineWise:
		return "linewise"
	default:
		return fmt.Sprintf("OperationKind(%d)", uint8(k))
	}
}

// Valid returns true if k is one of the defined kinds.
func (k OperationKind) Valid() bool {
	switch k {
	case CharacterWise, LineWise:
		return true
	default:
		return false
	}
}

// ParseKind parses a kind name. Both short and long forms are accepted.
func ParseKind(s string) (OperationKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "c", "char", "charwise", "characterwise":
		return CharacterWise, nil
	case "l", "line", "linewise":
		return LineWise, nil
	default:
		return CharacterWise, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Unnamed is the key of the default register.
const Unnamed rune = '"'

// ValidKey returns true if r can name a register.
func ValidKey(r rune) bool {
	return unicode.IsPrint(r) && !unicode.IsSpace(r)
}

// Value is the content of one register.
type Value struct {
	Text string
	Kind OperationKind
}

// NewValue creates a Value. Line-wise text without a trailing break gets one.
func NewValue(text string, kind OperationKind) (Value, error) {
	switch kind {
	case CharacterWise:
		return Value{Text: text, Kind: kind}, nil
	case LineWise:
		if !hasTrailingBreak(text) {
			text += "\n"
		}
		return Value{Text: text, Kind: kind}, nil
	default:
		return Value{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind))
	}
}

// IsLineWise returns true for line-wise values.
func (v Value) IsLineWise() bool {
	return v.Kind == LineWise
}

// IsEmpty returns true if the value holds no text.
func (v Value) IsEmpty() bool {
	return v.Text == ""
}

// String returns a short description of the value.
func (v Value) String() string {
	return fmt.Sprintf("%s %q", v.Kind, v.Text)
}

func hasTrailingBreak(s string) bool {
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, "\r")
}
