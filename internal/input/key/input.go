package key

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrNotInput indicates a key that does not produce text.
var ErrNotInput = errors.New("key does not produce text")

type inputKind uint8

const (
	inputNone inputKind = iota
	inputLiteral
	inputLineBreak
)

// Input is the text a key produces for commands like replace: either one
// literal character or a line break. The zero value is not a valid Input.
type Input struct {
	kind inputKind
	r    rune
}

// LineBreak is the input produced by Enter and its equivalents.
var LineBreak = Input{kind: inputLineBreak}

// Literal returns the input for character r. '\n' and '\r' yield LineBreak.
func Literal(r rune) Input {
	if r == '\n' || r == '\r' {
		return LineBreak
	}
	return Input{kind: inputLiteral, r: r}
}

// IsValid returns true for inputs built by Literal or LineBreak.
func (in Input) IsValid() bool {
	return in.kind != inputNone
}

// IsLineBreak returns true if the input is a line break.
func (in Input) IsLineBreak() bool {
	return in.kind == inputLineBreak
}

// Rune returns the literal character. The second result is false for line
// breaks and invalid inputs.
func (in Input) Rune() (rune, bool) {
	return in.r, in.kind == inputLiteral
}

// String returns the Vim notation of the input.
func (in Input) String() string {
	switch in.kind {
	case inputLiteral:
		return NewRuneEvent(in.r, ModNone).String()
	case inputLineBreak:
		return "<CR>"
	default:
		return "<none>"
	}
}

// Classify returns the input a key event produces. The second result is
// false for keys that produce no text, such as arrows or Alt chords.
// Enter, keypad Enter, <NL>, <C-j> and <C-m> are line breaks.
func Classify(e Event) (Input, bool) {
	mods := e.Modifiers.Without(ModShift)

	switch {
	case e.Key.IsLineBreak() && mods == ModNone:
		return LineBreak, true
	case e.Key == KeyRune && mods == ModCtrl && (e.Rune == 'j' || e.Rune == 'm'):
		return LineBreak, true
	case e.Key == KeyTab && mods == ModNone:
		return Literal('\t'), true
	case e.IsRune() && !e.IsModified():
		r := e.Rune
		if unicode.IsPrint(r) || r == '\t' || r == '\n' || r == '\r' {
			return Literal(r), true
		}
	}
	return Input{}, false
}

// ParseInput parses a key specification and classifies it.
func ParseInput(spec string) (Input, error) {
	e, err := Parse(spec)
	if err != nil {
		return Input{}, err
	}
	in, ok := Classify(e)
	if !ok {
		return Input{}, fmt.Errorf("%w: %s", ErrNotInput, e)
	}
	return in, nil
}
