package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@", " "
//   - Key names: "Enter", "Esc", "Tab", "NL"
//   - With modifiers: "Ctrl+J", "Alt+x"
//   - Vim-style: "<CR>", "<NL>", "<C-j>", "<Space>", "<lt>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if utf8.RuneCountInString(spec) == 1 {
		r, _ := utf8.DecodeRuneInString(spec)
		return runeEvent(r, ModNone), nil
	}

	s := strings.TrimSpace(spec)
	switch {
	case s == "":
		return Event{}, ErrEmptySpec
	case len(s) > 2 && strings.HasPrefix(s, "<") && strings.HasSuffix(s, ">"):
		return parseNotation(s[1:len(s)-1], "-")
	case len(s) > 1 && strings.Contains(s, "+"):
		return parseNotation(s, "+")
	default:
		return parseName(s, ModNone)
	}
}

// parseNotation parses modifier prefixes joined by sep, followed by a key
// name. The key itself may be the separator, as in "C--".
func parseNotation(inner, sep string) (Event, error) {
	var mods Modifier
	rest := inner
	for {
		i := strings.Index(rest, sep)
		if i <= 0 || i == len(rest)-len(sep) {
			break
		}
		mod := ModifierFromName(rest[:i])
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, rest[:i])
		}
		mods = mods.With(mod)
		rest = rest[i+len(sep):]
	}
	return parseName(rest, mods)
}

func parseName(name string, mods Modifier) (Event, error) {
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}
	if r, ok := runeNameMap[strings.ToLower(name)]; ok {
		return NewRuneEvent(r, mods), nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if mods.Has(ModCtrl) {
			r = unicode.ToLower(r)
			return NewRuneEvent(r, mods), nil
		}
		return runeEvent(r, mods), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
}

// runeEvent creates a rune event; uppercase letters carry an implicit Shift.
func runeEvent(r rune, mods Modifier) Event {
	if unicode.IsUpper(r) {
		mods = mods.With(ModShift)
	}
	return NewRuneEvent(r, mods)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}
