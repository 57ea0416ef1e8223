package key

import (
	"fmt"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character events Shift alone does not count, since it already
// changed the character.
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers.Without(ModShift) != ModNone
	}
	return e.Modifiers != ModNone
}

// String returns the Vim notation of the event, such as "a", "<CR>" or
// "<C-j>".
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		if e.Rune == '<' {
			return "<lt>"
		}
		return string(e.Rune)
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}

	name := e.Key.String()
	if e.IsRune() {
		name = string(unicode.ToLower(e.Rune))
	}
	return "<" + mods.String() + name + ">"
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %q}", e.Key, e.Rune, e.Modifiers)
}
