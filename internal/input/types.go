package input

import (
	"github.com/dshills/vimops/internal/input/key"
	"github.com/dshills/vimops/internal/register"
)

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourceScript indicates the action originated from a Lua script.
	SourceScript
	// SourceAPI indicates the action originated from an API call.
	SourceAPI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceScript:
		return "script"
	case SourceAPI:
		return "api"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Register for yank/paste/delete operations (a-z, 0-9, ", +, *, etc.).
	// Zero selects the default register.
	Register rune

	// Text for paste operations. Empty means paste from Register.
	Text string

	// Kind of Text for paste operations. Ignored when pasting from a
	// register, which carries its own kind.
	Kind register.OperationKind

	// Key is a key spec ("x", "<CR>") for replace operations.
	Key string

	// Input for replace operations. Takes precedence over Key.
	Input *key.Input

	// MoveCaret places the caret after pasted text.
	MoveCaret bool
}

// Action represents a resolved command ready for execution.
type Action struct {
	// Name is the command identifier (e.g., "editor.deleteChar").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource

	// Count is the repeat count (from Vim-style count prefix).
	Count int
}

// WithCount returns a copy of the action with the specified count.
func (a Action) WithCount(count int) Action {
	a.Count = count
	return a
}

// WithRegister returns a copy of the action with the specified register.
func (a Action) WithRegister(register rune) Action {
	a.Args.Register = register
	return a
}

// WithText returns a copy of the action with paste text of the given kind.
func (a Action) WithText(text string, kind register.OperationKind) Action {
	a.Args.Text = text
	a.Args.Kind = kind
	return a
}

// WithInput returns a copy of the action with a replace input.
func (a Action) WithInput(in key.Input) Action {
	a.Args.Input = &in
	return a
}
