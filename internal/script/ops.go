package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimops/internal/dispatcher"
	editorhandler "github.com/dshills/vimops/internal/dispatcher/handlers/editor"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/register"
)

// opsModule dispatches editor actions as "ops".
type opsModule struct {
	d Dispatcher
}

func (m *opsModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"x":        m.countAndRegister(editorhandler.ActionDeleteChar),
		"X":        m.countAndRegister(editorhandler.ActionDeleteCharBack),
		"dd":       m.countAndRegister(editorhandler.ActionDeleteLine),
		"yy":       m.countAndRegister(editorhandler.ActionYankLine),
		"p":        m.countAndRegister(editorhandler.ActionPasteAfter),
		"P":        m.countAndRegister(editorhandler.ActionPasteBefore),
		"O":        m.countAndRegister(editorhandler.ActionInsertLineAbove),
		"o":        m.countAndRegister(editorhandler.ActionInsertLineBelow),
		"r":        m.replace,
		"dispatch": m.dispatch,
	}
}

// countAndRegister returns a function taking ([count[, reg]]).
func (m *opsModule) countAndRegister(name string) lua.LGFunction {
	return func(L *lua.LState) int {
		action := input.Action{
			Name:  name,
			Count: L.OptInt(1, 1),
		}.WithRegister(optRegister(L, 2))
		return m.run(L, action)
	}
}

// r(key[, count])
func (m *opsModule) replace(L *lua.LState) int {
	action := input.Action{
		Name:  editorhandler.ActionReplaceChar,
		Count: L.OptInt(2, 1),
		Args:  input.ActionArgs{Key: L.CheckString(1)},
	}
	return m.run(L, action)
}

// dispatch(name[, args]) -> status, count, message
// args fields: count, register, text, kind, key, move.
// A name without a namespace is taken from the editor namespace.
func (m *opsModule) dispatch(L *lua.LState) int {
	name := L.CheckString(1)
	if dispatcher.ExtractActionName(name) == name {
		name = dispatcher.BuildActionName(editorhandler.Namespace, name)
	}
	if !m.d.CanDispatch(name) {
		return raise(L, fmt.Errorf("%w: %s", dispatcher.ErrUnknownAction, name))
	}

	action := input.Action{Name: name, Count: 1}

	if tbl := L.OptTable(2, nil); tbl != nil {
		if v, ok := tbl.RawGetString("count").(lua.LNumber); ok {
			action.Count = int(v)
		}
		if v, ok := tbl.RawGetString("register").(lua.LString); ok {
			r, ok := parseRegister(string(v))
			if !ok {
				L.ArgError(2, "register must be a single character")
				return 0
			}
			action.Args.Register = r
		}
		if v, ok := tbl.RawGetString("text").(lua.LString); ok {
			action.Args.Text = string(v)
		}
		if v, ok := tbl.RawGetString("kind").(lua.LString); ok {
			kind, err := register.ParseKind(string(v))
			if err != nil {
				return raise(L, err)
			}
			action.Args.Kind = kind
		}
		if v, ok := tbl.RawGetString("key").(lua.LString); ok {
			action.Args.Key = string(v)
		}
		action.Args.MoveCaret = lua.LVAsBool(tbl.RawGetString("move"))
	}

	return m.run(L, action)
}

// run dispatches action and pushes status, count and message.
func (m *opsModule) run(L *lua.LState, action input.Action) int {
	action.Source = input.SourceScript

	res := m.d.Dispatch(action)
	if res.IsError() {
		return raise(L, fmt.Errorf("%w: %s: %w", ErrActionFailed, action.Name, res.Error))
	}

	L.Push(lua.LString(res.Status.String()))
	L.Push(lua.LNumber(res.Count))
	L.Push(lua.LString(res.Message))
	return 3
}
