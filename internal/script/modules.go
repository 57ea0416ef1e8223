package script

import (
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/register"
)

// goErrorType is the metatable name of raised Go errors.
const goErrorType = "vimops.error"

// raise raises err as a Lua error. Run recovers the original Go error.
func raise(L *lua.LState, err error) int {
	ud := L.NewUserData()
	ud.Value = err
	L.SetMetatable(ud, L.GetTypeMetatable(goErrorType))
	L.Error(ud, 1)
	return 0
}

func installErrorType(L *lua.LState) {
	mt := L.NewTypeMetatable(goErrorType)
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		ud := L.CheckUserData(1)
		if err, ok := ud.Value.(error); ok {
			L.Push(lua.LString(err.Error()))
		} else {
			L.Push(lua.LString("error"))
		}
		return 1
	}))
}

// bufferModule exposes read access to the buffer as "buf".
type bufferModule struct {
	text Text
}

func (m *bufferModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"text":       m.fullText,
		"lines":      m.lines,
		"line":       m.line,
		"line_count": m.lineCount,
	}
}

// text() -> string
func (m *bufferModule) fullText(L *lua.LState) int {
	L.Push(lua.LString(m.text.Snapshot().Text()))
	return 1
}

// lines() -> table
// Returns the line texts without their breaks.
func (m *bufferModule) lines(L *lua.LState) int {
	snap := m.text.Snapshot()
	tbl := L.CreateTable(snap.LineCount(), 0)
	for i := 0; i < snap.LineCount(); i++ {
		tbl.Append(lua.LString(snap.LineText(i)))
	}
	L.Push(tbl)
	return 1
}

// line(n) -> string
// Returns the text of line n (1-indexed).
func (m *bufferModule) line(L *lua.LState) int {
	n := L.CheckInt(1)
	snap := m.text.Snapshot()
	if n < 1 || n > snap.LineCount() {
		L.ArgError(1, "line out of range")
		return 0
	}
	L.Push(lua.LString(snap.LineText(n - 1)))
	return 1
}

// line_count() -> number
func (m *bufferModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.text.Snapshot().LineCount()))
	return 1
}

// caretModule exposes the caret as "caret".
type caretModule struct {
	caret Caret
}

func (m *caretModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"get":    m.get,
		"offset": m.offset,
		"set":    m.set,
	}
}

// get() -> line, col
// Line is 1-indexed, column 0-indexed.
func (m *caretModule) get(L *lua.LState) int {
	p := m.caret.Point()
	L.Push(lua.LNumber(p.Line + 1))
	L.Push(lua.LNumber(p.Column))
	return 2
}

// offset() -> number
func (m *caretModule) offset(L *lua.LState) int {
	L.Push(lua.LNumber(m.caret.Position().Offset))
	return 1
}

// set(line, col)
func (m *caretModule) set(L *lua.LState) int {
	line := L.CheckInt(1)
	col := L.OptInt(2, 0)
	if err := m.caret.SetPoint(caret.Point{Line: line - 1, Column: col}); err != nil {
		return raise(L, err)
	}
	return 0
}

// registerModule exposes the register store as "reg".
type registerModule struct {
	regs register.Store
}

func (m *registerModule) funcs() map[string]lua.LGFunction {
	return map[string]lua.LGFunction{
		"get": m.get,
		"set": m.set,
	}
}

// get(key) -> text, kind | nil
func (m *registerModule) get(L *lua.LState) int {
	key := checkRegister(L, 1)
	v, ok := m.regs.Get(key)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(v.Text))
	L.Push(lua.LString(v.Kind.String()))
	return 2
}

// set(key, text[, kind])
func (m *registerModule) set(L *lua.LState) int {
	key := checkRegister(L, 1)
	text := L.CheckString(2)
	kind, err := register.ParseKind(L.OptString(3, ""))
	if err != nil {
		L.ArgError(3, err.Error())
		return 0
	}
	if err := m.regs.Set(key, register.Value{Text: text, Kind: kind}); err != nil {
		return raise(L, err)
	}
	return 0
}

// checkRegister reads a one-character register name.
func checkRegister(L *lua.LState, n int) rune {
	r, ok := parseRegister(L.CheckString(n))
	if !ok {
		L.ArgError(n, "register must be a single character")
		return 0
	}
	return r
}

func parseRegister(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, false
	}
	return r, true
}

// optRegister reads an optional register name. Zero selects the default.
func optRegister(L *lua.LState, n int) rune {
	if L.Get(n) == lua.LNil {
		return 0
	}
	return checkRegister(L, n)
}
