package script

import (
	"context"
	"fmt"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// State is a sandboxed gopher-lua state.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes calls
// made through State; direct use of L bypasses it.
type State struct {
	L *lua.LState

	mu     sync.Mutex
	closed bool
}

// NewState creates a state with only the safe standard libraries open.
func NewState() *State {
	L := lua.NewState(lua.Options{
		SkipOpenLibs: true,
	})
	openSafeLibraries(L)
	return &State{L: L}
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	// base: print, type, pairs, ipairs, etc.
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package are not opened. Base still carries the
	// loaders; remove them.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// SetModule installs funcs as the global table name.
func (s *State) SetModule(name string, funcs map[string]lua.LGFunction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.L.SetGlobal(name, s.L.SetFuncs(s.L.NewTable(), funcs))
}

// DoString executes Lua source. Cancelling ctx stops the script at its
// next instruction.
func (s *State) DoString(ctx context.Context, name, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	fn, err := s.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	return s.call(ctx, fn)
}

func (s *State) call(ctx context.Context, fn *lua.LFunction) (err error) {
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()

	s.L.Push(fn)
	return s.L.PCall(0, lua.MultRet, nil)
}

// GetGlobal returns a global variable value.
func (s *State) GetGlobal(name string) lua.LValue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return lua.LNil
	}
	return s.L.GetGlobal(name)
}

// Close releases the Lua state. It is safe to call more than once.
func (s *State) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.L.Close()
	s.closed = true
	return nil
}
