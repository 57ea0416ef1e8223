package ops

import (
	"errors"

	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/register"
)

// tb is the part of testing.TB that *rapid.T also provides.
type tb interface {
	Helper()
	Fatalf(format string, args ...any)
}

// env is a buffer, caret and register store wired to one engine.
type env struct {
	t     tb
	buf   *buffer.Buffer
	caret *caret.Caret
	regs  *register.MemoryStore
	ops   *Engine
}

func create(t tb, lines ...string) *env {
	return createWith(t, nil, lines...)
}

func createWith(t tb, opts []buffer.Option, lines ...string) *env {
	t.Helper()
	buf := buffer.NewBufferFromLines(lines, opts...)
	c := caret.New(buf)
	regs := register.NewMemoryStore()
	return &env{
		t:     t,
		buf:   buf,
		caret: c,
		regs:  regs,
		ops:   New(buf, c, regs),
	}
}

func (e *env) moveTo(off int) {
	e.t.Helper()
	if err := e.caret.MoveTo(off); err != nil {
		e.t.Fatalf("MoveTo(%d) failed: %v", off, err)
	}
}

func (e *env) moveToLine(n int) {
	e.t.Helper()
	e.moveTo(e.buf.Snapshot().LineStart(n))
}

func (e *env) moveToEnd() {
	e.t.Helper()
	e.moveTo(e.buf.Len())
}

func (e *env) line(n int) string {
	return e.buf.Snapshot().LineText(n)
}

func (e *env) lines() []string {
	snap := e.buf.Snapshot()
	out := make([]string, snap.LineCount())
	for i := range out {
		out[i] = snap.LineText(i)
	}
	return out
}

func (e *env) offset() int {
	return e.caret.Position().Offset
}

func (e *env) reg(key rune) register.Value {
	e.t.Helper()
	v, ok := e.regs.Get(key)
	if !ok {
		e.t.Fatalf("register %q was not written", key)
	}
	return v
}

// failingCaret rejects the first fails calls to Set.
type failingCaret struct {
	*caret.Caret
	fails int
	err   error
}

func (c *failingCaret) Set(pos caret.Position, allowVirtualSpace bool) error {
	if c.fails > 0 {
		c.fails--
		return c.err
	}
	return c.Caret.Set(pos, allowVirtualSpace)
}

// fixedCaret always reports the same position.
type fixedCaret struct {
	pos caret.Position
}

func (c *fixedCaret) Position() caret.Position { return c.pos }

func (c *fixedCaret) Set(pos caret.Position, _ bool) error {
	c.pos = pos
	return nil
}

// brokenClipboard fails every access.
type brokenClipboard struct{}

func (brokenClipboard) Get() (string, error) { return "", errClipboardDown }
func (brokenClipboard) Set(string) error { return errClipboardDown }

var errClipboardDown = errors.New("clipboard down")
