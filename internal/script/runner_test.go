package script

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/vimops/internal/dispatcher"
	editorhandler "github.com/dshills/vimops/internal/dispatcher/handlers/editor"
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/ops"
	"github.com/dshills/vimops/internal/register"
)

type scriptEnv struct {
	buf    *buffer.Buffer
	caret  *caret.Caret
	regs   *register.MemoryStore
	runner *Runner
}

func setupRunner(t *testing.T, opts []Option, lines ...string) *scriptEnv {
	t.Helper()

	buf := buffer.NewBufferFromLines(lines)
	c := caret.New(buf)
	regs := register.NewMemoryStore()

	d := dispatcher.New(ops.New(buf, c, regs), regs, dispatcher.DefaultConfig())
	d.RegisterNamespace(editorhandler.Namespace, editorhandler.NewCombinedHandler())

	return &scriptEnv{
		buf:    buf,
		caret:  c,
		regs:   regs,
		runner: NewRunner(d, buf, c, regs, opts...),
	}
}

func (e *scriptEnv) lines() []string {
	snap := e.buf.Snapshot()
	out := make([]string, snap.LineCount())
	for i := range out {
		out[i] = snap.LineText(i)
	}
	return out
}

func (e *scriptEnv) reg(key rune) string {
	v, _ := e.regs.Get(key)
	return v.Text
}

func TestRunnerOps(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		code  string
		want  []string
	}{
		{"yank and paste", []string{"foo", "bar"}, `ops.yy(2) ops.p()`, []string{"foo", "foo", "bar", "bar"}},
		{"delete under caret", []string{"foo"}, `ops.x(2)`, []string{"o"}},
		{"delete before caret", []string{"foo"}, `caret.set(1, 3) ops.X(2)`, []string{"f"}},
		{"delete lines", []string{"a", "b", "c"}, `ops.dd(2)`, []string{"c"}},
		{"replace", []string{"foo"}, `ops.r("z", 2)`, []string{"zzo"}},
		{"replace with break", []string{"foo"}, `ops.r("<CR>")`, []string{"", "oo"}},
		{"paste before", []string{"foo"}, `reg.set('"', "ab") ops.P(2)`, []string{"ababfoo"}},
		{"open lines", []string{"foo"}, `ops.o() ops.O()`, []string{"foo", "", ""}},
		{"named register", []string{"foo", "bar"}, `ops.yy(1, "a") caret.set(2) ops.p(1, "a")`, []string{"foo", "bar", "foo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRunner(t, nil, tt.lines...)
			if err := env.runner.Run(context.Background(), tt.code); err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, env.lines()); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunnerDispatch(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	code := `
local status, count = ops.dispatch("editor.pasteAfter", {text = "hey", kind = "charwise", move = true, count = 2})
reg.set("s", status .. ":" .. count)
`
	if err := env.runner.Run(context.Background(), code); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diff := cmp.Diff([]string{"fheyheyoo"}, env.lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if got := env.caret.Position().Offset; got != 7 {
		t.Errorf("caret = %d, want 7", got)
	}
	if got := env.reg('s'); got != "ok:2" {
		t.Errorf("status = %q, want %q", got, "ok:2")
	}
}

func TestRunnerDispatchBareName(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	if err := env.runner.Run(context.Background(), `ops.dispatch("deleteChar", {count = 2})`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if diff := cmp.Diff([]string{"o"}, env.lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerNoOpStatus(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	code := `
local status, count, msg = ops.X()
reg.set("s", status .. ":" .. count)
reg.set("m", msg)
`
	if err := env.runner.Run(context.Background(), code); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := env.reg('s'); got != "no-op:0" {
		t.Errorf("status = %q, want %q", got, "no-op:0")
	}
	if env.reg('m') == "" {
		t.Error("no-op should carry a message")
	}
}

func TestRunnerReadAPI(t *testing.T) {
	env := setupRunner(t, nil, "foo", "bar baz")
	if err := env.caret.MoveTo(6); err != nil {
		t.Fatalf("MoveTo failed: %v", err)
	}

	code := `
assert(buf.text() == "foo\nbar baz")
assert(buf.line_count() == 2)
assert(buf.line(2) == "bar baz")
local lines = buf.lines()
assert(#lines == 2 and lines[1] == "foo")
local line, col = caret.get()
assert(line == 2 and col == 2, "caret " .. line .. ":" .. col)
assert(caret.offset() == 6)
reg.set("a", "x", "linewise")
local text, kind = reg.get("a")
assert(text == "x\n" and kind == "linewise")
assert(reg.get("q") == nil)
`
	if err := env.runner.Run(context.Background(), code); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunnerErrors(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{"invalid register", `ops.x(1, " ")`, register.ErrInvalidKey},
		{"action failure", `ops.x(1, " ")`, ErrActionFailed},
		{"caret out of range", `caret.set(9, 0)`, caret.ErrOffsetOutOfRange},
		{"unknown kind", `ops.dispatch("editor.pasteAfter", {text = "a", kind = "block"})`, register.ErrUnknownKind},
		{"unknown action", `ops.dispatch("editor.indent")`, dispatcher.ErrUnknownAction},
		{"unknown bare action", `ops.dispatch("indent")`, dispatcher.ErrUnknownAction},
		{"unknown namespace", `ops.dispatch("cursor.left")`, dispatcher.ErrUnknownAction},
		{"unknown action before args", `ops.dispatch("editor.indent", {register = "ab"})`, dispatcher.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRunner(t, nil, "foo")
			err := env.runner.Run(context.Background(), tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Run error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRunnerLuaErrors(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	for _, code := range []string{
		`error("boom")`,
		`local x = `,
		`buf.line(0)`,
		`reg.get("ab")`,
		`ops.r()`,
	} {
		if err := env.runner.Run(context.Background(), code); err == nil {
			t.Errorf("Run(%q) should fail", code)
		}
	}
	if diff := cmp.Diff([]string{"foo"}, env.lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerCaughtError(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	code := `
local ok, err = pcall(ops.x, 1, " ")
assert(not ok)
reg.set("e", tostring(err))
`
	if err := env.runner.Run(context.Background(), code); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := env.reg('e'); !strings.Contains(got, "invalid") {
		t.Errorf("caught error = %q, want the Go error text", got)
	}
}

func TestRunnerSandbox(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	code := `
assert(os == nil)
assert(io == nil)
assert(debug == nil)
assert(require == nil)
assert(dofile == nil and loadfile == nil and load == nil)
assert(string.upper("a") == "A")
assert(math.max(1, 2) == 2)
assert(table.concat({"a", "b"}) == "ab")
`
	if err := env.runner.Run(context.Background(), code); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
}

func TestRunnerFreshState(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	if err := env.runner.Run(context.Background(), `leaked = 1`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := env.runner.Run(context.Background(), `assert(leaked == nil)`); err != nil {
		t.Errorf("globals leaked between runs: %v", err)
	}
}

func TestRunnerTimeout(t *testing.T) {
	env := setupRunner(t, []Option{WithTimeout(50 * time.Millisecond)}, "foo")

	err := env.runner.Run(context.Background(), `while true do end`)
	if !errors.Is(err, ErrExecutionTimeout) {
		t.Errorf("Run error = %v, want ErrExecutionTimeout", err)
	}
}

func TestRunnerCancelled(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := env.runner.Run(ctx, `ops.x()`)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
	if diff := cmp.Diff([]string{"foo"}, env.lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerPrintLogs(t *testing.T) {
	var out bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelInfo, Output: &out})
	env := setupRunner(t, []Option{WithLogger(log)}, "foo")

	if err := env.runner.Run(context.Background(), `print("hello", 42)`); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "hello\t42") {
		t.Errorf("log output = %q, want the printed text", out.String())
	}
}

func TestRunnerRunFile(t *testing.T) {
	env := setupRunner(t, nil, "foo")

	path := filepath.Join(t.TempDir(), "edit.lua")
	if err := os.WriteFile(path, []byte(`ops.yy() ops.p()`), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := env.runner.RunFile(context.Background(), path); err != nil {
		t.Fatalf("RunFile failed: %v", err)
	}
	if diff := cmp.Diff([]string{"foo", "foo"}, env.lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}

	if err := env.runner.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RunFile(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if err := s.DoString(context.Background(), "x", "x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("DoString after Close error = %v, want ErrStateClosed", err)
	}
}
