package dispatcher_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/dshills/vimops/internal/dispatcher"
	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	editorhandler "github.com/dshills/vimops/internal/dispatcher/handlers/editor"
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/ops"
	"github.com/dshills/vimops/internal/register"
)

func newEditorDispatcher(config dispatcher.Config, lines ...string) (*dispatcher.Dispatcher, *buffer.Buffer, *register.MemoryStore) {
	buf := buffer.NewBufferFromLines(lines)
	regs := register.NewMemoryStore()
	engine := ops.New(buf, caret.New(buf), regs)

	d := dispatcher.New(engine, regs, config)
	d.RegisterNamespace(editorhandler.Namespace, editorhandler.NewCombinedHandler())
	return d, buf, regs
}

func TestDispatchEditorAction(t *testing.T) {
	d, buf, regs := newEditorDispatcher(dispatcher.DefaultConfig(), "foo", "bar")

	res := d.Dispatch(input.Action{Name: editorhandler.ActionYankLine, Count: 2})
	if !res.IsOK() {
		t.Fatalf("Dispatch(yankLine) = %v, want ok", res)
	}
	if v, _ := regs.Get(register.Unnamed); v.Text != "foo\nbar\n" {
		t.Errorf("unnamed register = %q, want %q", v.Text, "foo\nbar\n")
	}

	res = d.Dispatch(input.Action{Name: editorhandler.ActionPasteBefore})
	if !res.IsOK() {
		t.Fatalf("Dispatch(pasteBefore) = %v, want ok", res)
	}
	if got := buf.Text(); got != "foo\nbar\nfoo\nbar" {
		t.Errorf("buffer = %q, want %q", got, "foo\nbar\nfoo\nbar")
	}
}

func TestDispatchDefaultRegister(t *testing.T) {
	config := dispatcher.DefaultConfig().WithDefaultRegister('z')
	d, _, regs := newEditorDispatcher(config, "foo")

	if res := d.Dispatch(input.Action{Name: editorhandler.ActionDeleteChar}); !res.IsOK() {
		t.Fatalf("Dispatch = %v, want ok", res)
	}
	if v, ok := regs.Get('z'); !ok || v.Text != "f" {
		t.Errorf("register z = %v, %v, want \"f\"", v, ok)
	}
	if v, _ := regs.Get(register.Unnamed); v.Text != "f" {
		t.Errorf("unnamed register = %q, want mirrored \"f\"", v.Text)
	}
}

func TestDispatchErrors(t *testing.T) {
	d, _, _ := newEditorDispatcher(dispatcher.DefaultConfig(), "foo")

	tests := []struct {
		name    string
		action  input.Action
		wantErr error
	}{
		{"empty name", input.Action{}, dispatcher.ErrInvalidAction},
		{"unknown namespace", input.Action{Name: "window.split"}, dispatcher.ErrUnknownAction},
		{"unknown editor action", input.Action{Name: "editor.indent"}, dispatcher.ErrUnknownAction},
		{"no namespace", input.Action{Name: "quit"}, dispatcher.ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := d.Dispatch(tt.action)
			if !res.IsError() || !errors.Is(res.Error, tt.wantErr) {
				t.Errorf("Dispatch(%q) = %v, want %v", tt.action.Name, res, tt.wantErr)
			}
		})
	}
}

func TestDispatchPanicRecovery(t *testing.T) {
	d := dispatcher.New(nil, nil, dispatcher.DefaultConfig())
	d.RegisterHandlerFunc("test.panic", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	res := d.Dispatch(input.Action{Name: "test.panic"})
	if !res.IsError() || !errors.Is(res.Error, dispatcher.ErrPanic) {
		t.Errorf("Dispatch = %v, want ErrPanic", res)
	}
}

func TestDispatchWithoutPanicRecovery(t *testing.T) {
	d := dispatcher.New(nil, nil, dispatcher.DefaultConfig().WithPanicRecovery(false))
	d.RegisterHandlerFunc("test.panic", func(input.Action, *execctx.ExecutionContext) handler.Result {
		panic("boom")
	})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected the panic to propagate")
		}
	}()
	d.Dispatch(input.Action{Name: "test.panic"})
}

func TestDispatchMaxRepeatCount(t *testing.T) {
	tests := []struct {
		limit int
		count int
		want  int
	}{
		{10, 3, 3},
		{10, 50, 10},
		{0, 50, 50},
		{10, 0, 1},
		{10, -4, 1},
	}

	for _, tt := range tests {
		d := dispatcher.New(nil, nil, dispatcher.DefaultConfig().WithMaxRepeatCount(tt.limit))
		var got int
		d.RegisterHandlerFunc("test.count", func(_ input.Action, ctx *execctx.ExecutionContext) handler.Result {
			got = ctx.GetCount()
			return handler.Success()
		})

		d.Dispatch(input.Action{Name: "test.count", Count: tt.count})
		if got != tt.want {
			t.Errorf("limit %d count %d: GetCount() = %d, want %d", tt.limit, tt.count, got, tt.want)
		}
	}
}

func TestDispatchExactBeatsNamespace(t *testing.T) {
	d, buf, _ := newEditorDispatcher(dispatcher.DefaultConfig(), "foo")
	d.RegisterHandlerFunc(editorhandler.ActionDeleteChar, func(input.Action, *execctx.ExecutionContext) handler.Result {
		return handler.NoOpWithMessage("overridden")
	})

	res := d.Dispatch(input.Action{Name: editorhandler.ActionDeleteChar})
	if !res.IsNoOp() || res.Message != "overridden" {
		t.Errorf("Dispatch = %v, want the exact handler", res)
	}
	if buf.Text() != "foo" {
		t.Errorf("buffer = %q, want unchanged", buf.Text())
	}
	if res := d.Dispatch(input.Action{Name: editorhandler.ActionDeleteCharBack}); !res.IsNoOp() || res.Message == "overridden" {
		t.Errorf("Dispatch(deleteCharBack) = %v, want the namespace handler", res)
	}
}

func TestDispatchMetrics(t *testing.T) {
	d, _, _ := newEditorDispatcher(dispatcher.DefaultConfig().WithMetrics(), "foo")

	d.Dispatch(input.Action{Name: editorhandler.ActionDeleteChar})
	d.Dispatch(input.Action{Name: editorhandler.ActionDeleteCharBack})
	d.Dispatch(input.Action{Name: editorhandler.ActionDeleteChar})
	d.Dispatch(input.Action{Name: "editor.missing"})

	snap := d.Metrics().Snapshot()
	if snap.TotalDispatches != 4 {
		t.Errorf("TotalDispatches = %d, want 4", snap.TotalDispatches)
	}
	if snap.TotalNoOps != 1 || snap.TotalErrors != 1 {
		t.Errorf("NoOps/Errors = %d/%d, want 1/1", snap.TotalNoOps, snap.TotalErrors)
	}

	stats := d.Metrics().ActionStats(editorhandler.ActionDeleteChar)
	if stats == nil || stats.DispatchCount != 2 {
		t.Fatalf("ActionStats(deleteChar) = %v, want 2 dispatches", stats)
	}
	if stats.LastStatus != handler.StatusOK {
		t.Errorf("LastStatus = %v, want ok", stats.LastStatus)
	}
}

func TestDispatchMetricsDisabled(t *testing.T) {
	d := dispatcher.New(nil, nil, dispatcher.DefaultConfig())
	if d.Metrics() != nil {
		t.Error("metrics should be nil when disabled")
	}
}

func TestDispatchConcurrent(t *testing.T) {
	d, buf, _ := newEditorDispatcher(dispatcher.DefaultConfig(), "")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				d.Dispatch(input.Action{Name: editorhandler.ActionInsertLineAbove})
			}
		}()
	}
	wg.Wait()

	if n := buf.Snapshot().LineCount(); n != 201 {
		t.Errorf("LineCount() = %d, want 201", n)
	}
}

func TestCanDispatch(t *testing.T) {
	d, _, _ := newEditorDispatcher(dispatcher.DefaultConfig(), "foo")

	for _, name := range editorhandler.Actions() {
		if !d.CanDispatch(name) {
			t.Errorf("CanDispatch(%q) = false, want true", name)
		}
	}
	if d.CanDispatch("editor.unknown") {
		t.Error("CanDispatch(editor.unknown) = true, want false")
	}
}
