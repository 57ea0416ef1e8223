package script

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/vimops/internal/dispatcher"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/register"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Dispatcher executes actions.
type Dispatcher interface {
	Dispatch(action input.Action) handler.Result
	CanDispatch(actionName string) bool
}

// Text is the buffer a script reads.
type Text interface {
	Snapshot() *buffer.Snapshot
}

// Caret is the caret a script reads and moves.
type Caret interface {
	Position() caret.Position
	Point() caret.Point
	SetPoint(p caret.Point) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger that receives script output and diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTimeout sets the run timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// Runner executes scripts. Each run gets a fresh Lua state, so globals do
// not leak between runs. Buffer edits go through the dispatcher.
type Runner struct {
	d     Dispatcher
	text  Text
	caret Caret
	regs  register.Store

	timeout time.Duration
	log     *logging.Logger
}

// NewRunner creates a runner bound to one buffer, caret and register store.
func NewRunner(d Dispatcher, text Text, c Caret, regs register.Store, opts ...Option) *Runner {
	r := &Runner{
		d:       d,
		text:    text,
		caret:   c,
		regs:    regs,
		timeout: DefaultTimeout,
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("script")
	return r
}

// Run executes Lua source.
func (r *Runner) Run(ctx context.Context, code string) error {
	return r.run(ctx, "<string>", code)
}

// RunFile executes the Lua file at path.
func (r *Runner) RunFile(ctx context.Context, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return r.run(ctx, path, string(code))
}

func (r *Runner) run(ctx context.Context, name, code string) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	state := r.newState()
	defer state.Close()

	start := time.Now()
	err := state.DoString(ctx, name, code)
	r.log.Debug("%s finished in %v", name, time.Since(start))

	if err == nil {
		return nil
	}
	return r.scriptError(ctx, name, err)
}

func (r *Runner) newState() *State {
	state := NewState()
	installErrorType(state.L)
	state.L.SetGlobal("print", state.L.NewFunction(r.print))

	state.SetModule("buf", (&bufferModule{text: r.text}).funcs())
	state.SetModule("caret", (&caretModule{caret: r.caret}).funcs())
	state.SetModule("reg", (&registerModule{regs: r.regs}).funcs())
	state.SetModule("ops", (&opsModule{d: r.d}).funcs())
	return state
}

// print writes its arguments to the log instead of stdout.
func (r *Runner) print(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	r.log.Info("%s", strings.Join(parts, "\t"))
	return 0
}

// scriptError recovers a raised Go error, or reports cancellation.
func (r *Runner) scriptError(ctx context.Context, name string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("script %s: %w: %w", name, ErrExecutionTimeout, ctxErr)
		}
		return fmt.Errorf("script %s: %w", name, ctxErr)
	}

	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) {
		if ud, ok := apiErr.Object.(*lua.LUserData); ok {
			if goErr, ok := ud.Value.(error); ok {
				return fmt.Errorf("script %s: %w", name, goErr)
			}
		}
	}
	return fmt.Errorf("script %s: %w", name, err)
}

var (
	_ Dispatcher = (*dispatcher.Dispatcher)(nil)
	_ Text       = (*buffer.Buffer)(nil)
	_ Caret      = (*caret.Caret)(nil)
)
