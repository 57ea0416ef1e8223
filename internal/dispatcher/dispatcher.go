package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/register"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for routing and handler diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// Dispatcher routes actions to handlers and coordinates execution.
// Dispatch calls are serialized, so one dispatcher may be shared by
// several callers driving the same buffer and caret.
type Dispatcher struct {
	// exec serializes dispatches.
	exec sync.Mutex

	router *Router

	ops  execctx.OpsInterface
	regs register.Store

	config  Config
	metrics *Metrics
	log     *logging.Logger
}

// New creates a dispatcher driving ops, reading paste registers from regs.
func New(ops execctx.OpsInterface, regs register.Store, config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		router: NewRouter(),
		ops:    ops,
		regs:   regs,
		config: config,
		log:    logging.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log = d.log.WithComponent("dispatcher")

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}
	return d
}

// Dispatch executes an action synchronously. It never panics when panic
// recovery is enabled; handler failures are reported in the result.
func (d *Dispatcher) Dispatch(action input.Action) handler.Result {
	d.exec.Lock()
	defer d.exec.Unlock()

	start := time.Now()
	result := d.dispatch(action)

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Name, time.Since(start), result.Status)
	}

	if result.IsError() {
		d.log.Warn("%s: %v", action.Name, result.Error)
	} else {
		d.log.Debug("%s count=%d register=%q: %s", action.Name, action.Count, action.Args.Register, result)
	}
	return result
}

func (d *Dispatcher) dispatch(action input.Action) handler.Result {
	if action.Name == "" {
		return handler.Error(fmt.Errorf("%w: empty name", ErrInvalidAction))
	}

	h := d.router.Route(action.Name)
	if h == nil {
		return handler.Error(fmt.Errorf("%w: %s", ErrUnknownAction, action.Name))
	}

	if limit := d.config.MaxRepeatCount; limit > 0 && action.Count > limit {
		d.log.Warn("%s: count %d clamped to %d", action.Name, action.Count, limit)
		action.Count = limit
	}

	ctx := d.buildContext(action)
	if d.config.RecoverFromPanic {
		return d.executeWithRecovery(h, action, ctx)
	}
	return h.Handle(action, ctx)
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h handler.Handler, action input.Action, ctx *execctx.ExecutionContext) (result handler.Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)
			d.log.Error("handler panic for %s: %v\n%s", action.Name, r, stack[:n])

			result = handler.Error(fmt.Errorf("%w: %s: %v", ErrPanic, action.Name, r))

			if d.metrics != nil {
				d.metrics.RecordPanic(action.Name)
			}
		}
	}()

	return h.Handle(action, ctx)
}

// buildContext builds an execution context for one action.
func (d *Dispatcher) buildContext(action input.Action) *execctx.ExecutionContext {
	ctx := execctx.New().
		WithOps(d.ops).
		WithRegisters(d.regs).
		WithCount(action.Count)
	if d.config.DefaultRegister != 0 {
		ctx.DefaultRegister = d.config.DefaultRegister
	}
	ctx.Logger = d.log
	return ctx
}

// RegisterHandler registers a handler for an exact action name.
func (d *Dispatcher) RegisterHandler(actionName string, h handler.Handler) {
	d.router.Register(actionName, h)
}

// RegisterHandlerFunc registers a handler function for an action name.
func (d *Dispatcher) RegisterHandlerFunc(actionName string, fn handler.HandlerFunc) {
	d.router.Register(actionName, fn)
}

// RegisterNamespace registers a namespace handler.
func (d *Dispatcher) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	d.router.RegisterNamespace(namespace, h)
}

// CanDispatch returns true if a handler is registered for the action.
func (d *Dispatcher) CanDispatch(actionName string) bool {
	return d.router.CanRoute(actionName)
}

// Router returns the action router.
func (d *Dispatcher) Router() *Router {
	return d.router
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}
