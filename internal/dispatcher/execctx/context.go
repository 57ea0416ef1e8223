// Package execctx provides the execution context for action handlers.
package execctx

import (
	"github.com/dshills/vimops/internal/input/key"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/register"
)

// OpsInterface abstracts the normal-mode operations engine for handlers.
// *ops.Engine satisfies it.
type OpsInterface interface {
	DeleteCharacterAtCursor(count int, reg rune) (int, error)
	DeleteCharacterBeforeCursor(count int, reg rune) (int, error)
	DeleteLines(count int, reg rune) (int, error)
	ReplaceChar(in key.Input, count int) (bool, error)
	YankLines(count int, reg rune) (int, error)
	PasteAfter(text string, count int, kind register.OperationKind, moveCaret bool) error
	PasteBefore(text string, count int, moveCaret bool) error
	InsertLineAbove() error
	InsertLineBelow() error
}

// ExecutionContext provides handlers with everything needed to run one
// action.
type ExecutionContext struct {
	// Ops runs the editing operations.
	Ops OpsInterface

	// Registers is the store paste actions read from.
	Registers register.Store

	// DefaultRegister is used when an action names no register.
	DefaultRegister rune

	// Count is the repeat count for the action (default 1).
	Count int

	// Logger receives handler diagnostics.
	Logger *logging.Logger
}

// New creates a new execution context with defaults.
func New() *ExecutionContext {
	return &ExecutionContext{
		DefaultRegister: register.Unnamed,
		Count:           1,
		Logger:          logging.Nop(),
	}
}

// WithOps sets the operations engine and returns the context for chaining.
func (ctx *ExecutionContext) WithOps(ops OpsInterface) *ExecutionContext {
	ctx.Ops = ops
	return ctx
}

// WithRegisters sets the register store and returns the context for chaining.
func (ctx *ExecutionContext) WithRegisters(regs register.Store) *ExecutionContext {
	ctx.Registers = regs
	return ctx
}

// WithCount sets the repeat count and returns the context for chaining.
func (ctx *ExecutionContext) WithCount(count int) *ExecutionContext {
	if count > 0 {
		ctx.Count = count
	}
	return ctx
}

// GetCount returns the count, defaulting to 1 if not set.
func (ctx *ExecutionContext) GetCount() int {
	if ctx.Count <= 0 {
		return 1
	}
	return ctx.Count
}

// ResolveRegister returns reg, or the default register when reg is zero.
func (ctx *ExecutionContext) ResolveRegister(reg rune) rune {
	if reg != 0 {
		return reg
	}
	if ctx.DefaultRegister != 0 {
		return ctx.DefaultRegister
	}
	return register.Unnamed
}

// Validate checks that the context can run editing actions.
func (ctx *ExecutionContext) Validate() error {
	if ctx.Ops == nil {
		return ErrMissingOps
	}
	return nil
}

// ValidateForPaste checks that the context can resolve paste text.
func (ctx *ExecutionContext) ValidateForPaste() error {
	if err := ctx.Validate(); err != nil {
		return err
	}
	if ctx.Registers == nil {
		return ErrMissingRegisters
	}
	return nil
}
