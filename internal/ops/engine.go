package ops

import (
	"errors"
	"fmt"

	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/logging"
	"github.com/dshills/vimops/internal/register"
)

// Text is the buffer an Engine edits. *buffer.Buffer satisfies it.
type Text interface {
	// Snapshot returns the current snapshot.
	Snapshot() *buffer.Snapshot

	// Apply applies one edit atomically and returns the result.
	Apply(edit buffer.Edit) (buffer.EditResult, error)
}

// Caret is the editing position an Engine reads and moves.
// *caret.Caret satisfies it.
type Caret interface {
	Position() caret.Position
	Set(pos caret.Position, allowVirtualSpace bool) error
}

// Registers is the register store an Engine writes.
// *register.MemoryStore satisfies it.
type Registers interface {
	Get(key rune) (register.Value, bool)
	Set(key rune, v register.Value) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. Operations are logged at debug level.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// Engine runs normal-mode operations against one buffer and caret.
type Engine struct {
	text  Text
	caret Caret
	regs  Registers
	log   *logging.Logger
}

// New creates an engine over text, c and regs.
func New(text Text, c Caret, regs Registers, opts ...Option) *Engine {
	e := &Engine{
		text:  text,
		caret: c,
		regs:  regs,
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithComponent("ops")
	return e
}

// Registers returns the register store the engine writes to.
func (e *Engine) Registers() Registers {
	return e.regs
}

// state is what an operation reads before it edits anything.
type state struct {
	snap   *buffer.Snapshot
	offset buffer.Offset
	line   int
	col    int
}

func (e *Engine) read(op string) (state, error) {
	snap := e.text.Snapshot()
	pos := e.caret.Position()
	if !pos.ValidFor(snap) {
		return state{}, opError(op, fmt.Errorf("%w: %s, snapshot revision %d",
			ErrStaleCaret, pos, snap.RevisionID()))
	}
	if pos.Offset < 0 || pos.Offset > snap.Len() {
		return state{}, opError(op, fmt.Errorf("%w: %d not in [0, %d]",
			caret.ErrOffsetOutOfRange, pos.Offset, snap.Len()))
	}

	pt := snap.OffsetToPoint(pos.Offset)
	return state{
		snap:   snap,
		offset: pos.Offset,
		line:   pt.Line,
		col:    pt.Column,
	}, nil
}

// change is one edit followed by a caret move and an optional register
// write.
type change struct {
	edit    buffer.Edit
	caret   func(res buffer.EditResult) caret.Position
	virtual bool
	reg     rune
	value   *register.Value
}

// commit applies ch. The register is written last; if the caret or the
// register rejects its update, the edit is reverted.
func (e *Engine) commit(op string, st state, ch change) (buffer.EditResult, error) {
	res, err := e.text.Apply(ch.edit)
	if err != nil {
		return buffer.EditResult{}, opError(op, err)
	}

	if err := e.caret.Set(ch.caret(res), ch.virtual); err != nil {
		return buffer.EditResult{}, opError(op, e.revert(res, st, err))
	}

	if ch.value != nil {
		if err := e.regs.Set(ch.reg, *ch.value); err != nil {
			return buffer.EditResult{}, opError(op, e.revert(res, st, err))
		}
	}
	return res, nil
}

// revert undoes res and puts the caret back at its original offset.
// It returns cause, joined with the revert failure if there was one.
func (e *Engine) revert(res buffer.EditResult, st state, cause error) error {
	undo, err := e.text.Apply(res.Inverse())
	if err != nil {
		e.log.Error("revert %s failed: %v", res.NewSpan, err)
		return errors.Join(cause, fmt.Errorf("revert: %w", err))
	}
	if err := e.caret.Set(caret.At(undo.Snapshot, st.offset), false); err != nil {
		e.log.Warn("restore caret to %d: %v", st.offset, err)
	}
	return cause
}

func (e *Engine) trace(op string, format string, args ...any) {
	if !e.log.Enabled(logging.LevelDebug) {
		return
	}
	e.log.WithField("op", op).Debug(format, args...)
}

// normalizeCount treats counts below one as one.
func normalizeCount(count int) int {
	if count < 1 {
		return 1
	}
	return count
}

func checkKey(op string, key rune) error {
	if !register.ValidKey(key) {
		return opError(op, fmt.Errorf("%w: %q", register.ErrInvalidKey, key))
	}
	return nil
}

func checkKind(op string, kind register.OperationKind) error {
	switch kind {
	case register.CharacterWise, register.LineWise:
		return nil
	default:
		return opError(op, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(kind)))
	}
}

// stay keeps the caret at the offset it had before the edit.
func stay(st state) func(buffer.EditResult) caret.Position {
	return func(res buffer.EditResult) caret.Position {
		return caret.At(res.Snapshot, st.offset)
	}
}

// moveTo puts the caret at a fixed offset of the new snapshot.
func moveTo(off buffer.Offset) func(buffer.EditResult) caret.Position {
	return func(res buffer.EditResult) caret.Position {
		return caret.At(res.Snapshot, off)
	}
}
