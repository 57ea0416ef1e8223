package ops

import (
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
)

// InsertLineAbove opens an empty line above the caret line and moves the
// caret to its start (vim "O"). The caret is never left in virtual space.
func (e *Engine) InsertLineAbove() error {
	const op = "InsertLineAbove"
	st, err := e.read(op)
	if err != nil {
		return err
	}

	at := st.snap.LineStart(st.line)
	if _, err := e.commit(op, st, change{
		edit: buffer.NewInsert(at, st.snap.LineEnding().Sequence()),
		caret: func(res buffer.EditResult) caret.Position {
			return caret.At(res.Snapshot, res.Snapshot.LineStart(st.line))
		},
	}); err != nil {
		return err
	}

	e.trace(op, "opened line %d", st.line)
	return nil
}

// InsertLineBelow opens an empty line below the caret line and moves the
// caret to its start (vim "o").
func (e *Engine) InsertLineBelow() error {
	const op = "InsertLineBelow"
	st, err := e.read(op)
	if err != nil {
		return err
	}

	at := st.snap.LineEnd(st.line)
	if _, err := e.commit(op, st, change{
		edit: buffer.NewInsert(at, st.snap.LineEnding().Sequence()),
		caret: func(res buffer.EditResult) caret.Position {
			return caret.At(res.Snapshot, res.Snapshot.LineStart(st.line+1))
		},
	}); err != nil {
		return err
	}

	e.trace(op, "opened line %d", st.line+1)
	return nil
}
