package ops

import (
	"strings"

	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/input/key"
)

// ReplaceChar overwrites count characters at the caret with in (vim "r").
// A literal input is repeated count times; a line-break input replaces all
// count characters with a single break in the buffer's line ending.
// The caret keeps its offset and no register is written.
//
// If fewer than count characters remain before the end of the line the
// buffer is left untouched and false is returned.
func (e *Engine) ReplaceChar(in key.Input, count int) (bool, error) {
	const op = "ReplaceChar"
	if !in.IsValid() {
		return false, opError(op, ErrInvalidInput)
	}
	count = normalizeCount(count)

	st, err := e.read(op)
	if err != nil {
		return false, err
	}

	if count > st.snap.LineLen(st.line)-st.col {
		e.trace(op, "count %d exceeds line %d", count, st.line)
		return false, nil
	}

	var text string
	if in.IsLineBreak() {
		text = st.snap.LineEnding().Sequence()
	} else {
		r, _ := in.Rune()
		text = strings.Repeat(string(r), count)
	}

	if _, err := e.commit(op, st, change{
		edit:  buffer.NewReplace(st.offset, st.offset+count, text),
		caret: stay(st),
	}); err != nil {
		return false, err
	}

	e.trace(op, "replaced %d at %d with %s", count, st.offset, in)
	return true, nil
}
