package ops

import (
	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/register"
)

// DeleteCharacterAtCursor deletes up to count characters starting at the
// caret, never past the end of the current line (vim "x"). The deleted text
// is written to reg as character-wise. The caret keeps its offset.
// It returns the number of characters deleted.
func (e *Engine) DeleteCharacterAtCursor(count int, reg rune) (int, error) {
	const op = "DeleteCharacterAtCursor"
	count = normalizeCount(count)
	if err := checkKey(op, reg); err != nil {
		return 0, err
	}

	st, err := e.read(op)
	if err != nil {
		return 0, err
	}

	n := min(count, st.snap.LineLen(st.line)-st.col)
	if n <= 0 {
		e.trace(op, "nothing to delete at %d", st.offset)
		return 0, nil
	}

	start, end := st.offset, st.offset+n
	value := register.Value{Text: st.snap.TextRange(start, end), Kind: register.CharacterWise}
	if _, err := e.commit(op, st, change{
		edit:  buffer.NewDelete(start, end),
		caret: stay(st),
		reg:   reg,
		value: &value,
	}); err != nil {
		return 0, err
	}

	e.trace(op, "deleted %d at %d into %q", n, start, reg)
	return n, nil
}

// DeleteCharacterBeforeCursor deletes up to count characters before the
// caret, never before the start of the current line (vim "X"). The deleted
// text is written to reg and the caret moves left by the number deleted.
// At column 0 nothing happens and 0 is returned.
func (e *Engine) DeleteCharacterBeforeCursor(count int, reg rune) (int, error) {
	const op = "DeleteCharacterBeforeCursor"
	count = normalizeCount(count)
	if err := checkKey(op, reg); err != nil {
		return 0, err
	}

	st, err := e.read(op)
	if err != nil {
		return 0, err
	}

	n := min(count, st.col)
	if n == 0 {
		e.trace(op, "at line start %d", st.line)
		return 0, nil
	}

	start, end := st.offset-n, st.offset
	value := register.Value{Text: st.snap.TextRange(start, end), Kind: register.CharacterWise}
	if _, err := e.commit(op, st, change{
		edit:  buffer.NewDelete(start, end),
		caret: moveTo(start),
		reg:   reg,
		value: &value,
	}); err != nil {
		return 0, err
	}

	e.trace(op, "deleted %d before %d into %q", n, end, reg)
	return n, nil
}

// DeleteLines deletes count lines starting at the caret line, including
// their breaks (vim "dd"). The lines are written to reg as line-wise text,
// exactly as YankLines would copy them. When the range reaches the last
// line, the break before it is removed so that no empty line is left
// behind. The caret moves to the start of the line now at the caret line,
// or of the last line if the range ran to the end.
// It returns the number of lines deleted.
func (e *Engine) DeleteLines(count int, reg rune) (int, error) {
	const op = "DeleteLines"
	count = normalizeCount(count)
	if err := checkKey(op, reg); err != nil {
		return 0, err
	}

	st, err := e.read(op)
	if err != nil {
		return 0, err
	}

	first, last := lineRange(st, count)
	value, err := yankValue(st.snap, first, last)
	if err != nil {
		return 0, opError(op, err)
	}

	start := st.snap.LineStart(first)
	end := st.snap.LineEndIncludingBreak(last)
	if last == st.snap.LastLine() && first > 0 {
		start = st.snap.LineEnd(first - 1)
	}

	if _, err := e.commit(op, st, change{
		edit: buffer.NewDelete(start, end),
		caret: func(res buffer.EditResult) caret.Position {
			line := min(first, res.Snapshot.LastLine())
			return caret.At(res.Snapshot, res.Snapshot.LineStart(line))
		},
		reg:   reg,
		value: &value,
	}); err != nil {
		return 0, err
	}

	n := last - first + 1
	e.trace(op, "deleted lines %d..%d into %q", first, last, reg)
	return n, nil
}
