package ops

import (
	"strings"

	"github.com/dshills/vimops/internal/engine/buffer"
	"github.com/dshills/vimops/internal/engine/caret"
	"github.com/dshills/vimops/internal/register"
)

// YankLines copies count lines starting at the caret line into reg as
// line-wise text (vim "yy"). Lines are copied with their breaks; if the
// last copied line has none, one is added in the buffer's line ending.
// The buffer and caret are unchanged.
// It returns the number of lines copied.
func (e *Engine) YankLines(count int, reg rune) (int, error) {
	const op = "YankLines"
	count = normalizeCount(count)

	st, err := e.read(op)
	if err != nil {
		return 0, err
	}

	first, last := lineRange(st, count)
	value, err := yankValue(st.snap, first, last)
	if err != nil {
		return 0, opError(op, err)
	}
	if err := e.regs.Set(reg, value); err != nil {
		return 0, opError(op, err)
	}

	n := last - first + 1
	e.trace(op, "yanked lines %d..%d into %q", first, last, reg)
	return n, nil
}

// lineRange returns the lines covered by count starting at the caret line,
// clamped to the last line.
func lineRange(st state, count int) (first, last int) {
	first = st.line
	last = first + min(count-1, st.snap.LastLine()-first)
	return first, last
}

func yankValue(snap *buffer.Snapshot, first, last int) (register.Value, error) {
	text := snap.TextRange(snap.LineStart(first), snap.LineEndIncludingBreak(last))
	if snap.LineBreak(last) == buffer.BreakNone {
		text += snap.LineEnding().Sequence()
	}
	return register.NewValue(text, register.LineWise)
}

// PasteAfter inserts text repeated count times after the caret (vim "p").
//
// Character-wise text goes after the character under the caret, or at the
// caret when it sits at the end of its line. With moveCaret the caret ends
// just past the inserted text; otherwise it keeps its offset.
//
// Line-wise text goes below the caret line, each copy ending with a break.
// The caret moves to the start of the first pasted line and moveCaret is
// ignored.
//
// Empty text is a no-op. A paste larger than MaxPasteSize fails with
// ErrCountTooLarge and leaves the buffer unchanged.
func (e *Engine) PasteAfter(text string, count int, kind register.OperationKind, moveCaret bool) error {
	const op = "PasteAfter"
	if err := checkKind(op, kind); err != nil {
		return err
	}
	count = normalizeCount(count)
	if text == "" {
		e.trace(op, "empty text")
		return nil
	}

	size := len(text)
	if kind == register.LineWise {
		// Room for a break appended to each copy.
		size += len("\r\n")
	}
	if err := checkPasteSize(op, size, count); err != nil {
		return err
	}

	st, err := e.read(op)
	if err != nil {
		return err
	}

	switch kind {
	case register.CharacterWise:
		return e.pasteCharsAfter(op, st, text, count, moveCaret)
	case register.LineWise:
		return e.pasteLinesAfter(op, st, text, count)
	default:
		return checkKind(op, kind)
	}
}

func (e *Engine) pasteCharsAfter(op string, st state, text string, count int, moveCaret bool) error {
	at := st.offset
	if at < st.snap.LineEnd(st.line) {
		at++
	}

	res, err := e.commit(op, st, change{
		edit:    buffer.NewInsert(at, strings.Repeat(text, count)),
		caret:   pasteCaret(st, at, moveCaret),
		virtual: moveCaret,
	})
	if err != nil {
		return err
	}

	e.trace(op, "pasted %d chars at %d", res.NewSpan.Len(), at)
	return nil
}

func (e *Engine) pasteLinesAfter(op string, st state, text string, count int) error {
	le := st.snap.LineEnding()

	var b strings.Builder
	for i := 0; i < count; i++ {
		b.WriteString(text)
		if !buffer.HasTrailingBreak(text) {
			b.WriteString(le.Sequence())
		}
	}
	payload := b.String()

	var at, target buffer.Offset
	if st.line < st.snap.LastLine() {
		at = st.snap.LineStart(st.line + 1)
		target = at
	} else {
		// No line follows; open one at the end of the buffer instead.
		at = st.snap.Len()
		payload = le.Sequence() + trimTrailingBreak(payload)
		target = at + le.Break().Len()
	}

	if _, err := e.commit(op, st, change{
		edit:  buffer.NewInsert(at, payload),
		caret: moveTo(target),
	}); err != nil {
		return err
	}

	e.trace(op, "pasted %d copies below line %d", count, st.line)
	return nil
}

// PasteBefore inserts character-wise text repeated count times at the caret
// (vim "P"). With moveCaret the caret ends just past the inserted text;
// otherwise it keeps its offset. Empty text is a no-op. A paste larger than
// MaxPasteSize fails with ErrCountTooLarge.
func (e *Engine) PasteBefore(text string, count int, moveCaret bool) error {
	const op = "PasteBefore"
	count = normalizeCount(count)
	if text == "" {
		e.trace(op, "empty text")
		return nil
	}
	if err := checkPasteSize(op, len(text), count); err != nil {
		return err
	}

	st, err := e.read(op)
	if err != nil {
		return err
	}

	res, err := e.commit(op, st, change{
		edit:  buffer.NewInsert(st.offset, strings.Repeat(text, count)),
		caret: pasteCaret(st, st.offset, moveCaret),
	})
	if err != nil {
		return err
	}

	e.trace(op, "pasted %d chars at %d", res.NewSpan.Len(), st.offset)
	return nil
}

// pasteCaret places the caret after a character-wise paste at at.
func pasteCaret(st state, at buffer.Offset, moveCaret bool) func(buffer.EditResult) caret.Position {
	if !moveCaret {
		return stay(st)
	}
	return func(res buffer.EditResult) caret.Position {
		return caret.At(res.Snapshot, at+res.NewSpan.Len())
	}
}

func trimTrailingBreak(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	default:
		return s
	}
}
