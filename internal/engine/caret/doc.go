// Package caret tracks the single editing caret of a buffer.
//
// A Position is a plain value bound to one snapshot: it records the buffer
// identity and revision it was computed against, plus an offset and an
// optional count of virtual columns past the end of the buffer.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("foo\nbar")
//	c := caret.New(buf)
//
//	// Move to line 1, column 2
//	err := c.SetPoint(buffer.Point{Line: 1, Column: 2})
//
//	// After an edit, positions must be rebuilt from the new snapshot
//	res, _ := buf.Apply(buffer.NewInsert(0, "x"))
//	err = c.Set(caret.At(res.Snapshot, 0), false)
//
// Stale Positions:
//
// Set rejects a Position whose buffer or revision does not match the current
// snapshot with ErrStalePosition. Positions are never remapped across edits.
//
// Virtual Space:
//
// Virtual columns are only legal at the end of the last line, and only when
// the caller passes allowVirtualSpace.
package caret
