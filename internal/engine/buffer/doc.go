// Package buffer provides the versioned text buffer used by the normal-mode
// operations engine.
//
// The package provides:
//
//   - Snapshot: an immutable, fully addressable view of the text at one edit
//     generation
//   - Buffer: a thread-safe holder of the current Snapshot that applies edits
//     atomically and normalizes line endings
//   - Offset, Point and Span coordinate types measured in characters (runes)
//   - Per-line break tracking (LF, CRLF, CR, or none on the last line)
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("foo\nbar")
//	snap := buf.Snapshot()
//
//	// Delete "f"
//	res, err := buf.Apply(buffer.NewDelete(0, 1))
//
//	// snap still reads "foo\nbar"; buf.Snapshot() reads "oo\nbar"
//	_ = snap.LineText(0)
//
//	// Undo the edit
//	_, err = buf.Apply(res.Inverse())
//
// Offsets:
//
// An Offset is an absolute character position inside one Snapshot. A CRLF
// break occupies two positions. Offsets are never remapped when a new
// Snapshot is produced; callers re-read positions from the new Snapshot.
//
// Thread Safety:
//
// Snapshots are immutable and safe to share. Buffer methods take a read or
// write lock; Apply is all-or-nothing.
package buffer
