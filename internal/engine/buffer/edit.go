package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Edit represents a text edit operation.
// It specifies a span to replace and the new text.
type Edit struct {
	Span    Span   // The span to replace
	NewText string // The replacement text
}

// NewEdit creates a new Edit.
func NewEdit(s Span, newText string) Edit {
	return Edit{Span: s, NewText: newText}
}

// NewInsert creates an Edit that inserts text at an offset.
func NewInsert(offset Offset, text string) Edit {
	return Edit{
		Span:    Span{Start: offset, End: offset},
		NewText: text,
	}
}

// NewDelete creates an Edit that deletes a span of text.
func NewDelete(start, end Offset) Edit {
	return Edit{
		Span: Span{Start: start, End: end},
	}
}

// NewReplace creates an Edit that replaces [start, end) with text.
func NewReplace(start, end Offset, text string) Edit {
	return Edit{
		Span:    Span{Start: start, End: end},
		NewText: text,
	}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Span.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Span.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Span.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Span.String(), e.NewText)
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Span.IsEmpty() && e.NewText == ""
}

// Delta returns the change in snapshot length caused by this edit.
func (e Edit) Delta() int {
	return utf8.RuneCountInString(e.NewText) - e.Span.Len()
}

// EditResult contains information about an applied edit.
type EditResult struct {
	OldSpan  Span       // The original span that was modified
	NewSpan  Span       // The span covered by the new text after the edit
	OldText  string     // The text that was replaced (if any)
	NewText  string     // The text actually inserted, after normalization
	Revision RevisionID // Revision of the snapshot the edit produced
	Snapshot *Snapshot  // The snapshot the edit produced
}

// Delta returns the change in length caused by the edit.
func (r EditResult) Delta() int {
	return r.NewSpan.Len() - r.OldSpan.Len()
}

// Inverse returns the edit that restores the text replaced by this result.
// It must be applied to the snapshot the result produced.
func (r EditResult) Inverse() Edit {
	return Edit{
		Span:    r.NewSpan,
		NewText: r.OldText,
	}
}
