// Package editor provides handlers for normal-mode editing actions.
//
// Each handler translates an action into one call on the operations engine
// and reports the outcome as a handler.Result. A precondition that does not
// hold (nothing to delete, replace past the line end, empty register) is a
// StatusNoOp result; an engine failure is StatusError.
//
// # Delete Operations
//
// The DeleteHandler type provides text deletion:
//   - editor.deleteChar (x): Delete characters under the cursor
//   - editor.deleteCharBack (X): Delete characters before the cursor
//   - editor.deleteLine (dd): Delete entire line(s)
//
// # Yank/Paste Operations
//
// The YankHandler type provides copy/paste functionality:
//   - editor.yankLine (yy): Yank entire line(s)
//   - editor.pasteAfter (p): Paste after the cursor, or below the line for line-wise text
//   - editor.pasteBefore (P): Paste at the cursor
//
// # Insert Operations
//
// The InsertHandler type opens new lines:
//   - editor.insertLineAbove (O): Open a line above the cursor
//   - editor.insertLineBelow (o): Open a line below the cursor
//
// # Replace Operations
//
// The ReplaceHandler type provides:
//   - editor.replaceChar (r): Overwrite characters under the cursor
//
// # Registers
//
// Actions that name no register use the context's default register. A
// yank or delete into a named register also updates the unnamed register,
// so a following plain paste sees the same text. Paste actions without
// explicit text read the register, including its kind.
//
// # Count Handling
//
// All operations support count prefixes via ctx.GetCount(); a count below
// one is treated as one.
package editor
