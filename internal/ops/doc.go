// Package ops implements the normal-mode editing operations of a modal
// editor: character delete, replace, line yank, paste and line insertion.
//
// An Engine binds one text buffer, one caret and a register store. Each
// operation reads the current snapshot and caret once, applies at most one
// edit, moves the caret and writes a register. Operations are all-or-nothing:
// when a later step fails the edit is reverted and the error is returned.
//
// Preconditions that do not hold are reported through the return value
// (false or a count of 0), not through an error. Errors are reserved for
// collaborator failures such as a stale caret or a rejected register write.
//
// An Engine is not safe for concurrent use against the same buffer and
// caret; callers serialize commands.
package ops
