// Package register implements the register store used by yank, delete and
// paste operations.
//
// A register is addressed by a single printable, non-space rune; case
// matters. Each register holds a Value: text plus the OperationKind that
// decides how the text is pasted. Line-wise values always end with a line
// break.
//
// Basic usage:
//
//	regs := register.NewMemoryStore()
//
//	v, _ := register.NewValue("foo", register.LineWise) // "foo\n"
//	_ = regs.Set('a', v)
//
//	got, ok := regs.Get('a')
//
// System Clipboard:
//
// WithClipboard routes a set of keys (usually '+' and '*') to a
// ClipboardProvider. SystemClipboard backs it with the host clipboard.
package register
