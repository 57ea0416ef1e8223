// Package key provides key event types, key notation parsing and input
// classification.
//
// This package defines:
//
//   - Key: identifies a keyboard key (special keys or runes)
//   - Modifier: modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: a single key press with modifiers
//   - Input: the text a key produces, a literal character or a line break
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Esc"
//   - With modifiers: "Ctrl+J", "Alt+x"
//   - Vim-style: "<CR>", "<NL>", "<C-j>", "<Space>"
//
// # Classification
//
// Classify decides what a replace command writes for a key. FromTcell
// converts terminal events so hosts built on tcell can feed it directly.
package key
