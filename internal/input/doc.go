// Package input defines the actions that drive the editor.
//
// An Action names one editor command ("editor.pasteAfter"), its repeat
// count, and its arguments: the target register, paste text and kind, or
// the replace input. Actions are produced by a key binding layer, a script,
// or an API caller, and are executed by the dispatcher.
//
// Key events and their classification live in the key subpackage.
package input
