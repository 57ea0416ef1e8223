// Package dispatcher routes actions to handlers and coordinates execution.
//
// The dispatcher connects resolved commands to the operations engine. It
// receives an input.Action, finds its handler by exact name or by namespace
// prefix ("editor" in "editor.pasteAfter"), builds an ExecutionContext and
// runs the handler.
//
// # Handler Execution
//
// When an action is dispatched:
//
//  1. The router finds the appropriate handler
//  2. The repeat count is clamped to Config.MaxRepeatCount
//  3. An ExecutionContext is built with the engine, registers and count
//  4. The handler is executed (with optional panic recovery)
//  5. Metrics are recorded (if enabled)
//
// Dispatch calls are serialized. Unknown actions and handler failures are
// reported as results with StatusError; Dispatch itself does not return an
// error.
//
// # Usage
//
//	d := dispatcher.New(engine, registers, dispatcher.DefaultConfig())
//	d.RegisterNamespace("editor", editor.NewCombinedHandler())
//
//	result := d.Dispatch(input.Action{Name: "editor.deleteChar", Count: 3})
//	if result.IsError() {
//	    // ...
//	}
package dispatcher
