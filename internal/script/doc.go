// Package script runs Lua scripts against a buffer through the action
// dispatcher.
//
// Scripts run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. Four global tables are installed:
//
//	buf.text()            -- full buffer text
//	buf.lines()           -- table of line texts
//	buf.line(n)           -- text of line n (1-indexed)
//	buf.line_count()      -- number of lines
//
//	caret.get()           -- line (1-indexed), column (0-indexed)
//	caret.offset()        -- caret offset
//	caret.set(line, col)  -- move the caret
//
//	reg.get(key)          -- text, kind ("charwise" or "linewise"), or nil
//	reg.set(key, text[, kind])
//
//	ops.x(count[, reg])   ops.X(count[, reg])   ops.dd(count[, reg])
//	ops.yy(count[, reg])  ops.r(key[, count])
//	ops.p([count[, reg]]) ops.P([count[, reg]])
//	ops.O()               ops.o()
//	ops.dispatch(name[, args])
//
// ops.dispatch looks up a name without a namespace, such as "deleteChar",
// in the editor namespace. An unknown name raises ErrUnknownAction from
// the dispatcher package.
//
// Every ops function returns the result status ("ok" or "no-op"), the
// count the handler reported and its message. A failed action raises a
// Lua error.
//
// Example:
//
//	runner := script.NewRunner(d, buf, c, regs)
//	err := runner.Run(ctx, `ops.yy(2) ops.p()`)
package script
