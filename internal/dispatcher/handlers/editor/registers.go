package editor

import (
	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/register"
)

// targetRegister returns the register an action writes or reads.
func targetRegister(action input.Action, ctx *execctx.ExecutionContext) rune {
	return ctx.ResolveRegister(action.Args.Register)
}

// mirrorUnnamed copies reg into the unnamed register after a yank or
// delete. A failure is logged, not returned; the primary write succeeded.
func mirrorUnnamed(ctx *execctx.ExecutionContext, reg rune) {
	if reg == register.Unnamed || ctx.Registers == nil {
		return
	}
	v, ok := ctx.Registers.Get(reg)
	if !ok {
		return
	}
	if err := ctx.Registers.Set(register.Unnamed, v); err != nil {
		ctx.Logger.Warn("mirror register %q: %v", reg, err)
	}
}
