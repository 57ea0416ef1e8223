package editor

import (
	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
)

// Action names for delete operations.
const (
	ActionDeleteChar     = "editor.deleteChar"     // x - delete char under cursor
	ActionDeleteCharBack = "editor.deleteCharBack" // X - delete char before cursor
	ActionDeleteLine     = "editor.deleteLine"     // dd - delete entire line
)

// DeleteHandler handles text deletion operations.
type DeleteHandler struct{}

// NewDeleteHandler creates a new delete handler.
func NewDeleteHandler() *DeleteHandler {
	return &DeleteHandler{}
}

// Namespace returns the editor namespace.
func (h *DeleteHandler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *DeleteHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionDeleteChar, ActionDeleteCharBack, ActionDeleteLine:
		return true
	}
	return false
}

// HandleAction processes a delete action.
func (h *DeleteHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()
	reg := targetRegister(action, ctx)

	var (
		n   int
		err error
	)
	switch action.Name {
	case ActionDeleteChar:
		n, err = ctx.Ops.DeleteCharacterAtCursor(count, reg)
	case ActionDeleteCharBack:
		n, err = ctx.Ops.DeleteCharacterBeforeCursor(count, reg)
	case ActionDeleteLine:
		n, err = ctx.Ops.DeleteLines(count, reg)
	default:
		return handler.Errorf("unknown delete action: %s", action.Name)
	}

	if err != nil {
		return handler.Error(err)
	}
	if n == 0 {
		return handler.NoOpWithMessage("nothing to delete")
	}

	mirrorUnnamed(ctx, reg)
	return handler.SuccessWithCount(n).WithRegister(reg)
}
