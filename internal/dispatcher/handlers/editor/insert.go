package editor

import (
	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
)

// Action names for line insertion.
const (
	ActionInsertLineAbove = "editor.insertLineAbove" // O - open line above
	ActionInsertLineBelow = "editor.insertLineBelow" // o - open line below
)

// InsertHandler opens new lines around the cursor.
type InsertHandler struct{}

// NewInsertHandler creates a new insert handler.
func NewInsertHandler() *InsertHandler {
	return &InsertHandler{}
}

// Namespace returns the editor namespace.
func (h *InsertHandler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *InsertHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionInsertLineAbove, ActionInsertLineBelow:
		return true
	}
	return false
}

// HandleAction processes an insert action. The count is ignored; one line
// is opened per action.
func (h *InsertHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	var err error
	switch action.Name {
	case ActionInsertLineAbove:
		err = ctx.Ops.InsertLineAbove()
	case ActionInsertLineBelow:
		err = ctx.Ops.InsertLineBelow()
	default:
		return handler.Errorf("unknown insert action: %s", action.Name)
	}

	if err != nil {
		return handler.Error(err)
	}
	return handler.SuccessWithCount(1)
}
