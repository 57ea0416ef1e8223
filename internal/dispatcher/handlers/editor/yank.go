package editor

import (
	"fmt"

	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
)

// Action names for yank/paste operations.
const (
	ActionYankLine    = "editor.yankLine"    // yy - yank entire line
	ActionPasteAfter  = "editor.pasteAfter"  // p - paste after cursor
	ActionPasteBefore = "editor.pasteBefore" // P - paste before cursor
)

// YankHandler handles yank (copy) and paste operations.
type YankHandler struct{}

// NewYankHandler creates a new yank handler.
func NewYankHandler() *YankHandler {
	return &YankHandler{}
}

// Namespace returns the editor namespace.
func (h *YankHandler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *YankHandler) CanHandle(actionName string) bool {
	switch actionName {
	case ActionYankLine, ActionPasteAfter, ActionPasteBefore:
		return true
	}
	return false
}

// HandleAction processes a yank/paste action.
func (h *YankHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()
	reg := targetRegister(action, ctx)

	switch action.Name {
	case ActionYankLine:
		return h.yankLine(ctx, count, reg)
	case ActionPasteAfter, ActionPasteBefore:
		return h.paste(action, ctx, count, reg)
	default:
		return handler.Errorf("unknown yank action: %s", action.Name)
	}
}

// yankLine yanks count lines starting at the cursor line.
func (h *YankHandler) yankLine(ctx *execctx.ExecutionContext, count int, reg rune) handler.Result {
	n, err := ctx.Ops.YankLines(count, reg)
	if err != nil {
		return handler.Error(err)
	}

	mirrorUnnamed(ctx, reg)
	return handler.SuccessWithCount(n).
		WithRegister(reg).
		WithMessage(fmt.Sprintf("%d line(s) yanked", n))
}

// paste inserts the action's text, or the register's content when the
// action carries none.
func (h *YankHandler) paste(action input.Action, ctx *execctx.ExecutionContext, count int, reg rune) handler.Result {
	text, kind := action.Args.Text, action.Args.Kind
	var from rune
	if text == "" {
		if err := ctx.ValidateForPaste(); err != nil {
			return handler.Error(err)
		}
		v, ok := ctx.Registers.Get(reg)
		if !ok || v.IsEmpty() {
			return handler.NoOpWithMessage(fmt.Sprintf("register %q is empty", reg))
		}
		text, kind, from = v.Text, v.Kind, reg
	}

	var err error
	if action.Name == ActionPasteBefore {
		err = ctx.Ops.PasteBefore(text, count, action.Args.MoveCaret)
	} else {
		err = ctx.Ops.PasteAfter(text, count, kind, action.Args.MoveCaret)
	}
	if err != nil {
		return handler.Error(err)
	}

	return handler.SuccessWithCount(count).WithRegister(from)
}
