package editor

import (
	"fmt"

	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
	"github.com/dshills/vimops/internal/input/key"
)

// ActionReplaceChar overwrites characters under the cursor (r).
const ActionReplaceChar = "editor.replaceChar"

// ReplaceHandler handles single-character replacement.
type ReplaceHandler struct{}

// NewReplaceHandler creates a new replace handler.
func NewReplaceHandler() *ReplaceHandler {
	return &ReplaceHandler{}
}

// Namespace returns the editor namespace.
func (h *ReplaceHandler) Namespace() string {
	return Namespace
}

// CanHandle returns true if this handler can process the action.
func (h *ReplaceHandler) CanHandle(actionName string) bool {
	return actionName == ActionReplaceChar
}

// HandleAction processes a replace action. The input comes from
// Args.Input, or from parsing Args.Key when Input is nil.
func (h *ReplaceHandler) HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result {
	if err := ctx.Validate(); err != nil {
		return handler.Error(err)
	}
	if action.Name != ActionReplaceChar {
		return handler.Errorf("unknown replace action: %s", action.Name)
	}

	in, err := replaceInput(action.Args)
	if err != nil {
		return handler.Error(err)
	}

	count := ctx.GetCount()
	ok, err := ctx.Ops.ReplaceChar(in, count)
	if err != nil {
		return handler.Error(err)
	}
	if !ok {
		return handler.NoOpWithMessage(fmt.Sprintf("fewer than %d characters to replace", count))
	}
	return handler.SuccessWithCount(count)
}

func replaceInput(args input.ActionArgs) (key.Input, error) {
	if args.Input != nil {
		return *args.Input, nil
	}
	if args.Key == "" {
		return key.Input{}, fmt.Errorf("replace: %w", key.ErrEmptySpec)
	}
	return key.ParseInput(args.Key)
}
