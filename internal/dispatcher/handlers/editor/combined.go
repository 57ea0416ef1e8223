package editor

import (
	"github.com/dshills/vimops/internal/dispatcher/execctx"
	"github.com/dshills/vimops/internal/dispatcher/handler"
	"github.com/dshills/vimops/internal/input"
)

// Namespace is the action namespace served by this package.
const Namespace = "editor"

// actionHandler is one of the specialized editor handlers.
type actionHandler interface {
	CanHandle(actionName string) bool
	HandleAction(action input.Action, ctx *execctx.ExecutionContext) handler.Result
}

// CombinedHandler handles all editor operations by delegating to specialized handlers.
type CombinedHandler struct {
	*handler.BaseNamespaceHandler
}

// NewCombinedHandler creates a handler that combines all editor handlers.
func NewCombinedHandler() *CombinedHandler {
	h := &CombinedHandler{
		BaseNamespaceHandler: handler.NewBaseNamespaceHandler(Namespace),
	}

	subs := []actionHandler{
		NewDeleteHandler(),
		NewYankHandler(),
		NewInsertHandler(),
		NewReplaceHandler(),
	}
	for _, name := range Actions() {
		for _, sub := range subs {
			if sub.CanHandle(name) {
				h.Register(name, sub.HandleAction)
				break
			}
		}
	}
	return h
}

// Actions returns every action name the editor namespace handles.
func Actions() []string {
	return []string{
		ActionDeleteChar,
		ActionDeleteCharBack,
		ActionDeleteLine,
		ActionReplaceChar,
		ActionYankLine,
		ActionPasteAfter,
		ActionPasteBefore,
		ActionInsertLineAbove,
		ActionInsertLineBelow,
	}
}
