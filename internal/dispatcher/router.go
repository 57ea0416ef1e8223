package dispatcher

import (
	"slices"
	"strings"
	"sync"

	"github.com/dshills/vimops/internal/dispatcher/handler"
)

// Router routes actions to handlers. Exact action names are checked first,
// then the namespace prefix ("editor" in "editor.pasteAfter").
type Router struct {
	mu sync.RWMutex

	// Exact action name handlers
	handlers map[string]handler.Handler

	// Namespace handlers (e.g., "editor" handles "editor.*")
	namespaces map[string]handler.NamespaceHandler
}

// NewRouter creates a new action router.
func NewRouter() *Router {
	return &Router{
		handlers:   make(map[string]handler.Handler),
		namespaces: make(map[string]handler.NamespaceHandler),
	}
}

// Register registers a handler for an exact action name, replacing any
// previous one.
func (r *Router) Register(actionName string, h handler.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[actionName] = h
}

// RegisterNamespace registers a handler for all actions in a namespace.
func (r *Router) RegisterNamespace(namespace string, h handler.NamespaceHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// Route finds the appropriate handler for an action.
// Returns nil if no handler is found.
func (r *Router) Route(actionName string) handler.Handler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.handlers[actionName]; ok {
		return h
	}

	namespace := extractNamespace(actionName)
	if namespace != "" {
		if h, ok := r.namespaces[namespace]; ok && h.CanHandle(actionName) {
			return handler.NewNamespaceAdapter(h)
		}
	}
	return nil
}

// CanRoute returns true if the router can handle the action.
func (r *Router) CanRoute(actionName string) bool {
	return r.Route(actionName) != nil
}

// Namespaces returns all registered namespace names in sorted order.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Handlers returns all exact action names in sorted order.
func (r *Router) Handlers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// extractNamespace extracts the namespace from "namespace.action" format.
// Returns empty string if no namespace separator is found.
func extractNamespace(actionName string) string {
	idx := strings.Index(actionName, ".")
	if idx < 0 {
		return ""
	}
	return actionName[:idx]
}

// ExtractActionName extracts the action name without namespace.
// For "editor.pasteAfter", returns "pasteAfter".
// For actions without namespace, returns the full name.
func ExtractActionName(fullName string) string {
	idx := strings.Index(fullName, ".")
	if idx < 0 {
		return fullName
	}
	return fullName[idx+1:]
}

// BuildActionName builds a full action name from namespace and action.
// For "editor" and "pasteAfter", returns "editor.pasteAfter".
func BuildActionName(namespace, action string) string {
	if namespace == "" {
		return action
	}
	return namespace + "." + action
}
