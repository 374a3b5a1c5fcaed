package interpreter

import (
	"context"
	"strings"
	"sync"
)

// Registry is the default Service: explicit per-resource activation with
// longest prefix matching, like workspace folders activating an environment.
type Registry struct {
	active map[string]*Interpreter
	mux    sync.RWMutex
}

// NewRegistry creates an empty interpreter registry.
func NewRegistry() *Registry {
	return &Registry{active: make(map[string]*Interpreter)}
}

// Activate binds an interpreter to a resource path prefix; "" binds the
// unscoped default.
func (r *Registry) Activate(resourceKey string, interpreter *Interpreter) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.active[resourceKey] = interpreter
}

// Deactivate removes the binding for a resource path prefix.
func (r *Registry) Deactivate(resourceKey string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	delete(r.active, resourceKey)
}

// Active returns the interpreter bound to the longest matching prefix, or nil.
func (r *Registry) Active(ctx context.Context, resourceKey string) (*Interpreter, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	var match *Interpreter
	matchLen := -1
	for prefix, candidate := range r.active {
		if strings.HasPrefix(resourceKey, prefix) && len(prefix) > matchLen {
			match, matchLen = candidate, len(prefix)
		}
	}
	return match, nil
}
