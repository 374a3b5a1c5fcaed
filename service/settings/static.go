package settings

import (
	"context"
	"strings"
	"sync"
)

// Static serves settings from memory: an optional default plus per-resource
// overrides matched by longest path prefix.
type Static struct {
	defaults  *Settings
	resources map[string]*Settings
	mux       sync.RWMutex
}

// NewStatic creates an in-memory settings service.
func NewStatic(defaults *Settings) *Static {
	return &Static{
		defaults:  defaults,
		resources: make(map[string]*Settings),
	}
}

// Set registers settings for a resource path prefix.
func (s *Static) Set(resourceKey string, settings *Settings) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.resources[resourceKey] = settings
}

// Resolve returns the override with the longest matching prefix, falling back
// to the defaults and finally to zero-value settings.
func (s *Static) Resolve(ctx context.Context, resourceKey string) (*Settings, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()
	var match *Settings
	matchLen := -1
	for prefix, candidate := range s.resources {
		if strings.HasPrefix(resourceKey, prefix) && len(prefix) > matchLen {
			match, matchLen = candidate, len(prefix)
		}
	}
	if match == nil {
		match = s.defaults
	}
	return match.Clone(), nil
}
