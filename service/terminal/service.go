package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Factory creates a concrete terminal handle for a resource.
type Factory func(ctx context.Context, id, title string) (Handle, error)

// Service is the default Manager: one handle per resource key, created on
// first use and dropped from the registry when the handle reports closure.
type Service struct {
	factory Factory
	handles map[string]Handle
	mux     sync.Mutex
}

// New creates a terminal manager backed by the supplied factory.
func New(factory Factory) *Service {
	return &Service{
		factory: factory,
		handles: make(map[string]Handle),
	}
}

// Open retrieves the terminal for resourceKey or creates a new one.
func (s *Service) Open(ctx context.Context, resourceKey, title string) (Handle, error) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if handle, ok := s.handles[resourceKey]; ok {
		return handle, nil
	}
	handle, err := s.factory(ctx, terminalID(resourceKey), title)
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal for %q: %w", resourceKey, err)
	}
	s.handles[resourceKey] = handle
	handle.OnClose(func() {
		s.mux.Lock()
		defer s.mux.Unlock()
		if current, ok := s.handles[resourceKey]; ok && current == handle {
			delete(s.handles, resourceKey)
		}
	})
	return handle, nil
}

// Close closes all handles held by this manager.
func (s *Service) Close(ctx context.Context) error {
	s.mux.Lock()
	handles := make([]Handle, 0, len(s.handles))
	for _, handle := range s.handles {
		handles = append(handles, handle)
	}
	s.handles = make(map[string]Handle)
	s.mux.Unlock()

	var errs []string
	for _, handle := range handles {
		if err := handle.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("failed to close terminal %s: %v", handle.ID(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing terminals: %s", strings.Join(errs, "; "))
	}
	return nil
}

func terminalID(resourceKey string) string {
	if resourceKey == "" {
		return "default"
	}
	return resourceKey
}
