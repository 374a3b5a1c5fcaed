package memory

import (
	"context"
	"sync"

	"github.com/viant/replbridge/service/terminal"
)

// Service is a terminal.Manager producing recording terminals; it keeps every
// terminal it created so tests can inspect traffic after the fact.
type Service struct {
	*terminal.Service
	mux       sync.Mutex
	terminals map[string]*Terminal
}

// New creates an in-memory terminal manager.
func New() *Service {
	ret := &Service{terminals: make(map[string]*Terminal)}
	ret.Service = terminal.New(func(ctx context.Context, id, title string) (terminal.Handle, error) {
		handle := NewTerminal(id, title)
		ret.mux.Lock()
		ret.terminals[id] = handle
		ret.mux.Unlock()
		return handle, nil
	})
	return ret
}

// Terminal returns the recording terminal created for a resource key, or nil.
func (s *Service) Terminal(resourceKey string) *Terminal {
	if resourceKey == "" {
		resourceKey = "default"
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.terminals[resourceKey]
}
