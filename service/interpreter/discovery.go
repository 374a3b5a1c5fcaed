package interpreter

import (
	"context"
	"os/exec"
	"sync"
)

// Discovery finds an interpreter on PATH from a list of candidate names and
// serves it for every resource. It decorates another Service: an explicit
// activation always wins over a discovered one.
type Discovery struct {
	delegate Service
	names    []string
	once     sync.Once
	found    *Interpreter
}

// NewDiscovery creates a PATH-discovery service; delegate may be nil.
func NewDiscovery(delegate Service, names ...string) *Discovery {
	return &Discovery{delegate: delegate, names: names}
}

// Active returns the delegate's interpreter when present, otherwise the first
// candidate name found on PATH. Lookup runs once; absence is not an error.
func (d *Discovery) Active(ctx context.Context, resourceKey string) (*Interpreter, error) {
	if d.delegate != nil {
		active, err := d.delegate.Active(ctx, resourceKey)
		if err != nil || active != nil {
			return active, err
		}
	}
	d.once.Do(func() {
		for _, name := range d.names {
			if path, err := exec.LookPath(name); err == nil {
				d.found = &Interpreter{Path: path, DisplayName: name}
				return
			}
		}
	})
	return d.found, nil
}
