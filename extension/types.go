package extension

import (
	"github.com/viant/x"
)

// Types registers the Go types action inputs and outputs are built from so a
// host can look them up by name when decoding palette invocations.
type Types struct {
	x.Registry
}

// Register adds a data type to the registry
func (t *Types) Register(dataType *x.Type) {
	t.Registry.Register(dataType)
}

// Lookup returns a data type from the registry
func (t *Types) Lookup(dataType string) *x.Type {
	return t.Registry.Lookup(dataType)
}

// NewTypes creates a new types registry.
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{Registry: *x.NewRegistry(options...)}
}
