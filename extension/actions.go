package extension

import (
	"reflect"
	"sync"

	"github.com/viant/x"

	"github.com/viant/replbridge/model/types"
)

// Actions is the named action service registry a host dispatches through.
type Actions struct {
	types    *Types
	services map[string]types.Service
	mux      sync.RWMutex
}

func (s *Actions) Types() *Types {
	return s.types
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Services returns registered service names.
func (s *Actions) Services() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	ret := make([]string, 0, len(s.services))
	for name := range s.services {
		ret = append(ret, name)
	}
	return ret
}

// Register registers a service and the input/output types of its methods.
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	for _, signature := range service.Methods() {
		for _, rType := range []reflect.Type{signature.Input, signature.Output} {
			if rType == nil {
				continue
			}
			if rType.Kind() == reflect.Ptr {
				rType = rType.Elem()
			}
			s.types.Register(x.NewType(rType))
		}
	}
	s.services[service.Name()] = service
}

// NewActions creates a new action service registry.
func NewActions(goTypes ...*x.Type) *Actions {
	ret := &Actions{
		types:    NewTypes(),
		services: make(map[string]types.Service),
	}
	for _, t := range goTypes {
		if t != nil {
			ret.types.Register(t)
		}
	}
	return ret
}
