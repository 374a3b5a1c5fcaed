// Package interpreter tracks which interpreter is active for a resource. The
// bridge only needs the executable path; richer metadata travels along for
// hosts that surface it.
package interpreter

import "context"

// Interpreter describes an activated interpreter.
type Interpreter struct {
	Path         string `yaml:"path" json:"path"`
	Version      string `yaml:"version,omitempty" json:"version,omitempty"`
	DisplayName  string `yaml:"displayName,omitempty" json:"displayName,omitempty"`
	Virtualenv   bool   `yaml:"virtualenv,omitempty" json:"virtualenv,omitempty"`
	EnvActivated string `yaml:"envActivated,omitempty" json:"envActivated,omitempty"`
}

// Service reports the active interpreter for a resource key. A (nil, nil)
// return means no interpreter is active; callers fall back to configuration.
type Service interface {
	Active(ctx context.Context, resourceKey string) (*Interpreter, error)
}
