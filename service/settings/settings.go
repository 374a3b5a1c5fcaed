// Package settings resolves per-resource execution settings: which
// interpreter to fall back to, which arguments to launch it with, and whether
// file execution should happen in the file's directory.
package settings

import "context"

// Settings describes how the interpreter is launched for one resource.
type Settings struct {
	InterpreterPath  string   `yaml:"interpreterPath,omitempty" json:"interpreterPath,omitempty"`
	LaunchArgs       []string `yaml:"launchArgs,omitempty" json:"launchArgs,omitempty"`
	ExecuteInFileDir bool     `yaml:"executeInFileDir,omitempty" json:"executeInFileDir,omitempty"`
}

// Clone returns a deep copy so callers can mutate the result safely.
func (s *Settings) Clone() *Settings {
	if s == nil {
		return &Settings{}
	}
	ret := *s
	ret.LaunchArgs = append([]string(nil), s.LaunchArgs...)
	return &ret
}

// Service resolves settings for a resource key; "" denotes the unscoped
// default context. Absence of configuration is not an error: implementations
// return zero-value settings rather than failing.
type Service interface {
	Resolve(ctx context.Context, resourceKey string) (*Settings, error)
}
