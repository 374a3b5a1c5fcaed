package repl

import (
	"time"

	"github.com/viant/replbridge/internal/quote"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/settings"
	"github.com/viant/replbridge/service/terminal"
)

// Option customises the session controller.
type Option func(s *Service)

// WithTerminals sets the terminal manager.
func WithTerminals(manager terminal.Manager) Option {
	return func(s *Service) { s.terminals = manager }
}

// WithSettings sets the settings service.
func WithSettings(service settings.Service) Option {
	return func(s *Service) { s.settings = service }
}

// WithInterpreters sets the active interpreter lookup.
func WithInterpreters(service interpreter.Service) Option {
	return func(s *Service) { s.interpreters = service }
}

// WithPlatform overrides platform detection; tests use it to exercise
// Windows drive semantics on any build platform.
func WithPlatform(platform Platform) Option {
	return func(s *Service) { s.platform = platform }
}

// WithWorkspaceRoot sets the workspace root path used for drive comparison.
func WithWorkspaceRoot(root string) Option {
	return func(s *Service) { s.workspaceRoot = root }
}

// WithQuote overrides the command-argument quoting function.
func WithQuote(fn quote.Func) Option {
	return func(s *Service) { s.quoteFunc = fn }
}

// WithTitle sets the terminal title used for sessions.
func WithTitle(title string) Option {
	return func(s *Service) { s.title = title }
}

// WithWarmup sets the interpreter warm-up delay.
func WithWarmup(delay time.Duration) Option {
	return func(s *Service) { s.warmup = delay }
}

// WithFileArgsResolver substitutes how file-execution invocations are built;
// this is the controller's only extension point.
func WithFileArgsResolver(resolver FileArgsResolver) Option {
	return func(s *Service) { s.fileArgs = resolver }
}
