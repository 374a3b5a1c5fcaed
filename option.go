package replbridge

import (
	"github.com/viant/x"

	"github.com/viant/replbridge/model/types"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/repl"
	"github.com/viant/replbridge/service/settings"
	"github.com/viant/replbridge/service/terminal"
)

// Option customises the bridge service.
type Option func(s *Service)

// WithConfig sets the bridge configuration.
func WithConfig(config *Config) Option {
	return func(s *Service) { s.config = config }
}

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

// WithControllerOptions forwards options to the session controller.
func WithControllerOptions(options ...repl.Option) Option {
	return func(s *Service) { s.controllerOptions = append(s.controllerOptions, options...) }
}

// WithExtensionTypes registers extra Go types with the action registry.
func WithExtensionTypes(goTypes ...*x.Type) Option {
	return func(s *Service) { s.extensionTypes = goTypes }
}

// WithExtensionServices registers extra action services.
func WithExtensionServices(services ...types.Service) Option {
	return func(s *Service) { s.extensionServices = services }
}
