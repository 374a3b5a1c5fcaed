package replbridge

import (
	"context"

	"github.com/viant/x"

	"github.com/viant/replbridge/extension"
	"github.com/viant/replbridge/model/types"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/repl"
	"github.com/viant/replbridge/service/settings"
	"github.com/viant/replbridge/service/terminal"
	tgosh "github.com/viant/replbridge/service/terminal/gosh"
	tmemory "github.com/viant/replbridge/service/terminal/memory"
)

// Service is the bridge façade: it owns the session controller, its
// collaborators and the action registry hosts dispatch through.
type Service struct {
	config            *Config
	controller        *repl.Service
	actions           *extension.Actions
	terminals         terminal.Manager
	settings          settings.Service
	interpreters      interpreter.Service
	controllerOptions []repl.Option
	extensionTypes    []*x.Type
	extensionServices []types.Service
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	controllerOptions := append([]repl.Option{
		repl.WithTerminals(s.terminals),
		repl.WithSettings(s.settings),
		repl.WithInterpreters(s.interpreters),
		repl.WithWorkspaceRoot(s.config.WorkspaceRoot),
	}, s.controllerOptions...)
	if s.config.Title != "" {
		controllerOptions = append(controllerOptions, repl.WithTitle(s.config.Title))
	}
	if warmup := s.config.Warmup(); warmup > 0 {
		controllerOptions = append(controllerOptions, repl.WithWarmup(warmup))
	}
	s.controller = repl.New(controllerOptions...)
	s.actions = extension.NewActions(s.extensionTypes...)
	s.actions.Register(s.controller)
	for _, service := range s.extensionServices {
		s.actions.Register(service)
	}
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = &Config{}
	}
	if s.settings == nil {
		if s.config.SettingsURL != "" {
			s.settings = settings.NewDocument(s.config.SettingsURL)
		} else {
			s.settings = settings.NewStatic(&settings.Settings{})
		}
	}
	if s.interpreters == nil {
		s.interpreters = interpreter.NewRegistry()
	}
	if s.terminals == nil {
		if s.config.Terminal != nil {
			s.terminals = tgosh.New(&tgosh.Config{
				HostURL:     s.config.Terminal.HostURL,
				Credentials: s.config.Terminal.Credentials,
				Env:         s.config.Terminal.Env,
			})
		} else {
			s.terminals = tmemory.New()
		}
	}
}

// Controller returns the interactive session controller.
func (s *Service) Controller() *repl.Service {
	return s.controller
}

// Actions returns the action registry.
func (s *Service) Actions() *extension.Actions {
	return s.actions
}

// Terminals returns the terminal manager.
func (s *Service) Terminals() terminal.Manager {
	return s.terminals
}

// ExecuteFile runs a file through the interpreter in the file's terminal.
func (s *Service) ExecuteFile(ctx context.Context, file string) error {
	return s.controller.ExecuteFile(ctx, file)
}

// ExecuteCode pipes source text to the resource's interpreter session.
func (s *Service) ExecuteCode(ctx context.Context, code, resourceKey string) error {
	return s.controller.ExecuteCode(ctx, code, resourceKey)
}

// InitializeSession starts a session ahead of use.
func (s *Service) InitializeSession(ctx context.Context, resourceKey string) error {
	return s.controller.InitializeSession(ctx, resourceKey)
}

// Shutdown closes all terminals held by the bridge.
func (s *Service) Shutdown(ctx context.Context) error {
	return s.terminals.Close(ctx)
}

// RegisterExtensionTypes registers additional Go types with the registry.
func (s *Service) RegisterExtensionTypes(goTypes ...*x.Type) {
	for i := range goTypes {
		s.actions.Types().Register(goTypes[i])
	}
}

// RegisterExtensionServices registers additional action services.
func (s *Service) RegisterExtensionServices(services ...types.Service) {
	for i := range services {
		s.actions.Register(services[i])
	}
}

// New creates a bridge service.
func New(options ...Option) *Service {
	ret := &Service{}
	ret.init(options)
	return ret
}

// NewFromConfig creates a bridge service from a loaded configuration.
func NewFromConfig(config *Config, options ...Option) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return New(append([]Option{WithConfig(config)}, options...)...), nil
}
