// Package repl bridges host execute commands to a persistent interactive
// interpreter session running in a terminal. It keeps at most one session per
// resource key, reconciles the terminal working directory before file
// execution and forwards source text to the interpreter prompt.
package repl

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/viant/replbridge/internal/clock"
	"github.com/viant/replbridge/internal/quote"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/settings"
	"github.com/viant/replbridge/service/terminal"
	"github.com/viant/replbridge/tracing"
)

// DefaultWarmup is how long a freshly started interpreter is given to present
// its input prompt before raw text is piped to it.
const DefaultWarmup = time.Second

// Platform captures the host platform semantics dispatch depends on.
type Platform struct {
	Windows bool
}

// Executable describes an interpreter invocation.
type Executable struct {
	Command string
	Args    []string
}

// FileArgsResolver builds the invocation used for whole-file execution. The
// default resolver reuses the interpreter invocation with the file appended;
// specialised hosts may substitute a different command entirely.
type FileArgsResolver func(ctx context.Context, service *Service, resourceKey string, extraArgs []string) (*Executable, error)

// launch tracks one in-flight or completed session start. done is closed
// exactly once; ready reports whether the interpreter was given its warm-up.
type launch struct {
	done  chan struct{}
	ready bool
}

// Service is the interactive session controller.
type Service struct {
	terminals     terminal.Manager
	settings      settings.Service
	interpreters  interpreter.Service
	platform      Platform
	workspaceRoot string
	quoteFunc     quote.Func
	title         string
	warmup        time.Duration
	fileArgs      FileArgsResolver

	mux                 sync.Mutex
	launches            map[string]*launch
	ranOutsideRootDrive bool
}

// New creates an interactive session controller.
func New(options ...Option) *Service {
	ret := &Service{
		settings: settings.NewStatic(&settings.Settings{}),
		platform: Platform{Windows: runtime.GOOS == "windows"},
		title:    "REPL",
		warmup:   DefaultWarmup,
		launches: make(map[string]*launch),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.terminals == nil {
		ret.terminals = terminal.New(func(ctx context.Context, id, title string) (terminal.Handle, error) {
			return nil, fmt.Errorf("no terminal manager configured")
		})
	}
	if ret.quoteFunc == nil {
		ret.quoteFunc = quote.For(ret.platform.Windows)
	}
	if ret.fileArgs == nil {
		ret.fileArgs = func(ctx context.Context, service *Service, resourceKey string, extraArgs []string) (*Executable, error) {
			return service.ResolveExecutable(ctx, resourceKey, extraArgs...)
		}
	}
	return ret
}

// InitializeSession starts the interpreter session for a resource key unless
// one is already running; it blocks through the warm-up delay.
func (s *Service) InitializeSession(ctx context.Context, resourceKey string) error {
	return s.ensureSession(ctx, resourceKey)
}

// ExecuteCode forwards raw source text to the resource's interpreter session,
// starting it first when needed. Blank input is silently ignored.
func (s *Service) ExecuteCode(ctx context.Context, code, resourceKey string) (err error) {
	if strings.TrimSpace(code) == "" {
		return nil
	}
	ctx, span := tracing.StartSpan(ctx, "repl.executeCode", "INTERNAL")
	span.WithAttributes(map[string]string{"resource": resourceKey})
	defer func() { tracing.EndSpan(span, err) }()

	if err = s.ensureSession(ctx, resourceKey); err != nil {
		return err
	}
	handle, err := s.terminals.Open(ctx, resourceKey, s.title)
	if err != nil {
		return err
	}
	return handle.SendText(ctx, code)
}

// ExecuteFile runs a whole file through the interpreter in the resource's
// terminal, adjusting the working directory first when configured to.
func (s *Service) ExecuteFile(ctx context.Context, file string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "repl.executeFile", "INTERNAL")
	span.WithAttributes(map[string]string{"file": file})
	defer func() { tracing.EndSpan(span, err) }()

	handle, err := s.terminals.Open(ctx, file, s.title)
	if err != nil {
		return err
	}
	if err = s.reconcileCwd(ctx, handle, file); err != nil {
		return err
	}
	executable, err := s.resolveFileArgs(ctx, file, s.quoteFunc(file))
	if err != nil {
		return err
	}
	_ = handle.Show(ctx)
	return handle.SendCommand(ctx, executable.Command, executable.Args...)
}

// ResolveExecutable derives the interpreter invocation for a resource key:
// the active interpreter wins over the configured fallback, launch arguments
// come before extras. Absence of any interpreter is not an error here; an
// unusable command surfaces later as a failed spawn in the terminal.
func (s *Service) ResolveExecutable(ctx context.Context, resourceKey string, extraArgs ...string) (*Executable, error) {
	config, err := s.settings.Resolve(ctx, resourceKey)
	if err != nil {
		return nil, err
	}
	command := config.InterpreterPath
	if s.interpreters != nil {
		active, err := s.interpreters.Active(ctx, resourceKey)
		if err != nil {
			return nil, err
		}
		if active != nil && active.Path != "" {
			command = active.Path
		}
	}
	if s.platform.Windows {
		command = strings.ReplaceAll(command, `\`, "/")
	}
	args := append(append([]string(nil), config.LaunchArgs...), extraArgs...)
	return &Executable{Command: command, Args: args}, nil
}

func (s *Service) resolveFileArgs(ctx context.Context, resourceKey string, extraArgs ...string) (*Executable, error) {
	return s.fileArgs(ctx, s, resourceKey, extraArgs)
}

// ensureSession is idempotent per resource key: concurrent callers observe
// the same in-flight launch and exactly one start command reaches the
// terminal per (key, terminal lifetime).
func (s *Service) ensureSession(ctx context.Context, resourceKey string) error {
	for {
		s.mux.Lock()
		if existing, ok := s.launches[resourceKey]; ok {
			s.mux.Unlock()
			select {
			case <-existing.done:
			case <-ctx.Done():
				return ctx.Err()
			}
			if existing.ready {
				handle, err := s.terminals.Open(ctx, resourceKey, s.title)
				if err != nil {
					return err
				}
				return handle.Show(ctx)
			}
			// The launch failed before warm-up; retry with a fresh one.
			continue
		}
		// Register before any suspension so concurrent callers join this
		// launch instead of starting their own.
		current := &launch{done: make(chan struct{})}
		s.launches[resourceKey] = current
		s.mux.Unlock()
		return s.startSession(ctx, resourceKey, current)
	}
}

func (s *Service) startSession(ctx context.Context, resourceKey string, current *launch) error {
	defer close(current.done)
	executable, err := s.ResolveExecutable(ctx, resourceKey)
	if err != nil {
		s.dropLaunch(resourceKey, current)
		return err
	}
	handle, err := s.terminals.Open(ctx, resourceKey, s.title)
	if err != nil {
		s.dropLaunch(resourceKey, current)
		return err
	}
	handle.OnClose(func() {
		s.dropLaunch(resourceKey, current)
	})
	_ = handle.Show(ctx)
	// Fire and forget: the interpreter's own errors surface in the terminal.
	_ = handle.SendCommand(ctx, executable.Command, executable.Args...)
	clock.Sleep(s.warmup)
	current.ready = true
	return nil
}

// dropLaunch removes the registry entry only when it still refers to the same
// launch, so a stale close notification cannot evict a fresh session.
func (s *Service) dropLaunch(resourceKey string, current *launch) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if existing, ok := s.launches[resourceKey]; ok && existing == current {
		delete(s.launches, resourceKey)
	}
}
