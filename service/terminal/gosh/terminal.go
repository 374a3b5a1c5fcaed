// Package gosh backs the terminal boundary with real shell sessions: a local
// PTY-style session by default, or a remote SSH session when the host URL
// points elsewhere. It is headless, so Show is a no-op.
package gosh

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs/url"
	"github.com/viant/gosh"
	"github.com/viant/gosh/runner"
	"github.com/viant/gosh/runner/local"
	rssh "github.com/viant/gosh/runner/ssh"
	"github.com/viant/scy/cred/secret"
	"golang.org/x/crypto/ssh"

	"github.com/viant/replbridge/service/terminal"
)

// Terminal adapts a gosh shell session to the terminal.Handle contract.
type Terminal struct {
	id          string
	title       string
	session     *gosh.Service
	sendTimeout time.Duration
	textTimeout time.Duration
	mux         sync.Mutex
	closed      bool
	onClose     []func()
}

func (t *Terminal) ID() string { return t.id }

func (t *Terminal) Title() string { return t.title }

// SendCommand runs an echoed shell command line in the session.
func (t *Terminal) SendCommand(ctx context.Context, command string, args ...string) error {
	if t.isClosed() {
		return terminal.ErrClosed
	}
	line := command
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	_, _, err := t.session.Run(ctx, line, runner.WithTimeout(int(t.sendTimeout.Milliseconds())))
	if err != nil {
		return fmt.Errorf("failed to run %q: %w", line, err)
	}
	return nil
}

// SendText delivers raw text to whatever process owns the prompt. An
// interactive interpreter never yields the prompt back to the shell, so the
// session cannot report completion; delivery is best effort with a short
// timeout and the result is discarded.
func (t *Terminal) SendText(ctx context.Context, text string) error {
	if t.isClosed() {
		return terminal.ErrClosed
	}
	_, _, _ = t.session.Run(ctx, text, runner.WithTimeout(int(t.textTimeout.Milliseconds())))
	return nil
}

// Show is a no-op: a gosh session has no window to bring to foreground.
func (t *Terminal) Show(ctx context.Context) error { return nil }

func (t *Terminal) OnClose(callback func()) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.onClose = append(t.onClose, callback)
}

// Close terminates the underlying session and notifies observers.
func (t *Terminal) Close() error {
	t.mux.Lock()
	if t.closed {
		t.mux.Unlock()
		return nil
	}
	t.closed = true
	callbacks := t.onClose
	t.onClose = nil
	t.mux.Unlock()
	err := t.session.Close()
	for _, callback := range callbacks {
		callback()
	}
	return err
}

func (t *Terminal) isClosed() bool {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.closed
}

func newSession(ctx context.Context, config *Config) (*gosh.Service, error) {
	var envOptions []runner.Option
	if len(config.Env) > 0 {
		envOptions = append(envOptions, runner.WithEnvironment(config.Env))
	}
	if url.Host(config.HostURL) == "localhost" {
		return gosh.New(ctx, local.New(envOptions...))
	}
	sshConfig, err := sshClientConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to get SSH config: %w", err)
	}
	sshHost := url.Host(config.HostURL)
	if !strings.Contains(sshHost, ":") {
		sshHost += ":22"
	}
	return gosh.New(ctx, rssh.New(sshHost, sshConfig, envOptions...))
}

func sshClientConfig(ctx context.Context, config *Config) (*ssh.ClientConfig, error) {
	credentials := config.Credentials
	if credentials == "" {
		credentials = "localhost"
	}
	secrets := secret.New()
	generic, err := secrets.GetCredentials(ctx, credentials)
	if err != nil {
		return nil, err
	}
	return generic.SSH.Config(ctx)
}
