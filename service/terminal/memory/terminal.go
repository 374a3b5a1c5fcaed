// Package memory provides an in-process terminal implementation that records
// every interaction. It backs tests and hosts that render terminal traffic
// themselves.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/viant/replbridge/internal/idgen"
	"github.com/viant/replbridge/service/terminal"
)

// Terminal records commands and text sent to it.
type Terminal struct {
	id       string
	title    string
	mux      sync.Mutex
	commands []string
	texts    []string
	shown    int
	closed   bool
	onClose  []func()
}

// NewTerminal creates a recording terminal.
func NewTerminal(id, title string) *Terminal {
	if id == "" {
		id = idgen.New()
	}
	return &Terminal{id: id, title: title}
}

func (t *Terminal) ID() string { return t.id }

func (t *Terminal) Title() string { return t.title }

// SendCommand records an echoed shell command line.
func (t *Terminal) SendCommand(ctx context.Context, command string, args ...string) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.closed {
		return terminal.ErrClosed
	}
	line := command
	if len(args) > 0 {
		line += " " + strings.Join(args, " ")
	}
	t.commands = append(t.commands, line)
	return nil
}

// SendText records raw text delivered to the foreground process.
func (t *Terminal) SendText(ctx context.Context, text string) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	if t.closed {
		return terminal.ErrClosed
	}
	t.texts = append(t.texts, text)
	return nil
}

func (t *Terminal) Show(ctx context.Context) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.shown++
	return nil
}

// OnClose registers a closure callback; it fires at most once.
func (t *Terminal) OnClose(callback func()) {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.onClose = append(t.onClose, callback)
}

// Close marks the terminal closed and notifies observers.
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
	for _, callback := range callbacks {
		callback()
	}
	return nil
}

// Commands returns a copy of the recorded command lines.
func (t *Terminal) Commands() []string {
	t.mux.Lock()
	defer t.mux.Unlock()
	return append([]string(nil), t.commands...)
}

// Texts returns a copy of the recorded raw text sends.
func (t *Terminal) Texts() []string {
	t.mux.Lock()
	defer t.mux.Unlock()
	return append([]string(nil), t.texts...)
}

// ShowCount returns how many times the terminal was brought to foreground.
func (t *Terminal) ShowCount() int {
	t.mux.Lock()
	defer t.mux.Unlock()
	return t.shown
}
