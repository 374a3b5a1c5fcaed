// Package terminal defines the host terminal boundary: a Handle abstracts one
// terminal widget or shell session, a Manager hands out handles keyed by
// resource so every execution context keeps talking to the same terminal.
package terminal

import (
	"context"
	"errors"
)

// ErrClosed is returned when sending to a terminal that has been closed.
var ErrClosed = errors.New("terminal closed")

// Handle represents a single terminal attached to a resource. The two send
// channels are distinct: SendCommand is an echoed shell command line, SendText
// delivers raw characters to whatever process currently owns the prompt.
type Handle interface {
	ID() string
	Title() string
	SendCommand(ctx context.Context, command string, args ...string) error
	SendText(ctx context.Context, text string) error
	Show(ctx context.Context) error
	OnClose(callback func())
	Close() error
}

// Manager creates or reuses terminals keyed by resource.
type Manager interface {
	Open(ctx context.Context, resourceKey, title string) (Handle, error)
	Close(ctx context.Context) error
}
