package gosh

import (
	"context"
	"time"

	"github.com/viant/replbridge/internal/idgen"
	"github.com/viant/replbridge/service/terminal"
)

// Config controls how shell sessions are created.
type Config struct {
	// HostURL selects the target system, e.g. "bash://localhost/" or
	// "ssh://build-host/". Anything other than localhost goes through SSH.
	HostURL string
	// Credentials names the scy secret resource used for SSH access.
	Credentials string
	Env         map[string]string
	// SendTimeout bounds command sends; defaults to one minute.
	SendTimeout time.Duration
	// TextTimeout bounds best-effort raw text sends; defaults to one second.
	TextTimeout time.Duration
}

func (c *Config) init() {
	if c.HostURL == "" {
		c.HostURL = "bash://localhost/"
	}
	if c.SendTimeout == 0 {
		c.SendTimeout = time.Minute
	}
	if c.TextTimeout == 0 {
		c.TextTimeout = time.Second
	}
}

// New creates a terminal manager producing gosh-backed terminals.
func New(config *Config) *terminal.Service {
	if config == nil {
		config = &Config{}
	}
	config.init()
	return terminal.New(func(ctx context.Context, id, title string) (terminal.Handle, error) {
		session, err := newSession(ctx, config)
		if err != nil {
			return nil, err
		}
		if id == "" {
			id = idgen.New()
		}
		return &Terminal{
			id:          id,
			title:       title,
			session:     session,
			sendTimeout: config.SendTimeout,
			textTimeout: config.TextTimeout,
		}, nil
	})
}
