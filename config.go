package replbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the bridge configuration. It can
// be populated from YAML or JSON; the zero-value inherits package defaults.
type Config struct {
	// SettingsURL addresses a settings document (afs URL) with per-resource
	// interpreter configuration; empty keeps the in-memory settings service.
	SettingsURL string `json:"settingsURL,omitempty" yaml:"settingsURL,omitempty"`
	// WorkspaceRoot anchors cross-drive comparison for file execution.
	WorkspaceRoot string `json:"workspaceRoot,omitempty" yaml:"workspaceRoot,omitempty"`
	// Title names terminals created for sessions.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// WarmupMs is how long a started interpreter gets before text is piped
	// to it; zero keeps the package default.
	WarmupMs int `json:"warmupMs,omitempty" yaml:"warmupMs,omitempty"`
	// Terminal configures the gosh-backed terminal manager; nil keeps the
	// in-memory manager (for hosts that render terminal traffic themselves).
	Terminal *TerminalConfig `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

// TerminalConfig selects the shell session target.
type TerminalConfig struct {
	HostURL     string            `json:"hostURL,omitempty" yaml:"hostURL,omitempty"`
	Credentials string            `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	Env         map[string]string `json:"env,omitempty" yaml:"env,omitempty"`
}

// Warmup returns the configured warm-up delay or zero when defaulted.
func (c *Config) Warmup() time.Duration {
	if c == nil {
		return 0
	}
	return time.Duration(c.WarmupMs) * time.Millisecond
}

// Validate returns an aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.WarmupMs < 0 {
		return fmt.Errorf("warmupMs must be >= 0")
	}
	return nil
}

// LoadConfig reads a Config from a YAML document addressed by an afs URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %v: %w", URL, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}
