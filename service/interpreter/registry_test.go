package interpreter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Active(t *testing.T) {
	registry := NewRegistry()
	registry.Activate("", &Interpreter{Path: "python3"})
	registry.Activate("/ws/app", &Interpreter{Path: "/opt/app/venv/bin/python", Virtualenv: true})
	ctx := context.Background()

	active, err := registry.Active(ctx, "/ws/app/main.py")
	assert.NoError(t, err)
	if assert.NotNil(t, active) {
		assert.Equal(t, "/opt/app/venv/bin/python", active.Path)
		assert.True(t, active.Virtualenv)
	}

	active, err = registry.Active(ctx, "/elsewhere/main.py")
	assert.NoError(t, err)
	if assert.NotNil(t, active) {
		assert.Equal(t, "python3", active.Path)
	}

	registry.Deactivate("/ws/app")
	active, err = registry.Active(ctx, "/ws/app/main.py")
	assert.NoError(t, err)
	if assert.NotNil(t, active) {
		assert.Equal(t, "python3", active.Path)
	}
}

func TestRegistry_NoActivation(t *testing.T) {
	registry := NewRegistry()
	active, err := registry.Active(context.Background(), "/ws/main.py")
	assert.NoError(t, err)
	assert.Nil(t, active)
}

func TestDiscovery_DelegateWins(t *testing.T) {
	delegate := NewRegistry()
	delegate.Activate("", &Interpreter{Path: "/opt/python"})
	discovery := NewDiscovery(delegate, "definitely-not-a-real-binary")

	active, err := discovery.Active(context.Background(), "")
	assert.NoError(t, err)
	if assert.NotNil(t, active) {
		assert.Equal(t, "/opt/python", active.Path)
	}
}

func TestDiscovery_NothingFound(t *testing.T) {
	discovery := NewDiscovery(nil, "definitely-not-a-real-binary")
	active, err := discovery.Active(context.Background(), "")
	assert.NoError(t, err)
	assert.Nil(t, active)
}

func TestDiscovery_FindsOnPath(t *testing.T) {
	// sh is present on any unix-like CI box
	discovery := NewDiscovery(nil, "definitely-not-a-real-binary", "sh")
	active, err := discovery.Active(context.Background(), "")
	assert.NoError(t, err)
	if assert.NotNil(t, active) {
		assert.Equal(t, "sh", active.DisplayName)
		assert.NotEmpty(t, active.Path)
	}
}
