package terminal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/replbridge/service/terminal/memory"
)

func TestService_OpenReuses(t *testing.T) {
	manager := memory.New()
	ctx := context.Background()

	first, err := manager.Open(ctx, "/ws/app", "REPL")
	assert.NoError(t, err)
	second, err := manager.Open(ctx, "/ws/app", "REPL")
	assert.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())

	other, err := manager.Open(ctx, "/ws/other", "REPL")
	assert.NoError(t, err)
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestService_CloseDropsHandle(t *testing.T) {
	manager := memory.New()
	ctx := context.Background()

	first, err := manager.Open(ctx, "/ws/app", "REPL")
	assert.NoError(t, err)
	assert.NoError(t, first.Close())

	second, err := manager.Open(ctx, "/ws/app", "REPL")
	assert.NoError(t, err)
	assert.NoError(t, second.SendText(ctx, "x"))

	// the first handle stays closed
	assert.Error(t, first.SendText(ctx, "y"))
}

func TestService_CloseAll(t *testing.T) {
	manager := memory.New()
	ctx := context.Background()

	first, err := manager.Open(ctx, "/ws/app", "REPL")
	assert.NoError(t, err)
	assert.NoError(t, manager.Close(ctx))
	assert.Error(t, first.SendCommand(ctx, "python3"))
}
