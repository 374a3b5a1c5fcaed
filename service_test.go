package replbridge_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/viant/replbridge"
	"github.com/viant/replbridge/service/interpreter"
	"github.com/viant/replbridge/service/repl"
	"github.com/viant/replbridge/service/settings"
	"github.com/viant/replbridge/service/terminal/memory"
)

func TestService_EndToEnd(t *testing.T) {
	terminals := memory.New()
	defaults := settings.NewStatic(&settings.Settings{
		InterpreterPath: "python3",
		LaunchArgs:      []string{"-q"},
	})
	interpreters := interpreter.NewRegistry()
	interpreters.Activate("/ws", &interpreter.Interpreter{Path: "/opt/venv/bin/python"})

	srv := replbridge.New(
		replbridge.WithTerminals(terminals),
		replbridge.WithSettings(defaults),
		replbridge.WithInterpreters(interpreters),
		replbridge.WithControllerOptions(repl.WithWarmup(time.Millisecond)),
	)
	ctx := context.Background()

	assert.NoError(t, srv.ExecuteCode(ctx, "print('hi')", "/ws/app"))
	handle := terminals.Terminal("/ws/app")
	if assert.NotNil(t, handle) {
		assert.Equal(t, []string{"/opt/venv/bin/python -q"}, handle.Commands())
		assert.Equal(t, []string{"print('hi')"}, handle.Texts())
	}
	assert.NoError(t, srv.Shutdown(ctx))
}

func TestService_ActionDispatch(t *testing.T) {
	terminals := memory.New()
	srv := replbridge.New(
		replbridge.WithTerminals(terminals),
		replbridge.WithSettings(settings.NewStatic(&settings.Settings{InterpreterPath: "python3"})),
		replbridge.WithControllerOptions(repl.WithWarmup(time.Millisecond)),
	)
	service := srv.Actions().Lookup(repl.Name)
	if !assert.NotNil(t, service) {
		return
	}
	method, err := service.Method("executeCode")
	assert.NoError(t, err)

	output := &repl.Output{}
	err = method(context.Background(), &repl.ExecuteCodeInput{Code: "1 + 1", ResourceKey: "/ws"}, output)
	assert.NoError(t, err)
	assert.True(t, output.Dispatched)

	output = &repl.Output{}
	err = method(context.Background(), &repl.ExecuteCodeInput{Code: "   ", ResourceKey: "/ws"}, output)
	assert.NoError(t, err)
	assert.False(t, output.Dispatched)
}

func TestLoadConfig(t *testing.T) {
	const document = `
settingsURL: mem://localhost/replbridge/settings.yaml
workspaceRoot: /ws
title: Python REPL
warmupMs: 1500
`
	fs := afs.New()
	ctx := context.Background()
	URL := "mem://localhost/replbridge/config.yaml"
	assert.NoError(t, fs.Upload(ctx, URL, 0644, strings.NewReader(document)))

	config, err := replbridge.LoadConfig(ctx, URL)
	assert.NoError(t, err)
	assert.Equal(t, "/ws", config.WorkspaceRoot)
	assert.Equal(t, 1500*time.Millisecond, config.Warmup())

	srv, err := replbridge.NewFromConfig(config, replbridge.WithTerminals(memory.New()))
	assert.NoError(t, err)
	assert.NotNil(t, srv.Controller())
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, (&replbridge.Config{}).Validate())
	assert.Error(t, (&replbridge.Config{WarmupMs: -1}).Validate())
}
