package settings

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

func TestStatic_Resolve(t *testing.T) {
	service := NewStatic(&Settings{InterpreterPath: "python3"})
	service.Set("/ws/app", &Settings{InterpreterPath: "/opt/app/venv/bin/python"})
	service.Set("/ws", &Settings{InterpreterPath: "/usr/bin/python3", ExecuteInFileDir: true})
	ctx := context.Background()

	testCases := []struct {
		name        string
		resourceKey string
		expectPath  string
	}{
		{name: "longest prefix wins", resourceKey: "/ws/app/main.py", expectPath: "/opt/app/venv/bin/python"},
		{name: "shorter prefix", resourceKey: "/ws/other/main.py", expectPath: "/usr/bin/python3"},
		{name: "defaults", resourceKey: "/elsewhere/main.py", expectPath: "python3"},
		{name: "unscoped sentinel", resourceKey: "", expectPath: "python3"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := service.Resolve(ctx, tc.resourceKey)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectPath, resolved.InterpreterPath)
		})
	}
}

func TestStatic_ResolveClones(t *testing.T) {
	service := NewStatic(&Settings{LaunchArgs: []string{"-q"}})
	resolved, err := service.Resolve(context.Background(), "")
	assert.NoError(t, err)
	resolved.LaunchArgs[0] = "-X"

	again, err := service.Resolve(context.Background(), "")
	assert.NoError(t, err)
	assert.Equal(t, []string{"-q"}, again.LaunchArgs)
}

func TestDocumentService_Resolve(t *testing.T) {
	const document = `
defaults:
  interpreterPath: python3
  launchArgs: ["-q"]
resources:
  /ws/app:
    interpreterPath: ${env.APP_PYTHON}
    executeInFileDir: true
`
	fs := afs.New()
	ctx := context.Background()
	URL := "mem://localhost/replbridge/settings.yaml"
	err := fs.Upload(ctx, URL, 0644, strings.NewReader(document))
	assert.NoError(t, err)

	os.Setenv("APP_PYTHON", "/opt/app/bin/python")
	defer os.Unsetenv("APP_PYTHON")

	service := NewDocument(URL)

	resolved, err := service.Resolve(ctx, "/ws/app/main.py")
	assert.NoError(t, err)
	assert.Equal(t, "/opt/app/bin/python", resolved.InterpreterPath)
	assert.True(t, resolved.ExecuteInFileDir)

	resolved, err = service.Resolve(ctx, "/elsewhere.py")
	assert.NoError(t, err)
	assert.Equal(t, "python3", resolved.InterpreterPath)
	assert.Equal(t, []string{"-q"}, resolved.LaunchArgs)
}
