package repl

// ExecuteFileInput requests whole-file execution in the file's terminal.
type ExecuteFileInput struct {
	Path string `json:"path" description:"file to execute through the interpreter"`
}

// ExecuteCodeInput requests raw source text delivery to a session.
type ExecuteCodeInput struct {
	Code        string `json:"code" description:"source text piped to the interpreter prompt"`
	ResourceKey string `json:"resourceKey,omitempty" description:"resource the session is scoped to; empty targets the default terminal"`
}

// InitializeSessionInput requests the session be started ahead of use.
type InitializeSessionInput struct {
	ResourceKey string `json:"resourceKey,omitempty" description:"resource the session is scoped to; empty targets the default terminal"`
}
