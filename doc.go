// Package replbridge wires a host's command surface to persistent interactive
// interpreter sessions running in terminals.
//
// The bridge keeps one session per resource (a file or workspace path),
// builds the interpreter invocation from settings and the active interpreter,
// reconciles the terminal's working directory and drive before file
// execution, and forwards files or raw source text to the session.
//
// Hosts interact through the Service façade exposed by this package:
//
//	srv := replbridge.New(
//		replbridge.WithSettings(settings.NewDocument("file:///etc/replbridge.yaml")),
//	)
//	_ = srv.ExecuteFile(ctx, "/workspace/app/main.py")
//	_ = srv.ExecuteCode(ctx, "print('hello')", "/workspace/app")
//
// Operations are also exposed by name through the action registry so command
// palettes can dispatch them generically; see the extension package.
package replbridge
