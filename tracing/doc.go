// Package tracing is a thin wrapper around OpenTelemetry so the bridge can
// emit spans around dispatch operations without callers importing the
// upstream packages directly. Applications that do not need tracing simply
// never call Init and every span becomes a no-op.
package tracing
