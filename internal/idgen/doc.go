// Package idgen wraps the UUID generator behind a stubbable function so
// terminal identifiers stay deterministic in tests. Callers should treat the
// returned identifiers as opaque strings.
package idgen
