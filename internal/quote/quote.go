// Package quote provides platform-appropriate shell quoting for paths passed
// on interpreter command lines and in cd commands.
package quote

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Func renders a single argument so the target shell treats it as one word.
type Func func(value string) string

// Posix quotes value for POSIX-like shells.
func Posix(value string) string {
	quoted, err := syntax.Quote(value, syntax.LangBash)
	if err != nil {
		// Value contains bytes no shell syntax can represent; fall back to
		// single quotes so at least well-formed paths survive.
		return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
	}
	return quoted
}

// Windows quotes value for cmd-like shells: double quotes only when the value
// contains whitespace or cmd metacharacters, with embedded quotes doubled.
func Windows(value string) string {
	if value == "" {
		return `""`
	}
	if !strings.ContainsAny(value, " \t&|^%()<>\"") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// For returns the quoting function for the given platform.
func For(windows bool) Func {
	if windows {
		return Windows
	}
	return Posix
}
