// Package extension provides the run-time registries the bridge exposes to a
// host: named action services (the command palette surface) and the Go types
// their inputs and outputs are built from.
//
// The registries are normally populated through the root replbridge package,
// therefore most applications do not need to import this package directly.
package extension
