package types

// Service exposes a named group of host-invocable operations, such as the
// interactive execution surface (executeFile, executeCode, initializeSession).
type Service interface {
	Name() string
	Methods() Signatures
	Method(name string) (Executable, error)
}
