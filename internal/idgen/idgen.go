package idgen

import "github.com/google/uuid"

// NewFunc produces a new globally unique identifier. Tests may stub it.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier from NewFunc.
func New() string { return NewFunc() }
