package repl

// Output reports what a dispatch operation did. Dispatched stays false when
// the input was blank and nothing was sent.
type Output struct {
	Dispatched  bool   `json:"dispatched"`
	ResourceKey string `json:"resourceKey,omitempty"`
}
