package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosix(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "plain", input: "/ws/main.py", expect: "/ws/main.py"},
		{name: "space", input: "/ws/my dir/main.py", expect: "'/ws/my dir/main.py'"},
		{name: "single quote", input: "it's.py", expect: `"it's.py"`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Posix(tc.input))
		})
	}
}

func TestWindows(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "plain", input: `C:\ws\main.py`, expect: `C:\ws\main.py`},
		{name: "space", input: `C:\my dir\main.py`, expect: `"C:\my dir\main.py"`},
		{name: "embedded quote", input: `C:\a"b`, expect: `"C:\a""b"`},
		{name: "empty", input: "", expect: `""`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Windows(tc.input))
		})
	}
}

func TestFor(t *testing.T) {
	assert.Equal(t, `"a b"`, For(true)("a b"))
	assert.Equal(t, "'a b'", For(false)("a b"))
}
