package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfEmpty(t *testing.T) {
	def := []string{"GET", "POST"}
	assert.Equal(t, def, IfEmpty(nil, def))
	assert.Equal(t, def, IfEmpty([]string{}, def))
	assert.Equal(t, []string{"PUT"}, IfEmpty([]string{"PUT"}, def))
}

func TestMustString(t *testing.T) {
	assert.Equal(t, "langid", MustString("langid", "module name"))
	assert.PanicsWithValue(t, "module name is required", func() { MustString("  ", "module name") })
}

func TestMustPrefix(t *testing.T) {
	cases := map[string]string{
		"langid":     "/langid",
		"/langid":    "/langid",
		"/langid/":   "/langid",
		"  /meta/  ": "/meta",
		"a/b/":       "/a/b",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustPrefix(in), in)
	}
	for _, in := range []string{"", "/", "  / "} {
		assert.Panics(t, func() { MustPrefix(in) }, in)
	}
}
