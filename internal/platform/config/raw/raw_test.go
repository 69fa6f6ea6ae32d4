package raw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("LOG_LEVEL", " warn ")
	t.Setenv("LOG_CALLER", "YES")
	t.Setenv("LOG_SAMPLE_EVERY", "10")
	t.Setenv("LOG_BAD_INT", "1e3")

	c := New().Prefix("LOG_")
	cases := []struct {
		name string
		got  any
		want any
	}{
		{"string", c.Get("LEVEL", "debug"), "warn"},
		{"string default", c.Get("FORMAT", "console"), "console"},
		{"bool", c.GetBool("CALLER", false), true},
		{"bool default", c.GetBool("MISSING", true), true},
		{"int", c.GetInt("SAMPLE_EVERY", 0), 10},
		{"int non numeric", c.GetInt("BAD_INT", 3), 3},
		{"int default", c.GetInt("MISSING", 3), 3},
		{"root key", New().Get("LOG_LEVEL", ""), "warn"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.got, tc.name)
	}
}
