package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrefixAndKey(t *testing.T) {
	c := New().Prefix("CORE_").Prefix("LANGID_")
	assert.Equal(t, "CORE_LANGID_MODEL_PATH", c.Key("MODEL_PATH"))
	assert.Equal(t, "X", New().Key("X"))
}

func TestMayString(t *testing.T) {
	c := New().Prefix("CT_")
	t.Setenv("CT_NAME", "  langid ")
	t.Setenv("CT_BLANK", "   ")

	assert.Equal(t, "langid", c.MayString("NAME", "x"))
	assert.Equal(t, "x", c.MayString("BLANK", "x"))
	assert.Equal(t, "x", c.MayString("MISSING", "x"))
}

func TestMayTyped(t *testing.T) {
	c := New().Prefix("CT_")
	t.Setenv("CT_INT", " 42 ")
	t.Setenv("CT_INT_BAD", "forty")
	t.Setenv("CT_BOOL", "true")
	t.Setenv("CT_BOOL_BAD", "yes please")
	t.Setenv("CT_DUR", "250ms")
	t.Setenv("CT_DUR_BAD", "soon")

	assert.Equal(t, 42, c.MayInt("INT", 7))
	assert.Equal(t, 7, c.MayInt("INT_BAD", 7))
	assert.Equal(t, 7, c.MayInt("MISSING", 7))

	assert.True(t, c.MayBool("BOOL", false))
	assert.True(t, c.MayBool("BOOL_BAD", true))
	assert.False(t, c.MayBool("MISSING", false))

	assert.Equal(t, 250*time.Millisecond, c.MayDuration("DUR", time.Second))
	assert.Equal(t, time.Second, c.MayDuration("DUR_BAD", time.Second))
	assert.Equal(t, time.Second, c.MayDuration("MISSING", time.Second))
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CT_")
	def := []string{"Zyyy", "Zinh"}

	t.Setenv("CT_LIST", " Zyyy, ,Zinh ,Zzzz,")
	t.Setenv("CT_EMPTY", " , ,")

	assert.Equal(t, []string{"Zyyy", "Zinh", "Zzzz"}, c.MayCSV("LIST", def))
	assert.Equal(t, def, c.MayCSV("EMPTY", def))
	assert.Equal(t, def, c.MayCSV("MISSING", def))
}
