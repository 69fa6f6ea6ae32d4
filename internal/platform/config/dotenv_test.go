package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "langid.env")
	require.NoError(t, os.WriteFile(file, []byte("DOTENV_TEST_MODEL_PATH=/srv/models\nDOTENV_TEST_KEEP=from-file\n"), 0o600))

	t.Setenv("DOTENV_TEST_KEEP", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_TEST_MODEL_PATH") })

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), file))

	c := New().Prefix("DOTENV_TEST_")
	assert.Equal(t, "/srv/models", c.MayString("MODEL_PATH", ""))
	assert.Equal(t, "from-env", c.MayString("KEEP", ""))
}

func TestLoadDotEnv_Malformed(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(file, []byte("BAD$KEY=1\n"), 0o600))
	assert.Error(t, LoadDotEnv(file))
}
