package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	kit "langid/internal/platform/testkit"
	"langid/internal/services/langid/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDetectCommand(t *testing.T) {
	out, err := runCLI(t, "detect", "Привет", "мир")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "Cyrl", got["writing_system"])
}

func TestDetectCommand_Verbose(t *testing.T) {
	out, err := runCLI(t, "detect", "--verbose", "Hallo Welt")
	require.NoError(t, err)

	var got domain.DetectionResult
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	assert.Equal(t, "Latn", got.WritingSystem)
	assert.Equal(t, 9, got.UsefulChars)
	assert.Len(t, got.Votes, 1)
}

func TestDetectCommand_NoScript(t *testing.T) {
	_, err := runCLI(t, "detect", "123 !!!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid scripts")
}

func TestClassifyCommand_NoExpert(t *testing.T) {
	dir := t.TempDir()
	_, err := runCLI(t, "--model-path", dir, "classify", "Hallo Welt")
	_, ok := domain.AsNoExpertFound(err)
	assert.True(t, ok, "expected NoExpertFoundError, got %v", err)
}

func TestExpertsCommand(t *testing.T) {
	dir := t.TempDir()
	for _, ws := range []string{"Latn", "Cyrl"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ws), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, ws, "langclf.ftz"), []byte("x"), 0o644))
	}

	out, err := runCLI(t, "--model-path", dir, "experts")
	require.NoError(t, err)

	var got []domain.Expert
	require.NoError(t, json.Unmarshal([]byte(out), &got), out)
	require.Len(t, got, 2)
	assert.Equal(t, "Cyrl", got[0].WritingSystem)
	assert.Equal(t, "Latn", got[1].WritingSystem)
}

func TestModelsSyncCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/models/org/experts/revision/main":
			_, _ = w.Write([]byte(`{"siblings":[{"rfilename":"Latn/langclf.ftz"}]}`))
		case "/org/experts/resolve/main/Latn/langclf.ftz":
			_, _ = w.Write([]byte("model"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "models")
	t.Setenv("SERVICE_HF_REPO", "org/experts")
	t.Setenv("SERVICE_HF_ENDPOINT", srv.URL)

	out, err := runCLI(t, "models", "sync", "--dir", dir, "--timeout", "5s")
	require.NoError(t, err)
	kit.MustContain(t, out, `"skipped": false`)

	b, err := os.ReadFile(filepath.Join(dir, "Latn", "langclf.ftz"))
	require.NoError(t, err)
	assert.Equal(t, "model", string(b))

	out, err = runCLI(t, "models", "sync", "--dir", dir)
	require.NoError(t, err, "second sync")
	kit.MustContain(t, out, `"skipped": true`)
}

func TestOutputFormats(t *testing.T) {
	out, err := runCLI(t, "--output", "table", "detect", "--verbose", "Hallo Welt")
	require.NoError(t, err)
	kit.MustContain(t, out, "SCRIPT", "VOTES", "Latn", "9", "writing system: Latn (9 useful chars)")

	// buffers are not terminals, so auto falls back to JSON
	out, err = runCLI(t, "-o", "auto", "detect", "Hallo")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), out)

	_, err = runCLI(t, "-o", "yaml", "detect", "Hallo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestExpertsTable(t *testing.T) {
	tv := expertsTable([]domain.Expert{{WritingSystem: "Cyrl", Path: "/m/Cyrl/langclf.ftz", Quantized: true}})
	kit.MustContain(t, renderTable(tv), "WRITING SYSTEM", "Cyrl", "true", "/m/Cyrl/langclf.ftz")
}
