package hfhub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "langid/internal/platform/errors"
)

// fakeHub serves a revision listing and file contents for one repo
type fakeHub struct {
	files     map[string]string
	downloads atomic.Int32
	listings  atomic.Int32
	failFile  string
	gotAuth   atomic.Value
}

func (h *fakeHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if a := r.Header.Get("Authorization"); a != "" {
		h.gotAuth.Store(a)
	}
	const listing = "/api/models/org/experts/revision/main"
	const resolve = "/org/experts/resolve/main/"
	switch {
	case r.URL.Path == listing:
		h.listings.Add(1)
		var body struct {
			Siblings []map[string]string `json:"siblings"`
		}
		for name := range h.files {
			body.Siblings = append(body.Siblings, map[string]string{"rfilename": name})
		}
		_ = json.NewEncoder(w).Encode(body)
	case strings.HasPrefix(r.URL.Path, resolve):
		name := strings.TrimPrefix(r.URL.Path, resolve)
		if name == h.failFile {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		content, ok := h.files[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h.downloads.Add(1)
		_, _ = w.Write([]byte(content))
	default:
		http.NotFound(w, r)
	}
}

func newSyncer(t *testing.T, hub *fakeHub, mut func(*Config)) (*Syncer, string) {
	t.Helper()
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	dir := filepath.Join(t.TempDir(), "models")
	cfg := DefaultConfig()
	cfg.Repo = "org/experts"
	cfg.Dir = dir
	cfg.Endpoint = srv.URL
	cfg.LockTimeout = 2 * time.Second
	if mut != nil {
		mut(&cfg)
	}
	s, err := New(cfg, WithClient(NewClient(ClientOptions{
		BaseURL:    srv.URL,
		Token:      cfg.Token,
		MaxRetries: -1,
	})))
	require.NoError(t, err)
	return s, dir
}

func sampleHub() *fakeHub {
	return &fakeHub{files: map[string]string{
		"Latn/langclf.ftz": "latn-q",
		"Latn/langclf.bin": "latn-full",
		"Cyrl/langclf.ftz": "cyrl-q",
		"README.md":        "readme",
	}}
}

func TestEnsure_DownloadsAndWritesMarker(t *testing.T) {
	hub := sampleHub()
	s, dir := newSyncer(t, hub, nil)

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, []string{"Cyrl/langclf.ftz", "Latn/langclf.bin", "Latn/langclf.ftz", "README.md"}, res.Files)

	b, err := os.ReadFile(filepath.Join(dir, "Latn", "langclf.ftz"))
	require.NoError(t, err)
	assert.Equal(t, "latn-q", string(b))

	m, err := readMarker(filepath.Join(dir, MarkerName))
	require.NoError(t, err)
	assert.Equal(t, "org/experts", m.Repo)
	assert.Equal(t, "main", m.Rev)
	assert.NotZero(t, m.TS)

	// no temp files left behind
	matches, _ := filepath.Glob(filepath.Join(dir, "*", "*.part"))
	assert.Empty(t, matches)
}

func TestEnsure_SkipsWhenPopulated(t *testing.T) {
	hub := sampleHub()
	s, _ := newSyncer(t, hub, nil)

	_, err := s.Ensure(context.Background())
	require.NoError(t, err)
	first := hub.downloads.Load()

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Equal(t, first, hub.downloads.Load())
	assert.Equal(t, int32(1), hub.listings.Load())
}

func TestEnsure_ExistingFilesCountAsPopulated(t *testing.T) {
	hub := sampleHub()
	s, dir := newSyncer(t, hub, nil)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Latn"), 0o755))

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Zero(t, hub.listings.Load())
}

func TestEnsure_StaleMarkerAloneIsNotPopulated(t *testing.T) {
	hub := sampleHub()
	s, dir := newSyncer(t, hub, nil)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, saveMarker(filepath.Join(dir, MarkerName), Marker{Repo: "org/experts", Rev: "v0"}))

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.NotEmpty(t, res.Files)
}

func TestEnsure_AllowAndIgnorePatterns(t *testing.T) {
	hub := sampleHub()
	s, dir := newSyncer(t, hub, func(c *Config) {
		c.AllowPatterns = []string{"*/*.ftz", "*/*.bin"}
		c.IgnorePatterns = []string{"**/*.bin"}
	})

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Cyrl/langclf.ftz", "Latn/langclf.ftz"}, res.Files)
	_, err = os.Stat(filepath.Join(dir, "README.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestEnsure_SkipsEscapingPaths(t *testing.T) {
	hub := &fakeHub{files: map[string]string{"../evil": "x", "Latn/langclf.ftz": "q"}}
	s, _ := newSyncer(t, hub, nil)

	res, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Latn/langclf.ftz"}, res.Files)
}

func TestEnsure_DownloadFailure(t *testing.T) {
	hub := sampleHub()
	hub.failFile = "README.md"
	s, dir := newSyncer(t, hub, nil)

	_, err := s.Ensure(context.Background())
	require.Error(t, err)

	// a failed sync leaves no marker behind
	_, statErr := os.Stat(filepath.Join(dir, MarkerName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsure_LockTimeout(t *testing.T) {
	hub := sampleHub()
	s, dir := newSyncer(t, hub, func(c *Config) { c.LockTimeout = 300 * time.Millisecond })
	require.NoError(t, os.MkdirAll(dir, 0o755))

	held := flock.New(filepath.Join(dir, LockName))
	ok, err := held.TryLock()
	require.NoError(t, err)
	require.True(t, ok)
	defer func() { _ = held.Unlock() }()

	_, err = s.Ensure(context.Background())
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.True(t, perr.Retryable(err))
}

func TestEnsure_Canceled(t *testing.T) {
	s, _ := newSyncer(t, sampleHub(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Ensure(ctx)
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeCanceled, perr.CodeOf(err))
}

func TestEnsure_SendsToken(t *testing.T) {
	hub := sampleHub()
	s, _ := newSyncer(t, hub, func(c *Config) { c.Token = "hf_secret" })

	_, err := s.Ensure(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer hf_secret", hub.gotAuth.Load())
	assert.NotContains(t, s.Config().String(), "hf_secret")
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"repo without owner", func(c *Config) { c.Repo = "experts" }},
		{"empty revision", func(c *Config) { c.Revision = " " }},
		{"empty dir", func(c *Config) { c.Dir = "" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no lock timeout", func(c *Config) { c.LockTimeout = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			_, err := New(cfg)
			assert.Equal(t, perr.ErrorCodeValidation, perr.CodeOf(err))
		})
	}
	require.NoError(t, DefaultConfig().Validate())
}

func TestFromConfig(t *testing.T) {
	t.Setenv("SERVICE_HF_REPO", "me/models")
	t.Setenv("SERVICE_HF_ALLOW_PATTERNS", "*/*.ftz, */*.bin")
	t.Setenv("SERVICE_HF_WORKERS", "8")
	t.Setenv("SERVICE_HF_SYNC_ON_START", "true")

	cfg := FromConfig(configFor("SERVICE_"))
	assert.Equal(t, "me/models", cfg.Repo)
	assert.Equal(t, "main", cfg.Revision)
	assert.Equal(t, []string{"*/*.ftz", "*/*.bin"}, cfg.AllowPatterns)
	assert.Empty(t, cfg.IgnorePatterns)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.SyncOnStart)
}
