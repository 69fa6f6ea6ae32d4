package hfhub

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"

	"github.com/bmatcuk/doublestar"
	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"
)

// Housekeeping files kept next to the downloaded snapshot
const (
	MarkerName = ".hf_snapshot.json"
	LockName   = ".download.lock"
)

// ErrLockTimeout is returned when another process holds the download lock too long
var ErrLockTimeout = perr.New(perr.ErrorCodeUnavailable, "model download lock timed out")

// Marker records which snapshot a directory holds
type Marker struct {
	Repo string `json:"repo"`
	Rev  string `json:"rev"`
	TS   int64  `json:"ts"`
}

// Result describes what Ensure did
type Result struct {
	Dir     string        `json:"dir"`
	Skipped bool          `json:"skipped"`
	Files   []string      `json:"files,omitempty"`
	Took    time.Duration `json:"took"`
}

// Syncer downloads hub snapshots. Safe for concurrent use, including across processes
type Syncer struct {
	cfg    Config
	client *Client
	log    *logger.Logger
	now    func() time.Time
}

// Option customizes a Syncer
type Option func(*Syncer)

// WithClient swaps the hub client, mostly for tests
func WithClient(c *Client) Option {
	return func(s *Syncer) {
		if c != nil {
			s.client = c
		}
	}
}

// New validates cfg and builds a Syncer
func New(cfg Config, opts ...Option) (*Syncer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.AllowPatterns = slices.Clone(cfg.AllowPatterns)
	cfg.IgnorePatterns = slices.Clone(cfg.IgnorePatterns)

	s := &Syncer{
		cfg:    cfg,
		client: NewClient(ClientOptions{BaseURL: cfg.Endpoint, Token: cfg.Token}),
		log:    logger.Named("hfhub"),
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

// Config returns a copy of the syncer config
func (s *Syncer) Config() Config { return s.cfg }

// Ensure makes sure the target directory holds the configured snapshot.
// It blocks on the directory lock for at most LockTimeout
func (s *Syncer) Ensure(ctx context.Context) (Result, error) {
	start := s.now()
	res := Result{Dir: s.cfg.Dir}

	if err := os.MkdirAll(s.cfg.Dir, 0o755); err != nil {
		return res, perr.Wrapf(err, perr.ErrorCodeUnknown, "create model dir %s", s.cfg.Dir)
	}

	lock := flock.New(filepath.Join(s.cfg.Dir, LockName))
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.LockTimeout)
	defer cancel()
	ok, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if !ok || err != nil {
		if ctx.Err() != nil {
			return res, perr.Wrap(ctx.Err(), perr.ErrorCodeCanceled, "model sync canceled")
		}
		if err == nil || errors.Is(err, context.DeadlineExceeded) {
			return res, ErrLockTimeout
		}
		return res, perr.Wrap(err, perr.ErrorCodeUnknown, "acquire download lock")
	}
	defer func() { _ = lock.Unlock() }()

	if s.populated() {
		res.Skipped = true
		res.Took = s.now().Sub(start)
		s.log.Info().Str("dir", s.cfg.Dir).Msg("models already present")
		return res, nil
	}

	files, err := s.listFiles(ctx)
	if err != nil {
		return res, err
	}
	files = s.filter(files)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)
	for _, f := range files {
		g.Go(func() error { return s.download(gctx, f) })
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	if err := s.writeMarker(); err != nil {
		return res, err
	}

	res.Files = files
	res.Took = s.now().Sub(start)
	s.log.Info().
		Str("repo", s.cfg.Repo).
		Str("rev", s.cfg.Revision).
		Int("files", len(files)).
		Dur("took", res.Took).
		Msg("models ready")
	return res, nil
}

// populated reports a matching marker, or any non housekeeping entry in the dir
func (s *Syncer) populated() bool {
	if m, err := readMarker(filepath.Join(s.cfg.Dir, MarkerName)); err == nil {
		if m.Repo == s.cfg.Repo && m.Rev == s.cfg.Revision {
			return true
		}
	}
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if e.Name() != MarkerName && e.Name() != LockName {
			return true
		}
	}
	return false
}

type revisionInfo struct {
	Siblings []struct {
		RFilename string `json:"rfilename"`
	} `json:"siblings"`
}

// listFiles asks the hub for every file in the revision
func (s *Syncer) listFiles(ctx context.Context) ([]string, error) {
	p := "/api/models/" + strings.Trim(s.cfg.Repo, "/") + "/revision/" + url.PathEscape(s.cfg.Revision)
	resp, err := s.client.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var info revisionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeJSON, "decode revision listing for %s", s.cfg.Repo)
	}
	out := make([]string, 0, len(info.Siblings))
	for _, sib := range info.Siblings {
		if sib.RFilename != "" {
			out = append(out, sib.RFilename)
		}
	}
	return out, nil
}

// filter applies allow and ignore patterns and drops paths that would escape the dir
func (s *Syncer) filter(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !filepath.IsLocal(filepath.FromSlash(f)) {
			s.log.Warn().Str("file", f).Msg("skipping non local hub path")
			continue
		}
		if len(s.cfg.AllowPatterns) > 0 && !matchAny(s.cfg.AllowPatterns, f) {
			continue
		}
		if matchAny(s.cfg.IgnorePatterns, f) {
			continue
		}
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}

// download streams one repo file into place through a temp file and rename
func (s *Syncer) download(ctx context.Context, file string) error {
	segs := strings.Split(file, "/")
	for i, seg := range segs {
		segs[i] = url.PathEscape(seg)
	}
	p := "/" + strings.Trim(s.cfg.Repo, "/") + "/resolve/" + url.PathEscape(s.cfg.Revision) + "/" + path.Join(segs...)

	resp, err := s.client.Get(ctx, p)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	dest := filepath.Join(s.cfg.Dir, filepath.FromSlash(file))
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create dir for %s", file)
	}
	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".*.part")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "create temp file for %s", file)
	}
	n, werr := io.Copy(tmp, resp.Body)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		_ = os.Remove(tmp.Name())
		if werr == nil {
			werr = cerr
		}
		if ctx.Err() != nil {
			return perr.Wrapf(werr, perr.ErrorCodeCanceled, "download %s canceled", file)
		}
		return perr.Wrapf(werr, perr.ErrorCodeUnavailable, "download %s", file)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		_ = os.Remove(tmp.Name())
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "move %s into place", file)
	}
	s.log.Debug().Str("file", file).Int64("bytes", n).Msg("downloaded")
	return nil
}

func (s *Syncer) writeMarker() error {
	m := Marker{Repo: s.cfg.Repo, Rev: s.cfg.Revision, TS: s.now().Unix()}
	if err := saveMarker(filepath.Join(s.cfg.Dir, MarkerName), m); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnknown, "write snapshot marker")
	}
	return nil
}

func readMarker(p string) (Marker, error) {
	var m Marker
	b, err := os.ReadFile(p)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(b, &m)
	return m, err
}

// saveMarker writes the marker json atomically
func saveMarker(p string, m Marker) error {
	tmp := p + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(m); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, p)
}
