// Package repo resolves per-script expert classifiers on disk and runs them
package repo

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"langid/internal/adapters/fasttext"
	"langid/internal/core/normalize"
	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/services/langid/domain"

	"github.com/bmatcuk/doublestar"
)

// Repo is the file-backed expert repository. Safe for concurrent use
type Repo struct {
	cfg    Config
	loader domain.Loader
	norm   *normalize.Normalizer
	cache  *modelCache
	log    *logger.Logger
}

// Option customizes a Repo
type Option func(*Repo)

// WithLoader swaps how artifacts are opened, mostly for tests
func WithLoader(l domain.Loader) Option {
	return func(r *Repo) {
		if l != nil {
			r.loader = l
		}
	}
}

// WithLogger sets the component logger
func WithLogger(l *logger.Logger) Option {
	return func(r *Repo) {
		if l != nil {
			r.log = l
		}
	}
}

// FastTextLoader opens fastText .bin and .ftz files
func FastTextLoader() domain.Loader {
	return domain.LoaderFunc(func(_ context.Context, path string) (domain.Model, error) {
		return fasttext.Open(path)
	})
}

// New validates cfg and checks that the model directory exists
func New(cfg Config, opts ...Option) (*Repo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Patterns = slices.Clone(cfg.Patterns)

	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "model path does not exist: %s", cfg.ModelPath)
	}

	r := &Repo{
		cfg:    cfg,
		loader: FastTextLoader(),
		norm:   normalize.New(),
		log:    logger.Named("langid.repo"),
	}
	for _, o := range opts {
		o(r)
	}

	cache, err := newModelCache(r.loader, cfg.CacheSize)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeValidation, "model cache")
	}
	r.cache = cache
	return r, nil
}

// Config returns a copy of the repository configuration
func (r *Repo) Config() Config {
	c := r.cfg
	c.Patterns = slices.Clone(c.Patterns)
	return c
}

// resolve returns the first regular file the patterns expand to for ws, plus
// every path tried in pattern order. info is nil when nothing matched
func (r *Repo) resolve(ws string) (string, fs.FileInfo, []string) {
	tried := make([]string, 0, len(r.cfg.Patterns))
	// a tag that walks out of the model dir is never an expert
	if ws == "" || strings.ContainsAny(ws, `/\`) || ws == "." || ws == ".." {
		for _, p := range r.cfg.Patterns {
			tried = append(tried, r.cfg.expand(p, ws))
		}
		return "", nil, tried
	}
	for _, p := range r.cfg.Patterns {
		path := r.cfg.expand(p, ws)
		tried = append(tried, path)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, info, tried
		}
	}
	return "", nil, tried
}

// Classify routes text to the expert for writingSystem
func (r *Repo) Classify(ctx context.Context, text, writingSystem string) ([]domain.LanguagePrediction, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "classification canceled")
	}

	path, info, tried := r.resolve(writingSystem)
	if info == nil {
		return nil, domain.NoExpertFound(writingSystem, tried)
	}

	clean := r.norm.Normalize(text)
	if clean == "" {
		return nil, domain.ErrInvalidInput
	}

	model, err := r.cache.get(ctx, path, info.ModTime())
	if err != nil {
		r.log.Error().Err(err).Str("path", path).Msg("expert load failed")
		return nil, domain.Inference(path, err)
	}

	labels, probs, err := model.Predict(clean, r.cfg.MaxPredictions)
	if err != nil {
		return nil, domain.Inference(path, err)
	}
	if len(labels) != len(probs) {
		return nil, domain.Inference(path, fmt.Errorf("%w: %d labels for %d scores",
			domain.ErrLabelFormat, len(labels), len(probs)))
	}

	out := make([]domain.LanguagePrediction, 0, len(labels))
	for i, lbl := range labels {
		lang, ok := strings.CutPrefix(lbl, r.cfg.LabelPrefix)
		if !ok || lang == "" {
			return nil, domain.Inference(path, fmt.Errorf("%w: %q", domain.ErrLabelFormat, lbl))
		}
		out = append(out, domain.LanguagePrediction{Language: lang, Probability: clamp01(float64(probs[i]))})
	}

	r.log.Debug().Str("ws", writingSystem).Str("path", path).Int("n", len(out)).Msg("expert predicted")
	return out, nil
}

func clamp01(p float64) float64 {
	switch {
	case p != p || p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Experts lists writing systems that have a resolvable artifact, sorted by tag
func (r *Repo) Experts(ctx context.Context) ([]domain.Expert, error) {
	seen := map[string]struct{}{}
	var out []domain.Expert
	for _, p := range r.cfg.Patterns {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "listing experts canceled")
		}
		based := strings.ReplaceAll(p, BaseToken, r.cfg.ModelPath)
		prefix, suffix, _ := strings.Cut(based, WSToken)
		glob := strings.ReplaceAll(based, WSToken, "*")
		matches, err := doublestar.Glob(glob)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad expert pattern %q", p)
		}
		for _, m := range matches {
			ws := tagFromMatch(m, prefix, suffix)
			if ws == "" {
				continue
			}
			if _, dup := seen[ws]; dup {
				continue
			}
			path, info, _ := r.resolve(ws)
			if info == nil {
				continue
			}
			seen[ws] = struct{}{}
			out = append(out, domain.Expert{
				WritingSystem: ws,
				Path:          path,
				Quantized:     strings.EqualFold(filepath.Ext(path), ".ftz"),
			})
		}
	}
	slices.SortFunc(out, func(a, b domain.Expert) int { return strings.Compare(a.WritingSystem, b.WritingSystem) })
	return out, nil
}

// tagFromMatch recovers the {ws} value from a glob hit
func tagFromMatch(match, prefix, suffix string) string {
	match = filepath.ToSlash(filepath.Clean(match))
	if prefix != "" {
		dirLike := strings.HasSuffix(filepath.ToSlash(prefix), "/")
		prefix = filepath.ToSlash(filepath.Clean(prefix))
		switch {
		case prefix == ".":
			prefix = ""
		case dirLike:
			prefix += "/"
		}
	}
	rest, ok := strings.CutPrefix(match, prefix)
	if !ok {
		return ""
	}
	// suffix may hold further {ws} tokens; only the literal tail after the last one is checked
	tail := suffix
	if i := strings.LastIndex(suffix, WSToken); i >= 0 {
		tail = suffix[i+len(WSToken):]
	}
	rest, ok = strings.CutSuffix(rest, filepath.ToSlash(tail))
	if !ok {
		return ""
	}
	ws, _, _ := strings.Cut(rest, "/")
	return ws
}

// Ping reports whether the model directory is reachable
func (r *Repo) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(r.cfg.ModelPath)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "model path unavailable: %s", r.cfg.ModelPath)
	}
	if !info.IsDir() {
		return perr.Unavailablef("model path is not a directory: %s", r.cfg.ModelPath)
	}
	return nil
}

// Cached reports how many experts are held in memory
func (r *Repo) Cached() int { return r.cache.len() }
