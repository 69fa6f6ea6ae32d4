package repo

import (
	"fmt"
	"strings"

	perr "langid/internal/platform/errors"
)

// Pattern placeholders
const (
	BaseToken = "{base}"
	WSToken   = "{ws}"
)

// Config locates expert artifacts and shapes their output
type Config struct {
	// ModelPath is the directory holding one expert per writing system
	ModelPath string
	// Patterns are tried in order; the first existing file wins
	Patterns []string
	// LabelPrefix is stripped from every returned label
	LabelPrefix string
	// MaxPredictions caps the number of languages returned
	MaxPredictions int
	// CacheSize is how many loaded experts stay in memory, 0 disables caching
	CacheSize int
}

// DefaultConfig prefers the quantized artifact over the full one
func DefaultConfig() Config {
	return Config{
		ModelPath:      "models/fasttext_experts",
		Patterns:       []string{"{base}/{ws}/langclf.ftz", "{base}/{ws}/langclf.bin"},
		LabelPrefix:    "__label__",
		MaxPredictions: 10,
		CacheSize:      16,
	}
}

// Validate checks the config shape; it does not touch the filesystem
func (c Config) Validate() error {
	if strings.TrimSpace(c.ModelPath) == "" {
		return perr.New(perr.ErrorCodeValidation, "model path is required")
	}
	if len(c.Patterns) == 0 {
		return perr.New(perr.ErrorCodeValidation, "at least one expert path pattern is required")
	}
	for _, p := range c.Patterns {
		if !strings.Contains(p, WSToken) {
			return perr.Newf(perr.ErrorCodeValidation, "pattern %q must contain %s", p, WSToken)
		}
	}
	if c.MaxPredictions < 1 {
		return perr.Newf(perr.ErrorCodeValidation, "max predictions must be >= 1, got %d", c.MaxPredictions)
	}
	if c.CacheSize < 0 {
		return perr.Newf(perr.ErrorCodeValidation, "cache size must be >= 0, got %d", c.CacheSize)
	}
	return nil
}

// String is used in startup logs
func (c Config) String() string {
	return fmt.Sprintf("path=%s patterns=%v prefix=%q k=%d cache=%d",
		c.ModelPath, c.Patterns, c.LabelPrefix, c.MaxPredictions, c.CacheSize)
}

// expand fills a pattern for one writing system
func (c Config) expand(pattern, ws string) string {
	return strings.NewReplacer(BaseToken, c.ModelPath, WSToken, ws).Replace(pattern)
}
