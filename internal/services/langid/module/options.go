package module

import (
	"langid/internal/core/script"
	"langid/internal/platform/config"
	"langid/internal/services/langid/repo"
)

// Options controls both pipeline stages
type Options struct {
	Script script.Config
	Repo   repo.Config
}

// FromConfig reads with LANGID_ prefix, falling back to the built in defaults
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("LANGID_")
	sd := script.DefaultConfig()
	rd := repo.DefaultConfig()
	return Options{
		Script: script.Config{
			NoiseScripts:           c.MayCSV("NOISE_SCRIPTS", sd.NoiseScripts),
			IgnoreCategoryPrefixes: c.MayCSV("IGNORE_CATEGORIES", sd.IgnoreCategoryPrefixes),
			IgnoreASCIIDigits:      c.MayBool("IGNORE_DIGITS", sd.IgnoreASCIIDigits),
			MaxExtensionsPerChar:   c.MayInt("MAX_EXTENSIONS", sd.MaxExtensionsPerChar),
			MinUsefulChars:         c.MayInt("MIN_USEFUL", sd.MinUsefulChars),
		},
		Repo: repo.Config{
			ModelPath:      c.MayString("MODEL_PATH", rd.ModelPath),
			Patterns:       c.MayCSV("PATTERNS", rd.Patterns),
			LabelPrefix:    c.MayString("LABEL_PREFIX", rd.LabelPrefix),
			MaxPredictions: c.MayInt("MAX_PREDICTIONS", rd.MaxPredictions),
			CacheSize:      c.MayInt("CACHE_SIZE", rd.CacheSize),
		},
	}
}
