package script

import (
	"fmt"
	"slices"
	"unicode"

	perr "langid/internal/platform/errors"

	"golang.org/x/text/language"
)

// Config controls which runes vote and how many votes a text needs
type Config struct {
	// NoiseScripts are ISO 15924 codes that never receive votes (Common, Inherited, Unknown)
	NoiseScripts []string
	// IgnoreCategoryPrefixes are Unicode general categories (P, S, Pd...) whose runes are skipped
	IgnoreCategoryPrefixes []string
	// IgnoreASCIIDigits skips 0-9
	IgnoreASCIIDigits bool
	// MaxExtensionsPerChar drops runes with more candidate scripts than this, 0 disables
	MaxExtensionsPerChar int
	// MinUsefulChars is the minimum number of voting runes for a result
	MinUsefulChars int
}

// DefaultConfig mirrors the settings the expert models were built against
func DefaultConfig() Config {
	return Config{
		NoiseScripts:           []string{"Zyyy", "Zinh", "Zzzz"},
		IgnoreCategoryPrefixes: []string{"P", "S"},
		IgnoreASCIIDigits:      true,
		MaxExtensionsPerChar:   4,
		MinUsefulChars:         1,
	}
}

// Validate checks script codes and category names
func (c Config) Validate() error {
	for _, s := range c.NoiseScripts {
		if _, err := language.ParseScript(s); err != nil {
			return perr.Newf(perr.ErrorCodeValidation, "noise script %q is not an ISO 15924 code", s)
		}
	}
	for _, p := range c.IgnoreCategoryPrefixes {
		if _, ok := unicode.Categories[p]; !ok {
			return perr.Newf(perr.ErrorCodeValidation, "unknown unicode category %q", p)
		}
	}
	if c.MaxExtensionsPerChar < 0 {
		return perr.Newf(perr.ErrorCodeValidation, "max extensions per char must be >= 0, got %d", c.MaxExtensionsPerChar)
	}
	if c.MinUsefulChars < 0 {
		return perr.Newf(perr.ErrorCodeValidation, "min useful chars must be >= 0, got %d", c.MinUsefulChars)
	}
	return nil
}

// String is used in startup logs
func (c Config) String() string {
	return fmt.Sprintf("noise=%v ignore=%v digits=%t max_ext=%d min_useful=%d",
		c.NoiseScripts, c.IgnoreCategoryPrefixes, c.IgnoreASCIIDigits, c.MaxExtensionsPerChar, c.MinUsefulChars)
}

func (c Config) clone() Config {
	c.NoiseScripts = slices.Clone(c.NoiseScripts)
	c.IgnoreCategoryPrefixes = slices.Clone(c.IgnoreCategoryPrefixes)
	return c
}
