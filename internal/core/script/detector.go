// Package script detects the dominant writing system (Unicode script) of a text.
//
// Every rune that is not noise casts one vote per candidate script from its
// Unicode script extensions. Runes with too many candidates are treated as
// ambiguous and dropped. The script with the most votes wins; ties go to the
// script that entered the tally first.
//
// A Detector is immutable after construction and safe for concurrent use.
package script

import (
	"unicode"

	perr "langid/internal/platform/errors"
)

var (
	// ErrInvalidInput is returned for empty text
	ErrInvalidInput = perr.New(perr.ErrorCodeValidation, "input must be a non-empty string")

	// ErrNoValidScript is returned when the text carries no usable script signal
	ErrNoValidScript = perr.New(perr.ErrorCodeInvalidArgument, "no valid scripts found in the input text")
)

// Vote is a per-script count in a Tally
type Vote struct {
	Script string `json:"script"`
	Count  int    `json:"count"`
}

// Tally holds votes in first-seen order plus the number of useful runes
type Tally struct {
	Votes  []Vote `json:"votes"`
	Useful int    `json:"useful_chars"`

	index map[string]int
}

func (t *Tally) add(tag string) {
	if t.index == nil {
		t.index = make(map[string]int, 4)
	}
	if i, ok := t.index[tag]; ok {
		t.Votes[i].Count++
		return
	}
	t.index[tag] = len(t.Votes)
	t.Votes = append(t.Votes, Vote{Script: tag, Count: 1})
}

// Count returns the votes cast for tag
func (t Tally) Count(tag string) int {
	if i, ok := t.index[tag]; ok {
		return t.Votes[i].Count
	}
	return 0
}

// Winner returns the script with the most votes
// ties resolve to the script that was tallied first
func (t Tally) Winner() (string, bool) {
	best := -1
	for i, v := range t.Votes {
		if best < 0 || v.Count > t.Votes[best].Count {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return t.Votes[best].Script, true
}

// Option customizes a Detector
type Option func(*Detector)

// WithLookup swaps the Unicode script lookup, mostly for tests
func WithLookup(l Lookup) Option {
	return func(d *Detector) {
		if l != nil {
			d.lookup = l
		}
	}
}

// Detector assigns a writing system to text
type Detector struct {
	cfg    Config
	lookup Lookup
	ignore []*unicode.RangeTable
	noise  map[string]struct{}
}

// New builds a Detector from cfg. The config is copied; later edits by the caller have no effect
func New(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Detector{
		cfg:    cfg.clone(),
		lookup: Unicode(),
		noise:  make(map[string]struct{}, len(cfg.NoiseScripts)),
	}
	for _, s := range cfg.NoiseScripts {
		d.noise[s] = struct{}{}
	}
	for _, p := range cfg.IgnoreCategoryPrefixes {
		d.ignore = append(d.ignore, unicode.Categories[p])
	}
	for _, o := range opts {
		o(d)
	}
	return d, nil
}

// MustNew is New that panics on an invalid config
func MustNew(cfg Config, opts ...Option) *Detector {
	d, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Config returns a copy of the detector configuration
func (d *Detector) Config() Config { return d.cfg.clone() }

// Detect returns the ISO 15924 code of the dominant script in text
func (d *Detector) Detect(text string) (string, error) {
	t, err := d.Tally(text)
	if err != nil {
		return "", err
	}
	ws, ok := t.Winner()
	if !ok {
		return "", ErrNoValidScript
	}
	return ws, nil
}

// Tally counts script votes over text without picking a winner
// it fails the same way Detect does
func (d *Detector) Tally(text string) (Tally, error) {
	if text == "" {
		return Tally{}, ErrInvalidInput
	}

	var t Tally
	for _, r := range text {
		if d.isNoise(r) {
			continue
		}
		exts := d.lookup.ScriptExtensions(r)

		useful := 0
		for _, s := range exts {
			if _, skip := d.noise[s]; !skip {
				useful++
			}
		}
		if useful == 0 {
			continue
		}
		// too ambiguous to count
		if d.cfg.MaxExtensionsPerChar > 0 && useful > d.cfg.MaxExtensionsPerChar {
			continue
		}
		for _, s := range exts {
			if _, skip := d.noise[s]; !skip {
				t.add(s)
			}
		}
		t.Useful++
	}

	if t.Useful < d.cfg.MinUsefulChars || len(t.Votes) == 0 {
		return Tally{}, ErrNoValidScript
	}
	return t, nil
}

// isNoise reports whether r carries no script signal by itself
func (d *Detector) isNoise(r rune) bool {
	if d.cfg.IgnoreASCIIDigits && r >= '0' && r <= '9' {
		return true
	}
	for _, tbl := range d.ignore {
		if unicode.Is(tbl, r) {
			return true
		}
	}
	return false
}
