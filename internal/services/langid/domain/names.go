package domain

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLocale is used when a request names none
const DefaultLocale = "en"

// Namer renders language codes in one display locale
type Namer struct {
	namer display.Namer
}

// NewNamer returns a Namer for locale, falling back to English when the
// locale is unknown or has no display data
func NewNamer(locale string) Namer {
	if locale == "" {
		locale = DefaultLocale
	}
	if t, err := language.Parse(locale); err == nil {
		if n := display.Tags(t); n != nil {
			return Namer{namer: n}
		}
	}
	return Namer{namer: display.English.Tags()}
}

// Name returns the display name of code, or code itself when it has none
func (n Namer) Name(code string) string {
	t, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := n.namer.Name(t); name != "" {
		return name
	}
	return code
}

// View renders a result for transport with language names in the namer's locale
func (r ClassificationResult) View(n Namer) ClassifyOutput {
	out := ClassifyOutput{
		Predictions:   make([]PredictionView, 0, len(r.Predictions)),
		WritingSystem: r.WritingSystem,
	}
	for _, p := range r.Predictions {
		out.Predictions = append(out.Predictions, PredictionView{
			LanguageID:   p.Language,
			LanguageName: n.Name(p.Language),
			Probability:  p.Probability,
		})
	}
	return out
}
