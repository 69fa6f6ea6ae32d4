// Package normalize prepares text the way the expert classifiers saw it at training time
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Each \n and \r becomes a space (a newline would end a fastText input line)
// 3 Trim surrounding whitespace
// 4 Unicode lower casing
//
// Inner whitespace runs are left alone; the classifier tokenizer splits on them anyway
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// Normalizer is concurrency safe when used with the pool below
type Normalizer struct{}

// cases.Caser keeps state between calls so each goroutine takes its own
var casePool = sync.Pool{
	New: func() any {
		c := cases.Lower(language.Und)
		return &c
	},
}

var lineBreaks = strings.NewReplacer("\n", " ", "\r", " ")

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the classifier input form of s. The result may be empty
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	// 1 repair UTF-8
	s = strings.ToValidUTF8(s, "")

	// 2 line breaks
	s = lineBreaks.Replace(s)

	// 3 trim
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// 4 lower via pooled caser
	c := casePool.Get().(*cases.Caser)
	out, _, err := transform.String(c, s)
	c.Reset()
	casePool.Put(c)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
