package script

//go:generate go run gen_extensions.go

import (
	"cmp"
	"slices"
	"sort"
	"sync"
	"unicode"
)

// Unknown is the ISO 15924 code for unassigned code points
const Unknown = "Zzzz"

// Lookup resolves the scripts a code point may belong to
type Lookup interface {
	// ScriptExtensions returns ISO 15924 codes for r, never empty
	// the returned slice is shared and must not be modified
	ScriptExtensions(r rune) []string
}

// span is a contiguous run of code points with one primary script
type span struct {
	lo, hi rune
	tag    []string
}

// UnicodeLookup answers from Go's unicode script tables plus the generated
// Script_Extensions overrides in extensions.go
type UnicodeLookup struct {
	primary []span
	ext     []span
}

var (
	unicodeOnce sync.Once
	unicodeLk   *UnicodeLookup
)

// Unicode returns the process-wide UnicodeLookup, built on first use
func Unicode() *UnicodeLookup {
	unicodeOnce.Do(func() {
		unicodeLk = &UnicodeLookup{
			primary: flattenScripts(unicode.Scripts),
			ext:     compileExtensions(extensionData),
		}
	})
	return unicodeLk
}

var unknownTag = []string{Unknown}

// ScriptExtensions implements Lookup
func (u *UnicodeLookup) ScriptExtensions(r rune) []string {
	if tags, ok := find(u.ext, r); ok {
		return tags
	}
	if tags, ok := find(u.primary, r); ok {
		return tags
	}
	return unknownTag
}

// Script returns the primary script of r, ignoring extensions
func (u *UnicodeLookup) Script(r rune) string {
	if tags, ok := find(u.primary, r); ok {
		return tags[0]
	}
	return Unknown
}

func find(spans []span, r rune) ([]string, bool) {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].lo > r }) - 1
	if i < 0 || r > spans[i].hi {
		return nil, false
	}
	return spans[i].tag, true
}

// flattenScripts turns the range tables into sorted non-overlapping spans
// strided ranges are expanded so binary search stays valid
func flattenScripts(tables map[string]*unicode.RangeTable) []span {
	var out []span
	for name, tbl := range tables {
		code, ok := ShortName(name)
		if !ok {
			continue
		}
		tag := []string{code}
		for _, r := range tbl.R16 {
			out = appendRange(out, rune(r.Lo), rune(r.Hi), rune(r.Stride), tag)
		}
		for _, r := range tbl.R32 {
			out = appendRange(out, rune(r.Lo), rune(r.Hi), rune(r.Stride), tag)
		}
	}
	slices.SortFunc(out, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })
	return out
}

func appendRange(out []span, lo, hi, stride rune, tag []string) []span {
	if stride <= 1 {
		return append(out, span{lo: lo, hi: hi, tag: tag})
	}
	for c := lo; c <= hi; c += stride {
		out = append(out, span{lo: c, hi: c, tag: tag})
	}
	return out
}

type extRange struct {
	lo, hi rune
	tags   []string
}

func compileExtensions(in []extRange) []span {
	out := make([]span, 0, len(in))
	for _, e := range in {
		out = append(out, span{lo: e.lo, hi: e.hi, tag: e.tags})
	}
	slices.SortFunc(out, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })
	return out
}
