//go:build ignore

// gen_extensions writes extensions.go from the UCD ScriptExtensions.txt.
//
//	go run gen_extensions.go [-ucd path-or-url] [-version 15.0.0]
//
// The default source is the file for the Unicode version of Go's unicode
// package, so the overrides stay in step with unicode.Scripts.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

type entry struct {
	lo, hi rune
	tags   []string
}

func main() {
	version := flag.String("version", unicode.Version, "Unicode version named in the header")
	src := flag.String("ucd", "", "ScriptExtensions.txt path or URL (default unicode.org for -version)")
	out := flag.String("o", "extensions.go", "output file")
	flag.Parse()

	if *src == "" {
		*src = "https://www.unicode.org/Public/" + *version + "/ucd/ScriptExtensions.txt"
	}
	rc, err := open(*src)
	if err != nil {
		log.Fatal(err)
	}
	defer rc.Close()

	entries, err := parse(rc)
	if err != nil {
		log.Fatal(err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gen_extensions.go from Unicode %s ScriptExtensions.txt. DO NOT EDIT.\n\n", *version)
	buf.WriteString("package script\n\n")
	fmt.Fprintf(&buf, "// extensionsVersion is the UCD release extensionData was generated from\nconst extensionsVersion = %q\n\n", *version)
	buf.WriteString("// extensionData lists every code point whose Script_Extensions set differs\n")
	buf.WriteString("// from its primary script, adjacent code points with equal sets merged\n")
	buf.WriteString("var extensionData = []extRange{\n")
	for _, e := range entries {
		quoted := make([]string, len(e.tags))
		for i, t := range e.tags {
			quoted[i] = strconv.Quote(t)
		}
		fmt.Fprintf(&buf, "\t{0x%04X, 0x%04X, []string{%s}},\n", e.lo, e.hi, strings.Join(quoted, ", "))
	}
	buf.WriteString("}\n")

	src2, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, src2, 0o644); err != nil {
		log.Fatal(err)
	}
}

func open(src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}
	resp, err := http.Get(src)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", src, resp.Status)
	}
	return resp.Body, nil
}

// parse reads lines like "102E0..102FB  ; Arab Copt # No ...". The file is
// grouped by set, so entries are sorted by code point before adjacent ranges
// carrying the same set are merged.
func parse(r io.Reader) ([]entry, error) {
	var all []entry
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line, _, _ := strings.Cut(sc.Text(), "#")
		cps, tags, ok := strings.Cut(line, ";")
		if !ok {
			continue
		}
		lo, hi, err := codeRange(strings.TrimSpace(cps))
		if err != nil {
			return nil, err
		}
		set := strings.Fields(tags)
		sort.Strings(set)
		all = append(all, entry{lo: lo, hi: hi, tags: set})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].lo < all[j].lo })

	var out []entry
	for _, e := range all {
		if n := len(out); n > 0 && out[n-1].hi+1 == e.lo && equal(out[n-1].tags, e.tags) {
			out[n-1].hi = e.hi
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func codeRange(s string) (rune, rune, error) {
	a, b, isRange := strings.Cut(s, "..")
	lo, err := strconv.ParseUint(a, 16, 32)
	if err != nil {
		return 0, 0, err
	}
	hi := lo
	if isRange {
		if hi, err = strconv.ParseUint(b, 16, 32); err != nil {
			return 0, 0, err
		}
	}
	return rune(lo), rune(hi), nil
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
