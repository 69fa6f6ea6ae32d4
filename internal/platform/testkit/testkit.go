// Package testkit holds assertions shared by package tests
package testkit

import (
	"strings"
	"testing"
)

// MustPanic fails the test unless fn panics
func MustPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain fails the test unless every needle is in haystack. The full
// haystack is logged once on failure
func MustContain(t testing.TB, haystack string, needles ...string) {
	t.Helper()
	var missing []string
	for _, n := range needles {
		if !strings.Contains(haystack, n) {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		t.Logf("output:\n%s", haystack)
		t.Fatalf("output is missing %q", missing)
	}
}
