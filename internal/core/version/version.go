// Package version provides information about the build version of the service.
package version

import "runtime/debug"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'langid/internal/core/version.version=v0.1.0'
	// -X 'langid/internal/core/version.commit=abcd' -X 'langid/internal/core/version.date=2026-10-01'"
	bi := BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := debug.ReadBuildInfo(); ok && info != nil {
		bi.GoVersion = info.GoVersion
	}
	return bi
}

// Service is the name reported by the API and CLI
const Service = "langid"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
