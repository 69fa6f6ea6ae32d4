package hfhub

import (
	"fmt"
	"strings"
	"time"

	"langid/internal/platform/config"
	perr "langid/internal/platform/errors"
)

// Config controls where snapshots come from and where they land
type Config struct {
	Repo     string
	Revision string
	Dir      string
	Endpoint string
	Token    string
	// AllowPatterns restricts downloads to matching repo paths when non empty
	AllowPatterns []string
	// IgnorePatterns excludes matching repo paths
	IgnorePatterns []string
	Workers        int
	LockTimeout    time.Duration
	// SyncOnStart asks long running binaries to call Ensure before serving
	SyncOnStart bool
}

// DefaultConfig points at the published expert models
func DefaultConfig() Config {
	return Config{
		Repo:        "Tobero/bwki2025-lowres-langid-model",
		Revision:    "main",
		Dir:         "./models",
		Endpoint:    baseURLDefault,
		Workers:     4,
		LockTimeout: 30 * time.Minute,
	}
}

// FromConfig reads with HF_ prefix
func FromConfig(cfg config.Conf) Config {
	c := cfg.Prefix("HF_")
	d := DefaultConfig()
	return Config{
		Repo:           c.MayString("REPO", d.Repo),
		Revision:       c.MayString("REVISION", d.Revision),
		Dir:            c.MayString("DIR", d.Dir),
		Endpoint:       c.MayString("ENDPOINT", d.Endpoint),
		Token:          c.MayString("TOKEN", ""),
		AllowPatterns:  c.MayCSV("ALLOW_PATTERNS", nil),
		IgnorePatterns: c.MayCSV("IGNORE_PATTERNS", nil),
		Workers:        c.MayInt("WORKERS", d.Workers),
		LockTimeout:    c.MayDuration("LOCK_TIMEOUT", d.LockTimeout),
		SyncOnStart:    c.MayBool("SYNC_ON_START", false),
	}
}

// Validate checks the config shape
func (c Config) Validate() error {
	if strings.Count(strings.Trim(c.Repo, "/"), "/") != 1 {
		return perr.Newf(perr.ErrorCodeValidation, "hub repo must look like owner/name, got %q", c.Repo)
	}
	if strings.TrimSpace(c.Revision) == "" {
		return perr.New(perr.ErrorCodeValidation, "hub revision is required")
	}
	if strings.TrimSpace(c.Dir) == "" {
		return perr.New(perr.ErrorCodeValidation, "download dir is required")
	}
	if c.Workers < 1 {
		return perr.Newf(perr.ErrorCodeValidation, "workers must be >= 1, got %d", c.Workers)
	}
	if c.LockTimeout <= 0 {
		return perr.Newf(perr.ErrorCodeValidation, "lock timeout must be > 0, got %s", c.LockTimeout)
	}
	return nil
}

// String is used in startup logs and never includes the token
func (c Config) String() string {
	return fmt.Sprintf("repo=%s rev=%s dir=%s endpoint=%s allow=%v ignore=%v workers=%d token=%t",
		c.Repo, c.Revision, c.Dir, c.Endpoint, c.AllowPatterns, c.IgnorePatterns, c.Workers, c.Token != "")
}
