// Package hfhub provisions expert model artifacts from a Hugging Face model
// repository into a local directory.
//
// A Syncer takes a cross process file lock on the target directory, skips
// the download when a snapshot marker for the same repo and revision exists
// or the directory already holds files, and otherwise downloads every file
// of the revision that passes the allow and ignore glob patterns.
package hfhub
