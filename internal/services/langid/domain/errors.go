package domain

import (
	"errors"
	"fmt"
	"strings"

	"langid/internal/core/script"
	perr "langid/internal/platform/errors"
)

var (
	// ErrInvalidInput is returned for empty text or text that preprocesses to nothing
	ErrInvalidInput = script.ErrInvalidInput

	// ErrNoValidScript is returned when no writing system can be determined
	ErrNoValidScript = script.ErrNoValidScript

	// ErrLabelFormat marks expert output that does not carry the configured label prefix
	ErrLabelFormat = errors.New("label does not carry the expected prefix")
)

// NoExpertFoundError reports that no classifier artifact exists for a writing system
type NoExpertFoundError struct {
	WritingSystem string
	Tried         []string
}

func (e *NoExpertFoundError) Error() string {
	return fmt.Sprintf("no expert model found (tried %s)", strings.Join(e.Tried, ", "))
}

// NoExpertFound wraps a NoExpertFoundError with the project error code.
// The public message names only the writing system; tried paths stay in Error()
func NoExpertFound(ws string, tried []string) error {
	return perr.Wrapf(&NoExpertFoundError{WritingSystem: ws, Tried: tried},
		perr.ErrorCodeUnsupported, "unsupported writing system %q", ws)
}

// InferenceError reports that an expert failed to load or predict
type InferenceError struct {
	Path string
	Err  error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference with %s failed: %v", e.Path, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// Inference wraps an InferenceError with the project error code
func Inference(path string, err error) error {
	return perr.Wrap(&InferenceError{Path: path, Err: err}, perr.ErrorCodeInference, "language inference failed")
}

// AsNoExpertFound extracts a NoExpertFoundError from err
func AsNoExpertFound(err error) (*NoExpertFoundError, bool) {
	var e *NoExpertFoundError
	ok := errors.As(err, &e)
	return e, ok
}

// AsInference extracts an InferenceError from err
func AsInference(err error) (*InferenceError, bool) {
	var e *InferenceError
	ok := errors.As(err, &e)
	return e, ok
}
