package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrorCodeUnknown:         http.StatusInternalServerError,
		ErrorCodePanic:           http.StatusInternalServerError,
		ErrorCodeUnavailable:     http.StatusServiceUnavailable,
		ErrorCodeTooManyRequests: http.StatusTooManyRequests,
		ErrorCodeConflict:        http.StatusConflict,
		ErrorCodeUnauthorized:    http.StatusUnauthorized,
		ErrorCodeForbidden:       http.StatusForbidden,
		ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
		ErrorCodeValidation:      http.StatusBadRequest,
		ErrorCodeJSON:            http.StatusBadRequest,
		ErrorCodeNotFound:        http.StatusNotFound,
		ErrorCodeUnsupported:     http.StatusUnprocessableEntity,
		ErrorCodeInference:       http.StatusInternalServerError,
		ErrorCodeCanceled:        StatusClientClosed,
		ErrorCode(999):           http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatusCode(code), "code %d", code)
	}
}

func TestError_Basics(t *testing.T) {
	cause := stderrs.New("unexpected EOF")
	err := Wrapf(cause, ErrorCodeInference, "predict %s", "Cyrl")

	assert.Equal(t, "predict Cyrl: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrorCodeInference, CodeOf(err))
	assert.True(t, IsCode(err, ErrorCodeInference))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, Wire{Code: ErrorCodeInference, Message: "predict Cyrl"}, WireFrom(err))

	outer := fmt.Errorf("classify: %w", err)
	e, ok := As(outer)
	assert.True(t, ok)
	assert.Equal(t, ErrorCodeInference, e.Code())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestForeignErrors(t *testing.T) {
	foreign := stderrs.New("boom")
	assert.Equal(t, ErrorCodeUnknown, CodeOf(foreign))
	assert.Equal(t, Wire{Code: ErrorCodeUnknown, Message: "boom"}, WireFrom(foreign))
	assert.Equal(t, Wire{}, WireFrom(nil))
	assert.Same(t, foreign, WithField(foreign, "text"))
	_, ok := As(foreign)
	assert.False(t, ok)
}

func TestWithField_CopiesOnWrite(t *testing.T) {
	orig := New(ErrorCodeValidation, "text is a required field")
	withField := WithField(orig, "text")

	e, _ := As(withField)
	assert.Equal(t, "text", e.Field())
	assert.Equal(t, "text", WireFrom(withField).Field)

	o, _ := As(orig)
	assert.Empty(t, o.Field())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, ErrorCodeJSON, CodeOf(JSONErrf("invalid JSON: %s", "x")))
	assert.Equal(t, ErrorCodePanic, CodeOf(PanicErrf("panic")))
	assert.Equal(t, ErrorCodeUnavailable, CodeOf(Unavailablef("busy")))
	assert.Equal(t, ErrorCodeNotFound, CodeOf(Newf(ErrorCodeNotFound, "model %q", "Latn")))
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unavailable", Unavailablef("busy"), true},
		{"rate limited", New(ErrorCodeTooManyRequests, "slow down"), true},
		{"inference", Wrap(stderrs.New("eof"), ErrorCodeInference, "predict"), true},
		{"validation", New(ErrorCodeValidation, "bad"), false},
		{"unsupported", New(ErrorCodeUnsupported, "no model"), false},
		{"deadline", fmt.Errorf("load: %w", context.DeadlineExceeded), true},
		{"canceled", fmt.Errorf("load: %w", context.Canceled), false},
		{"foreign", stderrs.New("boom"), false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Retryable(c.err), c.name)
	}
}
