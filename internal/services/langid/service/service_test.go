package service

import (
	"context"
	"testing"

	"langid/internal/core/script"
	kit "langid/internal/platform/testkit"
	"langid/internal/services/langid/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	preds []domain.LanguagePrediction
	err   error

	calls int
	text  string
	ws    string
}

func (f *fakeRepo) Classify(_ context.Context, text, ws string) ([]domain.LanguagePrediction, error) {
	f.calls++
	f.text, f.ws = text, ws
	return f.preds, f.err
}

func (f *fakeRepo) Experts(context.Context) ([]domain.Expert, error) {
	return []domain.Expert{{WritingSystem: "Latn"}}, nil
}

func (f *fakeRepo) Ping(context.Context) error { return nil }

func newSvc(r *fakeRepo) *Svc {
	return New(script.MustNew(script.DefaultConfig()), r)
}

func TestClassify_RoutesByWritingSystem(t *testing.T) {
	cases := []struct {
		in string
		ws string
	}{
		{"Hallo Welt", "Latn"},
		{"Привет мир", "Cyrl"},
		{"你好世界 hi", "Hani"},
		{"\U000102E1\U000102E2", "Arab"},
	}
	for _, c := range cases {
		r := &fakeRepo{preds: []domain.LanguagePrediction{{Language: "xx", Probability: 0.7}}}
		res, err := newSvc(r).Classify(context.Background(), c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.ws, res.WritingSystem, c.in)
		assert.Equal(t, c.ws, r.ws, "routed writing system for %q", c.in)
		assert.Equal(t, c.in, r.text, "repo gets the raw text")

		top, ok := res.Top()
		require.True(t, ok)
		assert.Equal(t, "xx", top.Language)
	}
}

func TestClassify_StageOneErrorsSkipExperts(t *testing.T) {
	r := &fakeRepo{}
	s := newSvc(r)

	_, err := s.Classify(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.Classify(context.Background(), "123 !!!")
	assert.ErrorIs(t, err, domain.ErrNoValidScript)
	assert.Zero(t, r.calls, "repository must not be called")
}

func TestClassify_RepoErrorsPassThrough(t *testing.T) {
	want := domain.NoExpertFound("Latn", []string{"a", "b"})
	s := newSvc(&fakeRepo{err: want})

	_, err := s.Classify(context.Background(), "hallo")
	assert.Same(t, want, err, "repository error must pass through unchanged")

	nef, ok := domain.AsNoExpertFound(err)
	require.True(t, ok)
	assert.Equal(t, "Latn", nef.WritingSystem)
}

func TestClassify_Idempotent(t *testing.T) {
	r := &fakeRepo{preds: []domain.LanguagePrediction{{Language: "de", Probability: 0.9}}}
	s := newSvc(r)

	a, err := s.Classify(context.Background(), "Hallo Welt")
	require.NoError(t, err)
	b, err := s.Classify(context.Background(), "Hallo Welt")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDetect(t *testing.T) {
	s := newSvc(&fakeRepo{})
	res, err := s.Detect(context.Background(), "カー")
	require.NoError(t, err)
	assert.Equal(t, "Kana", res.WritingSystem)
	assert.Equal(t, 2, res.UsefulChars)
	assert.Len(t, res.Votes, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Detect(ctx, "abc")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExperts(t *testing.T) {
	got, err := newSvc(&fakeRepo{}).Experts(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNew_PanicsOnNil(t *testing.T) {
	kit.MustPanic(t, func() { New(nil, &fakeRepo{}) })
	kit.MustPanic(t, func() { New(script.MustNew(script.DefaultConfig()), nil) })
}
