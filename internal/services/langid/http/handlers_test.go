package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langid/internal/core/script"
	phttp "langid/internal/platform/net/http"
	"langid/internal/services/langid/domain"
)

type fakeSvc struct {
	gotText string
	res     domain.ClassificationResult
	det     domain.DetectionResult
	experts []domain.Expert
	err     error
}

func (f *fakeSvc) Classify(_ context.Context, text string) (domain.ClassificationResult, error) {
	f.gotText = text
	return f.res, f.err
}

func (f *fakeSvc) Detect(_ context.Context, text string) (domain.DetectionResult, error) {
	f.gotText = text
	return f.det, f.err
}

func (f *fakeSvc) Experts(context.Context) ([]domain.Expert, error) { return f.experts, f.err }

type envelope struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func serve(t *testing.T, s *fakeSvc, method, path, body string) (int, envelope) {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestClassify_OK(t *testing.T) {
	s := &fakeSvc{res: domain.ClassificationResult{
		WritingSystem: "Latn",
		Predictions: []domain.LanguagePrediction{
			{Language: "de", Probability: 0.9},
			{Language: "xx", Probability: 0.1},
		},
	}}

	code, env := serve(t, s, stdhttp.MethodPost, "/classify", `{"text":"Hallo Welt"}`)
	require.Equal(t, stdhttp.StatusOK, code)
	assert.Equal(t, "Hallo Welt", s.gotText)

	var out domain.ClassifyOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "Latn", out.WritingSystem)
	require.Len(t, out.Predictions, 2)
	assert.Equal(t, domain.PredictionView{LanguageID: "de", LanguageName: "German", Probability: 0.9}, out.Predictions[0])
	assert.Equal(t, "xx", out.Predictions[1].LanguageName, "unknown codes fall back to the code")
}

func TestClassify_Locale(t *testing.T) {
	s := &fakeSvc{res: domain.ClassificationResult{
		WritingSystem: "Latn",
		Predictions:   []domain.LanguagePrediction{{Language: "de", Probability: 1}},
	}}

	code, env := serve(t, s, stdhttp.MethodPost, "/classify", `{"text":"Hallo","locale":"de"}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var out domain.ClassifyOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "Deutsch", out.Predictions[0].LanguageName)
}

func TestClassify_Validation(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		want  string
		field string
	}{
		{"missing text", `{}`, "text is a required field", "text"},
		{"empty text", `{"text":""}`, "text is a required field", "text"},
		{"bad locale", `{"text":"hi","locale":"not a locale!"}`, "locale must be a BCP 47 language tag", "locale"},
		{"too long", `{"text":"` + strings.Repeat("a", domain.MaxTextLength+1) + `"}`, "text must be at most 10000", "text"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeSvc{}
			code, env := serve(t, s, stdhttp.MethodPost, "/classify", tc.body)
			assert.Equal(t, stdhttp.StatusBadRequest, code)
			assert.Contains(t, env.Error, tc.want)
			assert.Equal(t, tc.field, env.Field)
			assert.Empty(t, s.gotText, "service must not be called")
		})
	}
}

func TestClassify_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no script", domain.ErrNoValidScript, stdhttp.StatusUnprocessableEntity},
		{"no expert", domain.NoExpertFound("Thaa", []string{"/m/Thaa/langclf.ftz"}), stdhttp.StatusUnprocessableEntity},
		{"inference", domain.Inference("/m/Latn/langclf.ftz", assert.AnError), stdhttp.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := serve(t, &fakeSvc{err: tc.err}, stdhttp.MethodPost, "/classify", `{"text":"x"}`)
			assert.Equal(t, tc.want, code)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestDetect(t *testing.T) {
	s := &fakeSvc{det: domain.DetectionResult{
		WritingSystem: "Cyrl",
		UsefulChars:   6,
		Votes:         []script.Vote{{Script: "Cyrl", Count: 6}},
	}}
	code, env := serve(t, s, stdhttp.MethodPost, "/detect", `{"text":"Привет"}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var out domain.DetectionResult
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, s.det, out)
}

func TestExperts(t *testing.T) {
	s := &fakeSvc{experts: []domain.Expert{{WritingSystem: "Latn", Path: "/m/Latn/langclf.ftz", Quantized: true}}}
	code, env := serve(t, s, stdhttp.MethodGet, "/experts", "")
	require.Equal(t, stdhttp.StatusOK, code)

	var out []domain.Expert
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, s.experts, out)
}
