// Package domain holds langid entities, errors and ports
package domain

import "langid/internal/core/script"

// LanguagePrediction is one ranked language guess
type LanguagePrediction struct {
	Language    string  `json:"language" example:"de"`
	Probability float64 `json:"probability" example:"0.93"`
}

// ClassificationResult is the pipeline output for one text
// Predictions are ordered as the expert ranked them, best first
type ClassificationResult struct {
	Predictions   []LanguagePrediction `json:"predictions"`
	WritingSystem string               `json:"writing_system" example:"Latn"`
}

// Top returns the best prediction, if any
func (r ClassificationResult) Top() (LanguagePrediction, bool) {
	if len(r.Predictions) == 0 {
		return LanguagePrediction{}, false
	}
	return r.Predictions[0], true
}

// DetectionResult is the writing system stage on its own, with the votes behind it
type DetectionResult struct {
	WritingSystem string        `json:"writing_system" example:"Latn"`
	UsefulChars   int           `json:"useful_chars" example:"9"`
	Votes         []script.Vote `json:"votes"`
}

// Expert describes one installed per-script classifier artifact
type Expert struct {
	WritingSystem string `json:"writing_system" example:"Cyrl"`
	Path          string `json:"path" example:"models/fasttext_experts/Cyrl/langclf.ftz"`
	Quantized     bool   `json:"quantized" example:"true"`
}
