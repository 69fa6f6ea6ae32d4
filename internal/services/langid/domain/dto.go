package domain

// MaxTextLength bounds request text in runes. The validate tags on
// ClassifyInput and DetectInput repeat it as max=10000 and must change with it
const MaxTextLength = 10000

// ClassifyInput is the classify request body
type ClassifyInput struct {
	Text   string `json:"text" validate:"required,max=10000" example:"Hallo Welt"`
	Locale string `json:"locale,omitempty" validate:"omitempty,locale" example:"en"`
}

// PredictionView is a prediction with a display name in the requested locale
type PredictionView struct {
	LanguageID   string  `json:"language_id" example:"de"`
	LanguageName string  `json:"language_name" example:"German"`
	Probability  float64 `json:"probability" example:"0.93"`
}

// ClassifyOutput is the classify response body
type ClassifyOutput struct {
	Predictions   []PredictionView `json:"predictions"`
	WritingSystem string           `json:"writing_system" example:"Latn"`
}

// DetectInput is the detect request body
type DetectInput struct {
	Text string `json:"text" validate:"required,max=10000" example:"Привет мир"`
}
