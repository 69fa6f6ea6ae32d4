package domain

import "context"

// ServicePort is consumed by handlers, the CLI and other modules
type ServicePort interface {
	Classify(ctx context.Context, text string) (ClassificationResult, error)
	Detect(ctx context.Context, text string) (DetectionResult, error)
	Experts(ctx context.Context) ([]Expert, error)
}

// ExpertRepository routes text to the classifier for a writing system
type ExpertRepository interface {
	Classify(ctx context.Context, text, writingSystem string) ([]LanguagePrediction, error)
	Experts(ctx context.Context) ([]Expert, error)
	Ping(ctx context.Context) error
}

// Model is a loaded text classifier. Labels carry the raw label prefix
// and come back ordered best first
type Model interface {
	Predict(text string, k int) (labels []string, probs []float32, err error)
}

// Loader opens a classifier artifact
type Loader interface {
	Load(ctx context.Context, path string) (Model, error)
}

// LoaderFunc adapts a function to Loader
type LoaderFunc func(ctx context.Context, path string) (Model, error)

// Load implements Loader
func (f LoaderFunc) Load(ctx context.Context, path string) (Model, error) { return f(ctx, path) }
