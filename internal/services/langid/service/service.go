// Package service runs the two stage language identification pipeline
package service

import (
	"context"

	"langid/internal/core/script"
	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
	"langid/internal/services/langid/domain"
)

// Service defines the langid service contract
type Service interface {
	domain.ServicePort
}

// Detector is the writing system stage
type Detector interface {
	Detect(text string) (string, error)
	Tally(text string) (script.Tally, error)
}

// Svc implements the langid service. It holds no mutable state
type Svc struct {
	detector Detector
	experts  domain.ExpertRepository
	log      *logger.Logger
}

// New constructs a langid service
func New(detector Detector, experts domain.ExpertRepository) *Svc {
	if detector == nil {
		panic("langid.Service requires a non nil Detector")
	}
	if experts == nil {
		panic("langid.Service requires a non nil ExpertRepository")
	}
	return &Svc{detector: detector, experts: experts, log: logger.Named("langid")}
}

// Classify detects the writing system then asks its expert for languages.
// Errors from either stage are returned unchanged and there is no fallback
func (s *Svc) Classify(ctx context.Context, text string) (domain.ClassificationResult, error) {
	ws, err := s.detector.Detect(text)
	if err != nil {
		return domain.ClassificationResult{}, err
	}
	preds, err := s.experts.Classify(ctx, text, ws)
	if err != nil {
		logger.C(ctx).Debug().Err(err).Str("ws", ws).Msg("expert classification failed")
		return domain.ClassificationResult{}, err
	}

	res := domain.ClassificationResult{Predictions: preds, WritingSystem: ws}
	if top, ok := res.Top(); ok {
		s.log.Debug().Str("ws", ws).Str("lang", top.Language).Float64("p", top.Probability).Msg("classified")
	}
	return res, nil
}

// Detect runs only the writing system stage
func (s *Svc) Detect(ctx context.Context, text string) (domain.DetectionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.DetectionResult{}, perr.Wrap(err, perr.ErrorCodeCanceled, "detection canceled")
	}
	return Detect(s.detector, text)
}

// Detect tallies text with d and reports the winner along with its votes.
// It needs no expert repository
func Detect(d Detector, text string) (domain.DetectionResult, error) {
	t, err := d.Tally(text)
	if err != nil {
		return domain.DetectionResult{}, err
	}
	ws, ok := t.Winner()
	if !ok {
		return domain.DetectionResult{}, domain.ErrNoValidScript
	}
	return domain.DetectionResult{WritingSystem: ws, UsefulChars: t.Useful, Votes: t.Votes}, nil
}

// Experts lists installed experts
func (s *Svc) Experts(ctx context.Context) ([]domain.Expert, error) {
	return s.experts.Experts(ctx)
}
