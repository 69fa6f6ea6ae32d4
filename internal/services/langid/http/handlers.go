// Package http provides http transport for langid
package http

import (
	stdhttp "net/http"

	"langid/internal/modkit/httpkit"
	"langid/internal/services/langid/domain"
	svc "langid/internal/services/langid/service"
)

// Register mounts langid endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full pipeline
	httpkit.PostJSON[domain.ClassifyInput](r, "/classify", h.classify)

	// writing system only
	httpkit.PostJSON[domain.DetectInput](r, "/detect", h.detect)

	// installed experts
	httpkit.Get(r, "/experts", h.experts)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /langid/classify Langid langidClassify
// @Summary Identify the language of a text
// @Description Detects the writing system, then ranks languages with that script's expert model
// @Tags Langid
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Text and display locale"
// @Success 200 {object} domain.ClassifyOutput "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Failure 422 {object} httpkit.Envelope "no valid script or no expert"
// @Failure 500 {object} httpkit.Envelope "inference failed"
// @Router /langid/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyInput) (any, error) {
	res, err := h.svc.Classify(r.Context(), in.Text)
	if err != nil {
		return nil, err
	}
	return res.View(domain.NewNamer(in.Locale)), nil
}

// swagger:route POST /langid/detect Langid langidDetect
// @Summary Detect the writing system of a text
// @Tags Langid
// @Accept json
// @Produce json
// @Param payload body domain.DetectInput true "Text"
// @Success 200 {object} domain.DetectionResult "ok"
// @Failure 400 {object} httpkit.Envelope "invalid input"
// @Failure 422 {object} httpkit.Envelope "no valid script"
// @Router /langid/detect [post]
func (h *handlers) detect(r *stdhttp.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in.Text)
}

// swagger:route GET /langid/experts Langid langidExperts
// @Summary List installed expert models
// @Tags Langid
// @Produce json
// @Success 200 {array} domain.Expert "ok"
// @Router /langid/experts [get]
func (h *handlers) experts(r *stdhttp.Request) (any, error) {
	return h.svc.Experts(r.Context())
}
