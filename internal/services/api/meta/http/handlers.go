// Package http serves the liveness, readiness and build endpoints under /meta
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"langid/internal/core/version"
	"langid/internal/modkit/httpkit"

	"golang.org/x/sync/errgroup"
)

// readyTimeout bounds the whole readiness check
const readyTimeout = 2 * time.Second

// Pinger is anything with a cheap liveness ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Check is a named readiness dependency. A nil Pinger is reported as skipped
type Check struct {
	Name   string
	Pinger Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Check
	Pipeline    PipelineResponse
}

type handlers struct{ Deps }

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := handlers{d}
	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/pipeline", h.pipeline)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// HealthResponse is the liveness payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"langid"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is the outcome of one dependency check
type ReadyCheck struct {
	Name      string `json:"name"       example:"experts"`
	Status    string `json:"status"     example:"ok" enums:"ok,fail,skipped"`
	LatencyMS int64  `json:"latency_ms" example:"3"`
	Error     string `json:"error,omitempty" example:"model path unavailable: stat models/fasttext_experts: no such file or directory"`
}

// ReadyResponse is ok when every check passed, degraded when some were
// skipped and fail when any failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok" enums:"ok,degraded,fail"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse reports uptime in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"langid"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// PipelineResponse reports how both pipeline stages are configured
type PipelineResponse struct {
	Script string            `json:"script" example:"noise=[Zyyy Zinh Zzzz] ignore=[P S] digits=true max_ext=4 min_useful=1"`
	Repo   string            `json:"repo"   example:"path=models/fasttext_experts patterns=[{base}/{ws}/langclf.ftz] prefix=\"__label__\" k=10 cache=16"`
	Build  version.BuildInfo `json:"build"`
}

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (h handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{OK: true, Service: h.ServiceName, Started: stamp(h.StartedAt), Now: stamp(time.Now())}, nil
}

// @Summary Readiness with dependency checks
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (h handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	// checks run concurrently, each writing only its own slot
	out := make([]ReadyCheck, len(h.Checks))
	var g errgroup.Group
	for i, c := range h.Checks {
		g.Go(func() error {
			out[i] = runCheck(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	status := "ok"
	for _, c := range out {
		switch {
		case c.Status == "fail":
			status = "fail"
		case c.Status == "skipped" && status == "ok":
			status = "degraded"
		}
	}
	return ReadyResponse{Status: status, Checks: out, Now: stamp(time.Now())}, nil
}

func runCheck(ctx stdctx.Context, c Check) ReadyCheck {
	rc := ReadyCheck{Name: c.Name, Status: "skipped"}
	if c.Pinger == nil {
		return rc
	}
	start := time.Now()
	err := c.Pinger.Ping(ctx)
	rc.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		rc.Status, rc.Error = "fail", err.Error()
	} else {
		rc.Status = "ok"
	}
	return rc
}

// @Summary Build information
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (h handlers) version(_ *http.Request) (any, error) { return version.Info(), nil }

// @Summary Service uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (h handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.ServiceName,
		Started: stamp(h.StartedAt),
		Uptime:  int64(time.Since(h.StartedAt) / time.Second),
	}, nil
}

// @Summary Pipeline configuration
// @Tags Meta
// @Produce json
// @Success 200 {object} PipelineResponse
// @Router /meta/pipeline [get]
func (h handlers) pipeline(_ *http.Request) (any, error) {
	p := h.Pipeline
	p.Build = version.Info()
	return p, nil
}
