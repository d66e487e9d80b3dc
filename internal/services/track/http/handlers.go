// Package http provides http transport for ad event tracking
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/modkit/httpkit"
	"adloom/internal/services/track/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Register mounts tracking endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.TrackInput](r, "/impressions", h.impression)
	httpkit.PostJSON[domain.TrackInput](r, "/clicks", h.click)
	httpkit.Get(r, "/recommendations/{recommendationID}/counts", h.counts)
}

type handlers struct{ deps Deps }

// swagger:route POST /track/impressions Track recordImpression
// @Summary Record an ad impression
// @Tags Track
// @Accept json
// @Produce json
// @Param payload body domain.TrackInput true "Recommendation"
// @Success 200 {object} domain.Event "ok"
// @Failure 404 {object} httpkit.Envelope "unknown recommendation"
// @Router /track/impressions [post]
func (h *handlers) impression(r *stdhttp.Request, in domain.TrackInput) (any, error) {
	return h.deps.Writer.RecordImpression(r.Context(), in)
}

// swagger:route POST /track/clicks Track recordClick
// @Summary Record an ad click
// @Tags Track
// @Accept json
// @Produce json
// @Param payload body domain.TrackInput true "Recommendation"
// @Success 200 {object} domain.Event "ok"
// @Failure 404 {object} httpkit.Envelope "unknown recommendation"
// @Router /track/clicks [post]
func (h *handlers) click(r *stdhttp.Request, in domain.TrackInput) (any, error) {
	return h.deps.Writer.RecordClick(r.Context(), in)
}

// swagger:route GET /track/recommendations/{recommendationID}/counts Track counts
// @Summary Aggregate impressions and clicks for a recommendation
// @Tags Track
// @Produce json
// @Param recommendationID path string true "Recommendation ID"
// @Success 200 {object} domain.Counts "ok"
// @Failure 404 {object} httpkit.Envelope "unknown recommendation"
// @Router /track/recommendations/{recommendationID}/counts [get]
func (h *handlers) counts(r *stdhttp.Request) (any, error) {
	return h.deps.Query.Counts(r.Context(), chi.URLParam(r, "recommendationID"))
}
