// Package http provides http transport for creator boundaries
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/modkit/httpkit"
	"adloom/internal/services/boundaries/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Reader domain.ReaderPort
	Writer domain.WriterPort
}

// Register mounts boundaries endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.Get(r, "/creators/{creatorID}/boundaries", h.get)
	httpkit.PutJSON[domain.UpsertInput](r, "/creators/{creatorID}/boundaries", h.upsert)
}

type handlers struct{ deps Deps }

// swagger:route GET /creators/{creatorID}/boundaries Boundaries getBoundaries
// @Summary Fetch a creator's boundaries
// @Tags Boundaries
// @Produce json
// @Param creatorID path string true "Creator ID"
// @Success 200 {object} domain.Boundaries "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /creators/{creatorID}/boundaries [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.deps.Reader.Get(r.Context(), chi.URLParam(r, "creatorID"))
}

// swagger:route PUT /creators/{creatorID}/boundaries Boundaries upsertBoundaries
// @Summary Replace a creator's boundaries
// @Tags Boundaries
// @Accept json
// @Produce json
// @Param creatorID path string true "Creator ID"
// @Param payload body domain.UpsertInput true "Boundaries"
// @Success 200 {object} domain.Boundaries "ok"
// @Router /creators/{creatorID}/boundaries [put]
func (h *handlers) upsert(r *stdhttp.Request, in domain.UpsertInput) (any, error) {
	return h.deps.Writer.Upsert(r.Context(), chi.URLParam(r, "creatorID"), in)
}
