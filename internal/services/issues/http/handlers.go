// Package http provides http transport for issues
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/modkit/httpkit"
	"adloom/internal/services/issues/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Writer domain.WriterPort
	Reader domain.ReaderPort
}

// Register mounts issue endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.CreateInput](r, "/creators/{creatorID}/issues", h.create)
	httpkit.Get(r, "/creators/{creatorID}/issues", h.listByCreator)
	httpkit.Get(r, "/issues/{issueID}", h.get)
}

type handlers struct{ deps Deps }

// swagger:route POST /creators/{creatorID}/issues Issues createIssue
// @Summary Ingest an issue and annotate it
// @Tags Issues
// @Accept json
// @Produce json
// @Param creatorID path string true "Creator ID"
// @Param payload body domain.CreateInput true "Issue"
// @Success 200 {object} domain.Issue "ok"
// @Failure 404 {object} httpkit.Envelope "unknown creator"
// @Router /creators/{creatorID}/issues [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	return h.deps.Writer.Create(r.Context(), chi.URLParam(r, "creatorID"), in)
}

// swagger:route GET /creators/{creatorID}/issues Issues listIssues
// @Summary List a creator's issues, newest first
// @Tags Issues
// @Produce json
// @Param creatorID path string true "Creator ID"
// @Success 200 {array} domain.Issue "ok"
// @Router /creators/{creatorID}/issues [get]
func (h *handlers) listByCreator(r *stdhttp.Request) (any, error) {
	return h.deps.Reader.ListByCreator(r.Context(), chi.URLParam(r, "creatorID"))
}

// swagger:route GET /issues/{issueID} Issues getIssue
// @Summary Fetch one issue with annotations
// @Tags Issues
// @Produce json
// @Param issueID path string true "Issue ID"
// @Success 200 {object} domain.Issue "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /issues/{issueID} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.deps.Reader.Get(r.Context(), chi.URLParam(r, "issueID"))
}
