// Package http provides http transport for recommendations
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/modkit/httpkit"
	"adloom/internal/services/recommend/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Generator domain.GeneratorPort
	Query     domain.QueryPort
	Reviewer  domain.ReviewerPort
}

// Register mounts recommendation endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSON[domain.GenerateInput](r, "/issues/{issueID}/recommendations", h.generate)
	httpkit.Get(r, "/issues/{issueID}/recommendations", h.listByIssue)
	httpkit.Post(r, "/recommendations/{recommendationID}/approve", h.approve)
	httpkit.Post(r, "/recommendations/{recommendationID}/reject", h.reject)
}

type handlers struct{ deps Deps }

// swagger:route POST /issues/{issueID}/recommendations Recommendations generate
// @Summary Generate a fresh ranking for an issue
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param issueID path string true "Issue ID"
// @Param payload body domain.GenerateInput true "Options"
// @Success 200 {array} domain.Recommendation "ok"
// @Failure 404 {object} httpkit.Envelope "unknown issue"
// @Router /issues/{issueID}/recommendations [post]
func (h *handlers) generate(r *stdhttp.Request, in domain.GenerateInput) (any, error) {
	return h.deps.Generator.Generate(r.Context(), chi.URLParam(r, "issueID"), in)
}

// swagger:route GET /issues/{issueID}/recommendations Recommendations listByIssue
// @Summary List recommendations for an issue in rank order
// @Tags Recommendations
// @Produce json
// @Param issueID path string true "Issue ID"
// @Success 200 {array} domain.Recommendation "ok"
// @Router /issues/{issueID}/recommendations [get]
func (h *handlers) listByIssue(r *stdhttp.Request) (any, error) {
	return h.deps.Query.ListByIssue(r.Context(), chi.URLParam(r, "issueID"))
}

// swagger:route POST /recommendations/{recommendationID}/approve Recommendations approve
// @Summary Approve a recommendation
// @Tags Recommendations
// @Produce json
// @Param recommendationID path string true "Recommendation ID"
// @Success 200 {object} domain.Recommendation "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /recommendations/{recommendationID}/approve [post]
func (h *handlers) approve(r *stdhttp.Request) (any, error) {
	return h.deps.Reviewer.Approve(r.Context(), chi.URLParam(r, "recommendationID"))
}

// swagger:route POST /recommendations/{recommendationID}/reject Recommendations reject
// @Summary Reject a recommendation
// @Tags Recommendations
// @Produce json
// @Param recommendationID path string true "Recommendation ID"
// @Success 200 {object} domain.Recommendation "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /recommendations/{recommendationID}/reject [post]
func (h *handlers) reject(r *stdhttp.Request) (any, error) {
	return h.deps.Reviewer.Reject(r.Context(), chi.URLParam(r, "recommendationID"))
}
