// Package http provides http transport for the catalog
package http

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"

	"adloom/internal/modkit/httpkit"
	"adloom/internal/services/catalog/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.PostJSON[domain.CreateAdvertiserInput](r, "/advertisers", h.createAdvertiser)
	httpkit.Get(r, "/advertisers", h.listAdvertisers)

	httpkit.PostJSON[domain.CreateCampaignInput](r, "/campaigns", h.createCampaign)
	httpkit.Get(r, "/campaigns", h.listCampaigns)
	httpkit.PostJSON[domain.SetCampaignStatusInput](r, "/campaigns/{campaignID}/status", h.setCampaignStatus)
	httpkit.Get(r, "/campaigns/{campaignID}/creatives", h.listCreatives)

	httpkit.PostJSON[domain.CreateCreativeInput](r, "/creatives", h.createCreative)
}

type handlers struct{ deps Deps }

// swagger:route POST /catalog/advertisers Catalog createAdvertiser
// @Summary Register an advertiser
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.CreateAdvertiserInput true "Advertiser"
// @Success 200 {object} domain.Advertiser "ok"
// @Router /catalog/advertisers [post]
func (h *handlers) createAdvertiser(r *stdhttp.Request, in domain.CreateAdvertiserInput) (any, error) {
	return h.deps.Writer.CreateAdvertiser(r.Context(), in)
}

// swagger:route GET /catalog/advertisers Catalog listAdvertisers
// @Summary List advertisers
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Advertiser "ok"
// @Router /catalog/advertisers [get]
func (h *handlers) listAdvertisers(r *stdhttp.Request) (any, error) {
	return h.deps.Query.ListAdvertisers(r.Context())
}

// swagger:route POST /catalog/campaigns Catalog createCampaign
// @Summary Open a campaign
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.CreateCampaignInput true "Campaign"
// @Success 200 {object} domain.Campaign "ok"
// @Router /catalog/campaigns [post]
func (h *handlers) createCampaign(r *stdhttp.Request, in domain.CreateCampaignInput) (any, error) {
	return h.deps.Writer.CreateCampaign(r.Context(), in)
}

// swagger:route GET /catalog/campaigns Catalog listCampaigns
// @Summary List campaigns with advertiser names
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Campaign "ok"
// @Router /catalog/campaigns [get]
func (h *handlers) listCampaigns(r *stdhttp.Request) (any, error) {
	return h.deps.Query.ListCampaigns(r.Context())
}

// swagger:route POST /catalog/campaigns/{campaignID}/status Catalog setCampaignStatus
// @Summary Move a campaign through its lifecycle
// @Tags Catalog
// @Accept json
// @Produce json
// @Param campaignID path string true "Campaign ID"
// @Param payload body domain.SetCampaignStatusInput true "Status"
// @Success 200 {object} domain.Campaign "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/campaigns/{campaignID}/status [post]
func (h *handlers) setCampaignStatus(r *stdhttp.Request, in domain.SetCampaignStatusInput) (any, error) {
	return h.deps.Writer.SetCampaignStatus(r.Context(), chi.URLParam(r, "campaignID"), in)
}

// swagger:route GET /catalog/campaigns/{campaignID}/creatives Catalog listCreatives
// @Summary List creatives for a campaign
// @Tags Catalog
// @Produce json
// @Param campaignID path string true "Campaign ID"
// @Success 200 {array} domain.Creative "ok"
// @Router /catalog/campaigns/{campaignID}/creatives [get]
func (h *handlers) listCreatives(r *stdhttp.Request) (any, error) {
	return h.deps.Query.ListCreatives(r.Context(), chi.URLParam(r, "campaignID"))
}

// swagger:route POST /catalog/creatives Catalog createCreative
// @Summary Add a creative to a campaign
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.CreateCreativeInput true "Creative"
// @Success 200 {object} domain.Creative "ok"
// @Router /catalog/creatives [post]
func (h *handlers) createCreative(r *stdhttp.Request, in domain.CreateCreativeInput) (any, error) {
	return h.deps.Writer.CreateCreative(r.Context(), in)
}
