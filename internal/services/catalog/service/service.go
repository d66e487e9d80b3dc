// Package service provides the catalog service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/catalog/domain"
	"adloom/internal/services/catalog/repo"
)

// Service implements domain.WriterPort, domain.QueryPort, and domain.SnapshotPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Clock  func() time.Time
}

// New constructs a new catalog service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b, Clock: time.Now}
}

// CreateAdvertiser implements domain.WriterPort
func (s *Service) CreateAdvertiser(ctx context.Context, in domain.CreateAdvertiserInput) (domain.Advertiser, error) {
	a := domain.Advertiser{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Website:      in.Website,
		ContactEmail: in.ContactEmail,
		Active:       true,
		CreatedAt:    s.Clock().UTC(),
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).InsertAdvertiser(ctx, a)
	})
	if err != nil {
		return domain.Advertiser{}, perr.Wrap(err, perr.ErrorCodeDB, "insert advertiser")
	}
	return a, nil
}

// CreateCampaign implements domain.WriterPort
func (s *Service) CreateCampaign(ctx context.Context, in domain.CreateCampaignInput) (domain.Campaign, error) {
	cats, err := taxonomy.ParseSet(in.TargetCategories)
	if err != nil {
		return domain.Campaign{}, perr.Wrap(err, perr.ErrorCodeValidation, "target_categories")
	}
	budget, err := decimal.NewFromString(in.Budget)
	if err != nil {
		return domain.Campaign{}, perr.Newf(perr.ErrorCodeValidation, "budget: %q is not a number", in.Budget)
	}
	cpm, err := decimal.NewFromString(in.CPM)
	if err != nil {
		return domain.Campaign{}, perr.Newf(perr.ErrorCodeValidation, "cpm: %q is not a number", in.CPM)
	}
	if cpm.IsNegative() || budget.IsNegative() {
		return domain.Campaign{}, perr.New(perr.ErrorCodeValidation, "budget and cpm must be non-negative")
	}
	start, err := time.Parse(time.RFC3339, in.StartDate)
	if err != nil {
		return domain.Campaign{}, perr.Newf(perr.ErrorCodeValidation, "start_date: %v", err)
	}
	end, err := time.Parse(time.RFC3339, in.EndDate)
	if err != nil {
		return domain.Campaign{}, perr.Newf(perr.ErrorCodeValidation, "end_date: %v", err)
	}
	if !end.After(start) {
		return domain.Campaign{}, perr.New(perr.ErrorCodeValidation, "end_date must be after start_date")
	}

	c := domain.Campaign{
		ID:               uuid.NewString(),
		AdvertiserID:     in.AdvertiserID,
		Name:             in.Name,
		Description:      in.Description,
		TargetCategories: cats,
		TargetKeywords:   in.TargetKeywords,
		Budget:           budget,
		CPM:              cpm,
		StartDate:        start.UTC(),
		EndDate:          end.UTC(),
		Status:           match.StatusDraft,
		CreatedAt:        s.Clock().UTC(),
	}
	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Binder.Bind(q)
		if err := r.InsertCampaign(ctx, c); err != nil {
			return err
		}
		// read back for the advertiser name
		got, err := r.GetCampaign(ctx, c.ID)
		if err != nil {
			return err
		}
		c.AdvertiserName = got.AdvertiserName
		return nil
	})
	if err != nil {
		return domain.Campaign{}, perr.Wrap(err, perr.ErrorCodeDB, "insert campaign")
	}
	return c, nil
}

// CreateCreative implements domain.WriterPort
func (s *Service) CreateCreative(ctx context.Context, in domain.CreateCreativeInput) (domain.Creative, error) {
	cr := domain.Creative{
		ID:             uuid.NewString(),
		CampaignID:     in.CampaignID,
		Headline:       in.Headline,
		Body:           in.Body,
		CTAText:        in.CTAText,
		DestinationURL: in.DestinationURL,
		Tone:           match.Tone(in.Tone),
		Active:         true,
		CreatedAt:      s.Clock().UTC(),
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).InsertCreative(ctx, cr)
	})
	if err != nil {
		return domain.Creative{}, perr.Wrap(err, perr.ErrorCodeDB, "insert creative")
	}
	return cr, nil
}

// SetCampaignStatus implements domain.WriterPort
func (s *Service) SetCampaignStatus(
	ctx context.Context,
	campaignID string,
	in domain.SetCampaignStatusInput,
) (domain.Campaign, error) {
	var out domain.Campaign
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Binder.Bind(q)
		n, err := r.UpdateCampaignStatus(ctx, campaignID, in.Status)
		if err != nil {
			return err
		}
		if n == 0 {
			return perr.NotFoundf("campaign %s", campaignID)
		}
		out, err = r.GetCampaign(ctx, campaignID)
		return err
	})
	if err != nil {
		return domain.Campaign{}, err
	}
	return out, nil
}

// ListAdvertisers implements domain.QueryPort
func (s *Service) ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	var out []domain.Advertiser
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListAdvertisers(ctx)
		return err
	})
	return out, err
}

// ListCampaigns implements domain.QueryPort
func (s *Service) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListCampaigns(ctx)
		return err
	})
	return out, err
}

// ListCreatives implements domain.QueryPort
func (s *Service) ListCreatives(ctx context.Context, campaignID string) ([]domain.Creative, error) {
	var out []domain.Creative
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListCreatives(ctx, campaignID)
		return err
	})
	return out, err
}

// Snapshot implements domain.SnapshotPort
func (s *Service) Snapshot(ctx context.Context, at time.Time) ([]match.Campaign, error) {
	var camps []repo.SnapshotCampaignRow
	var creatives []repo.SnapshotCreativeRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		r := s.Binder.Bind(q)
		var err error
		if camps, err = r.SnapshotCampaigns(ctx, at); err != nil {
			return err
		}
		creatives, err = r.SnapshotCreatives(ctx, at)
		return err
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "catalog snapshot")
	}

	byCampaign := make(map[string][]match.Creative, len(camps))
	for _, cr := range creatives {
		byCampaign[cr.CampaignID] = append(byCampaign[cr.CampaignID], match.Creative{
			ID:     cr.ID,
			Tone:   match.Tone(cr.Tone),
			Active: true,
		})
	}

	out := make([]match.Campaign, 0, len(camps))
	for _, c := range camps {
		cats := make([]taxonomy.Category, 0, len(c.TargetCategories))
		for _, x := range c.TargetCategories {
			cats = append(cats, taxonomy.Category(x))
		}
		out = append(out, match.Campaign{
			ID:               c.ID,
			AdvertiserName:   c.AdvertiserName,
			TargetCategories: cats,
			TargetKeywords:   c.TargetKeywords,
			CPM:              c.CPM,
			Status:           match.CampaignStatus(c.Status),
			StartDate:        c.StartDate,
			EndDate:          c.EndDate,
			Creatives:        byCampaign[c.ID],
		})
	}
	return out, nil
}
