// Package repo provides repository implementations for the catalog
package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/modkit/repokit"
	"adloom/internal/services/catalog/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the catalog repository
type Storage interface {
	InsertAdvertiser(ctx context.Context, a domain.Advertiser) error
	ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error)

	InsertCampaign(ctx context.Context, c domain.Campaign) error
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id, status string) (int64, error)

	InsertCreative(ctx context.Context, cr domain.Creative) error
	ListCreatives(ctx context.Context, campaignID string) ([]domain.Creative, error)

	SnapshotCampaigns(ctx context.Context, at time.Time) ([]SnapshotCampaignRow, error)
	SnapshotCreatives(ctx context.Context, at time.Time) ([]SnapshotCreativeRow, error)
}

// SnapshotCampaignRow is a flight-eligible campaign joined to its advertiser
type SnapshotCampaignRow struct {
	ID               string
	AdvertiserName   string
	TargetCategories []string
	TargetKeywords   []string
	CPM              decimal.Decimal
	Status           string
	StartDate        time.Time
	EndDate          time.Time
}

// SnapshotCreativeRow is an active creative belonging to an eligible campaign
type SnapshotCreativeRow struct {
	ID         string
	CampaignID string
	Tone       string
}

type pg struct{ q repokit.Queryer }

func (s *pg) InsertAdvertiser(ctx context.Context, a domain.Advertiser) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO advertisers (id, name, website, contact_email, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.Name, a.Website, a.ContactEmail, a.Active, a.CreatedAt)
	return err
}

func (s *pg) ListAdvertisers(ctx context.Context) ([]domain.Advertiser, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id::text, name, COALESCE(website, ''), contact_email, active, created_at
		FROM advertisers
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Advertiser
	for rows.Next() {
		var a domain.Advertiser
		if err := rows.Scan(&a.ID, &a.Name, &a.Website, &a.ContactEmail, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *pg) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	cats := make([]string, 0, len(c.TargetCategories))
	for _, tc := range c.TargetCategories {
		cats = append(cats, string(tc))
	}
	_, err := s.q.Exec(ctx, `
		INSERT INTO campaigns (
			id, advertiser_id, name, description,
			target_categories, target_keywords,
			budget, cpm, start_date, end_date, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, c.ID, c.AdvertiserID, c.Name, c.Description,
		cats, c.TargetKeywords,
		c.Budget, c.CPM, c.StartDate, c.EndDate, string(c.Status), c.CreatedAt)
	return err
}

const campaignCols = `
	c.id::text, c.advertiser_id::text, a.name,
	c.name, COALESCE(c.description, ''),
	c.target_categories, c.target_keywords,
	c.budget, c.cpm, c.start_date, c.end_date, c.status, c.created_at
`

func (s *pg) scanCampaign(row repokit.Row) (domain.Campaign, error) {
	var c domain.Campaign
	var cats []string
	var status string
	err := row.Scan(
		&c.ID, &c.AdvertiserID, &c.AdvertiserName,
		&c.Name, &c.Description,
		&cats, &c.TargetKeywords,
		&c.Budget, &c.CPM, &c.StartDate, &c.EndDate, &status, &c.CreatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Status = statusFromDB(status)
	c.TargetCategories = categoriesFromDB(cats)
	return c, nil
}

func (s *pg) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+campaignCols+`
		FROM campaigns c
		JOIN advertisers a ON a.id = c.advertiser_id
		ORDER BY c.created_at, c.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		c, err := s.scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *pg) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	row := s.q.QueryRow(ctx, `
		SELECT `+campaignCols+`
		FROM campaigns c
		JOIN advertisers a ON a.id = c.advertiser_id
		WHERE c.id = $1
	`, id)
	return s.scanCampaign(row)
}

func (s *pg) UpdateCampaignStatus(ctx context.Context, id, status string) (int64, error) {
	tag, err := s.q.Exec(ctx, `UPDATE campaigns SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *pg) InsertCreative(ctx context.Context, cr domain.Creative) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO creatives (
			id, campaign_id, headline, body, cta_text, destination_url, tone, active, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, cr.ID, cr.CampaignID, cr.Headline, cr.Body, cr.CTAText, cr.DestinationURL,
		string(cr.Tone), cr.Active, cr.CreatedAt)
	return err
}

func (s *pg) ListCreatives(ctx context.Context, campaignID string) ([]domain.Creative, error) {
	rows, err := s.q.Query(ctx, `
		SELECT id::text, campaign_id::text, headline, body, cta_text, destination_url, tone, active, created_at
		FROM creatives
		WHERE campaign_id = $1
		ORDER BY created_at, id
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Creative
	for rows.Next() {
		var cr domain.Creative
		var tone string
		if err := rows.Scan(&cr.ID, &cr.CampaignID, &cr.Headline, &cr.Body, &cr.CTAText,
			&cr.DestinationURL, &tone, &cr.Active, &cr.CreatedAt); err != nil {
			return nil, err
		}
		cr.Tone = toneFromDB(tone)
		out = append(out, cr)
	}
	return out, rows.Err()
}

// SnapshotCampaigns returns ACTIVE campaigns whose flight window covers at
func (s *pg) SnapshotCampaigns(ctx context.Context, at time.Time) ([]SnapshotCampaignRow, error) {
	rows, err := s.q.Query(ctx, `
		SELECT
			c.id::text, a.name,
			c.target_categories, c.target_keywords,
			c.cpm, c.status, c.start_date, c.end_date
		FROM campaigns c
		JOIN advertisers a ON a.id = c.advertiser_id
		WHERE c.status = 'ACTIVE'
			AND a.active
			AND c.start_date <= $1
			AND c.end_date >= $1
		ORDER BY c.created_at, c.id
	`, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotCampaignRow
	for rows.Next() {
		var r SnapshotCampaignRow
		if err := rows.Scan(&r.ID, &r.AdvertiserName,
			&r.TargetCategories, &r.TargetKeywords,
			&r.CPM, &r.Status, &r.StartDate, &r.EndDate); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SnapshotCreatives returns active creatives of flight-eligible campaigns
func (s *pg) SnapshotCreatives(ctx context.Context, at time.Time) ([]SnapshotCreativeRow, error) {
	rows, err := s.q.Query(ctx, `
		SELECT cr.id::text, cr.campaign_id::text, cr.tone
		FROM creatives cr
		JOIN campaigns c ON c.id = cr.campaign_id
		WHERE cr.active
			AND c.status = 'ACTIVE'
			AND c.start_date <= $1
			AND c.end_date >= $1
		ORDER BY cr.created_at, cr.id
	`, at)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SnapshotCreativeRow
	for rows.Next() {
		var r SnapshotCreativeRow
		if err := rows.Scan(&r.ID, &r.CampaignID, &r.Tone); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
