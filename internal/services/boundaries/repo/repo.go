// Package repo provides repository implementations for creator boundaries
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/boundaries/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the boundaries repository
type Storage interface {
	Get(ctx context.Context, creatorID string) (domain.Boundaries, error)
	Upsert(ctx context.Context, b domain.Boundaries) error
}

type pg struct{ q repokit.Queryer }

func (s *pg) Get(ctx context.Context, creatorID string) (domain.Boundaries, error) {
	row := s.q.QueryRow(ctx, `
		SELECT
			creator_id::text,
			allowed_categories, blocked_categories, blocked_brands,
			min_cpm, preferred_tone, max_ads_per_issue, updated_at
		FROM creator_boundaries
		WHERE creator_id = $1
	`, creatorID)

	var b domain.Boundaries
	var allowed, blocked []string
	var tone string
	err := row.Scan(
		&b.CreatorID,
		&allowed, &blocked, &b.BlockedBrands,
		&b.MinCPM, &tone, &b.MaxAdsPerIssue, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Boundaries{}, perr.NotFoundf("boundaries for creator %s", creatorID)
		}
		return domain.Boundaries{}, err
	}
	b.AllowedCategories = categoriesFromDB(allowed)
	b.BlockedCategories = categoriesFromDB(blocked)
	b.PreferredTone = toneFromDB(tone)
	return b, nil
}

func (s *pg) Upsert(ctx context.Context, b domain.Boundaries) error {
	allowed := categoriesToDB(b.AllowedCategories)
	blocked := categoriesToDB(b.BlockedCategories)
	_, err := s.q.Exec(ctx, `
		INSERT INTO creator_boundaries (
			creator_id,
			allowed_categories, blocked_categories, blocked_brands,
			min_cpm, preferred_tone, max_ads_per_issue, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (creator_id) DO UPDATE SET
			allowed_categories = EXCLUDED.allowed_categories,
			blocked_categories = EXCLUDED.blocked_categories,
			blocked_brands     = EXCLUDED.blocked_brands,
			min_cpm            = EXCLUDED.min_cpm,
			preferred_tone     = EXCLUDED.preferred_tone,
			max_ads_per_issue  = EXCLUDED.max_ads_per_issue,
			updated_at         = EXCLUDED.updated_at
	`, b.CreatorID,
		allowed, blocked, b.BlockedBrands,
		b.MinCPM, string(b.PreferredTone), b.MaxAdsPerIssue, b.UpdatedAt)
	return err
}
