// Package service provides the boundaries service implementation
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/boundaries/domain"
	"adloom/internal/services/boundaries/repo"
)

// Service implements domain.ReaderPort and domain.WriterPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Clock  func() time.Time
}

// New constructs a new boundaries service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage]) *Service {
	return &Service{DB: db, Binder: b, Clock: time.Now}
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, creatorID string) (domain.Boundaries, error) {
	var out domain.Boundaries
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, creatorID)
		return err
	})
	return out, err
}

// Upsert implements domain.WriterPort
// overlap between allowed and blocked is rejected here, at the edit surface,
// so the matcher never has to arbitrate a contradictory row
func (s *Service) Upsert(ctx context.Context, creatorID string, in domain.UpsertInput) (domain.Boundaries, error) {
	b, err := s.fromInput(creatorID, in)
	if err != nil {
		return domain.Boundaries{}, err
	}

	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Upsert(ctx, b)
	})
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return domain.Boundaries{}, perr.NotFoundf("creator %s", creatorID)
		}
		return domain.Boundaries{}, perr.Wrap(err, perr.ErrorCodeDB, "upsert boundaries")
	}
	return b, nil
}

func (s *Service) fromInput(creatorID string, in domain.UpsertInput) (domain.Boundaries, error) {
	allowed, err := taxonomy.ParseSet(in.AllowedCategories)
	if err != nil {
		return domain.Boundaries{}, perr.Wrap(err, perr.ErrorCodeValidation, "allowed_categories")
	}
	blocked, err := taxonomy.ParseSet(in.BlockedCategories)
	if err != nil {
		return domain.Boundaries{}, perr.Wrap(err, perr.ErrorCodeValidation, "blocked_categories")
	}
	if taxonomy.Intersects(allowed, blocked) {
		return domain.Boundaries{}, perr.New(perr.ErrorCodeValidation,
			"allowed_categories and blocked_categories overlap")
	}

	var minCPM *decimal.Decimal
	if in.MinCPM != nil {
		d, err := decimal.NewFromString(*in.MinCPM)
		if err != nil {
			return domain.Boundaries{}, perr.Newf(perr.ErrorCodeValidation, "min_cpm: %q is not a number", *in.MinCPM)
		}
		if d.IsNegative() {
			return domain.Boundaries{}, perr.New(perr.ErrorCodeValidation, "min_cpm must be non-negative")
		}
		minCPM = &d
	}

	return domain.Boundaries{
		CreatorID:         creatorID,
		AllowedCategories: allowed,
		BlockedCategories: blocked,
		BlockedBrands:     in.BlockedBrands,
		MinCPM:            minCPM,
		PreferredTone:     match.Tone(in.PreferredTone),
		MaxAdsPerIssue:    in.MaxAdsPerIssue,
		UpdatedAt:         s.Clock().UTC(),
	}, nil
}
