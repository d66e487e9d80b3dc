// Package service provides the recommendations service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adloom/internal/core/match"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	boundariesdom "adloom/internal/services/boundaries/domain"
	catalogdom "adloom/internal/services/catalog/domain"
	issuesdom "adloom/internal/services/issues/domain"
	"adloom/internal/services/recommend/domain"
	"adloom/internal/services/recommend/repo"
)

// Config for the recommendations service
type Config struct {
	// DefaultMaxResults is used when the caller does not ask for a count
	DefaultMaxResults int
}

// Service implements the recommendation ports
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
	Clock  func() time.Time

	Issues     issuesdom.ReaderPort
	Boundaries boundariesdom.ReaderPort
	Catalog    catalogdom.SnapshotPort
}

// New constructs a new recommendations service
func New(
	db repokit.TxRunner,
	b repokit.Binder[repo.Storage],
	issues issuesdom.ReaderPort,
	boundaries boundariesdom.ReaderPort,
	catalog catalogdom.SnapshotPort,
	cfg Config,
) *Service {
	if cfg.DefaultMaxResults <= 0 {
		cfg.DefaultMaxResults = 3
	}
	return &Service{
		DB:         db,
		Binder:     b,
		Cfg:        cfg,
		Clock:      time.Now,
		Issues:     issues,
		Boundaries: boundaries,
		Catalog:    catalog,
	}
}

// Generate implements domain.GeneratorPort
// a creator with no saved boundaries gets no recommendations; opting in
// to ads is an explicit act, not a default
func (s *Service) Generate(
	ctx context.Context,
	issueID string,
	in domain.GenerateInput,
) ([]domain.Recommendation, error) {
	maxResults := in.MaxResults
	if maxResults <= 0 {
		maxResults = s.Cfg.DefaultMaxResults
	}

	issue, err := s.Issues.Get(ctx, issueID)
	if err != nil {
		return nil, err
	}

	bnd, err := s.Boundaries.Get(ctx, issue.CreatorID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return []domain.Recommendation{}, nil
		}
		return nil, err
	}

	now := s.Clock().UTC()
	catalog, err := s.Catalog.Snapshot(ctx, now)
	if err != nil {
		return nil, err
	}

	results, err := match.Match(match.Context{
		CreatorID:     issue.CreatorID,
		IssueKeywords: issue.Keywords,
		IssueCategory: issue.Category,
	}, bnd.Core(), catalog, now, maxResults)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "match")
	}

	recs := make([]domain.Recommendation, 0, len(results))
	for i, r := range results {
		recs = append(recs, domain.Recommendation{
			ID:         uuid.NewString(),
			IssueID:    issueID,
			CreativeID: r.CreativeID,
			Score:      r.Score,
			Reasons:    r.Reasons,
			Rank:       i + 1,
			Status:     domain.StatusPending,
			CreatedAt:  now,
		})
	}

	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)
		if err := st.DeletePending(ctx, issueID); err != nil {
			return err
		}
		return st.InsertBatch(ctx, recs)
	})
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "persist recommendations")
	}
	return recs, nil
}

// ListByIssue implements domain.QueryPort
func (s *Service) ListByIssue(ctx context.Context, issueID string) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListByIssue(ctx, issueID)
		return err
	})
	return out, err
}

// Resolve implements domain.ResolverPort
func (s *Service) Resolve(ctx context.Context, recommendationID string) (domain.Recommendation, error) {
	var out domain.Recommendation
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, recommendationID)
		return err
	})
	return out, err
}

// Approve implements domain.ReviewerPort
func (s *Service) Approve(ctx context.Context, recommendationID string) (domain.Recommendation, error) {
	return s.review(ctx, recommendationID, domain.StatusApproved)
}

// Reject implements domain.ReviewerPort
func (s *Service) Reject(ctx context.Context, recommendationID string) (domain.Recommendation, error) {
	return s.review(ctx, recommendationID, domain.StatusRejected)
}

func (s *Service) review(ctx context.Context, id string, status domain.Status) (domain.Recommendation, error) {
	var out domain.Recommendation
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)
		n, err := st.UpdateStatus(ctx, id, status)
		if err != nil {
			return err
		}
		if n == 0 {
			return perr.NotFoundf("recommendation %s", id)
		}
		out, err = st.Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.Recommendation{}, err
	}
	return out, nil
}
