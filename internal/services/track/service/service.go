// Package service provides the tracking service implementation
package service

import (
	"context"
	"time"

	perr "adloom/internal/platform/errors"
	recdom "adloom/internal/services/recommend/domain"
	"adloom/internal/services/track/domain"
	"adloom/internal/services/track/repo"
)

// Storage is the event sink and aggregate surface
type Storage interface {
	Record(ctx context.Context, ev domain.Event) error
	Counts(ctx context.Context, recommendationID string) (domain.Counts, error)
}

// Service implements domain.WriterPort and domain.QueryPort against CH
type Service struct {
	Storage  Storage
	Resolver recdom.ResolverPort
	Clock    func() time.Time
}

var _ Storage = (*repo.CH)(nil)

// New constructs a new tracking service
func New(storage Storage, resolver recdom.ResolverPort) *Service {
	return &Service{Storage: storage, Resolver: resolver, Clock: time.Now}
}

// RecordImpression implements domain.WriterPort
func (s *Service) RecordImpression(ctx context.Context, in domain.TrackInput) (domain.Event, error) {
	return s.record(ctx, domain.KindImpression, in)
}

// RecordClick implements domain.WriterPort
func (s *Service) RecordClick(ctx context.Context, in domain.TrackInput) (domain.Event, error) {
	return s.record(ctx, domain.KindClick, in)
}

func (s *Service) record(ctx context.Context, kind domain.EventKind, in domain.TrackInput) (domain.Event, error) {
	rec, err := s.Resolver.Resolve(ctx, in.RecommendationID)
	if err != nil {
		return domain.Event{}, err
	}
	ev := domain.Event{
		Kind:             kind,
		RecommendationID: rec.ID,
		CreativeID:       rec.CreativeID,
		IssueID:          rec.IssueID,
		OccurredAt:       s.Clock().UTC(),
	}
	if err := s.Storage.Record(ctx, ev); err != nil {
		return domain.Event{}, perr.Wrap(err, perr.ErrorCodeDB, "record ad event")
	}
	return ev, nil
}

// Counts implements domain.QueryPort
func (s *Service) Counts(ctx context.Context, recommendationID string) (domain.Counts, error) {
	// resolve first so unknown ids read as 404 rather than zero counts
	if _, err := s.Resolver.Resolve(ctx, recommendationID); err != nil {
		return domain.Counts{}, err
	}
	return s.Storage.Counts(ctx, recommendationID)
}
