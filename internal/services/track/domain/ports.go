package domain

import "context"

// WriterPort records ad events
type WriterPort interface {
	RecordImpression(ctx context.Context, in TrackInput) (Event, error)
	RecordClick(ctx context.Context, in TrackInput) (Event, error)
}

// QueryPort aggregates ad events
type QueryPort interface {
	Counts(ctx context.Context, recommendationID string) (Counts, error)
}
