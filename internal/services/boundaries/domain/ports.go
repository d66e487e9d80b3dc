package domain

import "context"

// ReaderPort reads a creator's boundaries
// Get returns ErrorCodeNotFound when the creator has never saved any
type ReaderPort interface {
	Get(ctx context.Context, creatorID string) (Boundaries, error)
}

// WriterPort replaces a creator's boundaries
type WriterPort interface {
	Upsert(ctx context.Context, creatorID string, in UpsertInput) (Boundaries, error)
}
