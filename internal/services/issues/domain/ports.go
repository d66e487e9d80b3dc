package domain

import "context"

// WriterPort ingests issues
type WriterPort interface {
	Create(ctx context.Context, creatorID string, in CreateInput) (Issue, error)
}

// ReaderPort reads issues back
// Get returns ErrorCodeNotFound for unknown ids
type ReaderPort interface {
	Get(ctx context.Context, issueID string) (Issue, error)
	ListByCreator(ctx context.Context, creatorID string) ([]Issue, error)
}
