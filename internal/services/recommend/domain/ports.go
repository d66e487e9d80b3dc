package domain

import "context"

// GeneratorPort produces and persists a fresh ranking for an issue
// prior PENDING rows for the issue are replaced; reviewed rows stay put
type GeneratorPort interface {
	Generate(ctx context.Context, issueID string, in GenerateInput) ([]Recommendation, error)
}

// QueryPort reads recommendations back
type QueryPort interface {
	ListByIssue(ctx context.Context, issueID string) ([]Recommendation, error)
}

// ResolverPort looks a recommendation up by id for other modules
type ResolverPort interface {
	Resolve(ctx context.Context, recommendationID string) (Recommendation, error)
}

// ReviewerPort moves a recommendation through review
type ReviewerPort interface {
	Approve(ctx context.Context, recommendationID string) (Recommendation, error)
	Reject(ctx context.Context, recommendationID string) (Recommendation, error)
}
