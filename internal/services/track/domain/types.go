// Package domain defines the types and contracts for ad event tracking
package domain

import "time"

// EventKind distinguishes the two billable signals
type EventKind string

// Event kinds
const (
	KindImpression EventKind = "impression"
	KindClick      EventKind = "click"
)

// Event is one delivered or clicked ad placement
type Event struct {
	Kind             EventKind `json:"kind"`
	RecommendationID string    `json:"recommendation_id"`
	CreativeID       string    `json:"creative_id"`
	IssueID          string    `json:"issue_id"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// TrackInput names the recommendation the event belongs to
type TrackInput struct {
	RecommendationID string `json:"recommendation_id" validate:"required,uuid4"`
}

// Counts aggregates the event stream for one recommendation
type Counts struct {
	RecommendationID string `json:"recommendation_id"`
	Impressions      uint64 `json:"impressions"`
	Clicks           uint64 `json:"clicks"`
}
