// Package domain defines the types and contracts for ad recommendations
package domain

import "time"

// Status is the review state of a recommendation
type Status string

// Review states
const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Recommendation is one ranked creative proposed for an issue
type Recommendation struct {
	ID         string    `json:"id"`
	IssueID    string    `json:"issue_id"`
	CreativeID string    `json:"creative_id"`
	Score      float64   `json:"score"`
	Reasons    []string  `json:"reasons"`
	Rank       int       `json:"rank"`
	Status     Status    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// GenerateInput asks for a fresh ranking
type GenerateInput struct {
	MaxResults int `json:"max_results" validate:"omitempty,min=1,max=50" example:"3"`
}
