// Package domain defines the types and contracts for newsletter issues
package domain

import (
	"time"

	"adloom/internal/core/taxonomy"
)

// Issue is a newsletter issue with its derived annotations
// Summary, Keywords, and Category are computed at ingest and never
// hand-edited; re-ingesting the content is the way to refresh them
type Issue struct {
	ID        string            `json:"id"`
	CreatorID string            `json:"creator_id"`
	Title     string            `json:"title"`
	Content   string            `json:"content,omitempty"`
	Summary   string            `json:"summary"`
	Keywords  []string          `json:"keywords"`
	Category  taxonomy.Category `json:"category"`
	CreatedAt time.Time         `json:"created_at"`
}

// CreateInput submits a new issue body for annotation
type CreateInput struct {
	Title   string `json:"title"   validate:"required,min=1,max=300" example:"The AI automation issue"`
	Content string `json:"content" validate:"required,min=1" example:"Full issue body..."`
}
