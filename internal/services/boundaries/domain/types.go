// Package domain defines the types and contracts for creator boundaries
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
)

// Boundaries are a creator's standing rules for what may run in their letter
type Boundaries struct {
	CreatorID         string              `json:"creator_id"`
	AllowedCategories []taxonomy.Category `json:"allowed_categories"`
	BlockedCategories []taxonomy.Category `json:"blocked_categories"`
	BlockedBrands     []string            `json:"blocked_brands"`
	MinCPM            *decimal.Decimal    `json:"min_cpm,omitempty"`
	PreferredTone     match.Tone          `json:"preferred_tone"`
	MaxAdsPerIssue    int                 `json:"max_ads_per_issue"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// Core maps the stored row onto the matcher's view
func (b Boundaries) Core() match.Boundaries {
	return match.Boundaries{
		AllowedCategories: b.AllowedCategories,
		BlockedCategories: b.BlockedCategories,
		BlockedBrands:     b.BlockedBrands,
		MinCPM:            b.MinCPM,
		PreferredTone:     b.PreferredTone,
		MaxAdsPerIssue:    b.MaxAdsPerIssue,
	}
}
