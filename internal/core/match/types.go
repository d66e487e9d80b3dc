// Package match implements ad eligibility filtering and relevance ranking
// over a point-in-time catalog snapshot. It is pure: the caller supplies the
// snapshot, the boundaries, and the clock
package match

import (
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/taxonomy"
)

// Tone is a creative voice preference
type Tone string

// Tones
const (
	ToneProfessional Tone = "PROFESSIONAL"
	ToneCasual       Tone = "CASUAL"
	ToneFriendly     Tone = "FRIENDLY"
)

// CampaignStatus gates campaign participation
type CampaignStatus string

// Campaign statuses; only Active campaigns are candidates
const (
	StatusDraft     CampaignStatus = "DRAFT"
	StatusActive    CampaignStatus = "ACTIVE"
	StatusPaused    CampaignStatus = "PAUSED"
	StatusCompleted CampaignStatus = "COMPLETED"
)

// Creative is one ad unit inside a campaign. Headline/body/CTA live with the
// catalog; the matcher only needs identity, tone, and the active flag
type Creative struct {
	ID     string
	Tone   Tone
	Active bool
}

// Campaign is a snapshot row of an advertiser's campaign and its creatives
type Campaign struct {
	ID               string
	AdvertiserName   string
	TargetCategories []taxonomy.Category
	TargetKeywords   []string
	CPM              decimal.Decimal
	Status           CampaignStatus
	StartDate        time.Time
	EndDate          time.Time
	Creatives        []Creative
}

// Boundaries is a creator's matching configuration.
// Empty AllowedCategories means no restriction. A category present in both
// sets is blocked; the blocked check runs first
type Boundaries struct {
	AllowedCategories []taxonomy.Category
	BlockedCategories []taxonomy.Category
	BlockedBrands     []string
	MinCPM            *decimal.Decimal
	PreferredTone     Tone
	MaxAdsPerIssue    int
}

// Context carries the issue annotations the ranking scores against
type Context struct {
	CreatorID     string
	IssueKeywords []string
	IssueCategory taxonomy.Category
}

// Result is one ranked creative. Reasons preserve the order score
// contributions were added; the CPM bonus adds no reason line
type Result struct {
	CreativeID string
	Score      float64
	Reasons    []string
}
