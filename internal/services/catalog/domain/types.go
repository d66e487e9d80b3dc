// Package domain defines the types and contracts for the catalog service
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
)

// Advertiser is a company that runs campaigns
type Advertiser struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Website      string    `json:"website,omitempty"`
	ContactEmail string    `json:"contact_email"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Campaign is a funded flight of creatives with targeting
type Campaign struct {
	ID               string              `json:"id"`
	AdvertiserID     string              `json:"advertiser_id"`
	AdvertiserName   string              `json:"advertiser_name"`
	Name             string              `json:"name"`
	Description      string              `json:"description,omitempty"`
	TargetCategories []taxonomy.Category `json:"target_categories"`
	TargetKeywords   []string            `json:"target_keywords"`
	Budget           decimal.Decimal     `json:"budget"`
	CPM              decimal.Decimal     `json:"cpm"`
	StartDate        time.Time           `json:"start_date"`
	EndDate          time.Time           `json:"end_date"`
	Status           match.CampaignStatus `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
}

// Creative is one renderable ad unit inside a campaign
type Creative struct {
	ID             string     `json:"id"`
	CampaignID     string     `json:"campaign_id"`
	Headline       string     `json:"headline"`
	Body           string     `json:"body"`
	CTAText        string     `json:"cta_text"`
	DestinationURL string     `json:"destination_url"`
	Tone           match.Tone `json:"tone"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
}
