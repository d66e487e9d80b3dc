package domain

import (
	"context"
	"time"

	"adloom/internal/core/match"
)

// WriterPort mutates the catalog
type WriterPort interface {
	CreateAdvertiser(ctx context.Context, in CreateAdvertiserInput) (Advertiser, error)
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (Campaign, error)
	CreateCreative(ctx context.Context, in CreateCreativeInput) (Creative, error)
	SetCampaignStatus(ctx context.Context, campaignID string, in SetCampaignStatusInput) (Campaign, error)
}

// QueryPort reads the catalog
type QueryPort interface {
	ListAdvertisers(ctx context.Context) ([]Advertiser, error)
	ListCampaigns(ctx context.Context) ([]Campaign, error)
	ListCreatives(ctx context.Context, campaignID string) ([]Creative, error)
}

// SnapshotPort assembles the matchable catalog at a point in time
// only ACTIVE campaigns inside their flight window with at least the
// advertiser row attached come back, creatives in stable insert order
type SnapshotPort interface {
	Snapshot(ctx context.Context, at time.Time) ([]match.Campaign, error)
}
