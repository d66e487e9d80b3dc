// Package repo provides the clickhouse repository for ad events
package repo

import (
	"context"

	"adloom/internal/platform/store"
	"adloom/internal/services/track/domain"
)

// eventsTable carries the column order batches append in
const eventsTable = "ad_events (kind, recommendation_id, creative_id, issue_id, occurred_at)"

// CH is the clickhouse-backed event store
type CH struct {
	DB store.Clickhouse
}

// NewCH constructs a clickhouse repo over the store seam
func NewCH(db store.Clickhouse) *CH { return &CH{DB: db} }

// Record appends one event
func (r *CH) Record(ctx context.Context, ev domain.Event) error {
	rows := [][]any{{
		string(ev.Kind),
		ev.RecommendationID,
		ev.CreativeID,
		ev.IssueID,
		ev.OccurredAt,
	}}
	return r.DB.Insert(ctx, eventsTable, rows)
}

// Counts aggregates impressions and clicks for one recommendation
func (r *CH) Counts(ctx context.Context, recommendationID string) (domain.Counts, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT
			countIf(kind = 'impression') AS impressions,
			countIf(kind = 'click')      AS clicks
		FROM ad_events
		WHERE recommendation_id = ?
	`, recommendationID)
	if err != nil {
		return domain.Counts{}, err
	}
	defer rows.Close()

	out := domain.Counts{RecommendationID: recommendationID}
	if rows.Next() {
		if err := rows.Scan(&out.Impressions, &out.Clicks); err != nil {
			return domain.Counts{}, err
		}
	}
	return out, rows.Err()
}
