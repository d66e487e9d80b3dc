// Package repo provides repository implementations for recommendations
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/recommend/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the recommendations repository
type Storage interface {
	DeletePending(ctx context.Context, issueID string) error
	InsertBatch(ctx context.Context, recs []domain.Recommendation) error
	ListByIssue(ctx context.Context, issueID string) ([]domain.Recommendation, error)
	Get(ctx context.Context, id string) (domain.Recommendation, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (int64, error)
}

type pg struct{ q repokit.Queryer }

func (s *pg) DeletePending(ctx context.Context, issueID string) error {
	_, err := s.q.Exec(ctx, `
		DELETE FROM recommendations
		WHERE issue_id = $1 AND status = 'PENDING'
	`, issueID)
	return err
}

func (s *pg) InsertBatch(ctx context.Context, recs []domain.Recommendation) error {
	for _, r := range recs {
		_, err := s.q.Exec(ctx, `
			INSERT INTO recommendations (id, issue_id, creative_id, score, reasons, rank, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, r.ID, r.IssueID, r.CreativeID, r.Score, r.Reasons, r.Rank, string(r.Status), r.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

const recCols = `
	id::text, issue_id::text, creative_id::text, score, reasons, rank, status, created_at
`

func scanRec(row repokit.Row) (domain.Recommendation, error) {
	var r domain.Recommendation
	var status string
	err := row.Scan(&r.ID, &r.IssueID, &r.CreativeID, &r.Score, &r.Reasons, &r.Rank, &status, &r.CreatedAt)
	if err != nil {
		return domain.Recommendation{}, err
	}
	r.Status = domain.Status(status)
	return r, nil
}

func (s *pg) ListByIssue(ctx context.Context, issueID string) ([]domain.Recommendation, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+recCols+`
		FROM recommendations
		WHERE issue_id = $1
		ORDER BY rank, created_at
	`, issueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Recommendation
	for rows.Next() {
		r, err := scanRec(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *pg) Get(ctx context.Context, id string) (domain.Recommendation, error) {
	row := s.q.QueryRow(ctx, `SELECT `+recCols+` FROM recommendations WHERE id = $1`, id)
	r, err := scanRec(row)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Recommendation{}, perr.NotFoundf("recommendation %s", id)
		}
		return domain.Recommendation{}, err
	}
	return r, nil
}

func (s *pg) UpdateStatus(ctx context.Context, id string, status domain.Status) (int64, error) {
	tag, err := s.q.Exec(ctx, `
		UPDATE recommendations SET status = $2 WHERE id = $1
	`, id, string(status))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
