// Package repo provides repository implementations for issues
package repo

import (
	"context"
	stdsql "database/sql"
	"errors"

	"adloom/internal/core/taxonomy"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/issues/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the issues repository
type Storage interface {
	Insert(ctx context.Context, is domain.Issue) error
	Get(ctx context.Context, issueID string) (domain.Issue, error)
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Issue, error)
}

type pg struct{ q repokit.Queryer }

func (s *pg) Insert(ctx context.Context, is domain.Issue) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO issues (id, creator_id, title, content, summary, keywords, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, is.ID, is.CreatorID, is.Title, is.Content, is.Summary, is.Keywords, string(is.Category), is.CreatedAt)
	return err
}

const issueCols = `
	id::text, creator_id::text, title, content, summary, keywords, category, created_at
`

func scanIssue(row repokit.Row) (domain.Issue, error) {
	var is domain.Issue
	var cat string
	err := row.Scan(&is.ID, &is.CreatorID, &is.Title, &is.Content, &is.Summary,
		&is.Keywords, &cat, &is.CreatedAt)
	if err != nil {
		return domain.Issue{}, err
	}
	is.Category = taxonomy.Category(cat)
	return is, nil
}

func (s *pg) Get(ctx context.Context, issueID string) (domain.Issue, error) {
	row := s.q.QueryRow(ctx, `SELECT `+issueCols+` FROM issues WHERE id = $1`, issueID)
	is, err := scanIssue(row)
	if err != nil {
		if errors.Is(err, stdsql.ErrNoRows) {
			return domain.Issue{}, perr.NotFoundf("issue %s", issueID)
		}
		return domain.Issue{}, err
	}
	return is, nil
}

func (s *pg) ListByCreator(ctx context.Context, creatorID string) ([]domain.Issue, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+issueCols+`
		FROM issues
		WHERE creator_id = $1
		ORDER BY created_at DESC, id
	`, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Issue
	for rows.Next() {
		is, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, is)
	}
	return out, rows.Err()
}
