// Package service provides the issues service implementation
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"adloom/internal/core/keywords"
	"adloom/internal/core/lexicon"
	"adloom/internal/core/summarize"
	"adloom/internal/core/taxonomy"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/issues/domain"
	"adloom/internal/services/issues/repo"
)

// Config for the issues service
type Config struct {
	// MaxKeywords caps the keywords stored per issue; defaults to the extractor default
	MaxKeywords int
	// SummarySentences caps the stored summary length; defaults to the summarizer default
	SummarySentences int
}

// Service implements domain.WriterPort and domain.ReaderPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
	Clock  func() time.Time

	extractor  *keywords.Extractor
	classifier *taxonomy.Classifier
}

// New constructs a new issues service over the default lexicon
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = keywords.DefaultMax
	}
	if cfg.SummarySentences <= 0 {
		cfg.SummarySentences = summarize.DefaultMax
	}
	lx := lexicon.MustDefault()
	return &Service{
		DB:         db,
		Binder:     b,
		Cfg:        cfg,
		Clock:      time.Now,
		extractor:  keywords.New(lx),
		classifier: taxonomy.New(lx),
	}
}

// Annotate runs the content pipeline without persisting anything
func (s *Service) Annotate(content string) (summary string, kws []string, cat taxonomy.Category) {
	kws = s.extractor.Extract(content, s.Cfg.MaxKeywords)
	cat = s.classifier.Classify(content, kws)
	summary = summarize.Summarize(content, s.Cfg.SummarySentences)
	return summary, kws, cat
}

// Create implements domain.WriterPort
func (s *Service) Create(ctx context.Context, creatorID string, in domain.CreateInput) (domain.Issue, error) {
	summary, kws, cat := s.Annotate(in.Content)

	is := domain.Issue{
		ID:        uuid.NewString(),
		CreatorID: creatorID,
		Title:     in.Title,
		Content:   in.Content,
		Summary:   summary,
		Keywords:  kws,
		Category:  cat,
		CreatedAt: s.Clock().UTC(),
	}
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		return s.Binder.Bind(q).Insert(ctx, is)
	})
	if err != nil {
		if perr.IsForeignKeyViolation(err) {
			return domain.Issue{}, perr.NotFoundf("creator %s", creatorID)
		}
		return domain.Issue{}, perr.Wrap(err, perr.ErrorCodeDB, "insert issue")
	}
	return is, nil
}

// Get implements domain.ReaderPort
func (s *Service) Get(ctx context.Context, issueID string) (domain.Issue, error) {
	var out domain.Issue
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).Get(ctx, issueID)
		return err
	})
	return out, err
}

// ListByCreator implements domain.ReaderPort
func (s *Service) ListByCreator(ctx context.Context, creatorID string) ([]domain.Issue, error) {
	var out []domain.Issue
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ListByCreator(ctx, creatorID)
		return err
	})
	return out, err
}
