package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/core/taxonomy"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	boundariesdom "adloom/internal/services/boundaries/domain"
	issuesdom "adloom/internal/services/issues/domain"
	"adloom/internal/services/recommend/domain"
	"adloom/internal/services/recommend/repo"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type memStore struct {
	rows map[string]domain.Recommendation
}

func (m *memStore) DeletePending(_ context.Context, issueID string) error {
	for id, r := range m.rows {
		if r.IssueID == issueID && r.Status == domain.StatusPending {
			delete(m.rows, id)
		}
	}
	return nil
}

func (m *memStore) InsertBatch(_ context.Context, recs []domain.Recommendation) error {
	for _, r := range recs {
		m.rows[r.ID] = r
	}
	return nil
}

func (m *memStore) ListByIssue(_ context.Context, issueID string) ([]domain.Recommendation, error) {
	var out []domain.Recommendation
	for _, r := range m.rows {
		if r.IssueID == issueID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) Get(_ context.Context, id string) (domain.Recommendation, error) {
	r, ok := m.rows[id]
	if !ok {
		return domain.Recommendation{}, perr.NotFoundf("recommendation %s", id)
	}
	return r, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id string, status domain.Status) (int64, error) {
	r, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	r.Status = status
	m.rows[id] = r
	return 1, nil
}

type memBinder struct{ s *memStore }

func (b memBinder) Bind(repokit.Queryer) repo.Storage { return b.s }

type noTx struct{}

func (noTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (noTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (noTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (noTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(noTx{}) }

type fakeIssues struct{ issues map[string]issuesdom.Issue }

func (f fakeIssues) Get(_ context.Context, id string) (issuesdom.Issue, error) {
	is, ok := f.issues[id]
	if !ok {
		return issuesdom.Issue{}, perr.NotFoundf("issue %s", id)
	}
	return is, nil
}

func (f fakeIssues) ListByCreator(context.Context, string) ([]issuesdom.Issue, error) {
	return nil, nil
}

type fakeBoundaries struct {
	rows map[string]boundariesdom.Boundaries
}

func (f fakeBoundaries) Get(_ context.Context, creatorID string) (boundariesdom.Boundaries, error) {
	b, ok := f.rows[creatorID]
	if !ok {
		return boundariesdom.Boundaries{}, perr.NotFoundf("boundaries for creator %s", creatorID)
	}
	return b, nil
}

type fakeCatalog struct{ campaigns []match.Campaign }

func (f fakeCatalog) Snapshot(context.Context, time.Time) ([]match.Campaign, error) {
	return f.campaigns, nil
}

func fixture() (*Service, *memStore) {
	issue := issuesdom.Issue{
		ID:        "issue-1",
		CreatorID: "creator-1",
		Keywords:  []string{"ai", "automation"},
		Category:  taxonomy.AIML,
	}
	bnd := boundariesdom.Boundaries{
		CreatorID:      "creator-1",
		PreferredTone:  match.ToneProfessional,
		MaxAdsPerIssue: 3,
	}
	camp := match.Campaign{
		ID:               "camp-1",
		AdvertiserName:   "AI Innovations Inc",
		TargetCategories: []taxonomy.Category{taxonomy.AIML},
		TargetKeywords:   []string{"ai", "writing"},
		CPM:              decimal.NewFromInt(15),
		Status:           match.StatusActive,
		StartDate:        testNow.AddDate(0, -1, 0),
		EndDate:          testNow.AddDate(0, 1, 0),
		Creatives: []match.Creative{
			{ID: "cr-1", Tone: match.ToneProfessional, Active: true},
		},
	}

	store := &memStore{rows: map[string]domain.Recommendation{}}
	svc := New(
		noTx{},
		memBinder{s: store},
		fakeIssues{issues: map[string]issuesdom.Issue{"issue-1": issue}},
		fakeBoundaries{rows: map[string]boundariesdom.Boundaries{"creator-1": bnd}},
		fakeCatalog{campaigns: []match.Campaign{camp}},
		Config{},
	)
	svc.Clock = func() time.Time { return testNow }
	return svc, store
}

func TestGenerateRanksAndPersists(t *testing.T) {
	svc, store := fixture()

	got, err := svc.Generate(context.Background(), "issue-1", domain.GenerateInput{MaxResults: 3})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one recommendation, got %+v", got)
	}
	r := got[0]
	if r.Rank != 1 || r.Status != domain.StatusPending || r.CreativeID != "cr-1" {
		t.Fatalf("unexpected recommendation: %+v", r)
	}
	if r.Score != 51.5 {
		t.Fatalf("score = %v, want 51.5", r.Score)
	}
	if len(store.rows) != 1 {
		t.Fatalf("recommendation not persisted")
	}
}

func TestGenerateReplacesPendingKeepsReviewed(t *testing.T) {
	svc, store := fixture()

	first, err := svc.Generate(context.Background(), "issue-1", domain.GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Approve(context.Background(), first[0].ID); err != nil {
		t.Fatalf("approve: %v", err)
	}

	second, err := svc.Generate(context.Background(), "issue-1", domain.GenerateInput{})
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected one fresh recommendation, got %+v", second)
	}

	// approved row survives the regeneration, pending rows were swept
	all, err := svc.ListByIssue(context.Background(), "issue-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want approved + fresh pending, got %+v", all)
	}
	approved := 0
	for _, r := range all {
		if r.Status == domain.StatusApproved {
			approved++
		}
	}
	if approved != 1 {
		t.Fatalf("approved row lost in regeneration: %+v", all)
	}
	_ = store
}

func TestGenerateWithoutBoundariesYieldsEmpty(t *testing.T) {
	svc, store := fixture()
	svc.Boundaries = fakeBoundaries{rows: map[string]boundariesdom.Boundaries{}}

	got, err := svc.Generate(context.Background(), "issue-1", domain.GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("no boundaries must mean no ads, got %+v", got)
	}
	if len(store.rows) != 0 {
		t.Fatalf("nothing should persist without boundaries")
	}
}

func TestGenerateUnknownIssue(t *testing.T) {
	svc, _ := fixture()

	_, err := svc.Generate(context.Background(), "nope", domain.GenerateInput{})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestReviewTransitions(t *testing.T) {
	svc, _ := fixture()

	got, err := svc.Generate(context.Background(), "issue-1", domain.GenerateInput{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rej, err := svc.Reject(context.Background(), got[0].ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rej.Status != domain.StatusRejected {
		t.Fatalf("status = %s, want REJECTED", rej.Status)
	}

	if _, err := svc.Approve(context.Background(), "missing"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("approve of missing row must be not found, got %v", err)
	}
}
