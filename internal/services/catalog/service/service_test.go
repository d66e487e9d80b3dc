package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/match"
	"adloom/internal/modkit/repokit"
	perr "adloom/internal/platform/errors"
	"adloom/internal/services/catalog/domain"
	"adloom/internal/services/catalog/repo"
)

// memStore keeps the catalog in maps so the service logic runs without Postgres
type memStore struct {
	advertisers map[string]domain.Advertiser
	campaigns   map[string]domain.Campaign
	creatives   map[string]domain.Creative
}

func (m *memStore) InsertAdvertiser(_ context.Context, a domain.Advertiser) error {
	m.advertisers[a.ID] = a
	return nil
}

func (m *memStore) ListAdvertisers(context.Context) ([]domain.Advertiser, error) {
	out := make([]domain.Advertiser, 0, len(m.advertisers))
	for _, a := range m.advertisers {
		out = append(out, a)
	}
	return out, nil
}

func (m *memStore) InsertCampaign(_ context.Context, c domain.Campaign) error {
	m.campaigns[c.ID] = c
	return nil
}

func (m *memStore) ListCampaigns(context.Context) ([]domain.Campaign, error) {
	out := make([]domain.Campaign, 0, len(m.campaigns))
	for _, c := range m.campaigns {
		out = append(out, c)
	}
	return out, nil
}

func (m *memStore) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return domain.Campaign{}, perr.NotFoundf("campaign %s", id)
	}
	if a, ok := m.advertisers[c.AdvertiserID]; ok {
		c.AdvertiserName = a.Name
	}
	return c, nil
}

func (m *memStore) UpdateCampaignStatus(_ context.Context, id, status string) (int64, error) {
	c, ok := m.campaigns[id]
	if !ok {
		return 0, nil
	}
	c.Status = match.CampaignStatus(status)
	m.campaigns[id] = c
	return 1, nil
}

func (m *memStore) InsertCreative(_ context.Context, cr domain.Creative) error {
	m.creatives[cr.ID] = cr
	return nil
}

func (m *memStore) ListCreatives(_ context.Context, campaignID string) ([]domain.Creative, error) {
	var out []domain.Creative
	for _, cr := range m.creatives {
		if cr.CampaignID == campaignID {
			out = append(out, cr)
		}
	}
	return out, nil
}

func (m *memStore) SnapshotCampaigns(_ context.Context, at time.Time) ([]repo.SnapshotCampaignRow, error) {
	var out []repo.SnapshotCampaignRow
	for _, c := range m.campaigns {
		if c.Status != match.StatusActive {
			continue
		}
		if at.Before(c.StartDate) || at.After(c.EndDate) {
			continue
		}
		name := ""
		if a, ok := m.advertisers[c.AdvertiserID]; ok {
			name = a.Name
		}
		cats := make([]string, 0, len(c.TargetCategories))
		for _, cat := range c.TargetCategories {
			cats = append(cats, string(cat))
		}
		out = append(out, repo.SnapshotCampaignRow{
			ID:               c.ID,
			AdvertiserName:   name,
			TargetCategories: cats,
			TargetKeywords:   c.TargetKeywords,
			CPM:              c.CPM,
			Status:           string(c.Status),
			StartDate:        c.StartDate,
			EndDate:          c.EndDate,
		})
	}
	return out, nil
}

func (m *memStore) SnapshotCreatives(_ context.Context, at time.Time) ([]repo.SnapshotCreativeRow, error) {
	camps, _ := m.SnapshotCampaigns(context.Background(), at)
	eligible := map[string]bool{}
	for _, c := range camps {
		eligible[c.ID] = true
	}
	var out []repo.SnapshotCreativeRow
	for _, cr := range m.creatives {
		if cr.Active && eligible[cr.CampaignID] {
			out = append(out, repo.SnapshotCreativeRow{ID: cr.ID, CampaignID: cr.CampaignID, Tone: string(cr.Tone)})
		}
	}
	return out, nil
}

type memBinder struct{ s *memStore }

func (b memBinder) Bind(repokit.Queryer) repo.Storage { return b.s }

// noTx satisfies TxRunner without a database
type noTx struct{}

func (noTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (noTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (noTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (noTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(noTx{}) }

func newTestService() (*Service, *memStore) {
	store := &memStore{
		advertisers: map[string]domain.Advertiser{},
		campaigns:   map[string]domain.Campaign{},
		creatives:   map[string]domain.Creative{},
	}
	svc := New(noTx{}, memBinder{s: store})
	svc.Clock = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc, store
}

func seedAdvertiser(t *testing.T, svc *Service) domain.Advertiser {
	t.Helper()
	a, err := svc.CreateAdvertiser(context.Background(), domain.CreateAdvertiserInput{
		Name:         "TechCorp Solutions",
		Website:      "https://techcorp.example.com",
		ContactEmail: "ads@techcorp.example.com",
	})
	if err != nil {
		t.Fatalf("CreateAdvertiser: %v", err)
	}
	return a
}

func campaignInput(advertiserID string) domain.CreateCampaignInput {
	return domain.CreateCampaignInput{
		AdvertiserID:     advertiserID,
		Name:             "Developer Tools Launch",
		TargetCategories: []string{"TECHNOLOGY", "SAAS"},
		TargetKeywords:   []string{"developer", "cloud"},
		Budget:           "5000.00",
		CPM:              "8.50",
		StartDate:        "2026-02-01T00:00:00Z",
		EndDate:          "2026-05-01T00:00:00Z",
	}
}

func TestCreateCampaignStartsDraft(t *testing.T) {
	svc, _ := newTestService()
	a := seedAdvertiser(t, svc)

	c, err := svc.CreateCampaign(context.Background(), campaignInput(a.ID))
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if c.Status != match.StatusDraft {
		t.Fatalf("new campaigns must start as draft, got %s", c.Status)
	}
	if c.AdvertiserName != a.Name {
		t.Fatalf("want advertiser name %q on the created campaign, got %q", a.Name, c.AdvertiserName)
	}
	if !c.CPM.Equal(decimal.RequireFromString("8.50")) {
		t.Fatalf("cpm mangled: %s", c.CPM)
	}
}

func TestCreateCampaignValidation(t *testing.T) {
	svc, _ := newTestService()
	a := seedAdvertiser(t, svc)

	cases := []struct {
		name   string
		mutate func(*domain.CreateCampaignInput)
	}{
		{"unknown category", func(in *domain.CreateCampaignInput) { in.TargetCategories = []string{"GARDENING"} }},
		{"bad budget", func(in *domain.CreateCampaignInput) { in.Budget = "lots" }},
		{"negative cpm", func(in *domain.CreateCampaignInput) { in.CPM = "-1" }},
		{"bad start date", func(in *domain.CreateCampaignInput) { in.StartDate = "tomorrow" }},
		{"end before start", func(in *domain.CreateCampaignInput) { in.EndDate = "2026-01-01T00:00:00Z" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := campaignInput(a.ID)
			tc.mutate(&in)
			_, err := svc.CreateCampaign(context.Background(), in)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestSetCampaignStatusUnknownCampaign(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetCampaignStatus(context.Background(), "nope", domain.SetCampaignStatusInput{Status: "ACTIVE"})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestSnapshotOnlyActiveInFlight(t *testing.T) {
	svc, _ := newTestService()
	a := seedAdvertiser(t, svc)
	ctx := context.Background()

	active, err := svc.CreateCampaign(ctx, campaignInput(a.ID))
	if err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if _, err := svc.SetCampaignStatus(ctx, active.ID, domain.SetCampaignStatusInput{Status: "ACTIVE"}); err != nil {
		t.Fatalf("SetCampaignStatus: %v", err)
	}
	if _, err := svc.CreateCampaign(ctx, campaignInput(a.ID)); err != nil { // stays draft
		t.Fatalf("CreateCampaign: %v", err)
	}

	cr, err := svc.CreateCreative(ctx, domain.CreateCreativeInput{
		CampaignID:     active.ID,
		Headline:       "Ship code, not config",
		Body:           "From commit to production in minutes.",
		CTAText:        "Start free",
		DestinationURL: "https://techcorp.example.com/ide",
		Tone:           "PROFESSIONAL",
	})
	if err != nil {
		t.Fatalf("CreateCreative: %v", err)
	}

	snap, err := svc.Snapshot(ctx, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("want 1 eligible campaign, got %d", len(snap))
	}
	got := snap[0]
	if got.ID != active.ID || got.AdvertiserName != a.Name {
		t.Fatalf("wrong snapshot row: %+v", got)
	}
	if len(got.Creatives) != 1 || got.Creatives[0].ID != cr.ID || got.Creatives[0].Tone != match.ToneProfessional {
		t.Fatalf("wrong creatives on snapshot: %+v", got.Creatives)
	}

	// outside the flight window nothing is eligible
	late, err := svc.Snapshot(ctx, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if len(late) != 0 {
		t.Fatalf("want empty snapshot after end_date, got %d rows", len(late))
	}
}
