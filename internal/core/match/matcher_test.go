package match

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"adloom/internal/core/taxonomy"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func window(c *Campaign) {
	c.StartDate = now.AddDate(0, -1, 0)
	c.EndDate = now.AddDate(0, 1, 0)
}

func activeCampaign(id, advertiser string, cpm float64, cats []taxonomy.Category, kws []string, creatives ...Creative) Campaign {
	c := Campaign{
		ID:               id,
		AdvertiserName:   advertiser,
		TargetCategories: cats,
		TargetKeywords:   kws,
		CPM:              decimal.NewFromFloat(cpm),
		Status:           StatusActive,
		Creatives:        creatives,
	}
	window(&c)
	return c
}

func defaultBoundaries() Boundaries {
	return Boundaries{
		PreferredTone:  ToneProfessional,
		MaxAdsPerIssue: 3,
	}
}

func TestBlockedCategoryIsHardFilter(t *testing.T) {
	b := defaultBoundaries()
	b.BlockedCategories = []taxonomy.Category{taxonomy.Finance}

	camp := activeCampaign("c1", "FinanceHub Pro", 12,
		[]taxonomy.Category{taxonomy.Finance}, nil,
		Creative{ID: "cr1", Tone: ToneProfessional, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Finance}, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("blocked category must exclude the pair, got %+v", got)
	}
}

func TestBlockedBrandSubstringMatch(t *testing.T) {
	b := defaultBoundaries()
	b.BlockedBrands = []string{"techcorp"}

	camp := activeCampaign("c1", "TechCorp Solutions", 8.5,
		[]taxonomy.Category{taxonomy.Technology}, nil,
		Creative{ID: "cr1", Tone: ToneCasual, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Technology}, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("blocked brand must exclude the pair, got %+v", got)
	}
}

func TestAllowedCategoriesRestrict(t *testing.T) {
	b := defaultBoundaries()
	b.AllowedCategories = []taxonomy.Category{taxonomy.Health}

	camp := activeCampaign("c1", "AI Innovations Inc", 15,
		[]taxonomy.Category{taxonomy.AIML}, nil,
		Creative{ID: "cr1", Tone: ToneProfessional, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.AIML}, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("campaign outside the allowed set must be excluded, got %+v", got)
	}
}

func TestMinCPMFilter(t *testing.T) {
	b := defaultBoundaries()
	min := decimal.NewFromInt(10)
	b.MinCPM = &min

	low := activeCampaign("low", "Acme", 9.99,
		[]taxonomy.Category{taxonomy.Business}, nil,
		Creative{ID: "cr-low", Tone: ToneProfessional, Active: true},
	)
	exact := activeCampaign("exact", "Bravo", 10,
		[]taxonomy.Category{taxonomy.Business}, nil,
		Creative{ID: "cr-exact", Tone: ToneProfessional, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Business}, b, []Campaign{low, exact}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 || got[0].CreativeID != "cr-exact" {
		t.Fatalf("strictly-below-min CPM must be excluded, at-min kept: %+v", got)
	}
}

func TestScoringScenario(t *testing.T) {
	// 30 category + 10 one keyword overlap + 10 tone + 1.5 cpm bonus = 51.5
	b := defaultBoundaries()

	camp := activeCampaign("c1", "AI Innovations Inc", 15,
		[]taxonomy.Category{taxonomy.AIML},
		[]string{"ai", "writing"},
		Creative{ID: "cr1", Tone: ToneProfessional, Active: true},
	)

	mc := Context{
		IssueKeywords: []string{"ai", "automation"},
		IssueCategory: taxonomy.AIML,
	}
	got, err := Match(mc, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one match, got %+v", got)
	}
	r := got[0]
	if r.Score != 51.5 {
		t.Fatalf("score = %v, want 51.5", r.Score)
	}
	wantReasons := []string{
		"Category match: AI_ML",
		"Keyword matches: ai",
		"Tone match: PROFESSIONAL",
	}
	if len(r.Reasons) != len(wantReasons) {
		t.Fatalf("reasons = %v, want %v", r.Reasons, wantReasons)
	}
	for i := range wantReasons {
		if r.Reasons[i] != wantReasons[i] {
			t.Fatalf("reason %d = %q, want %q", i, r.Reasons[i], wantReasons[i])
		}
	}
}

func TestCreatorCapBeatsCallerCap(t *testing.T) {
	b := defaultBoundaries()
	b.MaxAdsPerIssue = 1

	strong := activeCampaign("strong", "Acme", 0,
		[]taxonomy.Category{taxonomy.Marketing}, nil,
		Creative{ID: "cr-strong", Tone: ToneProfessional, Active: true},
	)
	weak := activeCampaign("weak", "Bravo", 0,
		[]taxonomy.Category{taxonomy.Business}, nil,
		Creative{ID: "cr-weak", Tone: ToneProfessional, Active: true},
	)

	mc := Context{IssueCategory: taxonomy.Marketing}
	got, err := Match(mc, b, []Campaign{strong, weak}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 || got[0].CreativeID != "cr-strong" {
		t.Fatalf("MaxAdsPerIssue must cap and keep the top score, got %+v", got)
	}
}

func TestScoresNonIncreasingAndStableTies(t *testing.T) {
	b := defaultBoundaries()
	b.PreferredTone = ToneFriendly

	// two identical-scoring creatives in one campaign: enumeration order holds
	camp := activeCampaign("c1", "Acme", 5,
		[]taxonomy.Category{taxonomy.Technology}, nil,
		Creative{ID: "first", Tone: ToneFriendly, Active: true},
		Creative{ID: "second", Tone: ToneFriendly, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Technology}, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two matches, got %+v", got)
	}
	if got[0].CreativeID != "first" || got[1].CreativeID != "second" {
		t.Fatalf("tie must keep enumeration order: %+v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores must be non-increasing: %+v", got)
		}
	}
}

func TestInactiveAndOutOfWindowExcluded(t *testing.T) {
	b := defaultBoundaries()

	expired := activeCampaign("expired", "Acme", 5,
		[]taxonomy.Category{taxonomy.Technology}, nil,
		Creative{ID: "cr1", Tone: ToneProfessional, Active: true},
	)
	expired.EndDate = now.AddDate(0, -1, 0)
	expired.StartDate = now.AddDate(0, -2, 0)

	paused := activeCampaign("paused", "Bravo", 5,
		[]taxonomy.Category{taxonomy.Technology}, nil,
		Creative{ID: "cr2", Tone: ToneProfessional, Active: true},
	)
	paused.Status = StatusPaused

	dormant := activeCampaign("dormant", "Delta", 5,
		[]taxonomy.Category{taxonomy.Technology}, nil,
		Creative{ID: "cr3", Tone: ToneProfessional, Active: false},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Technology}, b,
		[]Campaign{expired, paused, dormant}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("no candidates should survive, got %+v", got)
	}
}

func TestZeroScorePairDropped(t *testing.T) {
	b := defaultBoundaries()

	// nothing matches and CPM is 0: the pair carries no signal
	camp := activeCampaign("c1", "Acme", 0,
		[]taxonomy.Category{taxonomy.Entertainment}, nil,
		Creative{ID: "cr1", Tone: ToneCasual, Active: true},
	)

	got, err := Match(Context{IssueCategory: taxonomy.Technology}, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("zero-score pair must be dropped, got %+v", got)
	}
}

func TestKeywordReasonListsAtMostThree(t *testing.T) {
	b := defaultBoundaries()

	camp := activeCampaign("c1", "Acme", 0,
		nil,
		[]string{"alpha", "beta", "gamma", "delta", "epsilon"},
		Creative{ID: "cr1", Tone: ToneCasual, Active: true},
	)

	mc := Context{
		IssueKeywords: []string{"alpha", "beta", "gamma", "delta", "epsilon"},
		IssueCategory: taxonomy.Other,
	}
	got, err := Match(mc, b, []Campaign{camp}, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one match, got %+v", got)
	}
	if got[0].Score != 50 {
		t.Fatalf("five keyword overlaps should score 50, got %v", got[0].Score)
	}
	var kwReason string
	for _, r := range got[0].Reasons {
		if strings.HasPrefix(r, "Keyword matches: ") {
			kwReason = r
		}
	}
	if kwReason != "Keyword matches: alpha, beta, gamma" {
		t.Fatalf("keyword reason = %q", kwReason)
	}
}

func TestContractViolations(t *testing.T) {
	b := defaultBoundaries()
	if _, err := Match(Context{}, b, nil, now, 0); err == nil {
		t.Fatalf("maxResults <= 0 must error")
	}
	b.MaxAdsPerIssue = 0
	if _, err := Match(Context{}, b, nil, now, 3); err == nil {
		t.Fatalf("MaxAdsPerIssue <= 0 must error")
	}
}

func TestEmptyCatalogYieldsEmpty(t *testing.T) {
	got, err := Match(Context{IssueCategory: taxonomy.Technology}, defaultBoundaries(), nil, now, 3)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty catalog must yield empty result, got %+v", got)
	}
}
