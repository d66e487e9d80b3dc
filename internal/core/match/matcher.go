package match

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMaxResults is the result cap applied when callers pass max <= 0 to
// the service layer; Match itself rejects non-positive caps
const DefaultMaxResults = 3

// score weights
const (
	categoryWeight   = 30.0
	keywordWeight    = 10.0
	toneWeight       = 10.0
	cpmBonusDivisor  = 10
	cpmBonusCeiling  = 10.0
	maxKeywordReason = 3
)

// Match applies hard eligibility filters then soft relevance scoring over
// every (campaign, creative) pair and returns the ranked, capped results.
//
// Hard filters short-circuit: a rejected pair accrues no score and no
// reasons. Survivors sort by descending score with ties kept in candidate
// enumeration order (campaign order, then creative order within campaign).
// The creator's MaxAdsPerIssue always bounds the caller's maxResults
func Match(
	mc Context,
	b Boundaries,
	campaigns []Campaign,
	now time.Time,
	maxResults int,
) ([]Result, error) {
	if maxResults <= 0 {
		return nil, fmt.Errorf("match: maxResults must be >= 1, got %d", maxResults)
	}
	if b.MaxAdsPerIssue <= 0 {
		return nil, fmt.Errorf("match: boundaries MaxAdsPerIssue must be >= 1, got %d", b.MaxAdsPerIssue)
	}

	var results []Result

	for _, camp := range campaigns {
		// candidate universe: ACTIVE campaigns whose window contains now.
		// re-checked here so a stale snapshot cannot leak expired campaigns
		if camp.Status != StatusActive {
			continue
		}
		if now.Before(camp.StartDate) || now.After(camp.EndDate) {
			continue
		}
		if blockedBrand(b.BlockedBrands, camp.AdvertiserName) {
			continue
		}
		if intersects(camp.TargetCategories, b.BlockedCategories) {
			continue
		}
		if len(b.AllowedCategories) > 0 && !intersects(camp.TargetCategories, b.AllowedCategories) {
			continue
		}
		if b.MinCPM != nil && camp.CPM.LessThan(*b.MinCPM) {
			continue
		}

		for _, cr := range camp.Creatives {
			if !cr.Active {
				continue
			}

			score := 0.0
			var reasons []string

			if contains(camp.TargetCategories, mc.IssueCategory) {
				score += categoryWeight
				reasons = append(reasons, fmt.Sprintf("Category match: %s", mc.IssueCategory))
			}

			if matched := keywordOverlap(mc.IssueKeywords, camp.TargetKeywords); len(matched) > 0 {
				score += keywordWeight * float64(len(matched))
				shown := matched
				if len(shown) > maxKeywordReason {
					shown = shown[:maxKeywordReason]
				}
				reasons = append(reasons, "Keyword matches: "+strings.Join(shown, ", "))
			}

			if cr.Tone == b.PreferredTone {
				score += toneWeight
				reasons = append(reasons, fmt.Sprintf("Tone match: %s", cr.Tone))
			}

			// monetary tie-breaker, never surfaced as a reason
			score += cpmBonus(camp.CPM)

			if score <= 0 {
				continue
			}
			results = append(results, Result{CreativeID: cr.ID, Score: score, Reasons: reasons})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	limit := maxResults
	if b.MaxAdsPerIssue < limit {
		limit = b.MaxAdsPerIssue
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// cpmBonus is min(cpm/10, 10)
func cpmBonus(cpm decimal.Decimal) float64 {
	bonus := cpm.Div(decimal.NewFromInt(cpmBonusDivisor)).InexactFloat64()
	if bonus > cpmBonusCeiling {
		return cpmBonusCeiling
	}
	return bonus
}

// keywordOverlap returns the issue keywords that bidirectionally contain any
// campaign target keyword, case-insensitive, in issue keyword order
func keywordOverlap(issueKws, targetKws []string) []string {
	var out []string
	for _, ik := range issueKws {
		li := strings.ToLower(ik)
		if li == "" {
			continue
		}
		for _, tk := range targetKws {
			lt := strings.ToLower(tk)
			if lt == "" {
				continue
			}
			if strings.Contains(lt, li) || strings.Contains(li, lt) {
				out = append(out, ik)
				break
			}
		}
	}
	return out
}

// blockedBrand reports a case-insensitive substring hit of any blocked brand
// inside the advertiser name
func blockedBrand(blocked []string, advertiser string) bool {
	name := strings.ToLower(advertiser)
	for _, b := range blocked {
		if b == "" {
			continue
		}
		if strings.Contains(name, strings.ToLower(b)) {
			return true
		}
	}
	return false
}

func contains[T comparable](xs []T, v T) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func intersects[T comparable](a, b []T) bool {
	for _, x := range a {
		if contains(b, x) {
			return true
		}
	}
	return false
}
