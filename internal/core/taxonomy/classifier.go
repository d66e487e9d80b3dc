package taxonomy

import (
	"sort"
	"strings"

	"adloom/internal/core/lexicon"
)

// maxMatched caps the distinct dictionary keywords reported per category
const maxMatched = 5

// keywordWeight and textWeight are the two match tiers: a dictionary keyword
// found among the extracted keywords is a much stronger signal than one that
// merely appears somewhere in the body
const (
	keywordWeight = 3
	textWeight    = 1
)

// Score is one category's classification evidence
type Score struct {
	Category Category
	Score    int
	Matched  []string // up to maxMatched distinct dictionary keywords
}

// Classifier scores text against the lexicon category dictionaries
type Classifier struct {
	lx *lexicon.Lexicon
}

// New constructs a Classifier over the given lexicon
func New(lx *lexicon.Lexicon) *Classifier { return &Classifier{lx: lx} }

// Classify returns the best-scoring category, or Other when nothing matches
func (c *Classifier) Classify(text string, extracted []string) Category {
	scores := c.Scores(text, extracted)
	if len(scores) == 0 {
		return Other
	}
	return scores[0].Category
}

// Scores ranks all categories with a non-zero score, descending.
// Equal scores keep lexicon dictionary order (the declared category order),
// so ranking is deterministic and testable
func (c *Classifier) Scores(text string, extracted []string) []Score {
	lowerText := strings.ToLower(text)
	lowerKws := make([]string, len(extracted))
	for i, k := range extracted {
		lowerKws[i] = strings.ToLower(k)
	}

	var out []Score
	for _, ck := range c.lx.Categories {
		if ck.ID == string(Other) {
			continue
		}
		score := 0
		var matched []string
		for _, dict := range ck.Keywords {
			switch {
			case matchesAny(lowerKws, dict):
				score += keywordWeight
			case strings.Contains(lowerText, dict):
				score += textWeight
			default:
				continue
			}
			if len(matched) < maxMatched && !containsStr(matched, dict) {
				matched = append(matched, dict)
			}
		}
		if score > 0 {
			out = append(out, Score{Category: Category(ck.ID), Score: score, Matched: matched})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// matchesAny reports bidirectional containment between the dictionary keyword
// and any extracted keyword
func matchesAny(extracted []string, dict string) bool {
	for _, k := range extracted {
		if k == "" {
			continue
		}
		if strings.Contains(k, dict) || strings.Contains(dict, k) {
			return true
		}
	}
	return false
}

func containsStr(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
