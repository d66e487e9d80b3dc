// Package keywords implements salient term extraction over newsletter text.
// Unigrams and bigrams are counted over the stopword-filtered token stream and
// scored by frequency with a length weighting; output order is deterministic
package keywords

import (
	"sort"
	"strings"

	"adloom/internal/core/lexicon"
	"adloom/internal/core/normalize"
)

// DefaultMax is the keyword cap applied when callers pass max <= 0
const DefaultMax = 15

// minTokenLen drops tokens of length <= 2 before counting
const minTokenLen = 3

// minFreq is the frequency floor for a term to be scored at all
const minFreq = 2

// Keyword is one scored term
type Keyword struct {
	Term      string
	Score     float64
	Frequency int
}

// Extractor scores unigrams and bigrams against the lexicon stopword set
type Extractor struct {
	lx *lexicon.Lexicon
}

// New constructs an Extractor over the given lexicon
func New(lx *lexicon.Lexicon) *Extractor { return &Extractor{lx: lx} }

// Extract returns the top max terms in descending score order.
// Degenerate input (too short, nothing repeats) yields an empty slice
func (e *Extractor) Extract(text string, max int) []string {
	scored := e.ExtractScored(text, max)
	out := make([]string, len(scored))
	for i, k := range scored {
		out[i] = k.Term
	}
	return out
}

// ExtractScored is Extract with scores and frequencies retained.
// Ties are broken by the term's first occurrence in the filtered token
// stream so results never depend on map iteration order
func (e *Extractor) ExtractScored(text string, max int) []Keyword {
	if max <= 0 {
		max = DefaultMax
	}

	toks := e.filter(normalize.Tokens(normalize.Clean(normalize.Fold(text))))
	if len(toks) == 0 {
		return nil
	}

	type stat struct {
		freq  int
		first int // index of first occurrence in toks
	}

	unigrams := make(map[string]*stat, len(toks))
	bigrams := make(map[string]*stat, len(toks))

	for i, w := range toks {
		if s, ok := unigrams[w]; ok {
			s.freq++
		} else {
			unigrams[w] = &stat{freq: 1, first: i}
		}
		if i+1 < len(toks) {
			// bigrams span adjacent surviving tokens only; stopwords are
			// already gone so the pair may be non-adjacent in the raw text
			bg := w + " " + toks[i+1]
			if s, ok := bigrams[bg]; ok {
				s.freq++
			} else {
				bigrams[bg] = &stat{freq: 1, first: i}
			}
		}
	}

	scored := make([]Keyword, 0, len(unigrams)+len(bigrams))
	firstAt := make(map[string]int, len(unigrams)+len(bigrams))

	for w, s := range unigrams {
		if s.freq < minFreq {
			continue
		}
		scored = append(scored, Keyword{
			Term:      w,
			Score:     float64(s.freq) * (1 + float64(len(w))/10),
			Frequency: s.freq,
		})
		firstAt[w] = s.first
	}
	for bg, s := range bigrams {
		if s.freq < minFreq {
			continue
		}
		// phrase weighting favors multi-word terms over single words
		words := strings.Count(bg, " ") + 1
		scored = append(scored, Keyword{
			Term:      bg,
			Score:     float64(s.freq) * 1.5 * (1 + 0.3*float64(words)),
			Frequency: s.freq,
		})
		firstAt[bg] = s.first
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return firstAt[scored[i].Term] < firstAt[scored[j].Term]
	})

	if len(scored) > max {
		scored = scored[:max]
	}
	return scored
}

// filter drops short tokens and stopwords
func (e *Extractor) filter(toks []string) []string {
	if len(toks) == 0 {
		return nil
	}
	out := toks[:0:0]
	for _, t := range toks {
		if len(t) < minTokenLen || e.lx.Stopword(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
