// Package summarize implements extractive summarization: the highest-signal
// original sentences are selected and re-joined in narrative order
package summarize

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMax is the sentence cap applied when callers pass max <= 0
const DefaultMax = 3

// candidate sentence length bounds, both exclusive
const (
	minSentenceLen = 20
	maxSentenceLen = 500
)

// medium-length bonus bounds, both exclusive
const (
	bonusLenLow  = 50
	bonusLenHigh = 200
)

var (
	sentenceEnd = regexp.MustCompile(`([.!?])\s+`)
	wordRe      = regexp.MustCompile(`\b[a-z]{3,}\b`)
)

// Summarize returns up to max sentences of text joined by single spaces,
// preserving original order. Short inputs pass through unscored
func Summarize(text string, max int) string {
	if max <= 0 {
		max = DefaultMax
	}

	sentences := split(text)
	if len(sentences) <= max {
		return strings.Join(sentences, " ")
	}

	// global word frequency across surviving sentences
	freq := map[string]int{}
	words := make([][]string, len(sentences))
	for i, s := range sentences {
		ws := wordRe.FindAllString(strings.ToLower(s), -1)
		words[i] = ws
		for _, w := range ws {
			freq[w]++
		}
	}

	type scored struct {
		pos   int
		score float64
	}
	all := make([]scored, len(sentences))
	for i, s := range sentences {
		sum := 0
		for _, w := range words[i] {
			sum += freq[w]
		}
		n := len(words[i])
		if n < 1 {
			n = 1
		}
		sc := float64(sum) / float64(n)

		// position and length bonuses compose multiplicatively
		if i == 0 {
			sc *= 1.5
		}
		if i == len(sentences)-1 {
			sc *= 1.2
		}
		if len(s) > bonusLenLow && len(s) < bonusLenHigh {
			sc *= 1.1
		}
		all[i] = scored{pos: i, score: sc}
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].score > all[j].score })
	top := all[:max]
	sort.Slice(top, func(i, j int) bool { return top[i].pos < top[j].pos })

	out := make([]string, len(top))
	for i, t := range top {
		out[i] = sentences[t.pos]
	}
	return strings.Join(out, " ")
}

// split breaks text into candidate sentences and drops those outside the
// length bounds entirely
func split(text string) []string {
	marked := sentenceEnd.ReplaceAllString(text, "$1|")
	var out []string
	for _, part := range strings.Split(marked, "|") {
		s := strings.TrimSpace(part)
		if len(s) > minSentenceLen && len(s) < maxSentenceLen {
			out = append(out, s)
		}
	}
	return out
}
