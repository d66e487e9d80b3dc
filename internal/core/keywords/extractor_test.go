package keywords

import (
	"reflect"
	"strings"
	"testing"

	"adloom/internal/core/lexicon"
)

func mustExtractor(t *testing.T) *Extractor {
	t.Helper()
	lx, err := lexicon.Load()
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	return New(lx)
}

func TestExtractEmptyAndDegenerate(t *testing.T) {
	e := mustExtractor(t)

	if got := e.Extract("", 15); len(got) != 0 {
		t.Fatalf("empty text must yield no keywords, got %v", got)
	}
	// nothing repeats, so nothing reaches the frequency floor
	if got := e.Extract("unique words appearing once only", 15); len(got) != 0 {
		t.Fatalf("no repeated terms must yield no keywords, got %v", got)
	}
	// too short after filtering
	if got := e.Extract("a an it", 15); len(got) != 0 {
		t.Fatalf("stopword-only text must yield no keywords, got %v", got)
	}
}

func TestExtractScoringAndOrder(t *testing.T) {
	e := mustExtractor(t)

	// cloud x2, pipeline x3; "pipeline pipeline" bigram x2
	got := e.ExtractScored("cloud cloud pipeline pipeline pipeline", 15)

	byTerm := map[string]Keyword{}
	for _, k := range got {
		byTerm[k.Term] = k
	}

	p, ok := byTerm["pipeline"]
	if !ok || p.Frequency != 3 {
		t.Fatalf("expected pipeline freq 3, got %+v", p)
	}
	if want := 3 * (1 + 8.0/10); p.Score != want {
		t.Fatalf("pipeline score = %v, want %v", p.Score, want)
	}

	bg, ok := byTerm["pipeline pipeline"]
	if !ok || bg.Frequency != 2 {
		t.Fatalf("expected bigram freq 2, got %+v", bg)
	}
	if want := 2 * 1.5 * (1 + 0.3*2); bg.Score != want {
		t.Fatalf("bigram score = %v, want %v", bg.Score, want)
	}

	// descending by score
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Fatalf("scores not descending at %d: %v", i, got)
		}
	}
	if got[0].Term != "pipeline" {
		t.Fatalf("top keyword = %q, want pipeline", got[0].Term)
	}
}

func TestExtractTieBreakByFirstOccurrence(t *testing.T) {
	e := mustExtractor(t)

	// alpha and beta tie exactly (same length, same frequency); alpha occurs
	// first so it must rank first, every run
	for i := 0; i < 20; i++ {
		got := e.Extract("alpha beta alpha beta", 15)
		want := []string{"alpha beta", "alpha", "beta"}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: got %v, want %v", i, got, want)
		}
	}
}

func TestExtractRespectsCap(t *testing.T) {
	e := mustExtractor(t)

	var b strings.Builder
	words := []string{"apple", "grape", "mango", "peach", "melon", "lemon"}
	for i := 0; i < 3; i++ {
		for _, w := range words {
			b.WriteString(w)
			b.WriteByte(' ')
		}
	}
	got := e.Extract(b.String(), 4)
	if len(got) != 4 {
		t.Fatalf("cap not applied: got %d keywords", len(got))
	}
}

func TestExtractDropsStopwordsAndShortTokens(t *testing.T) {
	e := mustExtractor(t)

	// "the" is a stopword, "go" is too short; neither may surface even when
	// repeated. Bigrams span the survivors
	got := e.Extract("the go compiler the go compiler", 15)
	for _, k := range got {
		if k == "the" || k == "go" {
			t.Fatalf("filtered token leaked into keywords: %q", k)
		}
	}
	found := false
	for _, k := range got {
		if k == "compiler" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected compiler among keywords, got %v", got)
	}
}
