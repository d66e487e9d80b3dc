// Package lexicon loads the embedded static language tables used by the
// annotation pipeline: the stopword set for keyword extraction and the
// per-category keyword dictionary for classification.
// Tables are read only after Load
package lexicon

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed lexicon.json
var embedded []byte

type rawLexicon struct {
	Version    int           `json:"version"`
	Stopwords  []string      `json:"stopwords"`
	Categories []rawCategory `json:"categories"`
}

type rawCategory struct {
	ID       string   `json:"id"`
	Keywords []string `json:"keywords"`
}

// CategoryKeywords is one category's dictionary entry.
// Order of entries in Lexicon.Categories is the declared category order
// and is the classifier tie-break
type CategoryKeywords struct {
	ID       string
	Keywords []string
}

// Lexicon holds the compiled tables
type Lexicon struct {
	Version    int
	Categories []CategoryKeywords

	stopset map[string]struct{}
}

// Load parses the embedded lexicon.json into a Lexicon
func Load() (*Lexicon, error) {
	var rl rawLexicon
	if err := json.Unmarshal(embedded, &rl); err != nil {
		return nil, fmt.Errorf("lexicon: parse lexicon.json: %w", err)
	}
	lx := &Lexicon{
		Version: rl.Version,
		stopset: make(map[string]struct{}, len(rl.Stopwords)),
	}
	for _, w := range rl.Stopwords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		lx.stopset[w] = struct{}{}
	}
	for _, rc := range rl.Categories {
		id := strings.ToUpper(strings.TrimSpace(rc.ID))
		if id == "" {
			return nil, fmt.Errorf("lexicon: category with empty id")
		}
		kws := make([]string, 0, len(rc.Keywords))
		for _, k := range rc.Keywords {
			k = strings.ToLower(strings.TrimSpace(k))
			if k != "" {
				kws = append(kws, k)
			}
		}
		lx.Categories = append(lx.Categories, CategoryKeywords{ID: id, Keywords: kws})
	}
	return lx, nil
}

var (
	defOnce sync.Once
	defLx   *Lexicon
	defErr  error
)

// Default returns the process-wide Lexicon, loading it on first use
func Default() (*Lexicon, error) {
	defOnce.Do(func() { defLx, defErr = Load() })
	return defLx, defErr
}

// MustDefault is Default for wiring paths where a broken embed is fatal
func MustDefault() *Lexicon {
	lx, err := Default()
	if err != nil {
		panic(err)
	}
	return lx
}

// Stopword reports whether tok is in the stopword set
// tok is expected lowercased
func (lx *Lexicon) Stopword(tok string) bool {
	_, ok := lx.stopset[tok]
	return ok
}

// StopwordCount returns the size of the stopword set
func (lx *Lexicon) StopwordCount() int { return len(lx.stopset) }
