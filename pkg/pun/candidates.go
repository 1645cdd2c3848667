// Package pun turns relation edges into substitution candidates and
// matches them against idiom words by pronunciation.
package pun

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/seriocomic/punnet/pkg/conceptnet"
)

// Candidate is a word related to the seed, proposed as a replacement
// target for phonetically close idiom words.
type Candidate struct {
	Word      string
	Relation  string
	Direction conceptnet.Direction
	Weight    float64
}

// surpriseRelations are kept even when the frequency band would drop
// them: antonyms and close synonyms tend to make the best puns.
var surpriseRelations = map[string]bool{
	"Antonym":   true,
	"Synonym":   true,
	"SimilarTo": true,
}

// Builder produces the deduplicated candidate set for a seed word.
type Builder struct {
	Lookup conceptnet.Lookup

	// Freq, when set, drops candidates whose known rank falls outside
	// [MinRank, MaxRank]. Words the filter has never seen pass through.
	Freq    FreqFilter
	MinRank int
	MaxRank int

	// Timeout bounds the relation lookup. Zero means no timeout.
	Timeout time.Duration

	// Logger receives degradation warnings. nil disables them.
	Logger *log.Logger
}

// Candidates queries the relation lookup for edges touching seed in
// either direction and converts them into candidates: self-relations and
// multi-word forms are dropped, (word, relation, direction) duplicates
// collapse to the first occurrence, and emission order follows the
// lookup. A failing lookup degrades to zero candidates rather than
// aborting the run.
func (b *Builder) Candidates(ctx context.Context, seed string) []Candidate {
	seed = strings.ToLower(strings.TrimSpace(seed))

	if b.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.Timeout)
		defer cancel()
	}

	edges, err := b.Lookup.Related(ctx, seed)
	if err != nil {
		if b.Logger != nil {
			b.Logger.Printf("Warning: relation lookup for %q failed: %v", seed, err)
		}
		return nil
	}

	type dedupKey struct {
		word, relation string
		dir            conceptnet.Direction
	}
	seen := make(map[dedupKey]bool)

	var out []Candidate
	for _, e := range edges {
		word := strings.ToLower(strings.TrimSpace(e.Word))
		if word == "" || word == seed {
			continue
		}
		// Only single-token candidates can replace a single idiom word.
		if strings.ContainsAny(word, " -") {
			continue
		}
		key := dedupKey{word, e.Relation, e.Direction}
		if seen[key] {
			continue
		}
		seen[key] = true

		if !b.allowed(word, e.Relation) {
			continue
		}
		out = append(out, Candidate{
			Word:      word,
			Relation:  e.Relation,
			Direction: e.Direction,
			Weight:    e.Weight,
		})
	}
	return out
}

// allowed applies the frequency band. Surprise relations bypass it.
func (b *Builder) allowed(word, relation string) bool {
	if b.Freq == nil || surpriseRelations[relation] {
		return true
	}
	rank, known := b.Freq.Rank(word)
	if !known {
		return true
	}
	if b.MinRank > 0 && rank < b.MinRank {
		return false
	}
	if b.MaxRank > 0 && rank > b.MaxRank {
		return false
	}
	return true
}
