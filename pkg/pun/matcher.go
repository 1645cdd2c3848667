package pun

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"github.com/seriocomic/punnet/pkg/conceptnet"
	"github.com/seriocomic/punnet/pkg/corpus"
	"github.com/seriocomic/punnet/pkg/phoneme"
	"github.com/seriocomic/punnet/pkg/pronounce"
)

// Match is one suggested substitution: replace the idiom word at
// Entry.Position with Replacement.
type Match struct {
	Entry       corpus.Entry
	Replacement string
	Distance    float64

	// Relation metadata is empty when the replacement is the seed word
	// itself rather than a related word.
	Relation  string
	Direction conceptnet.Direction

	// Transcriptions of the idiom word and its replacement, for
	// renderers that show pronunciations.
	IdiomPron       phoneme.Word
	ReplacementPron phoneme.Word

	candOrd int
}

// Substituted returns the idiom with the replacement applied.
func (m Match) Substituted() string {
	return m.Entry.Substituted(m.Replacement)
}

// Matcher cross-compares idiom words against candidate words by weighted
// phoneme distance and ranks the survivors.
type Matcher struct {
	trans *pronounce.Transcriber
	index *corpus.Index
	costs *phoneme.CostTable

	// MaxDistance is the inclusive score ceiling for a match.
	MaxDistance float64
	// MinDistance excludes matches below it; raising it above zero
	// filters homophone-only swaps.
	MinDistance float64
	// MinWordLen keeps short glue words ("a", "in") from being
	// substitution targets; they stay visible as context.
	MinWordLen int
	// Workers sizes the comparison worker pool.
	Workers int
}

// NewMatcher creates a Matcher with the default threshold (1.0), minimum
// target word length (3), and one worker per CPU.
func NewMatcher(trans *pronounce.Transcriber, index *corpus.Index, costs *phoneme.CostTable) *Matcher {
	return &Matcher{
		trans:       trans,
		index:       index,
		costs:       costs,
		MaxDistance: 1.0,
		MinWordLen:  3,
		Workers:     runtime.NumCPU(),
	}
}

// target is an idiom word eligible for substitution.
type target struct {
	word string
	pron phoneme.Word
}

// Find returns every substitution of a candidate (or the seed itself)
// into an idiom word within the distance band, deduplicated and sorted
// ascending by distance with ties broken by corpus order. An invalid
// seed is the only fatal error; unknown transcriptions just shrink the
// result set.
func (m *Matcher) Find(ctx context.Context, seed string, candidates []Candidate) ([]Match, error) {
	// Normalize the same way the candidate builder does, so "Cat" and
	// "cat" are the same seed. Non-alphabetic seeds stay fatal.
	seed = strings.ToLower(strings.TrimSpace(seed))

	// The seed is always a replacement candidate too, ahead of its
	// relations so it wins surface-form deduplication.
	if _, err := m.trans.Transcribe(seed); err != nil {
		return nil, err
	}
	cands := dedupeBySurface(append([]Candidate{{Word: seed}}, candidates...))

	targets := m.collectTargets()
	if len(targets) == 0 {
		return []Match{}, nil
	}

	// Pairwise comparison, parallel across the candidate dimension.
	// Each job owns one result slot, so no ordering dependency exists
	// until the final sort.
	results := make([][]Match, len(cands))
	pool := newWorkerPool(m.Workers)
	pool.start(ctx)
	for i, cand := range cands {
		i, cand := i, cand
		if !pool.submit(ctx, func(ctx context.Context) {
			results[i] = m.matchCandidate(i, cand, targets)
		}) {
			break
		}
	}
	pool.close()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Dedup (phrase, position, replacement) triples: first seen wins,
	// and candidate order makes first seen the lowest distance.
	type triple struct {
		idiom, pos int
		word       string
	}
	seen := make(map[triple]bool)
	var out []Match
	for _, batch := range results {
		for _, match := range batch {
			key := triple{match.Entry.Idiom, match.Entry.Position, match.Replacement}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, match)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Entry.Idiom != b.Entry.Idiom {
			return a.Entry.Idiom < b.Entry.Idiom
		}
		if a.Entry.Position != b.Entry.Position {
			return a.Entry.Position < b.Entry.Position
		}
		return a.candOrd < b.candOrd
	})

	if out == nil {
		out = []Match{}
	}
	return out, nil
}

// collectTargets transcribes every distinct idiom word long enough to be
// a substitution target, skipping unknowns.
func (m *Matcher) collectTargets() []target {
	var targets []target
	for _, word := range m.index.Words() {
		if len(word) < m.MinWordLen {
			continue
		}
		pron, err := m.trans.Transcribe(word)
		if err != nil || pron.Unknown() {
			continue
		}
		targets = append(targets, target{word: word, pron: pron})
	}
	return targets
}

// matchCandidate compares one candidate against every target and emits a
// Match per idiom occurrence within the distance band.
func (m *Matcher) matchCandidate(ord int, cand Candidate, targets []target) []Match {
	pron, err := m.trans.Transcribe(cand.Word)
	if err != nil || pron.Unknown() {
		return nil
	}

	var matches []Match
	for _, tgt := range targets {
		// A no-op substitution is never a match.
		if tgt.word == cand.Word {
			continue
		}
		d := phoneme.Distance(tgt.pron.Phones, pron.Phones, m.costs)
		if d < m.MinDistance || d > m.MaxDistance {
			continue
		}
		for _, entry := range m.index.Entries(tgt.word) {
			matches = append(matches, Match{
				Entry:           entry,
				Replacement:     cand.Word,
				Distance:        d,
				Relation:        cand.Relation,
				Direction:       cand.Direction,
				IdiomPron:       tgt.pron,
				ReplacementPron: pron,
				candOrd:         ord,
			})
		}
	}
	return matches
}

// dedupeBySurface keeps the first candidate per surface form, so the
// first (strongest) relation wins for display.
func dedupeBySurface(cands []Candidate) []Candidate {
	seen := make(map[string]bool, len(cands))
	out := cands[:0]
	for _, c := range cands {
		if seen[c.Word] {
			continue
		}
		seen[c.Word] = true
		out = append(out, c)
	}
	return out
}
