package pronounce

import (
	"fmt"
	"sync"

	"github.com/seriocomic/punnet/pkg/phoneme"
)

// InvalidWordError reports input that cannot be transcribed at all:
// empty strings or tokens containing non-alphabetic characters.
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	if e.Word == "" {
		return "invalid word: empty"
	}
	return fmt.Sprintf("invalid word %q: must be lowercase alphabetic", e.Word)
}

// Transcriber wraps a Dict behind an unbounded process-wide cache, so
// repeated lookups for the same surface form cost one map read. The cache
// uses a per-key done channel so concurrent callers compute each word at
// most once and waiters block until the first computation lands.
type Transcriber struct {
	dict *Dict

	// approximate enables metaphone-derived pseudo-transcriptions for
	// out-of-dictionary words instead of marking them unknown.
	approximate bool

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	done chan struct{}
	word phoneme.Word
}

// Option configures a Transcriber.
type Option func(*Transcriber)

// WithApproximation enables Double Metaphone pseudo-transcriptions for
// words missing from the dictionary. Without it, unknown words yield an
// unknown Word that later stages skip.
func WithApproximation() Option {
	return func(t *Transcriber) { t.approximate = true }
}

// NewTranscriber creates a Transcriber over the given dictionary.
func NewTranscriber(dict *Dict, opts ...Option) *Transcriber {
	t := &Transcriber{
		dict:  dict,
		cache: make(map[string]*cacheEntry),
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Transcribe resolves the transcription for a lowercase alphabetic token.
// Unknown words are not an error; they come back as an unknown Word.
func (t *Transcriber) Transcribe(word string) (phoneme.Word, error) {
	if !validWord(word) {
		return phoneme.Word{}, &InvalidWordError{Word: word}
	}

	t.mu.Lock()
	if e, ok := t.cache[word]; ok {
		t.mu.Unlock()
		<-e.done
		return e.word, nil
	}
	e := &cacheEntry{done: make(chan struct{})}
	t.cache[word] = e
	t.mu.Unlock()

	e.word = t.resolve(word)
	close(e.done)
	return e.word, nil
}

func (t *Transcriber) resolve(word string) phoneme.Word {
	if phones, ok := t.dict.Lookup(word); ok {
		return phoneme.Word{Surface: word, Phones: phones}
	}
	if t.approximate {
		return phoneme.Word{Surface: word, Phones: approximate(word)}
	}
	return phoneme.Word{Surface: word}
}

// validWord reports whether word is a non-empty lowercase alphabetic token.
func validWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
