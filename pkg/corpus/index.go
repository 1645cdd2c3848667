package corpus

import "strings"

// Entry is one occurrence of a word inside an idiom. Phrase keeps the
// original surface tokens so a renderer can rebuild the idiom verbatim;
// Position indexes into Phrase.
type Entry struct {
	Phrase   []string
	Word     string
	Position int
	// Idiom is the phrase's position in the corpus, used for stable
	// ordering of results.
	Idiom int
}

// Phrased returns the idiom as a single string.
func (e Entry) Phrased() string { return strings.Join(e.Phrase, " ") }

// Substituted returns the idiom with the word at Position replaced.
func (e Entry) Substituted(replacement string) string {
	out := make([]string, len(e.Phrase))
	copy(out, e.Phrase)
	out[e.Position] = replacement
	return strings.Join(out, " ")
}

// Index maps every normalized word to its occurrences, built once per run
// and immutable afterwards. Everything is retained at index time; length
// or stop-word policy is a match-time concern.
type Index struct {
	entries map[string][]Entry
	words   []string // distinct words in first-seen corpus order
}

// NewIndex tokenizes each idiom on whitespace, normalizes tokens, and
// records every occurrence. Occurrence order follows the corpus, then
// token position, which keeps downstream results deterministic.
func NewIndex(idioms []string) *Index {
	idx := &Index{entries: make(map[string][]Entry)}
	for i, idiom := range idioms {
		tokens := strings.Fields(idiom)
		for pos, tok := range tokens {
			word := Normalize(tok)
			if word == "" {
				continue
			}
			if _, seen := idx.entries[word]; !seen {
				idx.words = append(idx.words, word)
			}
			idx.entries[word] = append(idx.entries[word], Entry{
				Phrase:   tokens,
				Word:     word,
				Position: pos,
				Idiom:    i,
			})
		}
	}
	return idx
}

// Entries returns the occurrences of a normalized word.
func (idx *Index) Entries(word string) []Entry {
	return idx.entries[word]
}

// Words returns the distinct indexed words in first-seen corpus order.
func (idx *Index) Words() []string {
	return idx.words
}

// Len returns the number of distinct indexed words.
func (idx *Index) Len() int { return len(idx.entries) }
