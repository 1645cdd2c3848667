// Package phoneme implements the weighted phoneme edit distance used to
// score how alike two pronunciations sound.
package phoneme

import "strings"

// Phoneme is a single ARPABET symbol, e.g. "K", "AE1", "TH".
// Vowel symbols may carry a trailing stress digit (0, 1 or 2).
type Phoneme string

// StripStress removes the trailing stress digit from a phoneme symbol,
// so "AH0" and "AH1" compare equal.
func (p Phoneme) StripStress() Phoneme {
	return Phoneme(strings.TrimRight(string(p), "012"))
}

// Word is a surface form together with its phonetic transcription.
// A Word with an empty transcription is "unknown" and is never matched.
type Word struct {
	Surface string
	Phones  []Phoneme
}

// Unknown reports whether the word has no known transcription.
func (w Word) Unknown() bool { return len(w.Phones) == 0 }

// Pronunciation returns the transcription as a space-joined string,
// e.g. "M AW1 TH".
func (w Word) Pronunciation() string {
	parts := make([]string, len(w.Phones))
	for i, p := range w.Phones {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}
