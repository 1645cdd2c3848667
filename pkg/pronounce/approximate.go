package pronounce

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/seriocomic/punnet/pkg/phoneme"
)

// metaphoneToARPA maps Double Metaphone code characters onto rough ARPABET
// equivalents so pseudo-transcriptions stay comparable against real
// dictionary entries. Metaphone collapses voicing (B→P, V→F, ...), so the
// result is deliberately coarse.
var metaphoneToARPA = map[rune]phoneme.Phoneme{
	'A': "AH",
	'F': "F",
	'H': "HH",
	'J': "JH",
	'K': "K",
	'L': "L",
	'M': "M",
	'N': "N",
	'P': "P",
	'R': "R",
	'S': "S",
	'T': "T",
	'W': "W",
	'X': "SH",
	'0': "TH",
}

// approximate derives a pseudo-transcription from a word's primary Double
// Metaphone key. Used only for out-of-dictionary words when approximation
// is enabled.
func approximate(word string) []phoneme.Phoneme {
	primary, _ := matchr.DoubleMetaphone(strings.ToUpper(word))
	if primary == "" {
		return nil
	}

	phones := make([]phoneme.Phoneme, 0, len(primary))
	for _, r := range primary {
		if p, ok := metaphoneToARPA[r]; ok {
			phones = append(phones, p)
		} else {
			phones = append(phones, phoneme.Phoneme(r))
		}
	}
	return phones
}
