// Package pronounce resolves written words to phonetic transcriptions
// using the CMU Pronouncing Dictionary.
package pronounce

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/seriocomic/punnet/pkg/phoneme"
)

// Dict is an in-memory pronouncing dictionary keyed by lowercase surface
// form. Only the first listed pronunciation of a word is retained;
// alternates like "WORD(2)" are ignored.
type Dict struct {
	entries map[string][]phoneme.Phoneme
}

// LoadDict reads a CMU-format pronouncing dictionary from a file.
func LoadDict(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pronouncing dictionary: %w", err)
	}
	defer f.Close()

	d, err := ParseDict(f)
	if err != nil {
		return nil, fmt.Errorf("parsing pronouncing dictionary %s: %w", path, err)
	}
	return d, nil
}

// ParseDict reads CMU dictionary lines from r. Each entry is
// "WORD  PH1 PH2 ..."; lines starting with ";;;" are comments.
func ParseDict(r io.Reader) (*Dict, error) {
	d := &Dict{entries: make(map[string][]phoneme.Phoneme)}

	scanner := bufio.NewScanner(r)
	// Some dictionary lines are long; give the scanner room.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		word := strings.ToLower(fields[0])
		// Alternate pronunciations are suffixed "(2)", "(3)", ...
		if i := strings.IndexByte(word, '('); i > 0 {
			continue
		}
		if _, seen := d.entries[word]; seen {
			continue
		}

		phones := make([]phoneme.Phoneme, len(fields)-1)
		for i, f := range fields[1:] {
			phones[i] = phoneme.Phoneme(f)
		}
		d.entries[word] = phones
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

// Lookup returns the transcription for a lowercase word.
func (d *Dict) Lookup(word string) ([]phoneme.Phoneme, bool) {
	phones, ok := d.entries[word]
	return phones, ok
}

// Size returns the number of dictionary entries.
func (d *Dict) Size() int { return len(d.entries) }
