// Package corpus loads the idiom list and indexes every word occurrence
// so the matcher can find substitution sites.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Load reads idioms from a plain list file, one phrase per line. Blank
// lines and lines starting with '#' are skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening idiom corpus: %w", err)
	}
	defer f.Close()

	idioms, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading idiom corpus %s: %w", path, err)
	}
	return idioms, nil
}

// Parse reads idiom phrases from r in corpus order.
func Parse(r io.Reader) ([]string, error) {
	var idioms []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idioms = append(idioms, line)
	}
	return idioms, scanner.Err()
}

// Normalize lowercases a token and strips every non-letter rune, so
// "Dogs," and "don't" index as "dogs" and "dont".
func Normalize(token string) string {
	var b strings.Builder
	for _, r := range token {
		if !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
