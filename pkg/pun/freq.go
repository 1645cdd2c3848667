package pun

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// FreqFilter exposes a word's frequency rank (1 = most common). The
// second return is false for words the filter has never seen.
type FreqFilter interface {
	Rank(word string) (int, bool)
}

// RankList is a FreqFilter loaded from a frequency-ordered word list,
// one word per line, rank = line position.
type RankList struct {
	ranks map[string]int
}

// LoadRankList reads a frequency list file.
func LoadRankList(path string) (*RankList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frequency list: %w", err)
	}
	defer f.Close()

	rl, err := ParseRankList(f)
	if err != nil {
		return nil, fmt.Errorf("reading frequency list %s: %w", path, err)
	}
	return rl, nil
}

// ParseRankList reads a frequency-ordered word list from r. Blank lines
// and '#' comments are skipped without consuming a rank.
func ParseRankList(r io.Reader) (*RankList, error) {
	rl := &RankList{ranks: make(map[string]int)}
	rank := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		rank++
		if _, seen := rl.ranks[word]; !seen {
			rl.ranks[word] = rank
		}
	}
	return rl, scanner.Err()
}

// Rank returns the word's frequency rank.
func (rl *RankList) Rank(word string) (int, bool) {
	r, ok := rl.ranks[strings.ToLower(word)]
	return r, ok
}

// Len returns the number of ranked words.
func (rl *RankList) Len() int { return len(rl.ranks) }
