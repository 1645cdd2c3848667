package phoneme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CostTable holds substitution costs for phoneme pairs. Pairs not listed
// cost full price (1.0). Insertions and deletions always cost 1.0.
// The table is read-only after construction and safe for concurrent use.
type CostTable struct {
	costs map[[2]Phoneme]float64
}

// SubstitutionCost returns the cost of substituting a for b. Stress digits
// are ignored. Identical phonemes cost 0.
func (t *CostTable) SubstitutionCost(a, b Phoneme) float64 {
	a, b = a.StripStress(), b.StripStress()
	if a == b {
		return 0
	}
	if t != nil {
		if c, ok := t.costs[pairKey(a, b)]; ok {
			return c
		}
	}
	return 1.0
}

// pairKey orders a pair canonically so the table stays symmetric.
func pairKey(a, b Phoneme) [2]Phoneme {
	if a > b {
		a, b = b, a
	}
	return [2]Phoneme{a, b}
}

// NewCostTable builds a table from explicit pair costs. The input map may
// list a pair in either order.
func NewCostTable(pairs map[[2]Phoneme]float64) *CostTable {
	t := &CostTable{costs: make(map[[2]Phoneme]float64, len(pairs))}
	for k, v := range pairs {
		t.costs[pairKey(k[0], k[1])] = v
	}
	return t
}

// similarCost is the discounted substitution price for the default
// similar-pair table below.
const similarCost = 0.5

// defaultPairs lists ARPABET phoneme pairs that sound close enough that
// swapping one for the other still reads as the same word family:
// voiced/unvoiced consonant partners, dental fricatives against their
// sibilant neighbours (mouth/mouse), nasals, and adjacent vowels.
var defaultPairs = [][2]Phoneme{
	// voicing partners
	{"P", "B"}, {"T", "D"}, {"K", "G"},
	{"F", "V"}, {"S", "Z"}, {"SH", "ZH"},
	{"CH", "JH"}, {"TH", "DH"},
	// dental fricatives vs. sibilants
	{"TH", "S"}, {"DH", "Z"}, {"TH", "F"}, {"DH", "V"},
	// nasals
	{"M", "N"}, {"N", "NG"},
	// liquids and glides
	{"L", "R"}, {"W", "V"},
	// neighbouring vowels
	{"AA", "AO"}, {"AA", "AH"}, {"AE", "EH"}, {"EH", "IH"},
	{"IH", "IY"}, {"UH", "UW"}, {"AH", "UH"}, {"ER", "AH"},
	{"EY", "EH"}, {"OW", "AO"}, {"AW", "OW"}, {"AY", "EY"},
}

// DefaultCosts returns the built-in similar-pair table. Every listed pair
// substitutes at 0.5; everything else at 1.0.
func DefaultCosts() *CostTable {
	t := &CostTable{costs: make(map[[2]Phoneme]float64, len(defaultPairs))}
	for _, p := range defaultPairs {
		t.costs[pairKey(p[0], p[1])] = similarCost
	}
	return t
}

// costFile is the YAML shape for a user-supplied cost table:
//
//	pairs:
//	  - a: TH
//	    b: S
//	    cost: 0.5
type costFile struct {
	Pairs []struct {
		A    string  `yaml:"a"`
		B    string  `yaml:"b"`
		Cost float64 `yaml:"cost"`
	} `yaml:"pairs"`
}

// LoadCostTable reads a substitution cost table from a YAML file. Entries
// replace the built-in defaults entirely, so a file listing three pairs
// yields a table where only those three pairs are discounted.
func LoadCostTable(path string) (*CostTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cost table: %w", err)
	}

	var cf costFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing cost table: %w", err)
	}

	t := &CostTable{costs: make(map[[2]Phoneme]float64, len(cf.Pairs))}
	for i, p := range cf.Pairs {
		if p.A == "" || p.B == "" {
			return nil, fmt.Errorf("cost table entry %d: both phonemes must be set", i)
		}
		if p.Cost < 0 {
			return nil, fmt.Errorf("cost table entry %d: negative cost %v", i, p.Cost)
		}
		t.costs[pairKey(Phoneme(p.A), Phoneme(p.B))] = p.Cost
	}
	return t, nil
}
