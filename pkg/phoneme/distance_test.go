package phoneme

import "testing"

func p(ps ...string) []Phoneme {
	out := make([]Phoneme, len(ps))
	for i, s := range ps {
		out[i] = Phoneme(s)
	}
	return out
}

func TestDistance(t *testing.T) {
	costs := DefaultCosts()

	tests := []struct {
		name string
		a, b []Phoneme
		want float64
	}{
		{"empty_both", nil, nil, 0},
		{"empty_a", nil, p("K", "AE1", "T"), 3},
		{"empty_b", p("K", "AE1", "T"), nil, 3},
		{"identical", p("K", "AE1", "T"), p("K", "AE1", "T"), 0},
		{"identical_modulo_stress", p("K", "AE1", "T"), p("K", "AE0", "T"), 0},
		// mouth vs mouse: TH/S is a listed similar pair
		{"mouth_vs_mouse", p("M", "AW1", "TH"), p("M", "AW1", "S"), 0.5},
		// cap vs cat: T/P is not listed, full substitution
		{"cap_vs_cat", p("K", "AE1", "P"), p("K", "AE1", "T"), 1},
		// dogs vs dog: plural suffix deletion
		{"dogs_vs_dog", p("D", "AO1", "G", "Z"), p("D", "AO1", "G"), 1},
		// voicing partner substitution
		{"pat_vs_bat", p("P", "AE1", "T"), p("B", "AE1", "T"), 0.5},
		{"insertion", p("K", "AE1", "T"), p("K", "AE1", "T", "S"), 1},
		// two discounted substitutions accumulate
		{"double_similar", p("P", "AE1", "T"), p("B", "AE1", "D"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b, costs)
			if got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	costs := DefaultCosts()
	seqs := [][]Phoneme{
		nil,
		p("M", "AW1", "TH"),
		p("M", "AW1", "S"),
		p("D", "AO1", "G", "Z"),
		p("F", "EH1", "DH", "ER0"),
	}
	for i, a := range seqs {
		for j, b := range seqs {
			ab := Distance(a, b, costs)
			ba := Distance(b, a, costs)
			if ab != ba {
				t.Errorf("asymmetric: d(%d,%d)=%v but d(%d,%d)=%v", i, j, ab, j, i, ba)
			}
			if ab < 0 {
				t.Errorf("negative distance d(%d,%d)=%v", i, j, ab)
			}
			if i == j && ab != 0 {
				t.Errorf("d(x,x) = %v, want 0", ab)
			}
		}
	}
}

func TestSimilarPairScoresBelowDissimilar(t *testing.T) {
	costs := DefaultCosts()
	// Same-length sequences differing by one substitution each; the
	// similar pair must score strictly lower than the dissimilar one.
	similar := Distance(p("M", "AW1", "TH"), p("M", "AW1", "S"), costs)
	dissimilar := Distance(p("M", "AW1", "TH"), p("M", "AW1", "K"), costs)
	if similar >= dissimilar {
		t.Errorf("similar pair distance %v not below dissimilar %v", similar, dissimilar)
	}
}

func TestDistanceNilTable(t *testing.T) {
	// With no table every substitution costs full price.
	got := Distance(p("M", "AW1", "TH"), p("M", "AW1", "S"), nil)
	if got != 1 {
		t.Errorf("Distance with nil table = %v, want 1", got)
	}
}
