package phoneme

// Distance computes the weighted edit distance between two phoneme
// sequences. Insertions and deletions cost 1.0; substitution cost comes
// from the table (1.0 for unlisted pairs, 0 for identical phonemes after
// stress stripping). A nil table means every substitution costs full price.
//
// The result is non-negative, zero iff the sequences are identical modulo
// stress, and symmetric because the cost table is symmetric.
func Distance(a, b []Phoneme, costs *CostTable) float64 {
	la, lb := len(a), len(b)
	if la == 0 {
		return float64(lb)
	}
	if lb == 0 {
		return float64(la)
	}

	// Single-row DP keeps memory at O(len(b)).
	prev := make([]float64, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = float64(j)
	}

	cur := make([]float64, lb+1)
	for i := 1; i <= la; i++ {
		cur[0] = float64(i)
		for j := 1; j <= lb; j++ {
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + costs.SubstitutionCost(a[i-1], b[j-1])

			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}
