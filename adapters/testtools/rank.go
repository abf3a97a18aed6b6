package testtools

import "sort"

// rankAvg assigns 1-based ranks to values, averaging ranks within tie
// groups. The second return is the tie correction term sum(t^3 - t) over
// all tie groups, which the rank tests feed into their variance formulas.
func rankAvg(values []float64) (ranks []float64, tieSum float64) {
	n := len(values)
	ranks = make([]float64, n)
	if n == 0 {
		return ranks, 0
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Positions i..j share the same value; average their ranks.
		avg := float64(i+j+2) / 2
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		if t := float64(j - i + 1); t > 1 {
			tieSum += t*t*t - t
		}
		i = j + 1
	}
	return ranks, tieSum
}
