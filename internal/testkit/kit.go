// Package testkit provides testing fixtures: a fake host registry and
// deterministic sample generators.
package testkit

import (
	"fmt"
	"math/rand/v2"

	"statplug/domain/table"
)

// NormalSample draws a deterministic pseudo-normal sample
func NormalSample(name string, n int, mu, sigma float64, seed uint64) table.Sample {
	r := rand.New(rand.NewPCG(seed, seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = mu + sigma*r.NormFloat64()
	}
	return table.Sample{Name: name, Values: values}
}

// UniformSample draws a deterministic uniform sample on [lo, hi)
func UniformSample(name string, n int, lo, hi float64, seed uint64) table.Sample {
	r := rand.New(rand.NewPCG(seed, seed))
	values := make([]float64, n)
	for i := range values {
		values[i] = lo + (hi-lo)*r.Float64()
	}
	return table.Sample{Name: name, Values: values}
}

// TableFromSamples lays equal-length samples out as a host table with a
// header row, padding short columns with blanks.
func TableFromSamples(samples ...table.Sample) [][]string {
	depth := 0
	for _, s := range samples {
		if s.Len() > depth {
			depth = s.Len()
		}
	}
	rows := make([][]string, depth+1)
	header := make([]string, len(samples))
	for i, s := range samples {
		header[i] = s.Name
	}
	rows[0] = header
	for r := 0; r < depth; r++ {
		row := make([]string, len(samples))
		for c, s := range samples {
			if r < s.Len() {
				row[c] = fmt.Sprintf("%v", s.Values[r])
			}
		}
		rows[r+1] = row
	}
	return rows
}
