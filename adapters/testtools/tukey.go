package testtools

import (
	"context"
	"fmt"
	"math"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// TukeyHSD runs Tukey's honestly-significant-difference test: all-pairs
// mean comparisons referred to the studentized range over the pooled
// within-group error.
type TukeyHSD struct{}

// NewTukeyHSD creates a Tukey HSD tool
func NewTukeyHSD() *TukeyHSD {
	return &TukeyHSD{}
}

func (t *TukeyHSD) Name() string   { return "tukey_hsd" }
func (t *TukeyHSD) Title() string  { return "Tukey's HSD Test" }
func (t *TukeyHSD) MinGroups() int { return 2 }

// Compare produces the all-pairs p-value matrix
func (t *TukeyHSD) Compare(ctx context.Context, groups []table.Sample) (*ports.PairwiseResult, error) {
	if len(groups) < t.MinGroups() {
		return nil, core.NewInvalidInputError(fmt.Sprintf("%s needs at least %d groups, got %d", t.Name(), t.MinGroups(), len(groups)))
	}

	total := 0
	for _, g := range groups {
		if err := validateSample(t.Name(), g, 2); err != nil {
			return nil, err
		}
		total += g.Len()
	}
	k := len(groups)
	df := float64(total - k)

	means := make([]float64, k)
	var sse float64
	for i, g := range groups {
		mean, variance := meanVariance(g.Values)
		means[i] = mean
		sse += float64(g.Len()-1) * variance
	}
	mse := sse / df
	if mse <= 0 {
		return nil, core.NewComputationError(t.Name(), "no within-group variance")
	}

	names := make([]string, k)
	pvalues := make([][]float64, k)
	for i := range pvalues {
		names[i] = groups[i].Name
		pvalues[i] = make([]float64, k)
		pvalues[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			ni, nj := float64(groups[i].Len()), float64(groups[j].Len())
			se := math.Sqrt(mse / 2 * (1/ni + 1/nj))
			q := math.Abs(means[i]-means[j]) / se
			p := clampProb(1 - studentizedRangeCDF(q, k, df))
			pvalues[i][j] = p
			pvalues[j][i] = p
		}
	}

	return &ports.PairwiseResult{
		TestName: t.Name(),
		Groups:   names,
		PValues:  pvalues,
	}, nil
}
