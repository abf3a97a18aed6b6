package testtools

import (
	"context"
	"math"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// MannWhitneyU runs the rank-sum test on two independent samples using
// the tie-corrected normal approximation with continuity correction.
type MannWhitneyU struct{}

// NewMannWhitneyU creates a Mann-Whitney U tool
func NewMannWhitneyU() *MannWhitneyU {
	return &MannWhitneyU{}
}

func (m *MannWhitneyU) Name() string      { return "mann_whitney_u" }
func (m *MannWhitneyU) Title() string     { return "Mann-Whitney U Test" }
func (m *MannWhitneyU) Paired() bool      { return false }
func (m *MannWhitneyU) MinPerSample() int { return 1 }

// Run performs the rank-sum test
func (m *MannWhitneyU) Run(ctx context.Context, x, y table.Sample, alt ports.Alternative) (*ports.TestResult, error) {
	if err := validateTwoSamples(m.Name(), x, y, m.MinPerSample()); err != nil {
		return nil, err
	}
	if err := validateAlternative(alt); err != nil {
		return nil, err
	}

	n1, n2 := float64(x.Len()), float64(y.Len())
	combined := make([]float64, 0, x.Len()+y.Len())
	combined = append(combined, x.Values...)
	combined = append(combined, y.Values...)
	ranks, tieSum := rankAvg(combined)

	var r1 float64
	for i := 0; i < x.Len(); i++ {
		r1 += ranks[i]
	}
	u1 := r1 - n1*(n1+1)/2

	total := n1 + n2
	mean := n1 * n2 / 2
	variance := n1 * n2 / 12 * ((total + 1) - tieSum/(total*(total-1)))
	if variance <= 0 {
		return nil, core.NewComputationError(m.Name(), "all observations are tied")
	}
	sd := math.Sqrt(variance)

	var p float64
	switch alt {
	case ports.Greater:
		p = 1 - stdNormCDF((u1-mean-0.5)/sd)
	case ports.Less:
		p = stdNormCDF((u1 - mean + 0.5) / sd)
	default:
		shift := u1 - mean
		z := (shift - 0.5*sign(shift)) / sd
		p = 2 * (1 - stdNormCDF(math.Abs(z)))
	}

	return &ports.TestResult{
		TestName:  m.Name(),
		Statistic: u1,
		PValue:    clampProb(p),
		// Rank-biserial correlation as the effect size
		EffectSize: 2*u1/(n1*n2) - 1,
		HasEffect:  true,
		Details: map[string]any{
			"statistic_label": "U-statistic",
			"n_x":             x.Len(),
			"n_y":             y.Len(),
		},
	}, nil
}
