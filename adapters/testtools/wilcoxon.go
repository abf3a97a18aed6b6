package testtools

import (
	"context"
	"math"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// Wilcoxon runs the signed-rank test on paired samples. The p-value uses
// the tie-corrected normal approximation with continuity correction.
type Wilcoxon struct{}

// NewWilcoxon creates a Wilcoxon signed-rank tool
func NewWilcoxon() *Wilcoxon {
	return &Wilcoxon{}
}

func (w *Wilcoxon) Name() string      { return "wilcoxon" }
func (w *Wilcoxon) Title() string     { return "Wilcoxon Test" }
func (w *Wilcoxon) Paired() bool      { return true }
func (w *Wilcoxon) MinPerSample() int { return 2 }

// Run performs the signed-rank test
func (w *Wilcoxon) Run(ctx context.Context, x, y table.Sample, alt ports.Alternative) (*ports.TestResult, error) {
	if err := table.RequirePaired(x, y); err != nil {
		return nil, err
	}
	if err := validateTwoSamples(w.Name(), x, y, w.MinPerSample()); err != nil {
		return nil, err
	}
	if err := validateAlternative(alt); err != nil {
		return nil, err
	}

	// Zero differences carry no sign information and are dropped.
	diffs := make([]float64, 0, x.Len())
	for i := range x.Values {
		if d := x.Values[i] - y.Values[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	if len(diffs) == 0 {
		return nil, core.NewComputationError(w.Name(), "all paired differences are zero")
	}

	abs := make([]float64, len(diffs))
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, tieSum := rankAvg(abs)

	var wPlus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		}
	}

	n := float64(len(diffs))
	mean := n * (n + 1) / 4
	variance := n*(n+1)*(2*n+1)/24 - tieSum/48
	if variance <= 0 {
		return nil, core.NewComputationError(w.Name(), "rank variance is zero")
	}
	sd := math.Sqrt(variance)

	var p float64
	switch alt {
	case ports.Greater:
		p = 1 - stdNormCDF((wPlus-mean-0.5)/sd)
	case ports.Less:
		p = stdNormCDF((wPlus - mean + 0.5) / sd)
	default:
		shift := wPlus - mean
		z := (shift - 0.5*sign(shift)) / sd
		p = 2 * (1 - stdNormCDF(math.Abs(z)))
	}

	return &ports.TestResult{
		TestName:  w.Name(),
		Statistic: wPlus,
		PValue:    clampProb(p),
		Details: map[string]any{
			"statistic_label": "W-statistic",
			"n_nonzero":       len(diffs),
			"n_dropped":       x.Len() - len(diffs),
		},
	}, nil
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
