package testtools

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// TTestKind selects how the independent t-test treats group variances
type TTestKind string

const (
	Student TTestKind = "student"
	Welch   TTestKind = "welch"
	// Auto runs a two-sided F-test of variance equality first and picks
	// Student when it cannot reject equal variances, Welch otherwise.
	Auto TTestKind = "auto"
)

// TTest compares the means of two independent samples
type TTest struct {
	kind TTestKind
	gate float64
}

// NewTTest creates a t-test tool. gate is the F-test significance
// threshold consulted only when kind is Auto.
func NewTTest(kind TTestKind, gate float64) *TTest {
	return &TTest{kind: kind, gate: gate}
}

func (t *TTest) Name() string      { return "t_test" }
func (t *TTest) Title() string     { return "T-test" }
func (t *TTest) Paired() bool      { return false }
func (t *TTest) MinPerSample() int { return 2 }

// Run performs the independent two-sample t-test
func (t *TTest) Run(ctx context.Context, x, y table.Sample, alt ports.Alternative) (*ports.TestResult, error) {
	if err := validateTwoSamples(t.Name(), x, y, t.MinPerSample()); err != nil {
		return nil, err
	}
	if err := validateAlternative(alt); err != nil {
		return nil, err
	}

	n1, n2 := float64(x.Len()), float64(y.Len())
	m1, v1 := meanVariance(x.Values)
	m2, v2 := meanVariance(y.Values)

	kind := t.kind
	if kind == Auto {
		resolved, err := resolveByVarianceGate(v1, v2, x.Len(), y.Len(), t.gate)
		if err != nil {
			return nil, err
		}
		kind = resolved
	}

	var se, df float64
	pooled := ((n1-1)*v1 + (n2-1)*v2) / (n1 + n2 - 2)
	switch kind {
	case Student:
		se = math.Sqrt(pooled * (1/n1 + 1/n2))
		df = n1 + n2 - 2
	case Welch:
		a, b := v1/n1, v2/n2
		se = math.Sqrt(a + b)
		df = (a + b) * (a + b) / (a*a/(n1-1) + b*b/(n2-1))
	default:
		return nil, core.NewInvalidInputError("unsupported t-test kind " + string(kind))
	}
	if se == 0 || math.IsNaN(df) {
		return nil, core.NewComputationError(t.Name(), "both samples have zero variance")
	}

	tStat := (m1 - m2) / se
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := tailPValue(alt, tDist.CDF(tStat))

	res := &ports.TestResult{
		TestName:  t.Name(),
		Statistic: tStat,
		PValue:    pValue,
		DF:        df,
		HasDF:     true,
		Details: map[string]any{
			"statistic_label": "t-statistic",
			"kind":            string(kind),
			"mean_x":          m1,
			"mean_y":          m2,
			"n_x":             x.Len(),
			"n_y":             y.Len(),
		},
	}
	// Cohen's d. The Welch branch standardizes on the unweighted average
	// of the two variances; pooling assumes them equal.
	effectVar := pooled
	if kind == Welch {
		effectVar = (v1 + v2) / 2
	}
	if effectVar > 0 {
		res.EffectSize = (m1 - m2) / math.Sqrt(effectVar)
		res.HasEffect = true
	}
	return res, nil
}

// resolveByVarianceGate runs a two-sided F-test of equal variances and
// picks the t-test kind accordingly.
func resolveByVarianceGate(v1, v2 float64, n1, n2 int, gate float64) (TTestKind, error) {
	if v1 == 0 && v2 == 0 {
		return "", core.NewComputationError("t_test", "both samples have zero variance")
	}
	if v1 == 0 || v2 == 0 {
		// One degenerate sample: variances cannot be equal.
		return Welch, nil
	}
	fDist := distuv.F{D1: float64(n1 - 1), D2: float64(n2 - 1)}
	cdf := fDist.CDF(v1 / v2)
	p := clampProb(2 * math.Min(cdf, 1-cdf))
	if p < gate {
		return Welch, nil
	}
	return Student, nil
}

// PairedTTest compares paired observations through their differences
type PairedTTest struct{}

// NewPairedTTest creates a paired t-test tool
func NewPairedTTest() *PairedTTest {
	return &PairedTTest{}
}

func (t *PairedTTest) Name() string      { return "paired_t_test" }
func (t *PairedTTest) Title() string     { return "Paired T-test" }
func (t *PairedTTest) Paired() bool      { return true }
func (t *PairedTTest) MinPerSample() int { return 2 }

// Run performs the paired t-test on equal-length samples
func (t *PairedTTest) Run(ctx context.Context, x, y table.Sample, alt ports.Alternative) (*ports.TestResult, error) {
	if err := table.RequirePaired(x, y); err != nil {
		return nil, err
	}
	if err := validateTwoSamples(t.Name(), x, y, t.MinPerSample()); err != nil {
		return nil, err
	}
	if err := validateAlternative(alt); err != nil {
		return nil, err
	}

	diffs := make([]float64, x.Len())
	for i := range diffs {
		diffs[i] = x.Values[i] - y.Values[i]
	}
	n := float64(len(diffs))
	mean, variance := meanVariance(diffs)
	if variance == 0 {
		return nil, core.NewComputationError(t.Name(), "differences have zero variance")
	}
	sd := math.Sqrt(variance)

	tStat := mean / (sd / math.Sqrt(n))
	df := n - 1
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := tailPValue(alt, tDist.CDF(tStat))

	return &ports.TestResult{
		TestName:   t.Name(),
		Statistic:  tStat,
		PValue:     pValue,
		DF:         df,
		HasDF:      true,
		EffectSize: mean / sd,
		HasEffect:  true,
		Details: map[string]any{
			"statistic_label": "t-statistic",
			"mean_difference": mean,
			"n":               x.Len(),
		},
	}, nil
}
