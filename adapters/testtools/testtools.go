// Package testtools exposes named hypothesis tests as host-invokable
// adapters. Each tool is stateless glue: it validates the incoming
// samples, delegates the distribution mathematics to gonum, and returns
// a structured result for the host to display.
package testtools

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// DefaultTools returns the two-sample tools in display order
func DefaultTools(varianceGate float64) []ports.TestTool {
	return []ports.TestTool{
		NewTTest(Auto, varianceGate),
		NewPairedTTest(),
		NewWilcoxon(),
		NewMannWhitneyU(),
	}
}

// DefaultMultiCompareTools returns the all-pairs post-hoc tools
func DefaultMultiCompareTools() []ports.MultiCompareTool {
	return []ports.MultiCompareTool{
		NewTukeyHSD(),
		NewSteelDwass(),
	}
}

func validateSample(test string, s table.Sample, min int) error {
	if s.Len() < min {
		return core.NewSampleSizeError(test, min, s.Len())
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return core.NewInvalidInputError(fmt.Sprintf("%s: sample %q has NaN or Inf at index %d", test, s.Name, i))
		}
	}
	return nil
}

func validateTwoSamples(test string, x, y table.Sample, min int) error {
	if err := validateSample(test, x, min); err != nil {
		return err
	}
	return validateSample(test, y, min)
}

func validateAlternative(alt ports.Alternative) error {
	if !alt.Valid() {
		return core.NewInvalidInputError(fmt.Sprintf("unsupported alternative %q", alt))
	}
	return nil
}

// meanVariance returns the sample mean and unbiased sample variance
func meanVariance(values []float64) (mean, variance float64) {
	return stat.MeanVariance(values, nil)
}

func stdNormCDF(z float64) float64 {
	return distuv.UnitNormal.CDF(z)
}

// tailPValue converts a statistic's CDF value into the p-value for the
// requested alternative. cdf is P(T <= t) under the null.
func tailPValue(alt ports.Alternative, cdf float64) float64 {
	var p float64
	switch alt {
	case ports.Less:
		p = cdf
	case ports.Greater:
		p = 1 - cdf
	default:
		p = 2 * math.Min(cdf, 1-cdf)
	}
	return clampProb(p)
}

func clampProb(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
