package distributions

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"statplug/domain/core"
	"statplug/domain/dist"
)

// Fit re-estimates a handle's parameters from observations by the method
// of moments and constructs the refitted distribution. The kind is kept;
// for binomial the trial count n is carried over from the handle and only
// p is re-estimated. Observations that admit no valid moment estimate
// surface as ComputationError.
func (c *Catalog) Fit(h dist.Handle, obs []float64) (dist.Distribution, error) {
	if _, err := c.Lookup(h.Kind); err != nil {
		return nil, err
	}
	if len(obs) < 2 {
		return nil, core.NewSampleSizeError("fit", 2, len(obs))
	}
	for _, v := range obs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, core.NewInvalidInputError("observations contain NaN or Inf")
		}
	}

	params, err := momentEstimate(h, obs)
	if err != nil {
		return nil, err
	}
	d, err := c.Construct(h.Kind, params)
	if err != nil {
		// The moment estimate landed outside the parameter domain, which
		// is a property of the data, not of the request.
		return nil, core.NewComputationError("fit", err.Error())
	}
	return d, nil
}

func momentEstimate(h dist.Handle, obs []float64) (map[string]float64, error) {
	mean, err := stats.Mean(obs)
	if err != nil {
		return nil, core.NewComputationError("fit", err.Error())
	}
	variance, err := stats.SampleVariance(obs)
	if err != nil {
		return nil, core.NewComputationError("fit", err.Error())
	}

	switch h.Kind {
	case KindNormal:
		if variance <= 0 {
			return nil, core.NewComputationError("fit", "zero variance in observations")
		}
		return map[string]float64{"mu": mean, "sigma": math.Sqrt(variance)}, nil

	case KindUniform:
		lo, err := stats.Min(obs)
		if err != nil {
			return nil, core.NewComputationError("fit", err.Error())
		}
		hi, err := stats.Max(obs)
		if err != nil {
			return nil, core.NewComputationError("fit", err.Error())
		}
		if hi <= lo {
			return nil, core.NewComputationError("fit", "observations span no range")
		}
		return map[string]float64{"a": lo, "b": hi}, nil

	case KindExponential:
		return map[string]float64{"scale": mean}, nil

	case KindGamma:
		if mean <= 0 || variance <= 0 {
			return nil, core.NewComputationError("fit", "gamma moments require positive mean and variance")
		}
		return map[string]float64{
			"shape": mean * mean / variance,
			"scale": variance / mean,
		}, nil

	case KindBeta:
		if mean <= 0 || mean >= 1 {
			return nil, core.NewComputationError("fit", "beta observations must have mean in (0, 1)")
		}
		common := mean*(1-mean)/variance - 1
		if common <= 0 {
			return nil, core.NewComputationError("fit", "observation variance too large for a beta law")
		}
		return map[string]float64{
			"alpha": mean * common,
			"beta":  (1 - mean) * common,
		}, nil

	case KindCauchy:
		// Moments diverge; use the median and half the IQR instead.
		median, err := stats.Median(obs)
		if err != nil {
			return nil, core.NewComputationError("fit", err.Error())
		}
		q25, err := stats.Percentile(obs, 25)
		if err != nil {
			return nil, core.NewComputationError("fit", err.Error())
		}
		q75, err := stats.Percentile(obs, 75)
		if err != nil {
			return nil, core.NewComputationError("fit", err.Error())
		}
		if q75 <= q25 {
			return nil, core.NewComputationError("fit", "observations span no interquartile range")
		}
		return map[string]float64{"loc": median, "scale": (q75 - q25) / 2}, nil

	case KindStudentsT:
		if len(obs) < 4 {
			return nil, core.NewSampleSizeError("t fit", 4, len(obs))
		}
		kurt := excessKurtosis(obs, mean, math.Sqrt(variance))
		df := 30.0 // near-normal tails when the kurtosis carries no signal
		if kurt > 0 {
			df = 4 + 6/kurt
		}
		return map[string]float64{"df": df}, nil

	case KindBinomial:
		n := h.Params["n"]
		if n < 1 {
			return nil, core.NewComputationError("fit", "binomial fit requires the trial count from the handle")
		}
		return map[string]float64{"n": n, "p": mean / n}, nil

	case KindPoisson:
		return map[string]float64{"lambda": mean}, nil

	case KindGeometric:
		if mean < 1 {
			return nil, core.NewComputationError("fit", "geometric observations must average at least 1")
		}
		return map[string]float64{"p": 1 / mean}, nil
	}

	return nil, fmt.Errorf("%w: no fit rule for %q", core.ErrUnknownDistribution, h.Kind)
}

// excessKurtosis computes sample excess kurtosis from standardized fourth
// moments
func excessKurtosis(data []float64, mean, stdDev float64) float64 {
	if len(data) < 4 || stdDev == 0 {
		return 0
	}
	n := float64(len(data))
	sum := 0.0
	for _, x := range data {
		d := (x - mean) / stdDev
		sum += d * d * d * d
	}
	return sum/n - 3
}
