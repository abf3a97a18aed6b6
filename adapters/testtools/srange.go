package testtools

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	srangeInnerNodes = 96
	srangeOuterNodes = 128
	// Beyond this df the scale factor is indistinguishable from 1.
	srangeInfiniteDF = 1e4
)

// studentizedRangeCDF evaluates P(Q <= q) for the studentized range of k
// group means with df error degrees of freedom. df <= 0 or very large df
// selects the known-variance limit. Both integrals use Gauss-Legendre
// quadrature; accuracy is well inside display precision for the p-values
// the post-hoc tools report.
func studentizedRangeCDF(q float64, k int, df float64) float64 {
	if q <= 0 {
		return 0
	}
	if k < 2 {
		return 1
	}
	if df <= 0 || df > srangeInfiniteDF {
		return clampProb(srangeRawCDF(q, k))
	}

	// u is the error standard deviation ratio s/sigma: the square root of
	// a chi-squared(df) variable over df.
	logConst := 0.5*df*math.Log(df) - lgamma(df/2) - (df/2-1)*math.Ln2
	density := func(u float64) float64 {
		if u <= 0 {
			return 0
		}
		return math.Exp(logConst + (df-1)*math.Log(u) - df*u*u/2)
	}

	sdU := 1 / math.Sqrt(2*df)
	lo := math.Max(0, 1-10*sdU)
	hi := 1 + 10*sdU
	cdf := quad.Fixed(func(u float64) float64 {
		return density(u) * srangeRawCDF(q*u, k)
	}, lo, hi, srangeOuterNodes, nil, 0)
	return clampProb(cdf)
}

// srangeRawCDF is the range CDF of k standard normal means:
// k * Int phi(z) * (Phi(z) - Phi(z-q))^(k-1) dz
func srangeRawCDF(q float64, k int) float64 {
	if q <= 0 {
		return 0
	}
	norm := distuv.UnitNormal
	integrand := func(z float64) float64 {
		span := norm.CDF(z) - norm.CDF(z-q)
		if span <= 0 {
			return 0
		}
		return norm.Prob(z) * math.Pow(span, float64(k-1))
	}
	// The integrand is bounded by phi(z), so (-8, 8) captures all mass.
	return float64(k) * quad.Fixed(integrand, -8, 8, srangeInnerNodes, nil, 0)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
