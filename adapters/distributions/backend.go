package distributions

import (
	"math"
	"math/rand/v2"

	"statplug/domain/core"
	"statplug/domain/dist"
)

// backed adapts the common shape of every catalog distribution: point
// evaluators plus a sampler factory bound to a caller-provided source.
// All fields are immutable after construction, so a backed value can be
// queried from any number of host actions without coordination.
type backed struct {
	handle   dist.Handle
	prob     func(x float64) float64
	cdf      func(x float64) float64
	quantile func(q float64) float64
	sampler  func(src rand.Source) func() float64
}

// Handle returns the serializable identity of the distribution
func (b *backed) Handle() dist.Handle {
	return dist.Handle{Kind: b.handle.Kind, Params: cloneParams(b.handle.Params)}
}

// Prob evaluates the density or mass at x
func (b *backed) Prob(x float64) float64 { return b.prob(x) }

// CDF evaluates the cumulative probability at x
func (b *backed) CDF(x float64) float64 { return b.cdf(x) }

// Quantile inverts the CDF for q in [0, 1]
func (b *backed) Quantile(q float64) (float64, error) {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return 0, core.NewInvalidInputError("quantile level must lie in [0, 1]")
	}
	return b.quantile(q), nil
}

// Rand draws n observations from a deterministic stream seeded by seed
func (b *backed) Rand(n int, seed uint64) ([]float64, error) {
	if n < 1 {
		return nil, core.NewInvalidInputError("sample size must be at least 1")
	}
	draw := b.sampler(rand.NewPCG(seed, seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = draw()
	}
	return out, nil
}

// invertCDF inverts a continuous monotone CDF by bisection on [lo, hi].
// When expand is true the upper bound doubles away from lo until it
// brackets q, which covers unbounded supports like the gamma family.
func invertCDF(cdf func(float64) float64, q, lo, hi float64, expand bool) float64 {
	if expand {
		span := hi - lo
		for i := 0; i < 128 && cdf(hi) < q; i++ {
			span *= 2
			hi = lo + span
		}
	}
	for i := 0; i < 200; i++ {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		if cdf(mid) < q {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}

// searchQuantile returns the smallest integer k in [lo, hi] with cdf(k) >= q
func searchQuantile(cdf func(float64) float64, q, lo, hi float64) float64 {
	for lo < hi {
		mid := math.Floor(lo + (hi-lo)/2)
		if cdf(mid) >= q {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}
