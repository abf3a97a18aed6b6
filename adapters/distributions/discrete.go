package distributions

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"statplug/domain/dist"
	"statplug/ports"
)

func binomialDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:     KindBinomial,
		Title:    "Binomial Distribution",
		Discrete: true,
		Params: []dist.Param{
			{Name: "n", Default: 10, Min: 1, Max: math.Inf(1), Integer: true},
			{Name: "p", Default: 0.5, Min: 0, Max: 1},
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			b := distuv.Binomial{N: p["n"], P: p["p"]}
			return &backed{
				handle: dist.Handle{Kind: KindBinomial, Params: p},
				prob:   b.Prob,
				cdf:    b.CDF,
				quantile: func(q float64) float64 {
					if q == 1 {
						return b.N
					}
					return searchQuantile(b.CDF, q, 0, b.N)
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Binomial{N: b.N, P: b.P, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func poissonDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:     KindPoisson,
		Title:    "Poisson Distribution",
		Discrete: true,
		Params: []dist.Param{
			dist.Positive("lambda", 5),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			po := distuv.Poisson{Lambda: p["lambda"]}
			return &backed{
				handle: dist.Handle{Kind: KindPoisson, Params: p},
				prob:   po.Prob,
				cdf:    po.CDF,
				quantile: func(q float64) float64 {
					if q == 1 {
						return math.Inf(1)
					}
					// The support is unbounded; double an upper bound out
					// from the mean until it covers q, then bisect.
					hi := math.Max(1, math.Ceil(po.Lambda))
					for i := 0; i < 128 && po.CDF(hi) < q; i++ {
						hi *= 2
					}
					return searchQuantile(po.CDF, q, 0, hi)
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Poisson{Lambda: po.Lambda, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

// Geometric counts the number of Bernoulli trials up to and including the
// first success, so its support starts at 1. gonum has no geometric type;
// the closed forms below are standard.
func geometricDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:     KindGeometric,
		Title:    "Geometric Distribution",
		Discrete: true,
		Params: []dist.Param{
			{Name: "p", Default: 0.5, Min: 0, Max: 1, MinOpen: true},
		},
		New: func(params map[string]float64) (dist.Distribution, error) {
			p := params["p"]
			cdf := func(x float64) float64 {
				if x < 1 {
					return 0
				}
				if p == 1 {
					return 1
				}
				return 1 - math.Pow(1-p, math.Floor(x))
			}
			quantile := func(q float64) float64 {
				if q == 0 {
					return 1
				}
				if q == 1 {
					if p == 1 {
						return 1
					}
					return math.Inf(1)
				}
				if p == 1 {
					return 1
				}
				k := math.Ceil(math.Log1p(-q) / math.Log1p(-p))
				return math.Max(1, k)
			}
			return &backed{
				handle: dist.Handle{Kind: KindGeometric, Params: params},
				prob: func(x float64) float64 {
					if x < 1 || x != math.Trunc(x) {
						return 0
					}
					return p * math.Pow(1-p, x-1)
				},
				cdf:      cdf,
				quantile: quantile,
				sampler: func(src rand.Source) func() float64 {
					r := rand.New(src)
					return func() float64 {
						return quantile(r.Float64())
					}
				},
			}, nil
		},
	}
}
