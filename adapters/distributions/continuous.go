package distributions

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"statplug/domain/core"
	"statplug/domain/dist"
	"statplug/ports"
)

func normalDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindNormal,
		Title: "Normal Distribution",
		Params: []dist.Param{
			dist.Unbounded("mu", 0),
			dist.Positive("sigma", 1),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			n := distuv.Normal{Mu: p["mu"], Sigma: p["sigma"]}
			return &backed{
				handle:   dist.Handle{Kind: KindNormal, Params: p},
				prob:     n.Prob,
				cdf:      n.CDF,
				quantile: n.Quantile,
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Normal{Mu: n.Mu, Sigma: n.Sigma, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func uniformDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindUniform,
		Title: "Uniform Distribution",
		Params: []dist.Param{
			dist.Unbounded("a", 0),
			dist.Unbounded("b", 1),
		},
		Check: func(p map[string]float64) error {
			if p["b"] <= p["a"] {
				return core.NewInvalidParameterError("b", p["b"], "(a, +Inf)")
			}
			return nil
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			a, b := p["a"], p["b"]
			u := distuv.Uniform{Min: a, Max: b}
			return &backed{
				handle: dist.Handle{Kind: KindUniform, Params: p},
				prob:   u.Prob,
				cdf:    u.CDF,
				quantile: func(q float64) float64 {
					return a + (b-a)*q
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Uniform{Min: a, Max: b, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func exponentialDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindExponential,
		Title: "Exponential Distribution",
		Params: []dist.Param{
			dist.Positive("scale", 1),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			scale := p["scale"]
			e := distuv.Exponential{Rate: 1 / scale}
			return &backed{
				handle: dist.Handle{Kind: KindExponential, Params: p},
				prob:   e.Prob,
				cdf:    e.CDF,
				quantile: func(q float64) float64 {
					return -scale * math.Log1p(-q)
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Exponential{Rate: 1 / scale, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func gammaDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindGamma,
		Title: "Gamma Distribution",
		Params: []dist.Param{
			dist.Positive("shape", 1),
			dist.Positive("scale", 1),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			shape, scale := p["shape"], p["scale"]
			g := distuv.Gamma{Alpha: shape, Beta: 1 / scale}
			mean := shape * scale
			sd := math.Sqrt(shape) * scale
			return &backed{
				handle: dist.Handle{Kind: KindGamma, Params: p},
				prob:   g.Prob,
				cdf:    g.CDF,
				quantile: func(q float64) float64 {
					switch q {
					case 0:
						return 0
					case 1:
						return math.Inf(1)
					}
					return invertCDF(g.CDF, q, 0, mean+10*sd, true)
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Gamma{Alpha: shape, Beta: 1 / scale, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func betaDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindBeta,
		Title: "Beta Distribution",
		Params: []dist.Param{
			dist.Positive("alpha", 2),
			dist.Positive("beta", 2),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			b := distuv.Beta{Alpha: p["alpha"], Beta: p["beta"]}
			return &backed{
				handle: dist.Handle{Kind: KindBeta, Params: p},
				prob:   b.Prob,
				cdf:    b.CDF,
				quantile: func(q float64) float64 {
					switch q {
					case 0:
						return 0
					case 1:
						return 1
					}
					return invertCDF(b.CDF, q, 0, 1, false)
				},
				sampler: func(src rand.Source) func() float64 {
					s := distuv.Beta{Alpha: b.Alpha, Beta: b.Beta, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}

func cauchyDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindCauchy,
		Title: "Cauchy Distribution",
		Params: []dist.Param{
			dist.Unbounded("loc", 0),
			dist.Positive("scale", 1),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			loc, scale := p["loc"], p["scale"]
			quantile := func(q float64) float64 {
				switch q {
				case 0:
					return math.Inf(-1)
				case 1:
					return math.Inf(1)
				}
				return loc + scale*math.Tan(math.Pi*(q-0.5))
			}
			return &backed{
				handle: dist.Handle{Kind: KindCauchy, Params: p},
				prob: func(x float64) float64 {
					z := (x - loc) / scale
					return 1 / (math.Pi * scale * (1 + z*z))
				},
				cdf: func(x float64) float64 {
					return 0.5 + math.Atan((x-loc)/scale)/math.Pi
				},
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

func studentsTDescriptor() ports.Descriptor {
	return ports.Descriptor{
		Kind:  KindStudentsT,
		Title: "Student's T Distribution",
		Params: []dist.Param{
			dist.Positive("df", 1),
		},
		New: func(p map[string]float64) (dist.Distribution, error) {
			t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: p["df"]}
			return &backed{
				handle:   dist.Handle{Kind: KindStudentsT, Params: p},
				prob:     t.Prob,
				cdf:      t.CDF,
				quantile: t.Quantile,
				sampler: func(src rand.Source) func() float64 {
					s := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: t.Nu, Src: src}
					return s.Rand
				},
			}, nil
		},
	}
}
