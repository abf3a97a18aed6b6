package dist

import (
	"fmt"
	"math"
	"sort"

	"statplug/domain/core"
)

// Param describes one distribution parameter and its legal domain
type Param struct {
	Name    string
	Default float64
	Min     float64 // lower domain bound, -Inf when unbounded
	Max     float64 // upper domain bound, +Inf when unbounded
	MinOpen bool    // domain excludes Min
	MaxOpen bool    // domain excludes Max
	Integer bool    // value must be a whole number
}

// Domain renders the parameter domain for error messages, e.g. "(0, +Inf)"
func (p Param) Domain() string {
	lo, hi := "[", "]"
	if p.MinOpen {
		lo = "("
	}
	if p.MaxOpen {
		hi = ")"
	}
	return fmt.Sprintf("%s%v, %v%s", lo, p.Min, p.Max, hi)
}

// Validate checks a value against the parameter domain. Out-of-domain
// values are rejected, never clamped.
func (p Param) Validate(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return core.NewInvalidParameterError(p.Name, v, p.Domain())
	}
	if p.Integer && v != math.Trunc(v) {
		return fmt.Errorf("%w: %s=%v must be an integer", core.ErrInvalidParameter, p.Name, v)
	}
	if v < p.Min || (p.MinOpen && v == p.Min) {
		return core.NewInvalidParameterError(p.Name, v, p.Domain())
	}
	if v > p.Max || (p.MaxOpen && v == p.Max) {
		return core.NewInvalidParameterError(p.Name, v, p.Domain())
	}
	return nil
}

// Positive builds a parameter spec over (0, +Inf)
func Positive(name string, def float64) Param {
	return Param{Name: name, Default: def, Min: 0, Max: math.Inf(1), MinOpen: true}
}

// Unbounded builds a parameter spec over (-Inf, +Inf)
func Unbounded(name string, def float64) Param {
	return Param{Name: name, Default: def, Min: math.Inf(-1), Max: math.Inf(1)}
}

// Handle is the serializable identity of a distribution: its kind plus
// the parameter values it was constructed with. Handles are value types
// owned by a single host action; nothing retains them across calls.
type Handle struct {
	Kind   core.DistKind
	Params map[string]float64
}

// ParamNames returns the parameter names in stable sorted order
func (h Handle) ParamNames() []string {
	names := make([]string, 0, len(h.Params))
	for name := range h.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether two handles describe the same distribution
func (h Handle) Equal(other Handle) bool {
	if h.Kind != other.Kind || len(h.Params) != len(other.Params) {
		return false
	}
	for name, v := range h.Params {
		ov, ok := other.Params[name]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Distribution exposes the standard query operations on a parameterized
// probability distribution. Implementations are stateless: Rand derives
// its stream from the seed alone, so equal seeds give equal draws.
type Distribution interface {
	Handle() Handle
	// Prob evaluates the density (continuous) or mass (discrete) at x.
	Prob(x float64) float64
	// CDF evaluates the cumulative probability at x.
	CDF(x float64) float64
	// Quantile inverts the CDF. q must lie in [0, 1].
	Quantile(q float64) (float64, error)
	// Rand draws n observations from a deterministic seeded stream.
	Rand(n int, seed uint64) ([]float64, error)
}
