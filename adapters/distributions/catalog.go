// Package distributions wraps gonum's distribution objects behind the
// plugin's constructor catalog: named kinds, validated parameter domains,
// and deterministic seeded sampling.
package distributions

import (
	"fmt"
	"maps"

	"statplug/domain/core"
	"statplug/domain/dist"
	"statplug/ports"
)

// Registered distribution kinds
const (
	KindNormal      = core.DistKind("normal")
	KindUniform     = core.DistKind("uniform")
	KindExponential = core.DistKind("exponential")
	KindGamma       = core.DistKind("gamma")
	KindBeta        = core.DistKind("beta")
	KindCauchy      = core.DistKind("cauchy")
	KindStudentsT   = core.DistKind("t")
	KindBinomial    = core.DistKind("binomial")
	KindPoisson     = core.DistKind("poisson")
	KindGeometric   = core.DistKind("geometric")
)

// Catalog is the registry of distribution constructors the plugin ships.
// It is populated once at startup and read-only afterwards.
type Catalog struct {
	order  []core.DistKind
	byKind map[core.DistKind]ports.Descriptor
}

// NewCatalog creates a catalog holding all built-in distributions
func NewCatalog() *Catalog {
	c := &Catalog{byKind: make(map[core.DistKind]ports.Descriptor)}
	for _, d := range []ports.Descriptor{
		normalDescriptor(),
		uniformDescriptor(),
		exponentialDescriptor(),
		gammaDescriptor(),
		betaDescriptor(),
		cauchyDescriptor(),
		studentsTDescriptor(),
		binomialDescriptor(),
		poissonDescriptor(),
		geometricDescriptor(),
	} {
		if err := c.Register(d); err != nil {
			panic(fmt.Sprintf("built-in distribution registration: %v", err))
		}
	}
	return c
}

// Register adds a descriptor to the catalog
func (c *Catalog) Register(d ports.Descriptor) error {
	if d.Kind.IsEmpty() {
		return core.NewInvalidInputError("descriptor kind cannot be empty")
	}
	if _, exists := c.byKind[d.Kind]; exists {
		return core.NewInvalidInputError(fmt.Sprintf("distribution %q already registered", d.Kind))
	}
	c.byKind[d.Kind] = d
	c.order = append(c.order, d.Kind)
	return nil
}

// Kinds returns the registered kinds in registration order
func (c *Catalog) Kinds() []core.DistKind {
	out := make([]core.DistKind, len(c.order))
	copy(out, c.order)
	return out
}

// Lookup resolves a kind to its descriptor
func (c *Catalog) Lookup(kind core.DistKind) (ports.Descriptor, error) {
	d, ok := c.byKind[kind]
	if !ok {
		return ports.Descriptor{}, core.NewUnknownDistributionError(kind)
	}
	return d, nil
}

// Construct validates parameters against their domains and builds a
// distribution. Missing parameters take their declared defaults; unknown
// names and out-of-domain values are rejected, never clamped.
func (c *Catalog) Construct(kind core.DistKind, params map[string]float64) (dist.Distribution, error) {
	d, err := c.Lookup(kind)
	if err != nil {
		return nil, err
	}

	resolved := make(map[string]float64, len(d.Params))
	known := make(map[string]bool, len(d.Params))
	for _, spec := range d.Params {
		resolved[spec.Name] = spec.Default
		known[spec.Name] = true
	}
	for name, v := range params {
		if !known[name] {
			return nil, fmt.Errorf("%w: %q has no parameter %q", core.ErrInvalidParameter, kind, name)
		}
		resolved[name] = v
	}
	for _, spec := range d.Params {
		if err := spec.Validate(resolved[spec.Name]); err != nil {
			return nil, err
		}
	}
	if d.Check != nil {
		if err := d.Check(resolved); err != nil {
			return nil, err
		}
	}
	return d.New(resolved)
}

// FromHandle reconstructs a distribution from its serialized identity
func (c *Catalog) FromHandle(h dist.Handle) (dist.Distribution, error) {
	return c.Construct(h.Kind, h.Params)
}

func cloneParams(params map[string]float64) map[string]float64 {
	return maps.Clone(params)
}
