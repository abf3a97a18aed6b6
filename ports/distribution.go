package ports

import (
	"statplug/domain/core"
	"statplug/domain/dist"
)

// Descriptor describes one registered distribution constructor: its kind,
// display title, parameter specs, and the factory that builds a
// distribution from validated parameter values.
type Descriptor struct {
	Kind     core.DistKind
	Title    string
	Discrete bool
	Params   []dist.Param
	// Check validates constraints that span parameters (e.g. a < b).
	// May be nil when per-parameter domains are sufficient.
	Check func(params map[string]float64) error
	New   func(params map[string]float64) (dist.Distribution, error)
}

// DistCatalog resolves distribution kinds to their constructors
type DistCatalog interface {
	Kinds() []core.DistKind
	Lookup(kind core.DistKind) (Descriptor, error)
	Construct(kind core.DistKind, params map[string]float64) (dist.Distribution, error)
}
