// Package statplug contributes statistical hypothesis tests, probability
// distribution constructors, and distribution file IO to a table-oriented
// host application.
//
// The package has no standalone runtime. A host embeds it by passing its
// registry to Register, after which every capability is a named action
// the host dispatches on user request:
//
//	p, err := statplug.NewDefault()
//	if err != nil { ... }
//	if err := p.Register(host); err != nil { ... }
//
// Each action is a synchronous request/response adapter with no state
// retained across calls; the statistical routines themselves live in
// gonum.
package statplug
