package ports

import (
	"context"

	"statplug/domain/table"
)

// Alternative selects the tail of a hypothesis test
type Alternative string

const (
	TwoSided Alternative = "two-sided"
	Less     Alternative = "less"
	Greater  Alternative = "greater"
)

// Valid reports whether the alternative is one of the supported tails
func (a Alternative) Valid() bool {
	switch a {
	case TwoSided, Less, Greater:
		return true
	}
	return false
}

// TestResult contains the structured outcome of a single hypothesis test
type TestResult struct {
	TestName   string
	Statistic  float64
	PValue     float64
	DF         float64 // degrees of freedom, meaningful only when HasDF
	HasDF      bool
	EffectSize float64
	HasEffect  bool
	Details    map[string]any
}

// TestTool runs one named two-sample hypothesis test. Tools are stateless;
// they are constructed once at registration and shared across invocations.
type TestTool interface {
	Name() string
	Title() string
	Paired() bool
	MinPerSample() int
	Run(ctx context.Context, x, y table.Sample, alt Alternative) (*TestResult, error)
}

// PairwiseResult holds an all-pairs p-value matrix from a post-hoc test
type PairwiseResult struct {
	TestName string
	Groups   []string
	PValues  [][]float64
}

// MultiCompareTool runs one named all-pairs comparison over k groups
type MultiCompareTool interface {
	Name() string
	Title() string
	MinGroups() int
	Compare(ctx context.Context, groups []table.Sample) (*PairwiseResult, error)
}
