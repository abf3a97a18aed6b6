package testtools

import (
	"context"
	"fmt"
	"math"

	"statplug/domain/core"
	"statplug/domain/table"
	"statplug/ports"
)

// SteelDwass runs the Steel-Dwass-Critchlow-Fligner all-pairs test: each
// pair's tie-corrected rank statistic is referred to the studentized
// range in its known-variance limit.
type SteelDwass struct{}

// NewSteelDwass creates a Steel-Dwass tool
func NewSteelDwass() *SteelDwass {
	return &SteelDwass{}
}

func (s *SteelDwass) Name() string   { return "steel_dwass" }
func (s *SteelDwass) Title() string  { return "Steel-Dwass Test" }
func (s *SteelDwass) MinGroups() int { return 2 }

// Compare produces the all-pairs p-value matrix
func (s *SteelDwass) Compare(ctx context.Context, groups []table.Sample) (*ports.PairwiseResult, error) {
	if len(groups) < s.MinGroups() {
		return nil, core.NewInvalidInputError(fmt.Sprintf("%s needs at least %d groups, got %d", s.Name(), s.MinGroups(), len(groups)))
	}
	for _, g := range groups {
		if err := validateSample(s.Name(), g, 2); err != nil {
			return nil, err
		}
	}

	k := len(groups)
	names := make([]string, k)
	pvalues := make([][]float64, k)
	for i := range pvalues {
		names[i] = groups[i].Name
		pvalues[i] = make([]float64, k)
		pvalues[i][i] = 1
	}

	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			q, err := s.pairStatistic(groups[i], groups[j])
			if err != nil {
				return nil, err
			}
			p := clampProb(1 - studentizedRangeCDF(q, k, 0))
			pvalues[i][j] = p
			pvalues[j][i] = p
		}
	}

	return &ports.PairwiseResult{
		TestName: s.Name(),
		Groups:   names,
		PValues:  pvalues,
	}, nil
}

// pairStatistic computes the studentized-range referral sqrt(2)*|t| of
// the pair's tie-corrected Mann-Whitney statistic.
func (s *SteelDwass) pairStatistic(a, b table.Sample) (float64, error) {
	na, nb := float64(a.Len()), float64(b.Len())
	combined := make([]float64, 0, a.Len()+b.Len())
	combined = append(combined, a.Values...)
	combined = append(combined, b.Values...)
	ranks, tieSum := rankAvg(combined)

	var ra float64
	for i := 0; i < a.Len(); i++ {
		ra += ranks[i]
	}
	u := ra - na*(na+1)/2

	total := na + nb
	variance := na * nb / 12 * ((total + 1) - tieSum/(total*(total-1)))
	if variance <= 0 {
		return 0, core.NewComputationError(s.Name(), fmt.Sprintf("groups %q and %q are completely tied", a.Name, b.Name))
	}
	t := (u - na*nb/2) / math.Sqrt(variance)
	return math.Abs(t) * math.Sqrt2, nil
}
