package distributions

import (
	"fmt"

	"statplug/domain/core"
	"statplug/domain/dist"
)

// Sample draws n seeded observations from a distribution, bounded by the
// configured draw cap so a host action cannot allocate without limit.
func Sample(d dist.Distribution, n int, seed uint64, maxDraws int) ([]float64, error) {
	if n < 1 {
		return nil, core.NewInvalidInputError("sample size must be at least 1")
	}
	if maxDraws > 0 && n > maxDraws {
		return nil, core.NewInvalidInputError(fmt.Sprintf("sample size %d exceeds the cap of %d", n, maxDraws))
	}
	return d.Rand(n, seed)
}
