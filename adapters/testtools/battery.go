package testtools

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"statplug/domain/table"
	"statplug/ports"
)

// batteryParallelism bounds how many tools run at once
const batteryParallelism = 4

// BatteryItem pairs one tool's outcome with its name. Err is set when the
// tool rejected the samples, e.g. a paired test over unequal lengths.
type BatteryItem struct {
	Tool  string
	Title string
	Res   *ports.TestResult
	Err   error
}

// Battery runs every registered two-sample tool over the same samples.
// Result order follows tool registration order regardless of completion
// order.
type Battery struct {
	tools []ports.TestTool
	sem   *semaphore.Weighted
}

// NewBattery creates a battery over the given tools
func NewBattery(tools []ports.TestTool) *Battery {
	return &Battery{
		tools: tools,
		sem:   semaphore.NewWeighted(batteryParallelism),
	}
}

// Run executes the tools with bounded parallelism
func (b *Battery) Run(ctx context.Context, x, y table.Sample, alt ports.Alternative) []BatteryItem {
	items := make([]BatteryItem, len(b.tools))

	var wg sync.WaitGroup
	for i, tool := range b.tools {
		items[i] = BatteryItem{Tool: tool.Name(), Title: tool.Title()}
		if err := b.sem.Acquire(ctx, 1); err != nil {
			items[i].Err = err
			continue
		}
		wg.Add(1)
		go func(i int, tool ports.TestTool) {
			defer wg.Done()
			defer b.sem.Release(1)
			items[i].Res, items[i].Err = tool.Run(ctx, x, y, alt)
		}(i, tool)
	}
	wg.Wait()
	return items
}
