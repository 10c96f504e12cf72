package parallel

import (
	"runtime"
	"sync"
	"time"
)

// CalculateWorkers picks a worker count for numItems per-day file lookups,
// each a stat or a small read. The result is never larger than numItems.
func CalculateWorkers(numItems int) int {
	return globalCalculator.calculate(numItems)
}

// calculator caches the base so repeated calls within one command don't
// re-read memory stats
type calculator struct {
	mu      sync.Mutex
	updated time.Time
	base    int
}

var globalCalculator = &calculator{}

func (c *calculator) calculate(numItems int) int {
	if numItems <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.base == 0 || time.Since(c.updated) > 30*time.Second {
		c.base = baseWorkers()
		c.updated = time.Now()
	}
	return max(1, min(c.base, numItems))
}

func baseWorkers() int {
	cores := runtime.NumCPU()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	// Back off when the process is already holding a lot of memory
	if m.Alloc > 100<<20 {
		return cores
	}
	return cores * 2
}
