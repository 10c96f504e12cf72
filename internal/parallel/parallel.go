// Package parallel provides a small worker pool for per-day file lookups.
package parallel

import (
	"sync"
)

// MapFunc transforms one item. It should handle its own errors.
type MapFunc[T any, R any] func(item T) R

// Map runs fn on every item using a worker pool and returns the results in
// the same order as items.
func Map[T any, R any](items []T, fn MapFunc[T, R]) []R {
	if len(items) == 0 {
		return nil
	}

	numWorkers := CalculateWorkers(len(items))

	type job struct {
		index int
		item  T
	}

	jobs := make(chan job, len(items))
	results := make([]R, len(items))
	var wg sync.WaitGroup

	// Start workers
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				// each index is written by exactly one worker
				results[j.index] = fn(j.item)
			}
		}()
	}

	for i, item := range items {
		jobs <- job{index: i, item: item}
	}
	close(jobs)

	wg.Wait()
	return results
}
