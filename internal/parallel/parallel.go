// Package parallel dispatches independent work over disjoint
// contiguous index ranges, one goroutine per range, with a join
// barrier. There is no cross-range communication: callers must ensure
// ranges touch disjoint output state.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls range dispatch.
type Config struct {
	// Workers is the maximum number of goroutines to fan out to.
	// Values below 1 mean single-worker (sequential) execution.
	Workers int

	// MinPerWorker is the smallest range size worth a goroutine of its
	// own; smaller inputs run sequentially to avoid dispatch overhead.
	MinPerWorker int
}

// DefaultConfig returns defaults based on the CPU count.
func DefaultConfig() Config {
	return Config{
		Workers:      runtime.NumCPU(),
		MinPerWorker: 8,
	}
}

// Ranges splits [0, n) into at most cfg.Workers contiguous chunks and
// calls f(start, end) for each chunk on its own goroutine, returning
// once every chunk has completed. Falls back to a single sequential
// call when only one worker is configured or n is too small to split.
func Ranges(n int, cfg Config, f func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if cfg.MinPerWorker > 0 && n/cfg.MinPerWorker < workers {
		workers = n / cfg.MinPerWorker
	}
	if workers <= 1 {
		f(0, n)
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
