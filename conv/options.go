package conv

// Option configures a convolution call.
type Option func(*config)

type config struct {
	sequential       bool
	workers          int
	minRowsPerWorker int
}

func defaultConfig() config {
	return config{
		workers:          0, // resolved to the CPU count at dispatch
		minRowsPerWorker: 8,
	}
}

// WithSequential forces single-goroutine row-by-row execution. Results
// are identical to the parallel path.
func WithSequential() Option {
	return func(c *config) {
		c.sequential = true
	}
}

// WithWorkers limits the number of goroutines used for row
// partitioning. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
