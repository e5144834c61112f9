package ascii

// Option configures a Pipeline during creation.
//
// Example:
//
//	// One worker per CPU (default)
//	p := ascii.NewPipeline()
//
//	// Fixed-size pool
//	p := ascii.NewPipeline(ascii.WithWorkers(4))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	workers int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		workers: 0, // GOMAXPROCS
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative value uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}
