package evmtypes

// Option configures a parse, render or inference call.
type Option func(*config)

// config holds per-call configuration.
type config struct {
	maxDepth int
}

// DefaultMaxDepth is the default recursion ceiling for signature parsing,
// value rendering and expression-tree walks.
const DefaultMaxDepth = 64

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		maxDepth: DefaultMaxDepth,
	}
}

// apply folds a set of options over the default configuration.
func apply(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxDepth sets the recursion ceiling. Values below 1 are clamped to 1.
// Default is DefaultMaxDepth (64).
func WithMaxDepth(max int) Option {
	return func(c *config) {
		if max < 1 {
			max = 1
		}
		c.maxDepth = max
	}
}
