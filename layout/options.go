package layout

import "go.uber.org/zap"

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger used for table and list decisions. A nil
// logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Converter) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	}
}

// WithParallelism converts up to n top-level subtrees concurrently.
// Values below 2 convert sequentially.
func WithParallelism(n int) Option {
	return func(c *Converter) {
		if n < 1 {
			n = 1
		}
		c.parallelism = n
	}
}
