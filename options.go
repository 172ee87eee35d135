package boxtree

import (
	"go.uber.org/zap"

	"github.com/tsawler/boxtree/htmldoc"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	logger *zap.Logger

	// Concurrency for top-level subtrees (1 = sequential)
	parallelism int

	// Front end filtering
	navigation htmldoc.NavigationExclusionMode
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		logger:      zap.NewNop(),
		parallelism: 1,
		navigation:  htmldoc.NavigationExclusionNone,
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		logger:      o.logger,
		parallelism: o.parallelism,
		navigation:  o.navigation,
	}
}
