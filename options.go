package quantpool

import "github.com/hupe1980/quantpool/pathscheme"

type options struct {
	ignoredFeatures  []uint32
	pairsPath        pathscheme.Path
	groupWeightsPath pathscheme.Path
	baselinePath     pathscheme.Path
	objectsOrder     ObjectsOrder
	evictThreshold   int64
	logger           *Logger
	registry         *pathscheme.Registry
}

// Option configures loader construction.
type Option func(*options)

// WithIgnoredFeatures supplies flat feature indices to skip during
// decoding. Merged (union) with the ignore list embedded in the pool.
func WithIgnoredFeatures(indices []uint32) Option {
	return func(o *options) {
		o.ignoredFeatures = indices
	}
}

// WithPairsPath configures the pairs auxiliary file. The path is checked
// for existence before streaming begins.
func WithPairsPath(p pathscheme.Path) Option {
	return func(o *options) {
		o.pairsPath = p
	}
}

// WithGroupWeightsPath configures the group-weights auxiliary file. The
// path is checked for existence before streaming begins.
func WithGroupWeightsPath(p pathscheme.Path) Option {
	return func(o *options) {
		o.groupWeightsPath = p
	}
}

// WithBaselinePath configures the baseline auxiliary file. The path is
// checked for existence before streaming begins.
func WithBaselinePath(p pathscheme.Path) Option {
	return func(o *options) {
		o.baselinePath = p
	}
}

// WithObjectsOrder declares how objects in the pool are ordered. The
// value is passed through to the visitor's Start call.
func WithObjectsOrder(order ObjectsOrder) Option {
	return func(o *options) {
		o.objectsOrder = order
	}
}

// WithEvictThreshold overrides the visited-range size at which the
// loader starts advising the kernel to drop pages. Values <= 0 restore
// the 16 MiB default. Only meaningful for mapped pools.
func WithEvictThreshold(n int64) Option {
	return func(o *options) {
		if n <= 0 {
			n = defaultEvictThreshold
		}
		o.evictThreshold = n
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithPathRegistry supplies the scheme registry used to resolve
// auxiliary-data paths. Defaults to a registry that only knows the
// "file" scheme.
func WithPathRegistry(registry *pathscheme.Registry) Option {
	return func(o *options) {
		if registry != nil {
			o.registry = registry
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		evictThreshold: defaultEvictThreshold,
		logger:         NoopLogger(),
		registry:       pathscheme.NewRegistry(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
