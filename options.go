package axistable

type options struct {
	capacity         int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		logger: NoopLogger(),
	}
}

// Option configures a Table.
type Option func(*options)

// WithCapacity pre-sizes the table's maps for about n occupied cells.
// Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger configures the logger for bulk operations.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &axistable.BasicMetricsCollector{}
//	t := axistable.New[axistable.Key, axistable.Key, axistable.Key](
//	    axistable.WithMetricsCollector(metrics),
//	)
//	// ... use t ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

type inverseOptions struct {
	parallelism      int
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultInverseOptions() inverseOptions {
	return inverseOptions{
		parallelism: 1,
		logger:      NoopLogger(),
	}
}

// InverseOption configures BuildInverse.
type InverseOption func(*inverseOptions)

// WithParallelism spreads the per-cell differences over n workers.
//
// Workers only read the source, so it must not be mutated during the build.
// The build still returns only once every cell is done.
// If n <= 1, the build is sequential (the default).
func WithParallelism(n int) InverseOption {
	return func(o *inverseOptions) {
		if n < 1 {
			n = 1
		}
		o.parallelism = n
	}
}

// WithInverseLogger configures the logger for the build.
// If nil is passed, logging is disabled.
func WithInverseLogger(l *Logger) InverseOption {
	return func(o *inverseOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithInverseMetrics configures a metrics collector for the build.
func WithInverseMetrics(mc MetricsCollector) InverseOption {
	return func(o *inverseOptions) {
		o.metricsCollector = mc
	}
}
