package rowview

import (
	"fmt"
	"log/slog"
)

// Strategy selects how logical positions are mapped to physical positions.
type Strategy int

const (
	// StrategySurviving keeps an ascending list of surviving physical
	// positions. Forward lookups are O(1), reverse lookups O(log n), and a
	// delete shifts the list in O(n). Memory grows with the physical count.
	StrategySurviving Strategy = iota

	// StrategySkip keeps only the deletion set and counts deleted positions
	// on demand. Memory grows with the number of deletions only; a forward
	// lookup costs up to |D|+1 bitmap rank queries.
	StrategySkip
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategySurviving:
		return "surviving"
	case StrategySkip:
		return "skip"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

type options struct {
	strategy         Strategy
	deleted          []int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Cursor construction.
type Option func(*options)

// WithStrategy selects the mapping strategy. The default is StrategySurviving.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithDeleted pre-seeds the deletion set with physical positions.
// Positions outside the physical sequence are dropped with a warning.
//
// Example:
//
//	c := rowview.New(src, rowview.WithDeleted(3, 7))
//	c.Count() // src.Count() - 2
func WithDeleted(positions ...int) Option {
	return func(o *options) {
		o.deleted = append(o.deleted, positions...)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rowview.BasicMetricsCollector{}
//	c := rowview.New(src, rowview.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Deletes: %d, out of range: %d\n", stats.DeleteCount, stats.OutOfRangeCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rowview.NewJSONLogger(slog.LevelInfo)
//	c := rowview.New(src, rowview.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		strategy: StrategySurviving,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.metricsCollector == nil {
		opts.metricsCollector = NoopMetricsCollector{}
	}
	if opts.logger == nil {
		opts.logger = NoopLogger()
	}
	return opts
}
