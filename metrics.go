package rowview

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordDelete is called after each delete by logical position.
	// err is non-nil when the position was out of range.
	RecordDelete(duration time.Duration, err error)

	// RecordClear is called after the deletion set was emptied.
	// dropped is the number of deletions discarded.
	RecordClear(dropped int)

	// RecordTraversal is called after each ForEach or RemoveIf pass.
	RecordTraversal(visited, removed int, duration time.Duration)

	// RecordOutOfRange is called whenever navigation misses the logical view.
	RecordOutOfRange()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDelete(time.Duration, error)       {}
func (NoopMetricsCollector) RecordClear(int)                         {}
func (NoopMetricsCollector) RecordTraversal(int, int, time.Duration) {}
func (NoopMetricsCollector) RecordOutOfRange()                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	DeleteCount         atomic.Int64
	DeleteErrors        atomic.Int64
	DeleteTotalNanos    atomic.Int64
	ClearCount          atomic.Int64
	ClearDropped        atomic.Int64
	TraversalCount      atomic.Int64
	TraversalVisited    atomic.Int64
	TraversalRemoved    atomic.Int64
	TraversalTotalNanos atomic.Int64
	OutOfRangeCount     atomic.Int64
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	b.DeleteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear(dropped int) {
	b.ClearCount.Add(1)
	b.ClearDropped.Add(int64(dropped))
}

// RecordTraversal implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTraversal(visited, removed int, duration time.Duration) {
	b.TraversalCount.Add(1)
	b.TraversalVisited.Add(int64(visited))
	b.TraversalRemoved.Add(int64(removed))
	b.TraversalTotalNanos.Add(duration.Nanoseconds())
}

// RecordOutOfRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOutOfRange() {
	b.OutOfRangeCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		DeleteCount:       b.DeleteCount.Load(),
		DeleteErrors:      b.DeleteErrors.Load(),
		DeleteAvgNanos:    avg(b.DeleteTotalNanos.Load(), b.DeleteCount.Load()),
		ClearCount:        b.ClearCount.Load(),
		ClearDropped:      b.ClearDropped.Load(),
		TraversalCount:    b.TraversalCount.Load(),
		TraversalVisited:  b.TraversalVisited.Load(),
		TraversalRemoved:  b.TraversalRemoved.Load(),
		TraversalAvgNanos: avg(b.TraversalTotalNanos.Load(), b.TraversalCount.Load()),
		OutOfRangeCount:   b.OutOfRangeCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	DeleteCount       int64
	DeleteErrors      int64
	DeleteAvgNanos    int64
	ClearCount        int64
	ClearDropped      int64
	TraversalCount    int64
	TraversalVisited  int64
	TraversalRemoved  int64
	TraversalAvgNanos int64
	OutOfRangeCount   int64
}
