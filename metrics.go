package axistable

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus (see package promstats).
//
// Collectors are only invoked when configured; a Table without one never
// reads the clock on its O(1) paths.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// added is false when the triple was already present.
	RecordInsert(duration time.Duration, added bool)

	// RecordRemove is called after each single-triple remove.
	// removed is false when the triple was absent.
	RecordRemove(duration time.Duration, removed bool)

	// RecordBulkRemove is called after RemoveRow or RemoveColumn.
	RecordBulkRemove(axis Axis, removed int, duration time.Duration)

	// RecordRebuild is called after each inverse table rebuild.
	RecordRebuild(cells int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordRemove(time.Duration, bool)          {}
func (NoopMetricsCollector) RecordBulkRemove(Axis, int, time.Duration) {}
func (NoopMetricsCollector) RecordRebuild(int, time.Duration)          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertNoops      atomic.Int64
	InsertTotalNanos atomic.Int64
	RemoveCount      atomic.Int64
	RemoveNoops      atomic.Int64
	RemoveTotalNanos atomic.Int64
	RowRemovals      atomic.Int64
	ColRemovals      atomic.Int64
	BulkRemoved      atomic.Int64
	RebuildCount     atomic.Int64
	RebuildCells     atomic.Int64
	RebuildNanos     atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, added bool) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if !added {
		b.InsertNoops.Add(1)
	}
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(duration time.Duration, removed bool) {
	b.RemoveCount.Add(1)
	b.RemoveTotalNanos.Add(duration.Nanoseconds())
	if !removed {
		b.RemoveNoops.Add(1)
	}
}

// RecordBulkRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBulkRemove(axis Axis, removed int, duration time.Duration) {
	if axis == AxisCol {
		b.ColRemovals.Add(1)
	} else {
		b.RowRemovals.Add(1)
	}
	b.BulkRemoved.Add(int64(removed))
}

// RecordRebuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRebuild(cells int, duration time.Duration) {
	b.RebuildCount.Add(1)
	b.RebuildCells.Add(int64(cells))
	b.RebuildNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:    b.InsertCount.Load(),
		InsertNoops:    b.InsertNoops.Load(),
		InsertAvgNanos: avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		RemoveCount:    b.RemoveCount.Load(),
		RemoveNoops:    b.RemoveNoops.Load(),
		RemoveAvgNanos: avg(b.RemoveTotalNanos.Load(), b.RemoveCount.Load()),
		RowRemovals:    b.RowRemovals.Load(),
		ColRemovals:    b.ColRemovals.Load(),
		BulkRemoved:    b.BulkRemoved.Load(),
		RebuildCount:   b.RebuildCount.Load(),
		RebuildCells:   b.RebuildCells.Load(),
		RebuildNanos:   b.RebuildNanos.Load(),
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
	InsertCount    int64
	InsertNoops    int64
	InsertAvgNanos int64
	RemoveCount    int64
	RemoveNoops    int64
	RemoveAvgNanos int64
	RowRemovals    int64
	ColRemovals    int64
	BulkRemoved    int64
	RebuildCount   int64
	RebuildCells   int64
	RebuildNanos   int64
}
