package searchpool

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    insertCounter   prometheus.Counter
//	    searchHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSearch(kind string, limit int, duration time.Duration, err error) {
//	    p.searchHistogram.Observe(duration.Seconds())
//	    // ... record error state, kind, etc.
//	}
type MetricsCollector interface {
	// RecordBatchInsert is called after each insert batch.
	// count is the number of records attempted, rejected the number skipped,
	// duration is the total time taken.
	RecordBatchInsert(count, rejected int, duration time.Duration)

	// RecordSearch is called after each search operation.
	// kind is "vector", "keyword" or "hybrid", limit is the requested
	// result size, err is nil if successful.
	RecordSearch(kind string, limit int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatchInsert(int, int, time.Duration)      {}
func (NoopMetricsCollector) RecordSearch(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchInsertCount    atomic.Int64
	BatchInsertRecords  atomic.Int64
	BatchInsertRejected atomic.Int64
	SearchCount         atomic.Int64
	SearchErrors        atomic.Int64
	SearchTotalNanos    atomic.Int64
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count, rejected int, duration time.Duration) {
	b.BatchInsertCount.Add(1)
	b.BatchInsertRecords.Add(int64(count))
	b.BatchInsertRejected.Add(int64(rejected))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(kind string, limit int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector counters.
type BasicMetricsStats struct {
	BatchInsertCount    int64
	BatchInsertRecords  int64
	BatchInsertRejected int64
	SearchCount         int64
	SearchErrors        int64
	SearchAvgNanos      int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	stats := BasicMetricsStats{
		BatchInsertCount:    b.BatchInsertCount.Load(),
		BatchInsertRecords:  b.BatchInsertRecords.Load(),
		BatchInsertRejected: b.BatchInsertRejected.Load(),
		SearchCount:         b.SearchCount.Load(),
		SearchErrors:        b.SearchErrors.Load(),
	}
	if stats.SearchCount > 0 {
		stats.SearchAvgNanos = b.SearchTotalNanos.Load() / stats.SearchCount
	}
	return stats
}
