package rawvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordPushBack is called after each append operation.
	// duration is the total time taken, err is nil if successful.
	RecordPushBack(duration time.Duration, err error)

	// RecordInsert is called after each insert operation.
	RecordInsert(duration time.Duration, err error)

	// RecordErase is called after each erase operation.
	RecordErase(duration time.Duration, err error)

	// RecordGrow is called after each successful block replacement.
	// moved and copied report how many elements were relocated by
	// move and by copy respectively.
	RecordGrow(oldCap, newCap, moved, copied int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPushBack(time.Duration, error) {}
func (NoopMetricsCollector) RecordInsert(time.Duration, error)   {}
func (NoopMetricsCollector) RecordErase(time.Duration, error)    {}
func (NoopMetricsCollector) RecordGrow(int, int, int, int)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external
// dependencies.
type BasicMetricsCollector struct {
	PushBackCount      atomic.Int64
	PushBackErrors     atomic.Int64
	PushBackTotalNanos atomic.Int64
	InsertCount        atomic.Int64
	InsertErrors       atomic.Int64
	InsertTotalNanos   atomic.Int64
	EraseCount         atomic.Int64
	EraseErrors        atomic.Int64
	EraseTotalNanos    atomic.Int64
	GrowCount          atomic.Int64
	ElemsMoved         atomic.Int64
	ElemsCopied        atomic.Int64
}

// RecordPushBack implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPushBack(duration time.Duration, err error) {
	b.PushBackCount.Add(1)
	b.PushBackTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PushBackErrors.Add(1)
	}
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordErase implements MetricsCollector.
func (b *BasicMetricsCollector) RecordErase(duration time.Duration, err error) {
	b.EraseCount.Add(1)
	b.EraseTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EraseErrors.Add(1)
	}
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(oldCap, newCap, moved, copied int) {
	b.GrowCount.Add(1)
	b.ElemsMoved.Add(int64(moved))
	b.ElemsCopied.Add(int64(copied))
}
