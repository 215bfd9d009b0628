package bitmatch

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
//	    scanCounter     prometheus.Counter
//	    scanHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordScan(bits, windows, collisions int, d time.Duration, found bool) {
//	    p.scanCounter.Inc()
//	    // ... record duration, collision rate, etc.
//	}
type MetricsCollector interface {
	// RecordCompile is called after each pattern compilation.
	// bits is the requested bit count, err is nil if successful.
	RecordCompile(bits int, duration time.Duration, err error)

	// RecordScan is called after each scan. windows is the number of
	// window positions hashed, collisions the number of hash hits
	// rejected by exact comparison.
	RecordScan(bits, windows, collisions int, duration time.Duration, found bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompile(int, time.Duration, error)       {}
func (NoopMetricsCollector) RecordScan(int, int, int, time.Duration, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CompileCount   atomic.Int64
	CompileErrors  atomic.Int64
	ScanCount      atomic.Int64
	ScanFound      atomic.Int64
	WindowsScanned atomic.Int64
	HashCollisions atomic.Int64
	ScanTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordCompile(bits int, duration time.Duration, err error) {
	c.CompileCount.Add(1)
	if err != nil {
		c.CompileErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordScan(bits, windows, collisions int, duration time.Duration, found bool) {
	c.ScanCount.Add(1)
	if found {
		c.ScanFound.Add(1)
	}
	c.WindowsScanned.Add(int64(windows))
	c.HashCollisions.Add(int64(collisions))
	c.ScanTotalNanos.Add(duration.Nanoseconds())
}
