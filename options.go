package bitmatch

import (
	"runtime"
)

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
}

func defaultOptions() *options {
	return &options{
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// Option configures pattern compilation and scanning behavior.
type Option func(*options)

// WithLogger configures the logger used during compilation and scans.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures the metrics collector notified on each
// compilation and scan.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithParallelism bounds the number of blobs scanned concurrently by
// FindInStore. Values below 1 reset to the default (GOMAXPROCS).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}
