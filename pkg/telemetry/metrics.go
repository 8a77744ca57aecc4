// Package telemetry provides Prometheus instrumentation built on the
// suspend-aware clock, so recorded durations include time the host
// spent suspended.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
	"github.com/BYTE-6D65/boottime/pkg/clock"
)

// Metrics holds all Prometheus metrics for clock usage.
type Metrics struct {
	// ClockReads counts reads issued through an InstrumentedClock
	ClockReads prometheus.Counter

	// ReadLatency tracks how long each clock read took
	ReadLatency prometheus.Histogram
}

// InitMetrics initializes the Prometheus metrics.
// This should be called once at startup before any metrics are recorded.
func InitMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	// Histogram buckets optimized for sub-microsecond-to-millisecond
	// latencies: a vDSO-backed read lands in the first buckets, a real
	// syscall or a virtualized counter in the later ones.
	latencyBuckets := []float64{
		0.00000005, // 50ns
		0.0000001,  // 100ns
		0.0000002,  // 200ns
		0.0000005,  // 500ns
		0.000001,   // 1µs
		0.000002,   // 2µs
		0.000005,   // 5µs
		0.00001,    // 10µs
		0.00005,    // 50µs
		0.0001,     // 100µs
		0.001,      // 1ms
	}

	return &Metrics{
		ClockReads: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "boottime_clock_reads_total",
			Help: "Total number of suspend-aware clock reads",
		}),
		ReadLatency: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "boottime_clock_read_duration_seconds",
			Help:    "Latency of suspend-aware clock reads",
			Buckets: latencyBuckets,
		}),
	}
}

// InstrumentedClock wraps a Clock, counting reads and observing their
// latency. The latency probe uses the suspend-aware clock itself.
type InstrumentedClock struct {
	inner   clock.Clock
	metrics *Metrics
}

// NewInstrumentedClock wraps inner with the given metrics.
func NewInstrumentedClock(inner clock.Clock, m *Metrics) *InstrumentedClock {
	return &InstrumentedClock{inner: inner, metrics: m}
}

// Now returns the current instant from the wrapped clock and records
// the read.
func (c *InstrumentedClock) Now() boottime.Instant {
	begin := boottime.Now()
	t := c.inner.Now()
	c.metrics.ClockReads.Inc()
	c.metrics.ReadLatency.Observe(begin.Elapsed().Seconds())
	return t
}

// Since returns the duration elapsed since the given instant.
func (c *InstrumentedClock) Since(t boottime.Instant) time.Duration {
	return c.inner.Since(t)
}
