package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
)

// Timer times a block of code and reports the result to a
// prometheus.Observer. It is the prometheus.Timer pattern rebuilt on
// the suspend-aware clock: a measurement spanning a host suspend
// includes the suspended time, where the stock timer would not.
type Timer struct {
	begin    boottime.Instant
	observer prometheus.Observer
}

// NewTimer starts a Timer reporting to obs. A nil obs yields a timer
// that only measures.
func NewTimer(obs prometheus.Observer) *Timer {
	return &Timer{
		begin:    boottime.Now(),
		observer: obs,
	}
}

// ObserveDuration reports the time elapsed since the timer started to
// the observer in seconds, and returns it. It can be called multiple
// times; each call observes the total elapsed time so far.
func (t *Timer) ObserveDuration() time.Duration {
	d := t.begin.Elapsed()
	if t.observer != nil {
		t.observer.Observe(d.Seconds())
	}
	return d
}
