// Package clock abstracts the suspend-aware clock behind an interface
// so code that measures intervals can be driven deterministically in
// tests.
package clock

import (
	"time"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
)

// Clock provides suspend-aware monotonic time operations.
// All timing, ordering, and interval calculations must use Instant.
type Clock interface {
	// Now returns the current instant
	Now() boottime.Instant

	// Since returns the duration elapsed since the given instant
	Since(t boottime.Instant) time.Duration
}

// SystemClock reads the process-wide suspend-aware clock.
type SystemClock struct{}

// NewSystemClock creates a new SystemClock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current instant.
func (s *SystemClock) Now() boottime.Instant {
	return boottime.Now()
}

// Since returns the duration elapsed since the given instant.
func (s *SystemClock) Since(t boottime.Instant) time.Duration {
	return t.Elapsed()
}
