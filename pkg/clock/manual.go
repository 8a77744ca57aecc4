package clock

import (
	"sync"
	"time"

	"github.com/BYTE-6D65/boottime/pkg/boottime"
)

// ManualClock is a Clock whose time only moves when Advance is called.
// It is intended for deterministic tests of code that consumes Clock,
// and works even on platforms without a real suspend-aware clock
// because it never reads one.
type ManualClock struct {
	mu      sync.RWMutex
	current boottime.Instant
}

// NewManualClock creates a ManualClock frozen at start. The zero
// Instant is a valid start for tests that only care about deltas.
func NewManualClock(start boottime.Instant) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current instant.
func (m *ManualClock) Now() boottime.Instant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Since returns the duration elapsed since the given instant.
func (m *ManualClock) Since(t boottime.Instant) time.Duration {
	return m.Now().DurationSince(t)
}

// Advance moves the clock forward by d. Non-positive d is ignored, and
// an advance that would leave the representable range leaves the clock
// unchanged; like the real clock, a ManualClock never goes backwards.
func (m *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if next, ok := m.current.CheckedAdd(d); ok {
		m.current = next
	}
}
