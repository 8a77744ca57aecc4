// Package boottime provides Instant, a measurement of a monotonically
// nondecreasing clock that keeps advancing while the host is suspended
// or asleep. It is a drop-in alternative to plain monotonic timestamps
// for benchmarks, timeouts, and rate limiting that must stay correct
// across suspend/resume cycles.
//
// Instants are opaque: there is no way to get "the number of seconds"
// out of one. They can only be compared to each other, or subtracted to
// produce a time.Duration. The epoch is arbitrary and process-relative,
// so instants from different processes or boots are not comparable.
//
// Underlying clock source per platform:
//
//	Linux/Android/OpenBSD     clock_gettime(CLOCK_BOOTTIME)
//	Darwin/iOS                clock_gettime(CLOCK_MONOTONIC), which on
//	                          Darwin already advances across sleep
//	FreeBSD/NetBSD/DragonFly  clock_gettime(CLOCK_MONOTONIC); these
//	Solaris/AIX               targets have no reliable suspend-aware source
//	Windows                   QueryPerformanceCounter
//
// Barring platform bugs, an instant is never less than any instant
// measured before it. Instants are not steady, though: ticks of the
// underlying clock may stretch or compress, and time may jump forward,
// but it never goes backwards.
package boottime

import "time"

const nanosPerSec = 1_000_000_000

// Instant is an opaque, totally ordered point on the suspend-aware
// clock. The zero value is a valid instant at the arbitrary epoch.
// Instants are plain values: copyable, comparable with ==, and safe to
// share between goroutines.
type Instant struct {
	rep instantRep
}

// Now returns an instant corresponding to "now".
//
// Now panics on platforms without a suspend-aware clock, and if the
// underlying OS call fails; neither condition is recoverable.
func Now() Instant {
	return Instant{rep: readClock()}
}

// Since returns the time elapsed since t, clamped to zero. Shorthand
// for Now().DurationSince(t).
func Since(t Instant) time.Duration {
	return Now().DurationSince(t)
}

// DurationSince returns the amount of time elapsed from earlier to t,
// or zero if earlier is later than t. Apparent non-monotonicity from
// clock jitter, virtualization, or misordered arguments clamps rather
// than failing; use CheckedDurationSince to detect it.
func (t Instant) DurationSince(earlier Instant) time.Duration {
	d, ok := t.CheckedDurationSince(earlier)
	if !ok {
		return 0
	}
	return d
}

// CheckedDurationSince returns the amount of time elapsed from earlier
// to t, or false if earlier is later than t beyond the platform's
// measurement tolerance, or if the difference does not fit in a
// time.Duration.
func (t Instant) CheckedDurationSince(earlier Instant) (time.Duration, bool) {
	return t.rep.checkedSubInstant(earlier.rep)
}

// SaturatingDurationSince returns the amount of time elapsed from
// earlier to t, or zero if earlier is later than t. It is equivalent to
// DurationSince and exists for call-site clarity.
func (t Instant) SaturatingDurationSince(earlier Instant) time.Duration {
	return t.DurationSince(earlier)
}

// Sub returns the amount of time elapsed from earlier to t, clamped to
// zero. Equivalent to DurationSince; it mirrors time.Time.Sub.
func (t Instant) Sub(earlier Instant) time.Duration {
	return t.DurationSince(earlier)
}

// Elapsed returns the time elapsed since t, clamped to zero.
func (t Instant) Elapsed() time.Duration {
	return Now().DurationSince(t)
}

// CheckedAdd returns t+d, or false if the result cannot be represented.
// A negative d moves the instant backwards.
func (t Instant) CheckedAdd(d time.Duration) (Instant, bool) {
	rep, ok := t.rep.checkedAddDuration(d)
	return Instant{rep: rep}, ok
}

// CheckedSub returns t-d, or false if the result cannot be represented.
// A negative d moves the instant forwards.
func (t Instant) CheckedSub(d time.Duration) (Instant, bool) {
	rep, ok := t.rep.checkedSubDuration(d)
	return Instant{rep: rep}, ok
}

// Add returns t+d. Unlike instant subtraction, range overflow here is a
// programming error: Add panics where CheckedAdd would return false.
func (t Instant) Add(d time.Duration) Instant {
	nt, ok := t.CheckedAdd(d)
	if !ok {
		if d < 0 {
			panic("boottime: overflow when subtracting duration from instant")
		}
		panic("boottime: overflow when adding duration to instant")
	}
	return nt
}

// Compare returns -1 if t is before other, +1 if t is after other, and
// 0 if they are the same instant.
func (t Instant) Compare(other Instant) int {
	return t.rep.compare(other.rep)
}

// Before reports whether t is before other.
func (t Instant) Before(other Instant) bool {
	return t.Compare(other) < 0
}

// After reports whether t is after other.
func (t Instant) After(other Instant) bool {
	return t.Compare(other) > 0
}

// Equal reports whether t and other are the same instant.
func (t Instant) Equal(other Instant) bool {
	return t.Compare(other) == 0
}

// String returns a debug form of the instant, deferring to the
// platform representation. The value is relative to an arbitrary epoch
// and is not a wall-clock time.
func (t Instant) String() string {
	return t.rep.debugString()
}
