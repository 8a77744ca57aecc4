//go:build unix

package boottime

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/sys/unix"
)

// instantRep is the raw clock_gettime reading: a seconds/nanoseconds
// pair relative to an arbitrary, platform-chosen epoch.
// Invariant: 0 <= nsec < nanosPerSec.
type instantRep struct {
	sec  int64
	nsec int32
}

func readClock() instantRep {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockID, &ts); err != nil {
		panic("boottime: clock_gettime failed: " + err.Error())
	}
	return instantRep{sec: int64(ts.Sec), nsec: int32(ts.Nsec)}
}

func (r instantRep) checkedSubInstant(other instantRep) (time.Duration, bool) {
	sec, ok := subInt64(r.sec, other.sec)
	if !ok {
		return 0, false
	}
	nsec := r.nsec - other.nsec
	if nsec < 0 {
		nsec += nanosPerSec
		if sec, ok = subInt64(sec, 1); !ok {
			return 0, false
		}
	}
	if sec < 0 {
		return 0, false
	}
	// The pair has more range than time.Duration; reject differences
	// beyond its ~292 year limit instead of wrapping.
	if sec > (math.MaxInt64-int64(nsec))/nanosPerSec {
		return 0, false
	}
	return time.Duration(sec*nanosPerSec + int64(nsec)), true
}

func (r instantRep) checkedAddDuration(d time.Duration) (instantRep, bool) {
	sec, ok := addInt64(r.sec, int64(d/nanosPerSec))
	if !ok {
		return instantRep{}, false
	}
	return normalize(sec, r.nsec+int32(d%nanosPerSec))
}

func (r instantRep) checkedSubDuration(d time.Duration) (instantRep, bool) {
	sec, ok := subInt64(r.sec, int64(d/nanosPerSec))
	if !ok {
		return instantRep{}, false
	}
	return normalize(sec, r.nsec-int32(d%nanosPerSec))
}

// normalize restores the nsec invariant after arithmetic. nsec arrives
// in the open interval (-nanosPerSec, 2*nanosPerSec).
func normalize(sec int64, nsec int32) (instantRep, bool) {
	var ok bool
	switch {
	case nsec >= nanosPerSec:
		nsec -= nanosPerSec
		if sec, ok = addInt64(sec, 1); !ok {
			return instantRep{}, false
		}
	case nsec < 0:
		nsec += nanosPerSec
		if sec, ok = subInt64(sec, 1); !ok {
			return instantRep{}, false
		}
	}
	return instantRep{sec: sec, nsec: nsec}, true
}

func (r instantRep) compare(other instantRep) int {
	switch {
	case r.sec < other.sec:
		return -1
	case r.sec > other.sec:
		return 1
	case r.nsec < other.nsec:
		return -1
	case r.nsec > other.nsec:
		return 1
	}
	return 0
}

func (r instantRep) debugString() string {
	return fmt.Sprintf("%d.%09ds", r.sec, r.nsec)
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}
	return s, true
}

func subInt64(a, b int64) (int64, bool) {
	s := a - b
	if (b > 0 && s > a) || (b < 0 && s < a) {
		return 0, false
	}
	return s, true
}
