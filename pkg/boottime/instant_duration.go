//go:build !unix

package boottime

import "time"

// instantRep stores a nanosecond offset from an arbitrary epoch. Shared
// by the Windows reader (performance-counter ticks converted up front)
// and by unsupported targets (where no clock ever produces one).
type instantRep struct {
	t time.Duration
}

const minDuration = time.Duration(-1 << 63)

func (r instantRep) checkedAddDuration(d time.Duration) (instantRep, bool) {
	t := r.t + d
	if (d > 0 && t < r.t) || (d < 0 && t > r.t) {
		return instantRep{}, false
	}
	// Instants are non-negative offsets from the epoch.
	if t < 0 {
		return instantRep{}, false
	}
	return instantRep{t: t}, true
}

func (r instantRep) checkedSubDuration(d time.Duration) (instantRep, bool) {
	if d == minDuration {
		// The magnitude of minDuration is not representable, and adding
		// it to a non-negative offset always overflows anyway.
		return instantRep{}, false
	}
	return r.checkedAddDuration(-d)
}

func (r instantRep) compare(other instantRep) int {
	switch {
	case r.t < other.t:
		return -1
	case r.t > other.t:
		return 1
	}
	return 0
}

func (r instantRep) debugString() string {
	return r.t.String()
}
