//go:build !unix && !windows

package boottime

import "time"

// There is no suspend-aware clock to read on this platform. Now panics,
// but Instant arithmetic still works over the stored offset so that
// generic code which never calls Now keeps compiling and running.

func readClock() instantRep {
	panic("boottime: no suspend-aware clock on this platform")
}

func (r instantRep) checkedSubInstant(other instantRep) (time.Duration, bool) {
	if other.t > r.t {
		return 0, false
	}
	return r.t - other.t, true
}
