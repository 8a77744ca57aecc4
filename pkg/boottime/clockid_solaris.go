//go:build aix || solaris

package boottime

import "golang.org/x/sys/unix"

// No suspend-aware clock source exists on these targets; fall back to
// the plain monotonic clock.
const clockID = unix.CLOCK_MONOTONIC
