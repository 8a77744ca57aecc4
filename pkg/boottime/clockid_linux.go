//go:build linux

package boottime

import "golang.org/x/sys/unix"

// CLOCK_BOOTTIME is identical to CLOCK_MONOTONIC except that it also
// advances while the system is suspended.
const clockID = unix.CLOCK_BOOTTIME
