//go:build darwin

package boottime

import "golang.org/x/sys/unix"

// On Darwin CLOCK_MONOTONIC is backed by mach_continuous_time and keeps
// advancing while the machine is asleep. CLOCK_UPTIME_RAW is the one
// that stops.
const clockID = unix.CLOCK_MONOTONIC
