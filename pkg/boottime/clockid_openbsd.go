//go:build openbsd

package boottime

import "golang.org/x/sys/unix"

// OpenBSD's CLOCK_BOOTTIME counts time spent suspended, like Linux's.
const clockID = unix.CLOCK_BOOTTIME
