//go:build freebsd || netbsd || dragonfly

package boottime

import "golang.org/x/sys/unix"

// FreeBSD's CLOCK_BOOTTIME is an alias of CLOCK_UPTIME and does not
// include suspended time, so there is nothing to gain over plain
// CLOCK_MONOTONIC here. NetBSD and DragonFly lack a boot-time clock
// entirely.
const clockID = unix.CLOCK_MONOTONIC
