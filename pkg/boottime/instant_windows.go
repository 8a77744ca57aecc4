//go:build windows

package boottime

import (
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/BYTE-6D65/boottime/pkg/scale"
)

// High precision timing on Windows operates in performance-counter
// units, as returned by QueryPerformanceCounter. These relate to
// seconds by a factor of QueryPerformanceFrequency. To keep unit
// conversions out of interval math, readings are converted to
// nanoseconds immediately.

var (
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procQueryPerformanceCounter   = kernel32.NewProc("QueryPerformanceCounter")
	procQueryPerformanceFrequency = kernel32.NewProc("QueryPerformanceFrequency")
)

// cachedFrequency holds the result of QueryPerformanceFrequency, or
// zero when not yet read. A single atomic word is enough: the hardware
// frequency is constant for the process lifetime, so concurrent first
// readers race benignly and every writer stores the same value. No
// other memory needs to be ordered against it.
var cachedFrequency atomic.Uint64

func readClock() instantRep {
	var ticks int64
	r, _, err := procQueryPerformanceCounter.Call(uintptr(unsafe.Pointer(&ticks)))
	if r == 0 {
		panic("boottime: QueryPerformanceCounter failed: " + err.Error())
	}
	ns := scale.MulDiv(uint64(ticks), nanosPerSec, frequency())
	return instantRep{t: time.Duration(ns)}
}

func frequency() uint64 {
	if f := cachedFrequency.Load(); f != 0 {
		return f
	}
	var f int64
	r, _, err := procQueryPerformanceFrequency.Call(uintptr(unsafe.Pointer(&f)))
	if r == 0 {
		// Without ticks-per-second every later conversion is
		// meaningless; there is no fallback value.
		panic("boottime: QueryPerformanceFrequency failed: " + err.Error())
	}
	cachedFrequency.Store(uint64(f))
	return uint64(f)
}

// epsilon is the margin of error for cross-thread comparisons of
// QueryPerformanceCounter readings: one tick, per Microsoft's
// "acquiring high-resolution time stamps" guidance.
func epsilon() time.Duration {
	return time.Duration(nanosPerSec / frequency())
}

func (r instantRep) checkedSubInstant(other instantRep) (time.Duration, bool) {
	// Readings taken within one tick of each other can be reported in
	// either order. Treat such pairs as simultaneous so that two calls
	// issued in program order never both claim to be later.
	if other.t > r.t {
		if other.t-r.t <= epsilon() {
			return 0, true
		}
		return 0, false
	}
	return r.t - other.t, true
}
