//go:build windows

package boottime

import (
	"math"
	"testing"
	"time"
)

func TestWindows_FrequencyCached(t *testing.T) {
	f := frequency()
	if f == 0 {
		t.Fatal("frequency returned zero")
	}
	if got := cachedFrequency.Load(); got != f {
		t.Errorf("cached frequency %d, want %d", got, f)
	}
	if again := frequency(); again != f {
		t.Errorf("second read returned %d, want %d", again, f)
	}
}

// Readings within one performance-counter tick of each other are
// considered simultaneous; anything beyond that is real misordering.
func TestWindows_EpsilonClamp(t *testing.T) {
	eps := epsilon()
	if eps <= 0 {
		t.Fatalf("epsilon = %v, want positive", eps)
	}

	a := instantRep{t: time.Millisecond}
	within := instantRep{t: time.Millisecond + eps}
	beyond := instantRep{t: time.Millisecond + eps + time.Nanosecond}

	if d, ok := a.checkedSubInstant(within); !ok || d != 0 {
		t.Errorf("difference within epsilon = %v, %v, want 0, true", d, ok)
	}
	if d, ok := a.checkedSubInstant(beyond); ok {
		t.Errorf("difference beyond epsilon reported %v, want absent", d)
	}
	if d, ok := within.checkedSubInstant(a); !ok || d != eps {
		t.Errorf("forward difference = %v, %v, want %v, true", d, ok, eps)
	}
}

func TestWindows_CheckedArithmeticBoundary(t *testing.T) {
	top := Instant{rep: instantRep{t: time.Duration(math.MaxInt64)}}
	if _, ok := top.CheckedAdd(time.Nanosecond); ok {
		t.Error("CheckedAdd(1ns) at the top of the range should overflow")
	}
	if _, ok := top.CheckedSub(-time.Nanosecond); ok {
		t.Error("CheckedSub(-1ns) at the top of the range should overflow")
	}

	var epoch Instant
	if _, ok := epoch.CheckedSub(time.Nanosecond); ok {
		t.Error("CheckedSub(1ns) at the epoch should underflow")
	}
	if _, ok := epoch.CheckedSub(minDuration); ok {
		t.Error("CheckedSub(minDuration) should overflow")
	}
	if got, ok := epoch.CheckedAdd(time.Second); !ok || got.rep.t != time.Second {
		t.Error("CheckedAdd(1s) at the epoch should succeed")
	}
}
