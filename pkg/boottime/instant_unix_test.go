//go:build unix

package boottime

import (
	"math"
	"testing"
	"time"
)

func TestUnix_CheckedAddOverflowBoundary(t *testing.T) {
	top := Instant{rep: instantRep{sec: math.MaxInt64, nsec: nanosPerSec - 1}}

	if _, ok := top.CheckedAdd(time.Nanosecond); ok {
		t.Error("CheckedAdd(1ns) at the top of the range should overflow")
	}
	if got, ok := top.CheckedAdd(0); !ok || got != top {
		t.Error("CheckedAdd(0) at the top of the range should be a no-op")
	}

	nearTop := Instant{rep: instantRep{sec: math.MaxInt64 - 1, nsec: 0}}
	if got, ok := nearTop.CheckedAdd(time.Second); !ok || got.rep.sec != math.MaxInt64 {
		t.Error("CheckedAdd(1s) just below the top should land exactly on it")
	}
	if _, ok := nearTop.CheckedAdd(2 * time.Second); ok {
		t.Error("CheckedAdd(2s) just below the top should overflow")
	}
}

func TestUnix_CheckedSubUnderflowBoundary(t *testing.T) {
	bottom := Instant{rep: instantRep{sec: math.MinInt64, nsec: 0}}

	if _, ok := bottom.CheckedSub(time.Nanosecond); ok {
		t.Error("CheckedSub(1ns) at the bottom of the range should underflow")
	}
	if got, ok := bottom.CheckedAdd(time.Nanosecond); !ok || got.rep.nsec != 1 {
		t.Error("CheckedAdd(1ns) at the bottom of the range should succeed")
	}
}

func TestUnix_AddPanicsOnOverflow(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Add did not panic on overflow")
		}
		if s, _ := r.(string); s != "boottime: overflow when adding duration to instant" {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	top := Instant{rep: instantRep{sec: math.MaxInt64, nsec: nanosPerSec - 1}}
	top.Add(time.Nanosecond)
}

func TestUnix_SubtractDurationPanicMessage(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Add did not panic on underflow")
		}
		if s, _ := r.(string); s != "boottime: overflow when subtracting duration from instant" {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	bottom := Instant{rep: instantRep{sec: math.MinInt64, nsec: 0}}
	bottom.Add(-time.Nanosecond)
}

// The pair representation has more range than time.Duration, so instant
// subtraction must reject differences beyond the duration limit.
func TestUnix_SubInstantBeyondDurationRange(t *testing.T) {
	var epoch Instant

	fits := Instant{rep: instantRep{
		sec:  math.MaxInt64 / nanosPerSec,
		nsec: int32(math.MaxInt64 % nanosPerSec),
	}}
	if d, ok := fits.CheckedDurationSince(epoch); !ok || d != time.Duration(math.MaxInt64) {
		t.Errorf("largest representable difference = %v, %v, want MaxInt64ns, true", d, ok)
	}

	tooFar := Instant{rep: instantRep{sec: math.MaxInt64/nanosPerSec + 1, nsec: 0}}
	if d, ok := tooFar.CheckedDurationSince(epoch); ok {
		t.Errorf("difference beyond time.Duration range reported %v, want absent", d)
	}
}

// The unix reader is exact; there is no epsilon tolerance, so even a
// single nanosecond of misordering is detected.
func TestUnix_SubInstantIsExact(t *testing.T) {
	a := Instant{rep: instantRep{sec: 5, nsec: 0}}
	b := Instant{rep: instantRep{sec: 5, nsec: 1}}

	if d, ok := a.CheckedDurationSince(b); ok {
		t.Errorf("a.CheckedDurationSince(b) = %v for b 1ns later, want absent", d)
	}
	if d, ok := b.CheckedDurationSince(a); !ok || d != time.Nanosecond {
		t.Errorf("b.CheckedDurationSince(a) = %v, %v, want 1ns, true", d, ok)
	}
}

func TestUnix_NsecInvariantAfterArithmetic(t *testing.T) {
	r := instantRep{sec: 10, nsec: 999_999_999}

	sum, ok := r.checkedAddDuration(3 * time.Nanosecond)
	if !ok || sum.sec != 11 || sum.nsec != 2 {
		t.Errorf("carry failed: got {%d %d}, want {11 2}", sum.sec, sum.nsec)
	}

	diff, ok := sum.checkedSubDuration(3 * time.Nanosecond)
	if !ok || diff != r {
		t.Errorf("borrow failed: got {%d %d}, want {%d %d}", diff.sec, diff.nsec, r.sec, r.nsec)
	}
}
