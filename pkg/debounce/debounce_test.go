package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedule_LatestCallbackWins(t *testing.T) {
	s := New(time.Hour)

	var first, second atomic.Int32
	s.Schedule(func() { first.Add(1) })
	s.Schedule(func() { second.Add(1) })

	s.Flush()

	if first.Load() != 0 {
		t.Fatal("replaced callback must not run")
	}
	if second.Load() != 1 {
		t.Fatalf("latest callback ran %d times, want 1", second.Load())
	}
	if s.Pending() {
		t.Fatal("nothing should remain pending after flush")
	}
}

func TestCancel(t *testing.T) {
	s := New(time.Hour)

	var ran atomic.Int32
	s.Schedule(func() { ran.Add(1) })
	s.Cancel()
	s.Flush()

	if ran.Load() != 0 {
		t.Fatal("cancelled callback must not run")
	}
}

func TestSchedule_FiresAfterQuietPeriod(t *testing.T) {
	s := New(5 * time.Millisecond)

	done := make(chan struct{})
	s.Schedule(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire after the quiet period")
	}
	if s.Pending() {
		t.Fatal("fired callback should no longer be pending")
	}
}

func TestSchedule_ZeroQuietRunsSynchronously(t *testing.T) {
	s := New(0)

	ran := false
	s.Schedule(func() { ran = true })
	if !ran {
		t.Fatal("zero quiet period should invoke synchronously")
	}
}

func TestSchedule_NilCallbackIgnored(t *testing.T) {
	s := New(time.Hour)
	s.Schedule(nil)
	if s.Pending() {
		t.Fatal("nil callback should not be scheduled")
	}
}
