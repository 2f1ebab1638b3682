package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := &RealClock{}

	before := time.Now()
	actual := clock.Now()
	after := time.Now()

	if actual.Before(before) || actual.After(after) {
		t.Errorf("RealClock.Now() returned time outside expected range: got %v, expected between %v and %v", actual, before, after)
	}
}

func TestStepClock(t *testing.T) {
	start := time.Date(2018, 12, 3, 5, 0, 0, 0, time.UTC)

	t.Run("first read returns start", func(t *testing.T) {
		clock := NewStepClock(start, time.Second)
		if got := clock.Now(); !got.Equal(start) {
			t.Errorf("Now() = %v, want %v", got, start)
		}
	})

	t.Run("each read advances by step", func(t *testing.T) {
		clock := NewStepClock(start, 250*time.Millisecond)
		clock.Now()
		clock.Now()
		if got, want := clock.Now(), start.Add(500*time.Millisecond); !got.Equal(want) {
			t.Errorf("third Now() = %v, want %v", got, want)
		}
	})

	t.Run("zero step is fixed", func(t *testing.T) {
		clock := NewStepClock(start, 0)
		if a, b := clock.Now(), clock.Now(); !a.Equal(b) {
			t.Errorf("zero-step clock moved: %v then %v", a, b)
		}
	})
}

func TestSince(t *testing.T) {
	start := time.Date(2018, 12, 1, 0, 0, 0, 0, time.UTC)
	clock := NewStepClock(start, 3*time.Millisecond)

	begin := clock.Now()
	if got := Since(clock, begin); got != 3*time.Millisecond {
		t.Errorf("Since() = %v, want 3ms", got)
	}
}
