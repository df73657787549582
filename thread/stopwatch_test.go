// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"testing"
	"time"
)

func TestStopwatchElapsedIncreasesMonotonically(t *testing.T) {
	s := NewStopwatch()
	s.Set()
	first := s.ElapsedAsInteger()
	time.Sleep(2 * time.Millisecond)
	second := s.ElapsedAsInteger()
	if second < first {
		t.Errorf("elapsed time must not decrease: %d then %d", first, second)
	}
}

func TestStopwatchElapsedAsTimeSpanConsistentWithInteger(t *testing.T) {
	s := NewStopwatch()
	s.Set()
	time.Sleep(time.Millisecond)
	ticks := s.ElapsedAsInteger()
	ts := s.ElapsedAsTimeSpan()
	// both reads straddle a small window; allow a modest tick slop.
	diff := int64(ts.Ticks()) - int64(ticks)
	if diff < -100000 || diff > 100000 {
		t.Errorf("ElapsedAsTimeSpan (%d) diverged too far from ElapsedAsInteger (%d)", ts.Ticks(), ticks)
	}
}

func TestEnclosedStopwatchClampedCapsAtOne(t *testing.T) {
	e := NewEnclosedStopwatch(NewTimeSpan(1), Clamped) // 100ns window, elapses instantly
	e.Set()
	time.Sleep(time.Millisecond)
	if got := e.GetProgression(); got != 1 {
		t.Errorf("got %v, wanted progression clamped to 1", got)
	}
	if got := e.GetPercentage(); got != 100 {
		t.Errorf("got %v, wanted percentage clamped to 100", got)
	}
}

func TestEnclosedStopwatchCyclicWrapsIntoUnitRange(t *testing.T) {
	e := NewEnclosedStopwatch(NewTimeSpan(1), Cyclic)
	e.Set()
	time.Sleep(time.Millisecond)
	got := e.GetProgression()
	if got < 0 || got >= 1 {
		t.Errorf("cyclic progression must stay in [0,1), got %v", got)
	}
}

func TestEnclosedStopwatchProportionalGrowsUnbounded(t *testing.T) {
	e := NewEnclosedStopwatch(NewTimeSpan(1), Proportional)
	e.Set()
	time.Sleep(time.Millisecond)
	if got := e.GetProgression(); got <= 1 {
		t.Errorf("proportional progression past the window should exceed 1, got %v", got)
	}
}
