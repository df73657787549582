// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import "testing"

func TestTimeSpanNewFromComponents(t *testing.T) {
	ts := NewTimeSpanFrom(1, 2, 3, 4, 5, 6, 7)
	want := uint64(1)*uint64(ticksPerDay) +
		uint64(2)*uint64(ticksPerHour) +
		uint64(3)*uint64(ticksPerMinute) +
		uint64(4)*uint64(ticksPerSecond) +
		uint64(5)*uint64(ticksPerMillisecond) +
		uint64(6)*uint64(ticksPerMicrosecond) +
		7
	if ts.Ticks() != want {
		t.Errorf("got %d ticks, wanted %d", ts.Ticks(), want)
	}
}

func TestTimeSpanAccessorsTruncate(t *testing.T) {
	ts := NewTimeSpanFrom(1, 2, 3, 4, 0, 0, 0)
	if ts.Days() != 1 {
		t.Errorf("got %d days, wanted 1", ts.Days())
	}
	if ts.Hours() != 1*24+2 {
		t.Errorf("got %d hours, wanted %d", ts.Hours(), 1*24+2)
	}
}

func TestTimeSpanAddSaturates(t *testing.T) {
	if got := MaxTimeSpan.Add(NewTimeSpan(1)); got != MaxTimeSpan {
		t.Errorf("got %d, wanted MaxTimeSpan", got.Ticks())
	}
}

func TestTimeSpanSubIsAbsoluteDifference(t *testing.T) {
	a, b := NewTimeSpan(100), NewTimeSpan(40)
	if a.Sub(b).Ticks() != 60 {
		t.Errorf("got %d, wanted 60", a.Sub(b).Ticks())
	}
	if b.Sub(a).Ticks() != 60 {
		t.Errorf("got %d, wanted 60 (reversed operands)", b.Sub(a).Ticks())
	}
}

func TestTimeSpanFromOverflowingComponentSaturates(t *testing.T) {
	// days * ticksPerDay overflows uint64 long before int64Max days.
	ts := NewTimeSpanFrom(int64(1)<<62, 0, 0, 0, 0, 0, 0)
	if ts != MaxTimeSpan {
		t.Errorf("got %d, wanted MaxTimeSpan", ts.Ticks())
	}
}
