// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package thread provides a thread lifecycle wrapper, a mutex family with
// scoped-lock guards, and monotonic stopwatch timing, wrapping the host
// OS to give uniform synchronization and high-resolution timing
// primitives on top of Go's goroutine/OS-thread model.
package thread

import "math"

// TimeSpan is a duration expressed in 100-nanosecond ticks, matching the
// Windows FILETIME tick unit so conversions between the two are exact.
// All arithmetic saturates at the type's bounds rather than wrapping;
// TimeSpan has no representation for a negative duration, so subtraction
// returns the absolute difference.
type TimeSpan uint64

// MaxTimeSpan is the largest representable TimeSpan.
const MaxTimeSpan = TimeSpan(math.MaxUint64)

const (
	ticksPerMicrosecond TimeSpan = 10
	ticksPerMillisecond          = ticksPerMicrosecond * 1000
	ticksPerSecond               = ticksPerMillisecond * 1000
	ticksPerMinute               = ticksPerSecond * 60
	ticksPerHour                 = ticksPerMinute * 60
	ticksPerDay                  = ticksPerHour * 24
)

// ZeroTimeSpan returns the zero duration.
func ZeroTimeSpan() TimeSpan { return 0 }

// NewTimeSpan returns a TimeSpan built directly from raw 100-ns ticks.
func NewTimeSpan(ticks uint64) TimeSpan { return TimeSpan(ticks) }

// NewTimeSpanFrom builds a TimeSpan from its component parts. The
// composition saturates to MaxTimeSpan on overflow instead of wrapping.
func NewTimeSpanFrom(days, hours, minutes, seconds, milliseconds, microseconds, hundredNanos int64) TimeSpan {
	t := ZeroTimeSpan()
	t = t.addTicks(days, ticksPerDay)
	t = t.addTicks(hours, ticksPerHour)
	t = t.addTicks(minutes, ticksPerMinute)
	t = t.addTicks(seconds, ticksPerSecond)
	t = t.addTicks(milliseconds, ticksPerMillisecond)
	t = t.addTicks(microseconds, ticksPerMicrosecond)
	t = t.addTicks(hundredNanos, 1)
	return t
}

func (t TimeSpan) addTicks(count int64, unit TimeSpan) TimeSpan {
	if count <= 0 {
		return t
	}
	delta := uint64(count) * uint64(unit)
	if delta/uint64(unit) != uint64(count) {
		return MaxTimeSpan // overflowed computing delta itself.
	}
	return t.Add(TimeSpan(delta))
}

// Ticks returns the raw 100-ns tick count.
func (t TimeSpan) Ticks() uint64 { return uint64(t) }

// Add returns t+d, saturating at MaxTimeSpan on overflow.
func (t TimeSpan) Add(d TimeSpan) TimeSpan {
	sum := t + d
	if sum < t {
		return MaxTimeSpan
	}
	return sum
}

// Sub returns the absolute difference |t-d|. TimeSpan cannot represent a
// negative duration, so unlike a signed duration type this never
// underflows; it reports magnitude only.
func (t TimeSpan) Sub(d TimeSpan) TimeSpan {
	if t >= d {
		return t - d
	}
	return d - t
}

// Days returns the duration truncated to whole days.
func (t TimeSpan) Days() int64 { return int64(t / ticksPerDay) }

// Hours returns the duration truncated to whole hours.
func (t TimeSpan) Hours() int64 { return int64(t / ticksPerHour) }

// Minutes returns the duration truncated to whole minutes.
func (t TimeSpan) Minutes() int64 { return int64(t / ticksPerMinute) }

// Seconds returns the duration truncated to whole seconds.
func (t TimeSpan) Seconds() int64 { return int64(t / ticksPerSecond) }

// Milliseconds returns the duration truncated to whole milliseconds.
func (t TimeSpan) Milliseconds() int64 { return int64(t / ticksPerMillisecond) }

// Microseconds returns the duration truncated to whole microseconds.
func (t TimeSpan) Microseconds() int64 { return int64(t / ticksPerMicrosecond) }

// HundredNanos returns the duration truncated to whole 100-ns ticks;
// equal to Ticks() but named to match the other truncating accessors.
func (t TimeSpan) HundredNanos() int64 { return int64(t) }
