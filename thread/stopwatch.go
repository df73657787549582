// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"sync"
	"time"
)

// tickFrequency is the process-wide, lazily-initialized ticks-per-second
// constant every Stopwatch shares. Go's time.Now() already draws from
// the OS monotonic clock, so there is nothing to detect here beyond
// recording the constant once; sync.Once makes first-use safe under
// concurrent callers per the spec's "safe under concurrent first-use"
// contract.
var (
	tickFreqOnce sync.Once
	tickFreq     int64
)

func ensureTickFrequency() {
	tickFreqOnce.Do(func() {
		tickFreq = int64(time.Second / 100) // 100-ns ticks per second.
	})
}

// Stopwatch captures a monotonic instant and reports elapsed time since
// that capture. Calling any elapsed* accessor before Set is undefined
// and debug-asserted.
type Stopwatch struct {
	reference time.Time
	isSet     bool
}

// NewStopwatch returns a Stopwatch that has not yet been Set.
func NewStopwatch() *Stopwatch {
	ensureTickFrequency()
	return &Stopwatch{}
}

// Set captures the current monotonic instant as the new reference point.
func (s *Stopwatch) Set() {
	ensureTickFrequency()
	s.reference = time.Now()
	s.isSet = true
}

// ElapsedAsInteger returns the elapsed time in 100-ns ticks since Set.
func (s *Stopwatch) ElapsedAsInteger() uint64 {
	assertf(s.isSet, "thread.Stopwatch.ElapsedAsInteger: Set was never called")
	return uint64(time.Since(s.reference).Nanoseconds() / 100)
}

// ElapsedAsFloat returns the elapsed time in milliseconds. In the
// single-precision scalar policy the fractional part is dropped to
// preserve range over long-running durations; in double precision it is
// kept. This package is built with float64 throughout since it has no
// dependency on math/lin's scalar policy, so ElapsedAsFloat always keeps
// the fractional part; ElapsedAsFloat32 is provided for callers that
// need the range-preserving truncated form.
func (s *Stopwatch) ElapsedAsFloat() float64 {
	assertf(s.isSet, "thread.Stopwatch.ElapsedAsFloat: Set was never called")
	return float64(time.Since(s.reference).Nanoseconds()) / 1e6
}

// ElapsedAsFloat32 returns the elapsed time in milliseconds, truncated to
// an integral value before conversion to float32 to preserve range.
func (s *Stopwatch) ElapsedAsFloat32() float32 {
	assertf(s.isSet, "thread.Stopwatch.ElapsedAsFloat32: Set was never called")
	ms := time.Since(s.reference).Nanoseconds() / 1e6
	return float32(ms)
}

// ElapsedAsTimeSpan wraps the integer elapsed ticks in a TimeSpan.
func (s *Stopwatch) ElapsedAsTimeSpan() TimeSpan {
	return NewTimeSpan(s.ElapsedAsInteger())
}

// EStopwatchEnclosedBehavior selects how EnclosedStopwatch.GetProgression
// handles elapsed time beyond the enclosing length L.
type EStopwatchEnclosedBehavior int

const (
	// Clamped caps progression at 1 once elapsed reaches L.
	Clamped EStopwatchEnclosedBehavior = iota
	// Proportional lets progression grow unbounded past 1.
	Proportional
	// Cyclic wraps progression back into [0,1) every L.
	Cyclic
)

// String returns the canonical name of the enclosed-stopwatch behavior.
func (b EStopwatchEnclosedBehavior) String() string {
	switch b {
	case Clamped:
		return "Clamped"
	case Proportional:
		return "Proportional"
	case Cyclic:
		return "Cyclic"
	}
	return "Unknown"
}

// EnclosedStopwatch extends Stopwatch with a fixed time-lapse window L
// and a behavior describing how progress past L is reported.
type EnclosedStopwatch struct {
	Stopwatch
	length   TimeSpan
	behavior EStopwatchEnclosedBehavior
}

// NewEnclosedStopwatch returns an EnclosedStopwatch of the given length
// and behavior. length must be > 0.
func NewEnclosedStopwatch(length TimeSpan, behavior EStopwatchEnclosedBehavior) *EnclosedStopwatch {
	assertf(length > 0, "thread.NewEnclosedStopwatch: length must be > 0")
	e := &EnclosedStopwatch{length: length, behavior: behavior}
	e.Stopwatch = *NewStopwatch()
	return e
}

// SetLength changes the enclosing window length. length must be > 0.
func (e *EnclosedStopwatch) SetLength(length TimeSpan) {
	assertf(length > 0, "thread.EnclosedStopwatch.SetLength: length must be > 0")
	e.length = length
}

// GetProgression returns elapsed/L, mode-adjusted per the configured
// behavior: clamped to [0,1], left unbounded in [0,∞), or wrapped
// cyclically into [0,1).
func (e *EnclosedStopwatch) GetProgression() float64 {
	ratio := float64(e.ElapsedAsInteger()) / float64(e.length.Ticks())
	switch e.behavior {
	case Clamped:
		if ratio > 1 {
			return 1
		}
		return ratio
	case Cyclic:
		_, frac := splitFraction(ratio)
		return frac
	default: // Proportional
		return ratio
	}
}

// GetPercentage returns 100 * GetProgression().
func (e *EnclosedStopwatch) GetPercentage() float64 {
	return 100 * e.GetProgression()
}

func splitFraction(x float64) (whole, frac float64) {
	w := float64(int64(x))
	return w, x - w
}
