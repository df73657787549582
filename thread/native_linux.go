// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build linux

package thread

import (
	"sync"

	"golang.org/x/sys/unix"
)

func nativeThreadID() int { return unix.Gettid() }

var (
	niceRangeOnce sync.Once
	niceMin       int // most-favored nice value (lowest number, -20)
	niceMax       int // least-favored nice value (highest number, 19)
)

// Linux's setpriority(2) works in niceness units for SCHED_OTHER
// threads, the only scheduling policy this package uses, matching the
// spec's own choice of SCHED_OTHER. niceness runs backwards from
// scheduling priority (lower number = more favored), so "max priority"
// corresponds to the minimum niceness value.
func ensureNiceRange() {
	niceRangeOnce.Do(func() {
		niceMin, niceMax = -20, 19
	})
}

// setNativePriority maps level onto a niceness value for tid using the
// same range-split algorithm as the original: split [niceMin,niceMax]
// into three parts, Lowest/Highest at the extremes, Normal dead center.
// Permission to lower niceness below 0 is commonly denied for
// unprivileged processes; failures are logged and not otherwise
// surfaced, matching the spec's tier-4 "platform error" handling.
func setNativePriority(tid int, level EThreadPriority) {
	ensureNiceRange()
	rangePart := (niceMax - niceMin) / 3
	lowLimit := niceMax - rangePart  // less-favored boundary (toward niceMax)
	highLimit := niceMin + rangePart // more-favored boundary (toward niceMin)

	var nice int
	switch level {
	case Highest:
		nice = niceMin
	case High:
		nice = highLimit
	case Normal:
		nice = 0
	case Low:
		nice = lowLimit
	case Lowest:
		nice = niceMax
	}

	if err := unix.Setpriority(unix.PRIO_PROCESS, tid, nice); err != nil {
		zlog.Warn().Err(err).Int("tid", tid).Str("level", level.String()).Msg("thread.setNativePriority: setpriority failed")
	}
}

// getNativePriority reads back tid's current niceness and classifies it
// against the same three-way split used by setNativePriority.
func getNativePriority(tid int) EThreadPriority {
	ensureNiceRange()
	nice, err := unix.Getpriority(unix.PRIO_PROCESS, tid)
	if err != nil {
		zlog.Warn().Err(err).Int("tid", tid).Msg("thread.getNativePriority: getpriority failed")
		return Normal
	}
	// unix.Getpriority returns the raw syscall value, 20-niceness.
	nice = 20 - nice

	rangePart := (niceMax - niceMin) / 3
	lowLimit := niceMax - rangePart
	highLimit := niceMin + rangePart

	switch {
	case nice == niceMin:
		return Highest
	case nice <= highLimit:
		return High
	case nice == niceMax:
		return Lowest
	case nice >= lowLimit:
		return Low
	default:
		return Normal
	}
}
