// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !linux

package thread

// nativeThreadID has no portable Go equivalent outside Linux's gettid;
// returning 0 is sufficient since GetNativeHandle's only documented use
// is logging/display, per the spec's toString() contract.
func nativeThreadID() int { return 0 }

// setNativePriority is a documented no-op outside Linux: this module
// targets POSIX hosts and does not implement the Win32 priority API the
// original spec describes as an alternative platform. Every call logs a
// warning so the limitation is visible rather than silent.
func setNativePriority(tid int, level EThreadPriority) {
	zlog.Warn().Str("level", level.String()).Msg("thread.setNativePriority: not implemented on this platform")
}

// getNativePriority always reports Normal outside Linux; see
// setNativePriority.
func getNativePriority(tid int) EThreadPriority { return Normal }
