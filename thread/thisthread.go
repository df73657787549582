// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// ThisThread holds the interruption flag and exit-hook state for the
// currently executing goroutine. Unlike Thread, there is no Go API to
// address "the calling goroutine" by value, so ThisThread is a
// process-wide registry keyed by a goroutine-local tag the caller must
// establish once via Register — the Go-native substitute for the
// original's implicit "current thread" lookup.
type ThisThread struct{}

var (
	thisThreadMu    sync.Mutex
	thisThreadFlags = map[int64]*thisThreadState{}
)

type thisThreadState struct {
	interrupted atomic.Bool
	exitFn      func()
}

// Register associates the calling goroutine with ThisThread bookkeeping.
// Call once near the top of any goroutine that will use ThisThread's
// interruption flag or exit hook; a goroutine that never registers still
// works for Yield/Sleep/ID, just not Interrupt/IsInterrupted/
// SetExitFunction.
func Register() {
	id := goroutineID()
	thisThreadMu.Lock()
	defer thisThreadMu.Unlock()
	if _, ok := thisThreadFlags[id]; !ok {
		thisThreadFlags[id] = &thisThreadState{}
	}
}

// Unregister drops the calling goroutine's ThisThread bookkeeping,
// running its exit function first if one was set. Call in a defer right
// after Register to avoid leaking registry entries for short-lived
// goroutines.
func Unregister() {
	id := goroutineID()
	thisThreadMu.Lock()
	state, ok := thisThreadFlags[id]
	delete(thisThreadFlags, id)
	thisThreadMu.Unlock()
	if ok && state.exitFn != nil {
		state.exitFn()
	}
}

func currentState() *thisThreadState {
	id := goroutineID()
	thisThreadMu.Lock()
	defer thisThreadMu.Unlock()
	return thisThreadFlags[id]
}

// interruptGoroutine sets the interruption flag for a specific,
// already-Registered goroutine. It is the bridge Thread.Interrupt uses
// to reach the per-goroutine state ThisThread's own suspension points
// (IsInterrupted, Sleep) poll, since a *Thread handle lives in a
// different goroutine than the one it wraps.
func interruptGoroutine(id int64) {
	thisThreadMu.Lock()
	state, ok := thisThreadFlags[id]
	thisThreadMu.Unlock()
	if ok {
		state.interrupted.Store(true)
	}
}

// Yield cooperatively reschedules the calling goroutine. It is an
// interruption point: if the calling goroutine is Registered and already
// interrupted, Yield returns immediately without rescheduling.
func Yield() {
	if IsInterrupted() {
		return
	}
	runtime.Gosched()
}

// Sleep cooperatively suspends the calling goroutine for at least d. It
// is an interruption point: if the calling goroutine is Registered and
// already interrupted, Sleep returns immediately without sleeping.
func Sleep(d TimeSpan) {
	if s := currentState(); s != nil && s.interrupted.Load() {
		return
	}
	time.Sleep(time.Duration(d.Ticks()) * 100 * time.Nanosecond)
}

// ID returns the calling goroutine's library-internal identifier.
func ID() int64 { return goroutineID() }

// NativeHandle returns the calling goroutine's OS thread id, valid only
// while the goroutine has not been rescheduled onto a different OS
// thread (Go does not pin goroutines to OS threads by default; callers
// needing a stable handle should runtime.LockOSThread first, the same
// way Thread.run does internally).
func NativeHandle() int { return nativeThreadID() }

// IsInterrupted returns true if the calling goroutine is Registered and
// has been interrupted.
func IsInterrupted() bool {
	s := currentState()
	return s != nil && s.interrupted.Load()
}

// Interrupt sets the calling goroutine's cooperative interruption flag.
// The goroutine must have called Register first.
func Interrupt() {
	if s := currentState(); s != nil {
		s.interrupted.Store(true)
	}
}

// SetExitFunction registers a nullary callable invoked when the calling
// goroutine Unregisters. The goroutine must have called Register first.
func SetExitFunction(fn func()) {
	thisThreadMu.Lock()
	defer thisThreadMu.Unlock()
	if s, ok := thisThreadFlags[goroutineID()]; ok {
		s.exitFn = fn
	}
}

// GetPriority re-queries the OS for the calling goroutine's OS-thread
// priority. See Thread.GetPriority for the platform-dependent caveat.
func GetPriority() EThreadPriority { return getNativePriority(nativeThreadID()) }

// SetPriority requests level for the calling goroutine's OS thread.
func SetPriority(level EThreadPriority) { setNativePriority(nativeThreadID(), level) }

// String returns "Thread(<hex-id>)" for the calling goroutine.
func String() string { return fmt.Sprintf("Thread(%x)", goroutineID()) }
