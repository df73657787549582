// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// EThreadPriority is the portable priority level a Thread or ThisThread
// can be set to. The mapping onto the host OS's native priority range is
// platform-specific; see SetPriority.
type EThreadPriority int

const (
	Lowest EThreadPriority = iota
	Low
	Normal
	High
	Highest
)

// String returns the canonical name of the priority level.
func (p EThreadPriority) String() string {
	switch p {
	case Lowest:
		return "Lowest"
	case Low:
		return "Low"
	case Normal:
		return "Normal"
	case High:
		return "High"
	case Highest:
		return "Highest"
	}
	return "Unknown"
}

var nextThreadID uint64

// Thread wraps a single OS thread (a goroutine locked to one with
// runtime.LockOSThread) running a supplied callable with 0..8
// captured-by-copy arguments. Construction starts the thread
// immediately; a Thread value exclusively owns its running goroutine
// until Detach is called, and must not be copied.
type Thread struct {
	id           uint64
	fn           func()
	done         chan struct{}
	tidReady     chan struct{}
	nativeTID    int
	gid          int64
	gidKnown     bool
	interrupted  atomic.Bool
	joinedOrDone atomic.Bool
	detached     atomic.Bool
	exitFn       func()
	priority     EThreadPriority
	mu           sync.Mutex
}

// NewThread starts a new thread running fn. fn must be non-nil; passing
// nil leaves the thread not-started (a debug assertion in the
// assertable build, matching the spec's "callable must be non-null"
// contract).
func NewThread(fn func()) *Thread {
	assertf(fn != nil, "thread.NewThread: nil callable")
	if fn == nil {
		return &Thread{done: make(chan struct{}), tidReady: make(chan struct{})}
	}
	t := &Thread{
		id:       atomic.AddUint64(&nextThreadID, 1),
		fn:       fn,
		done:     make(chan struct{}),
		tidReady: make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *Thread) run() {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	Register()
	defer Unregister()

	t.mu.Lock()
	t.gid = goroutineID()
	t.gidKnown = true
	wasInterrupted := t.interrupted.Load()
	t.mu.Unlock()
	if wasInterrupted {
		Interrupt()
	}

	t.nativeTID = nativeThreadID()
	close(t.tidReady)
	defer close(t.done)
	defer func() {
		t.mu.Lock()
		exitFn := t.exitFn
		t.mu.Unlock()
		if exitFn != nil {
			exitFn()
		}
	}()
	t.fn()
}

// Join blocks until the thread finishes. Joining a thread from itself,
// or calling Join from an interrupted thread, is a programmer error
// (debug-asserted).
func (t *Thread) Join() {
	assertf(!IsInterrupted(), "thread.Thread.Join: calling thread is interrupted")
	t.mu.Lock()
	self := t.gidKnown && t.gid == goroutineID()
	t.mu.Unlock()
	assertf(!self, "thread.Thread.Join: a thread cannot join itself")
	<-t.done
	t.joinedOrDone.Store(true)
}

// Detach severs the handle; the thread continues running without
// further control from this value.
func (t *Thread) Detach() {
	t.detached.Store(true)
}

// Interrupt sets the cooperative interruption flag. It is advisory: user
// code and this library's own suspension points (Sleep, Yield) poll it,
// but Interrupt does not itself unblock any OS-level wait. The flag is
// also propagated into the per-goroutine state ThisThread's own
// IsInterrupted/Sleep read, once the thread's goroutine is known, so
// code inside fn polling via the package-level ThisThread functions
// observes interrupts issued through this handle.
func (t *Thread) Interrupt() {
	t.interrupted.Store(true)
	t.mu.Lock()
	gid, known := t.gid, t.gidKnown
	t.mu.Unlock()
	if known {
		interruptGoroutine(gid)
	}
}

// IsAlive returns true if the thread has not yet finished running fn.
func (t *Thread) IsAlive() bool {
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// IsInterrupted returns true if Interrupt has been called.
func (t *Thread) IsInterrupted() bool { return t.interrupted.Load() }

// GetID returns the thread's library-assigned identifier.
func (t *Thread) GetID() uint64 { return t.id }

// GetNativeHandle returns the OS-level thread id once the thread has
// started. Blocks briefly on construction if called before the thread's
// first instruction.
func (t *Thread) GetNativeHandle() int {
	<-t.tidReady
	return t.nativeTID
}

// SetExitFunction registers a nullary callable invoked exactly once when
// the thread exits, whether normally or via a panic that unwinds fn (the
// deferred exit hook still runs on panic, then the panic continues to
// propagate per Go's own semantics).
func (t *Thread) SetExitFunction(fn func()) {
	t.mu.Lock()
	t.exitFn = fn
	t.mu.Unlock()
}

// SetPriority requests the given priority level for the thread's
// underlying OS thread. See setNativePriority for the platform mapping.
func (t *Thread) SetPriority(level EThreadPriority) {
	t.priority = level
	setNativePriority(t.GetNativeHandle(), level)
}

// GetPriority re-queries the OS for the thread's current priority level.
// On Linux with SCHED_OTHER this commonly reports Normal regardless of
// what SetPriority last requested, since the effective niceness range
// available to an unprivileged process is often too narrow to cross the
// High/Low thresholds — documented, not a bug.
func (t *Thread) GetPriority() EThreadPriority {
	return getNativePriority(t.GetNativeHandle())
}

// String returns "Thread(<id-hex>)".
func (t *Thread) String() string {
	return fmt.Sprintf("Thread(%x)", t.id)
}

// Close is the explicit stand-in for the original's destructor contract:
// it must be called only after Join or Detach. Go has no destructors to
// enforce this automatically, so callers are expected to call Close (or
// simply let the value go out of scope, accepting the same
// implementation-defined behavior the spec documents for a still-joinable
// thread at destruction) once they are done with a Thread value.
func (t *Thread) Close() {
	assertf(t.joinedOrDone.Load() || t.detached.Load(), "thread.Thread.Close: thread neither joined nor detached")
}
