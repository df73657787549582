// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"regexp"
	"sync/atomic"
	"testing"
	"time"
)

func TestThreadCompletesBeforeJoinReturns(t *testing.T) {
	var ran int32
	th := NewThread(func() {
		atomic.StoreInt32(&ran, 1)
	})
	th.Join()
	if atomic.LoadInt32(&ran) != 1 {
		t.Fatal("fn must have run before Join returns")
	}
	if th.IsAlive() {
		t.Fatal("thread must not report alive after completing")
	}
	th.Close()
}

func TestThreadExitFunctionInvokedExactlyOnce(t *testing.T) {
	var calls int32
	done := make(chan struct{})
	th := NewThread(func() {})
	th.SetExitFunction(func() {
		atomic.AddInt32(&calls, 1)
		close(done)
	})
	th.Join()
	<-done
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("got %d exit-function calls, wanted 1", got)
	}
	th.Close()
}

func TestThreadStringMatchesHexPattern(t *testing.T) {
	th := NewThread(func() {})
	th.Join()
	defer th.Close()
	re := regexp.MustCompile(`^Thread\([0-9a-f]+\)$`)
	if !re.MatchString(th.String()) {
		t.Errorf("got %q, did not match expected pattern", th.String())
	}
}

func TestThreadInterruptIsObservableViaThisThread(t *testing.T) {
	stopped := make(chan struct{})
	th := NewThread(func() {
		for !IsInterrupted() {
			Yield()
		}
		close(stopped)
	})
	th.Interrupt()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("fn never observed Thread.Interrupt via the package-level ThisThread.IsInterrupted")
	}
	th.Join()
	th.Close()
}

func TestThreadInterruptIsObservable(t *testing.T) {
	th := NewThread(func() {})
	th.Join()
	defer th.Close()
	if th.IsInterrupted() {
		t.Fatal("new thread must not start interrupted")
	}
	th.Interrupt()
	if !th.IsInterrupted() {
		t.Fatal("Interrupt must be observable via IsInterrupted")
	}
}

func TestThreadDetachAllowsCloseWithoutJoin(t *testing.T) {
	done := make(chan struct{})
	th := NewThread(func() {
		<-done
	})
	th.Detach()
	th.Close()
	close(done)
}

func TestThreadGetIDIsUnique(t *testing.T) {
	a := NewThread(func() {})
	b := NewThread(func() {})
	a.Join()
	b.Join()
	defer a.Close()
	defer b.Close()
	if a.GetID() == b.GetID() {
		t.Error("distinct threads must have distinct ids")
	}
}

func TestThreadGetNativeHandleUnblocksAfterStart(t *testing.T) {
	th := NewThread(func() {})
	_ = th.GetNativeHandle() // must not block forever
	th.Join()
	th.Close()
}

func TestThreadSetPriorityThenGetPriorityDoesNotPanic(t *testing.T) {
	started := make(chan struct{})
	done := make(chan struct{})
	th := NewThread(func() {
		close(started)
		<-done
	})
	<-started
	th.SetPriority(High)
	_ = th.GetPriority() // platform-dependent result; see native_linux.go.
	close(done)
	th.Join()
	th.Close()
}
