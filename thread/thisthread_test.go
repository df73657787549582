// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"regexp"
	"testing"
	"time"
)

func TestThisThreadRegisterUnregisterRunsExitFunction(t *testing.T) {
	done := make(chan struct{})
	go func() {
		Register()
		SetExitFunction(func() { close(done) })
		Unregister()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("exit function was not invoked within the deadline")
	}
}

func TestThisThreadIsInterruptedRequiresRegistration(t *testing.T) {
	done := make(chan bool)
	go func() {
		Register()
		defer Unregister()
		Interrupt()
		done <- IsInterrupted()
	}()
	if !<-done {
		t.Fatal("IsInterrupted must report true after Interrupt on a registered goroutine")
	}
}

func TestThisThreadSleepIsInterruptiblePoint(t *testing.T) {
	elapsed := make(chan time.Duration)
	go func() {
		Register()
		defer Unregister()
		Interrupt()
		start := time.Now()
		Sleep(NewTimeSpan(uint64(time.Second) / 100))
		elapsed <- time.Since(start)
	}()
	if d := <-elapsed; d > 100*time.Millisecond {
		t.Errorf("Sleep after Interrupt should return immediately, took %v", d)
	}
}

func TestThisThreadStringMatchesHexPattern(t *testing.T) {
	re := regexp.MustCompile(`^Thread\([0-9a-f]+\)$`)
	if !re.MatchString(String()) {
		t.Errorf("got %q, did not match expected pattern", String())
	}
}

func TestThisThreadYieldDoesNotPanic(t *testing.T) {
	Yield()
}
