// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

// lockable is the subset of the Mutex family ScopedLock operates over.
type lockable interface {
	Lock()
	Unlock()
	TryLock() bool
}

// ScopedLock holds zero or one acquisition of a mutex. Go has no
// destructors, so unlike the RAII original there is no implicit release
// on scope exit; callers must `defer s.Unlock()` themselves (or call
// Unlock directly) to get the same "always released" guarantee across
// every exit path, the same scope-guard idiom the teacher's own code
// uses for its window/device resources.
type ScopedLock struct {
	m     lockable
	owned bool
}

// NewScopedLock constructs a ScopedLock over m. If shouldLockNow is true
// it acquires immediately.
func NewScopedLock(m lockable, shouldLockNow bool) *ScopedLock {
	s := &ScopedLock{m: m}
	if shouldLockNow {
		s.Lock()
	}
	return s
}

// Lock acquires the underlying mutex.
func (s *ScopedLock) Lock() {
	s.m.Lock()
	s.owned = true
}

// Unlock releases the underlying mutex if held.
func (s *ScopedLock) Unlock() {
	if s.owned {
		s.m.Unlock()
		s.owned = false
	}
}

// TryLock attempts to acquire the underlying mutex without blocking.
func (s *ScopedLock) TryLock() bool {
	if s.m.TryLock() {
		s.owned = true
		return true
	}
	return false
}

// IsOwner returns true if this ScopedLock currently holds the mutex.
func (s *ScopedLock) IsOwner() bool { return s.owned }

// ScopedLockPair holds zero or one acquisition of each of two mutexes.
type ScopedLockPair struct {
	m1, m2 lockable
	owned1 bool
	owned2 bool
}

// NewScopedLockPair constructs a ScopedLockPair over m1 and m2. If
// shouldLockNow is true it acquires both immediately via TryLock's
// deadlock-avoidance algorithm.
func NewScopedLockPair(m1, m2 lockable, shouldLockNow bool) *ScopedLockPair {
	p := &ScopedLockPair{m1: m1, m2: m2}
	if shouldLockNow {
		for !p.TryLock() {
		}
	}
	return p
}

// TryLock atomically succeeds for both mutexes or neither: try the
// first, try the second; on failure release whatever was acquired and
// try the other ordering. Never blocks, so it is safe to call from a
// goroutine that already holds one of the two mutexes. Equivalent to
// std::lock's guarantee of no partial acquisition and no fixed
// lock-ordering deadlock.
func (p *ScopedLockPair) TryLock() bool {
	if p.m1.TryLock() {
		if p.m2.TryLock() {
			p.owned1, p.owned2 = true, true
			return true
		}
		p.m1.Unlock()
	}

	if p.m2.TryLock() {
		if p.m1.TryLock() {
			p.owned1, p.owned2 = true, true
			return true
		}
		p.m2.Unlock()
	}
	return false
}

// Unlock releases both mutexes if held.
func (p *ScopedLockPair) Unlock() {
	if p.owned1 {
		p.m1.Unlock()
		p.owned1 = false
	}
	if p.owned2 {
		p.m2.Unlock()
		p.owned2 = false
	}
}
