// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID returns a per-goroutine identifier, used only to detect
// recursive RecursiveMutex.Lock calls from the same goroutine. Go
// deliberately has no public goroutine-id API; parsing it out of the
// runtime stack header is the well-known (if inelegant) workaround, and
// is only ever called on the RecursiveMutex slow paths, not per-op.
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, err := strconv.ParseInt(string(buf), 10, 64)
	if err != nil {
		zlog.Warn().Err(err).Msg("thread.goroutineID: could not parse runtime stack header")
		return -1
	}
	return id
}
