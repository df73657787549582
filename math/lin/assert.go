// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !noassert

package lin

import "fmt"

// assertf is the package's programmer-error checkpoint (self-join, null
// array pointers, zero deltas, and the like). Build with `-tags noassert`
// to compile it out entirely for release builds that favor speed over
// the extra branch; see assert_noassert.go.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
