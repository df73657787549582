// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !noassert

package thread

import "fmt"

// assertf is the package's programmer-error checkpoint (self-join,
// double-destroy of a joinable thread, unlocking an unowned mutex, and
// the like). Build with `-tags noassert` to compile it out entirely; see
// assert_noassert.go.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
