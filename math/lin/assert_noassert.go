// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build noassert

package lin

// assertf is a no-op in the noassert build: the "disabled" assertion
// policy. See assert.go for the default, panicking build.
func assertf(cond bool, format string, args ...interface{}) {}
