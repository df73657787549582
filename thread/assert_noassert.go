// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build noassert

package thread

// assertf is a no-op in the noassert build. See assert.go.
func assertf(cond bool, format string, args ...interface{}) {}
