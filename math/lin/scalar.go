// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build !single

package lin

// Scalar policy: double precision build. This file, and its single
// precision sibling scalar_single.go, are the only two files in this
// package allowed to know what the underlying float type is. Everything
// else in lin is written against Real and the wrapper functions below,
// so swapping build tags changes the whole kernel's precision without
// touching a single vector/matrix/quaternion method.
//
// Build with `-tags single` to get the float32 variant backed by
// github.com/chewxy/math32 instead of the standard math package.

import "math"

// Real is the scalar type used throughout the math kernel. This build
// picks double precision.
type Real = float64

const (
	Pi          Real = math.Pi
	MaxFloat32V Real = math.MaxFloat32
	Sqrt2V      Real = math.Sqrt2
)

func rAbs(x Real) Real         { return math.Abs(x) }
func rAcos(x Real) Real        { return math.Acos(x) }
func rAsin(x Real) Real        { return math.Asin(x) }
func rCos(x Real) Real         { return math.Cos(x) }
func rSin(x Real) Real         { return math.Sin(x) }
func rTan(x Real) Real         { return math.Tan(x) }
func rSqrt(x Real) Real        { return math.Sqrt(x) }
func rMod(x, y Real) Real      { return math.Mod(x, y) }
func rPow(x, y Real) Real      { return math.Pow(x, y) }
func rMax(a, b Real) Real      { return math.Max(a, b) }
func rMin(a, b Real) Real      { return math.Min(a, b) }
func rAtan2(y, x Real) Real    { return math.Atan2(y, x) }
func rIsNaN(x Real) bool       { return math.IsNaN(x) }
