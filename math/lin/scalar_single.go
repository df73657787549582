// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

//go:build single

package lin

// Single precision scalar policy. See scalar.go for the double precision
// build and the rationale for keeping the float width isolated to these
// two files.

import "github.com/chewxy/math32"

// Real is the scalar type used throughout the math kernel. This build
// picks single precision, trading range and fractional ULP accuracy for
// half the memory footprint and (on most CPUs) faster trig.
type Real = float32

const (
	Pi          Real = math32.Pi
	MaxFloat32V Real = math32.MaxFloat32
	Sqrt2V      Real = math32.Sqrt2
)

func rAbs(x Real) Real      { return math32.Abs(x) }
func rAcos(x Real) Real     { return math32.Acos(x) }
func rAsin(x Real) Real     { return math32.Asin(x) }
func rCos(x Real) Real      { return math32.Cos(x) }
func rSin(x Real) Real      { return math32.Sin(x) }
func rTan(x Real) Real      { return math32.Tan(x) }
func rSqrt(x Real) Real     { return math32.Sqrt(x) }
func rMod(x, y Real) Real   { return math32.Mod(x, y) }
func rPow(x, y Real) Real   { return math32.Pow(x, y) }
func rMax(a, b Real) Real   { return math32.Max(a, b) }
func rMin(a, b Real) Real   { return math32.Min(a, b) }
func rAtan2(y, x Real) Real { return math32.Atan2(y, x) }
func rIsNaN(x Real) bool    { return math32.IsNaN(x) }
