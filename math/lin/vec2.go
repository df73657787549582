// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// V2 is a 2 element vector, used by the 2D variants of SPoint.
// It follows the same
// mutator convention as V3 and V4: every method writes its result into
// the receiver and returns it so calls can be chained.
type V2 struct {
	X Real
	Y Real
}

// NewV2 creates a new, all zero, 2D vector.
func NewV2() *V2 { return &V2{} }

// NewV2S creates a new 2D vector using the given scalars.
func NewV2S(x, y Real) *V2 { return &V2{x, y} }

// Eq (==) returns true if each element in v has the same value as a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if each element in v is essentially
// the same value as the corresponding element in a.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// GetS returns the scalar values of the vector.
func (v *V2) GetS() (x, y Real) { return v.X, v.Y }

// SetS (=) sets the vector elements to the given values. The updated
// vector v is returned.
func (v *V2) SetS(x, y Real) *V2 {
	v.X, v.Y = x, y
	return v
}

// Set (=, copy) assigns the elements of a to v. The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Add (+) adds vectors a and b storing the result in v.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Sub (-) subtracts b from a storing the result in v.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Scale (*=) multiplies each element of a by s, storing the result in v.
func (v *V2) Scale(a *V2, s Real) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Neg (-) sets v to the negation of a.
func (v *V2) Neg(a *V2) *V2 {
	v.X, v.Y = -a.X, -a.Y
	return v
}

// Dot returns the dot product of v and a.
func (v *V2) Dot(a *V2) Real { return v.X*a.X + v.Y*a.Y }

// Len returns the length of v.
func (v *V2) Len() Real { return rSqrt(v.Dot(v)) }

// LenSqr returns the squared length of v.
func (v *V2) LenSqr() Real { return v.Dot(v) }

// Unit normalizes v to have length 1. v is undefined (documented, not
// asserted) when called on a zero length vector; callers must avoid it.
func (v *V2) Unit() *V2 {
	length := v.Len()
	if length != 0 {
		inv := 1 / length
		v.X, v.Y = v.X*inv, v.Y*inv
	}
	return v
}

// MultvM updates v to be row vector rv multiplied by 3x3 matrix m, treating
// rv as a 2D point with an implicit third coordinate of 1 so translation in
// the matrix's third row is applied.
func (v *V2) MultvM(rv *V2, m *M3) *V2 {
	x := rv.X*m.Xx + rv.Y*m.Yx + m.Zx
	y := rv.X*m.Xy + rv.Y*m.Yy + m.Zy
	v.X, v.Y = x, y
	return v
}
