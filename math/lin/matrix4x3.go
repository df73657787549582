// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// M34 is a 4x3 matrix: a 3x3 linear block (rotation/scale) plus a
// translation row, with no projective column. It is the lightweight
// storage choice for transforms that are known to never need a
// perspective divide; M4 is the alternative storage when a full
// projective column is required.
//    [ Xx Xy Xz ]   X-Axis
//    [ Yx Yy Yz ]   Y-Axis
//    [ Zx Zy Zz ]   Z-Axis
//    [ Wx Wy Wz ]   Translation
type M34 struct {
	Xx, Xy, Xz Real
	Yx, Yy, Yz Real
	Zx, Zy, Zz Real
	Wx, Wy, Wz Real
}

// M34I is a reference identity 4x3 matrix. It should never be changed.
var M34I = &M34{
	1, 0, 0,
	0, 1, 0,
	0, 0, 1,
	0, 0, 0,
}

// NewM34 creates a new, all zero, 4x3 matrix.
func NewM34() *M34 { return &M34{} }

// NewM34I creates a new identity 4x3 matrix.
func NewM34I() *M34 { return &M34{Xx: 1, Yy: 1, Zz: 1} }

// Eq (==) returns true if every element of m matches the corresponding element of a.
func (m *M34) Eq(a *M34) bool {
	return m.Xx == a.Xx && m.Xy == a.Xy && m.Xz == a.Xz &&
		m.Yx == a.Yx && m.Yy == a.Yy && m.Yz == a.Yz &&
		m.Zx == a.Zx && m.Zy == a.Zy && m.Zz == a.Zz &&
		m.Wx == a.Wx && m.Wy == a.Wy && m.Wz == a.Wz
}

// Aeq (~=) almost-equals, componentwise, within Epsilon.
func (m *M34) Aeq(a *M34) bool {
	return Aeq(m.Xx, a.Xx) && Aeq(m.Xy, a.Xy) && Aeq(m.Xz, a.Xz) &&
		Aeq(m.Yx, a.Yx) && Aeq(m.Yy, a.Yy) && Aeq(m.Yz, a.Yz) &&
		Aeq(m.Zx, a.Zx) && Aeq(m.Zy, a.Zy) && Aeq(m.Zz, a.Zz) &&
		Aeq(m.Wx, a.Wx) && Aeq(m.Wy, a.Wy) && Aeq(m.Wz, a.Wz)
}

// Set (=, copy) assigns the elements of a to m. The updated m is returned.
func (m *M34) Set(a *M34) *M34 {
	*m = *a
	return m
}

// Block3x3 writes the rotation/scale 3x3 block of m into out.
func (m *M34) Block3x3(out *M3) *M3 {
	out.Xx, out.Xy, out.Xz = m.Xx, m.Xy, m.Xz
	out.Yx, out.Yy, out.Yz = m.Yx, m.Yy, m.Yz
	out.Zx, out.Zy, out.Zz = m.Zx, m.Zy, m.Zz
	return out
}

// SetBlock3x3 sets the rotation/scale 3x3 block of m from a, leaving the
// translation row untouched. The updated m is returned.
func (m *M34) SetBlock3x3(a *M3) *M34 {
	m.Xx, m.Xy, m.Xz = a.Xx, a.Xy, a.Xz
	m.Yx, m.Yy, m.Yz = a.Yx, a.Yy, a.Yz
	m.Zx, m.Zy, m.Zz = a.Zx, a.Zy, a.Zz
	return m
}

// Translation returns the translation row of m as x, y, z.
func (m *M34) Translation() (x, y, z Real) { return m.Wx, m.Wy, m.Wz }

// SetTranslation sets the translation row of m. The updated m is returned.
func (m *M34) SetTranslation(x, y, z Real) *M34 {
	m.Wx, m.Wy, m.Wz = x, y, z
	return m
}

// Mult (*) multiplies 4x3 transforms l and r (l applied first, in the row
// vector convention), storing the composite in m. It is safe to use m as
// one or both inputs.
func (m *M34) Mult(l, r *M34) *M34 {
	xx := l.Xx*r.Xx + l.Xy*r.Yx + l.Xz*r.Zx
	xy := l.Xx*r.Xy + l.Xy*r.Yy + l.Xz*r.Zy
	xz := l.Xx*r.Xz + l.Xy*r.Yz + l.Xz*r.Zz
	yx := l.Yx*r.Xx + l.Yy*r.Yx + l.Yz*r.Zx
	yy := l.Yx*r.Xy + l.Yy*r.Yy + l.Yz*r.Zy
	yz := l.Yx*r.Xz + l.Yy*r.Yz + l.Yz*r.Zz
	zx := l.Zx*r.Xx + l.Zy*r.Yx + l.Zz*r.Zx
	zy := l.Zx*r.Xy + l.Zy*r.Yy + l.Zz*r.Zy
	zz := l.Zx*r.Xz + l.Zy*r.Yz + l.Zz*r.Zz
	wx := l.Wx*r.Xx + l.Wy*r.Yx + l.Wz*r.Zx + r.Wx
	wy := l.Wx*r.Xy + l.Wy*r.Yy + l.Wz*r.Zy + r.Wy
	wz := l.Wx*r.Xz + l.Wy*r.Yz + l.Wz*r.Zz + r.Wz
	m.Xx, m.Xy, m.Xz = xx, xy, xz
	m.Yx, m.Yy, m.Yz = yx, yy, yz
	m.Zx, m.Zy, m.Zz = zx, zy, zz
	m.Wx, m.Wy, m.Wz = wx, wy, wz
	return m
}

// ToM4 expands m into a full 4x4 matrix with a [0 0 0 1] projective column.
func (m *M34) ToM4(out *M4) *M4 {
	out.Xx, out.Xy, out.Xz, out.Xw = m.Xx, m.Xy, m.Xz, 0
	out.Yx, out.Yy, out.Yz, out.Yw = m.Yx, m.Yy, m.Yz, 0
	out.Zx, out.Zy, out.Zz, out.Zw = m.Zx, m.Zy, m.Zz, 0
	out.Wx, out.Wy, out.Wz, out.Ww = m.Wx, m.Wy, m.Wz, 1
	return out
}
