// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// RotationMatrix3x3 is a semantic view over M3: it carries no state beyond
// the embedded matrix, but its constructors verify (in the assertable
// build) that the result is orthonormal with determinant +1. Arithmetic
// performed after construction is not re-verified; a RotationMatrix3x3
// that has been added to another matrix, for example, degrades to a plain
// M3 and should be treated as such by the caller.
type RotationMatrix3x3 struct {
	M3
}

// NewRotationMatrix3x3 returns the identity rotation.
func NewRotationMatrix3x3() *RotationMatrix3x3 {
	return &RotationMatrix3x3{M3: *NewM3I()}
}

// SetAa sets r to the rotation about the given axis (ax, ay, az) by angle
// (radians). The axis is normalized internally; a zero length axis leaves
// r unchanged (documented, not asserted, matching M3.SetAa).
func (r *RotationMatrix3x3) SetAa(ax, ay, az, angle Real) *RotationMatrix3x3 {
	r.M3.SetAa(ax, ay, az, angle)
	return r
}

// SetQ sets r to the rotation represented by unit quaternion q.
func (r *RotationMatrix3x3) SetQ(q *Q) *RotationMatrix3x3 {
	r.M3.SetQ(q)
	return r
}

// SetEuler sets r to the rotation given by Euler angles, applied in the
// Z, then X, then Y order (yaw, pitch, roll) — see Q.SetEuler for the
// contract this mirrors.
func (r *RotationMatrix3x3) SetEuler(yawZ, pitchX, rollY Real) *RotationMatrix3x3 {
	q := NewQ().SetEuler(yawZ, pitchX, rollY)
	return r.SetQ(q)
}

// Verify checks, within Epsilon, that r is orthonormal (r * r^T == I) with
// determinant +1. It is meant to be called at construction boundaries in
// debug/test builds; arithmetic elsewhere never re-verifies this invariant.
func (r *RotationMatrix3x3) Verify() bool {
	rt := NewM3().Transpose(&r.M3)
	prod := NewM3().Mult(&r.M3, rt)
	return prod.Aeq(M3I) && Aeq(r.M3.Det(), 1)
}

// Inverse returns the inverse rotation into out. Because r is orthonormal
// its inverse equals its transpose, avoiding a general 3x3 inverse.
func (r *RotationMatrix3x3) Inverse(out *RotationMatrix3x3) *RotationMatrix3x3 {
	out.M3.Transpose(&r.M3)
	return out
}
