// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// ScalingMatrix3x3 is a semantic view over M3 whose invariant is
// "diagonal; off-diagonals zero". Like RotationMatrix3x3, the invariant
// is only meaningful right after construction — arithmetic performed
// through the embedded M3 does not re-check it.
type ScalingMatrix3x3 struct {
	M3
}

// NewScalingMatrix3x3 returns the identity scale (1,1,1).
func NewScalingMatrix3x3() *ScalingMatrix3x3 {
	return &ScalingMatrix3x3{M3: *NewM3I()}
}

// SetS sets s to a diagonal scale matrix with the given per-axis factors.
func (s *ScalingMatrix3x3) SetS(x, y, z Real) *ScalingMatrix3x3 {
	s.M3.SetS(x, 0, 0, 0, y, 0, 0, 0, z)
	return s
}

// SetUniform sets s to a uniform scale of factor on all three axes.
func (s *ScalingMatrix3x3) SetUniform(factor Real) *ScalingMatrix3x3 {
	return s.SetS(factor, factor, factor)
}

// Factors returns the three diagonal scale factors.
func (s *ScalingMatrix3x3) Factors() (x, y, z Real) { return s.Xx, s.Yy, s.Zz }

// Verify checks, within Epsilon, that s is diagonal (all off-diagonal
// entries zero).
func (s *ScalingMatrix3x3) Verify() bool {
	return AeqZ(s.Xy) && AeqZ(s.Xz) && AeqZ(s.Yx) && AeqZ(s.Yz) && AeqZ(s.Zx) && AeqZ(s.Zy)
}

// Inverse returns, into out, the scale matrix that undoes s. Requires
// every factor to be non-zero (undefined otherwise, per the scale
// contract shared with Plane.Scale and SPoint).
func (s *ScalingMatrix3x3) Inverse(out *ScalingMatrix3x3) *ScalingMatrix3x3 {
	x, y, z := s.Factors()
	if x == 0 || y == 0 || z == 0 {
		zlog.Warn().Msg("lin.ScalingMatrix3x3.Inverse: zero scale factor")
		return out
	}
	return out.SetS(1/x, 1/y, 1/z)
}
