// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// SpaceConversionMatrix is a semantic view over M4 carrying a
// world-to-view-to-clip composition. It is built from a camera's world
// transform (inverted to produce the view matrix) and one of the
// projection constructors, composed view-first-then-projection:
// clip = view · projection, matching the row-vector "first apply A, then
// B" convention used throughout this package.
type SpaceConversionMatrix struct {
	M4
}

// NewSpaceConversionMatrix returns the identity conversion.
func NewSpaceConversionMatrix() *SpaceConversionMatrix {
	return &SpaceConversionMatrix{M4: *NewM4I()}
}

// SetView sets s to the view matrix for a camera sitting at cam with
// orientation rot: the inverse of the camera's world transform. Since rot
// is expected unit, the rotation part inverts via conjugate rather than a
// general 3x3 inverse.
func (s *SpaceConversionMatrix) SetView(cam *V3, rot *Q) *SpaceConversionMatrix {
	inv := NewQ().InvertUnit(rot)
	r := NewM3().SetQ(inv)
	negCam := NewV3().Scale(cam, -1)
	translated := NewV3().MultvM(negCam, r)
	s.M4 = M4{
		Xx: r.Xx, Xy: r.Xy, Xz: r.Xz, Xw: 0,
		Yx: r.Yx, Yy: r.Yy, Yz: r.Yz, Yw: 0,
		Zx: r.Zx, Zy: r.Zy, Zz: r.Zz, Zw: 0,
		Wx: translated.X, Wy: translated.Y, Wz: translated.Z, Ww: 1,
	}
	return s
}

// SetOrtho sets s to an orthographic projection; see M4.Ortho for the
// argument contract.
func (s *SpaceConversionMatrix) SetOrtho(left, right, bottom, top, near, far Real) *SpaceConversionMatrix {
	s.M4.Ortho(left, right, bottom, top, near, far)
	return s
}

// SetPersp sets s to a perspective projection; see M4.Persp for the
// argument contract.
func (s *SpaceConversionMatrix) SetPersp(fov, aspect, near, far Real) *SpaceConversionMatrix {
	s.M4.Persp(fov, aspect, near, far)
	return s
}

// Compose sets s to view · projection: view applied first, then
// projection, producing a single world-space-to-clip-space conversion.
func (s *SpaceConversionMatrix) Compose(view, projection *SpaceConversionMatrix) *SpaceConversionMatrix {
	s.M4.Mult(&view.M4, &projection.M4)
	return s
}

// TransformV4 applies s to v, writing the result into out. v.W is
// expected to be 1 for a position.
func (s *SpaceConversionMatrix) TransformV4(out, v *V4) *V4 {
	return out.MultvM(v, &s.M4)
}
