// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// TransformationMatrix4x3 composes scale, rotation, and translation into a
// single 4x3 matrix: S·R·T in the row-vector convention ("first apply A,
// then B" reading left to right), i.e. scale first, then rotate, then
// translate. The top-left 3x3 block holds rotation·scale; translation
// lives in the final row.
type TransformationMatrix4x3 struct {
	Storage M34
}

// NewTransformationMatrix4x3 returns the identity transformation.
func NewTransformationMatrix4x3() *TransformationMatrix4x3 {
	return &TransformationMatrix4x3{Storage: *NewM34I()}
}

// SetSRT builds t from independent scale, rotation, and translation. The
// updated t is returned.
func (t *TransformationMatrix4x3) SetSRT(scale *V3, rot *Q, trans *V3) *TransformationMatrix4x3 {
	block := NewM3().SetQ(rot)
	block.ScaleSM(scale.X, scale.Y, scale.Z)
	t.Storage.SetBlock3x3(block)
	t.Storage.SetTranslation(trans.X, trans.Y, trans.Z)
	return t
}

// Decompose splits t back into scale, rotation, and translation. Rotation
// extraction de-scales each row of the 3x3 block before converting to a
// quaternion, so a block built with negative scale on one axis (a
// reflection) will not round-trip to the same scale/rotation split —
// documented undefined-input behaviour, not a bug.
func (t *TransformationMatrix4x3) Decompose(scale *V3, rot *Q, trans *V3) {
	block := &M3{}
	t.Storage.Block3x3(block)
	scale.X = rSqrt(block.Xx*block.Xx + block.Xy*block.Xy + block.Xz*block.Xz)
	scale.Y = rSqrt(block.Yx*block.Yx + block.Yy*block.Yy + block.Yz*block.Yz)
	scale.Z = rSqrt(block.Zx*block.Zx + block.Zy*block.Zy + block.Zz*block.Zz)
	deScale3x3(block)
	rot.SetM(block)
	trans.X, trans.Y, trans.Z = t.Storage.Translation()
}

// Mult composes two transformations: l applied first, then r. The
// updated t is returned; t may alias l or r.
func (t *TransformationMatrix4x3) Mult(l, r *TransformationMatrix4x3) *TransformationMatrix4x3 {
	t.Storage.Mult(&l.Storage, &r.Storage)
	return t
}

// ApplyV3 applies t (as a position) to v, writing the result into out.
func (t *TransformationMatrix4x3) ApplyV3(out, v *V3) *V3 {
	wx, wy, wz := t.Storage.Translation()
	out.X = v.X*t.Storage.Xx + v.Y*t.Storage.Yx + v.Z*t.Storage.Zx + wx
	out.Y = v.X*t.Storage.Xy + v.Y*t.Storage.Yy + v.Z*t.Storage.Zy + wy
	out.Z = v.X*t.Storage.Xz + v.Y*t.Storage.Yz + v.Z*t.Storage.Zz + wz
	return out
}

// ApplyV4 applies t to v. When v.W == 0 (a direction) translation is
// skipped and the output w stays 0; when v.W == 1 (a position) it is
// applied and the output w stays 1 — the same input-w-preserved contract
// SPointTransformM34_4 honors.
func (t *TransformationMatrix4x3) ApplyV4(out, v *V4) *V4 {
	wx, wy, wz := t.Storage.Translation()
	out.X = v.X*t.Storage.Xx + v.Y*t.Storage.Yx + v.Z*t.Storage.Zx + wx*v.W
	out.Y = v.X*t.Storage.Xy + v.Y*t.Storage.Yy + v.Z*t.Storage.Zy + wy*v.W
	out.Z = v.X*t.Storage.Xz + v.Y*t.Storage.Yz + v.Z*t.Storage.Zz + wz*v.W
	out.W = v.W
	return out
}

// TransformationMatrix4x4 is the same S·R·T composition backed by the
// full projective M4 storage, for callers that need the extra column
// (e.g. feeding a GPU uniform directly).
type TransformationMatrix4x4 struct {
	Storage M4
}

// NewTransformationMatrix4x4 returns the identity transformation.
func NewTransformationMatrix4x4() *TransformationMatrix4x4 {
	return &TransformationMatrix4x4{Storage: *NewM4I()}
}

// SetSRT builds t from independent scale, rotation, and translation.
func (t *TransformationMatrix4x4) SetSRT(scale *V3, rot *Q, trans *V3) *TransformationMatrix4x4 {
	block := NewM3().SetQ(rot)
	block.ScaleSM(scale.X, scale.Y, scale.Z)
	t.Storage = M4{
		Xx: block.Xx, Xy: block.Xy, Xz: block.Xz, Xw: 0,
		Yx: block.Yx, Yy: block.Yy, Yz: block.Yz, Yw: 0,
		Zx: block.Zx, Zy: block.Zy, Zz: block.Zz, Zw: 0,
		Wx: trans.X, Wy: trans.Y, Wz: trans.Z, Ww: 1,
	}
	return t
}

// Decompose splits t back into scale, rotation and translation. Same
// negative-scale caveat as TransformationMatrix4x3.Decompose.
func (t *TransformationMatrix4x4) Decompose(scale *V3, rot *Q, trans *V3) {
	block := NewM3().SetM4(&t.Storage)
	scale.X = rSqrt(block.Xx*block.Xx + block.Xy*block.Xy + block.Xz*block.Xz)
	scale.Y = rSqrt(block.Yx*block.Yx + block.Yy*block.Yy + block.Yz*block.Yz)
	scale.Z = rSqrt(block.Zx*block.Zx + block.Zy*block.Zy + block.Zz*block.Zz)
	deScale3x3(block)
	rot.SetM(block)
	trans.X, trans.Y, trans.Z = t.Storage.Wx, t.Storage.Wy, t.Storage.Wz
}

// Mult composes two transformations: l applied first, then r.
func (t *TransformationMatrix4x4) Mult(l, r *TransformationMatrix4x4) *TransformationMatrix4x4 {
	t.Storage.Mult(&l.Storage, &r.Storage)
	return t
}
