// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// SPoint is a stateless namespace of bulk point-transform operations:
// free functions, not a type with state, applying a transform in place
// to an array of points. Two dimensionalities are covered: 2D (V2,
// M3) and 3D/4D (V3/V4, M34/M4/TransformationMatrix/Q). Every function
// asserts its points slice is non-nil in the assertable build.

// SPointTranslate2 translates every point in pts by v, in place.
func SPointTranslate2(pts []V2, v *V2) {
	assertf(pts != nil, "lin.SPointTranslate2: nil points")
	for i := range pts {
		pts[i].Add(&pts[i], v)
	}
}

// SPointTranslate2WithPivot translates every point in pts by v about
// pivot: p' = (p − pivot) + v + pivot, which for pure translation is the
// same as ignoring pivot — kept for API symmetry with the rotate/scale
// variants, where pivot matters.
func SPointTranslate2WithPivot(pts []V2, v, pivot *V2) {
	SPointTranslate2(pts, v)
}

// SPointTransformM3_2 applies m to every point in pts, in place, treating
// each point as a 2D position (implicit w=1).
func SPointTransformM3_2(pts []V2, m *M3) {
	assertf(pts != nil, "lin.SPointTransformM3_2: nil points")
	for i := range pts {
		pts[i].MultvM(&pts[i], m)
	}
}

// SPointTransformM3_2WithPivot applies m to every point in pts about
// pivot: p' = m·(p − pivot) + pivot.
func SPointTransformM3_2WithPivot(pts []V2, m *M3, pivot *V2) {
	assertf(pts != nil, "lin.SPointTransformM3_2WithPivot: nil points")
	for i := range pts {
		rel := NewV2().Sub(&pts[i], pivot)
		rel.MultvM(rel, m)
		pts[i].Add(rel, pivot)
	}
}

// SPointTranslate3 translates every point in pts by v, in place.
func SPointTranslate3(pts []V3, v *V3) {
	assertf(pts != nil, "lin.SPointTranslate3: nil points")
	for i := range pts {
		pts[i].Add(&pts[i], v)
	}
}

// SPointTranslate3WithPivot is SPointTranslate3 under the p' = T(p −
// pivot) + pivot contract; for translation this reduces to
// SPointTranslate3.
func SPointTranslate3WithPivot(pts []V3, v, pivot *V3) {
	SPointTranslate3(pts, v)
}

// SPointRotate3 rotates every point in pts by q about the origin.
func SPointRotate3(pts []V3, q *Q) {
	assertf(pts != nil, "lin.SPointRotate3: nil points")
	for i := range pts {
		pts[i].MultvQ(&pts[i], q)
	}
}

// SPointRotate3WithPivot rotates every point in pts by q about pivot.
func SPointRotate3WithPivot(pts []V3, q *Q, pivot *V3) {
	assertf(pts != nil, "lin.SPointRotate3WithPivot: nil points")
	for i := range pts {
		rel := NewV3().Sub(&pts[i], pivot)
		rel.MultvQ(rel, q)
		pts[i].Add(rel, pivot)
	}
}

// SPointScale3 scales every point in pts componentwise about the origin.
func SPointScale3(pts []V3, sx, sy, sz Real) {
	assertf(pts != nil, "lin.SPointScale3: nil points")
	for i := range pts {
		pts[i].X, pts[i].Y, pts[i].Z = pts[i].X*sx, pts[i].Y*sy, pts[i].Z*sz
	}
}

// SPointScale3WithPivot scales every point in pts componentwise about
// pivot. A pivot of zero is equivalent to SPointScale3.
func SPointScale3WithPivot(pts []V3, sx, sy, sz Real, pivot *V3) {
	assertf(pts != nil, "lin.SPointScale3WithPivot: nil points")
	for i := range pts {
		rel := NewV3().Sub(&pts[i], pivot)
		rel.X, rel.Y, rel.Z = rel.X*sx, rel.Y*sy, rel.Z*sz
		pts[i].Add(rel, pivot)
	}
}

// SPointTransform3 applies t to every point in pts, in place.
func SPointTransform3(pts []V3, t *TransformationMatrix4x3) {
	assertf(pts != nil, "lin.SPointTransform3: nil points")
	for i := range pts {
		t.ApplyV3(&pts[i], &pts[i])
	}
}

// SPointTransform3WithPivot applies t to every point in pts about pivot.
func SPointTransform3WithPivot(pts []V3, t *TransformationMatrix4x3, pivot *V3) {
	assertf(pts != nil, "lin.SPointTransform3WithPivot: nil points")
	for i := range pts {
		rel := NewV3().Sub(&pts[i], pivot)
		t.ApplyV3(rel, rel)
		pts[i].Add(rel, pivot)
	}
}

// SPointTranslate4 translates every point in pts by v, in place; w is
// unaffected.
func SPointTranslate4(pts []V4, v *V3) {
	assertf(pts != nil, "lin.SPointTranslate4: nil points")
	for i := range pts {
		pts[i].X, pts[i].Y, pts[i].Z = pts[i].X+v.X, pts[i].Y+v.Y, pts[i].Z+v.Z
	}
}

// SPointRotate4 rotates every point in pts by q about the origin; w is
// unaffected.
func SPointRotate4(pts []V4, q *Q) {
	assertf(pts != nil, "lin.SPointRotate4: nil points")
	for i := range pts {
		w := pts[i].W
		v3 := NewV3S(pts[i].X, pts[i].Y, pts[i].Z)
		v3.MultvQ(v3, q)
		pts[i].X, pts[i].Y, pts[i].Z, pts[i].W = v3.X, v3.Y, v3.Z, w
	}
}

// SPointTransformM34_4 applies the 4x3 transform t to every point in
// pts, in place; per the projective convention for 4x3 storage, w is
// preserved.
func SPointTransformM34_4(pts []V4, t *TransformationMatrix4x3) {
	assertf(pts != nil, "lin.SPointTransformM34_4: nil points")
	for i := range pts {
		t.ApplyV4(&pts[i], &pts[i])
	}
}

// SPointTransformM4_4 applies the full 4x4 matrix m to every point in
// pts, in place; w is affected per the projective convention.
func SPointTransformM4_4(pts []V4, m *M4) {
	assertf(pts != nil, "lin.SPointTransformM4_4: nil points")
	for i := range pts {
		pts[i].MultvM(&pts[i], m)
	}
}

// SPointTransformM4_4WithPivot applies m to every point in pts about
// pivot; pivot.W does not affect the result.
func SPointTransformM4_4WithPivot(pts []V4, m *M4, pivot *V4) {
	assertf(pts != nil, "lin.SPointTransformM4_4WithPivot: nil points")
	for i := range pts {
		rel := NewV4().Sub(&pts[i], pivot)
		rel.W = pts[i].W
		rel.MultvM(rel, m)
		pts[i].X, pts[i].Y, pts[i].Z = rel.X+pivot.X, rel.Y+pivot.Y, rel.Z+pivot.Z
		pts[i].W = rel.W
	}
}
