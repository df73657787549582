// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Quaternion operations beyond the original teacher set: Euler conversion,
// slerp, and the general (non-unit) inverse. Kept in a separate file so
// the teacher's original quaternion.go is easy to diff against.

// Conjugate updates q to be the conjugate of r: same rotation axis, angle
// negated. Equal to the inverse only when r is unit length. The updated q
// is returned.
func (q *Q) Conjugate(r *Q) *Q {
	q.X, q.Y, q.Z, q.W = -r.X, -r.Y, -r.Z, r.W
	return q
}

// InvertUnit updates q to be the inverse of unit quaternion r. Cheap: it
// is exactly the conjugate. Calling this on a non-unit r silently returns
// a wrong answer (documented undefined-input, not asserted).
func (q *Q) InvertUnit(r *Q) *Q { return q.Conjugate(r) }

// Invert updates q to be the general inverse of r: conjugate(r) / |r|^2.
// Works for any non-null r; for unit r, prefer the cheaper InvertUnit.
func (q *Q) Invert(r *Q) *Q {
	normSqr := r.Dot(r)
	if normSqr == 0 {
		zlog.Warn().Msg("quaternion.Q.Invert: null quaternion")
		return q
	}
	inv := 1 / normSqr
	q.X, q.Y, q.Z, q.W = -r.X*inv, -r.Y*inv, -r.Z*inv, r.W*inv
	return q
}

// SetEuler sets q to the rotation described by Euler angles applied in the
// order Z (yaw), then X (pitch), then Y (roll); angles are radians. This
// order is a contract: changing it silently breaks round-tripping with
// ToEuler and with any data authored against this convention.
func (q *Q) SetEuler(yawZ, pitchX, rollY Real) *Q {
	hz, hx, hy := yawZ*0.5, pitchX*0.5, rollY*0.5
	cz, sz := rCos(hz), rSin(hz)
	cx, sx := rCos(hx), rSin(hx)
	cy, sy := rCos(hy), rSin(hy)

	// q = qY * qX * qZ, applying Z first, then X, then Y.
	qz := &Q{0, 0, sz, cz}
	qx := &Q{sx, 0, 0, cx}
	qy := &Q{0, sy, 0, cy}
	tmp := NewQ().Mult(qz, qx)
	q.Mult(tmp, qy)
	return q
}

// ToEuler decomposes q into Euler angles (yawZ, pitchX, rollY) under the
// Z-X-Y convention, in radians. The pitch axis carries the gimbal
// singularity at ±π/2; at that point yaw and roll become degenerate and
// this implementation folds all remaining rotation into yaw, leaving roll
// at zero, resolved via atan2 rather than a plain asin/acos so the sign
// of the angle survives.
func (q *Q) ToEuler() (yawZ, pitchX, rollY Real) {
	sx := 2 * (q.W*q.X - q.Y*q.Z)
	sx = Clamp(sx, -1, 1)
	pitchX = rAsin(sx)

	if rAbs(sx) > 1-1e-6 {
		yawZ = 2 * rAtan2(q.Z, q.W)
		rollY = 0
		return
	}

	yawZ = rAtan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.X*q.X+q.Z*q.Z))
	rollY = rAtan2(2*(q.W*q.Y+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	return
}

// Slerp updates q to be the spherical linear interpolation between r and s
// at parameter t (expected in [0,1], but not clamped). When the angle
// between r and s is (numerically) zero or π, the interpolation is
// ill-defined and the first operand r is returned unchanged, matching the
// documented contract rather than dividing by a near-zero sine.
func (q *Q) Slerp(r, s *Q, t Real) *Q {
	cosHalfTheta := r.Dot(s)
	sr := s
	if cosHalfTheta < 0 {
		// take the short path: negate s so we interpolate the acute angle.
		sr = NewQ().Neg2(s)
		cosHalfTheta = -cosHalfTheta
	}
	if cosHalfTheta >= 1-1e-9 {
		q.Set(r)
		return q
	}
	if cosHalfTheta <= -1+1e-9 {
		// antipodal: undefined rotation axis, honor the documented contract.
		q.Set(r)
		return q
	}
	halfTheta := rAcos(cosHalfTheta)
	sinHalfTheta := rSqrt(1 - cosHalfTheta*cosHalfTheta)
	if AeqZ(sinHalfTheta) {
		q.Set(r)
		return q
	}
	ratioA := rSin((1-t)*halfTheta) / sinHalfTheta
	ratioB := rSin(t*halfTheta) / sinHalfTheta
	q.X = r.X*ratioA + sr.X*ratioB
	q.Y = r.Y*ratioA + sr.Y*ratioB
	q.Z = r.Z*ratioA + sr.Z*ratioB
	q.W = r.W*ratioA + sr.W*ratioB
	return q
}

// UnitSlerp is Slerp specialized for two already-unit quaternions; it is
// identical to Slerp but named per the spec's distinction between the
// general and unit-only operations.
func (q *Q) UnitSlerp(r, s *Q, t Real) *Q { return q.Slerp(r, s, t) }

// Neg2 sets q to the negation of r (all four components). Distinct from
// Q.Neg, which negates the receiver in place; this variant takes an
// explicit source so Slerp can negate without mutating its input.
func (q *Q) Neg2(r *Q) *Q {
	q.X, q.Y, q.Z, q.W = -r.X, -r.Y, -r.Z, -r.W
	return q
}

// SetTM sets q to the rotation extracted from a 4x3-backed
// TransformationMatrix. Extraction removes scale by normalizing each row
// of the 3x3 block before converting to a quaternion; a matrix built with
// negative scale on one axis is a reflection and will not round-trip back
// to the same scale/rotation split (documented, not a bug).
func (q *Q) SetTM(t *TransformationMatrix4x3) *Q {
	r := &M3{}
	t.Storage.Block3x3(r)
	deScale3x3(r)
	return q.SetM(r)
}

// SetTM4 is SetTM for the 4x4-backed TransformationMatrix.
func (q *Q) SetTM4(t *TransformationMatrix4x4) *Q {
	r := NewM3().SetM4(&t.Storage)
	deScale3x3(r)
	return q.SetM(r)
}

// deScale3x3 normalizes each row of m in place, removing any uniform or
// non-uniform scale so the remaining matrix is (close to) a pure rotation.
func deScale3x3(m *M3) {
	rows := [][3]*Real{
		{&m.Xx, &m.Xy, &m.Xz},
		{&m.Yx, &m.Yy, &m.Yz},
		{&m.Zx, &m.Zy, &m.Zz},
	}
	for _, row := range rows {
		l := rSqrt(*row[0]**row[0] + *row[1]**row[1] + *row[2]**row[2])
		if l != 0 {
			inv := 1 / l
			*row[0] *= inv
			*row[1] *= inv
			*row[2] *= inv
		}
	}
}
