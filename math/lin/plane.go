// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Plane represents a·x + b·y + c·z + d = 0. The triple (A,B,C) is the
// plane normal; when it is unit length the plane is normalized, and |D|
// is then the signed distance from the origin to the plane along
// −normal. Equality is epsilon-approximate and compares all four
// coefficients directly: two planes that are proportional but not
// identical component-wise compare unequal until normalized.
type Plane struct {
	A, B, C, D Real
}

// Eq returns true if p and pp are exactly equal, component-wise.
func (p *Plane) Eq(pp *Plane) bool {
	return p.A == pp.A && p.B == pp.B && p.C == pp.C && p.D == pp.D
}

// Aeq returns true if p and pp are approximately equal, component-wise.
func (p *Plane) Aeq(pp *Plane) bool {
	return Aeq(p.A, pp.A) && Aeq(p.B, pp.B) && Aeq(p.C, pp.C) && Aeq(p.D, pp.D)
}

// Set sets p directly from four coefficients. The updated p is returned.
func (p *Plane) Set(a, b, c, d Real) *Plane {
	p.A, p.B, p.C, p.D = a, b, c, d
	return p
}

// SetPts sets p to the plane through three non-collinear points, with
// the normal following the right-hand rule of (p1-p0) × (p2-p0).
func (p *Plane) SetPts(p0, p1, p2 *V3) *Plane {
	e1 := NewV3().Sub(p1, p0)
	e2 := NewV3().Sub(p2, p0)
	n := NewV3().Cross(e1, e2)
	p.A, p.B, p.C = n.X, n.Y, n.Z
	p.D = -(n.X*p0.X + n.Y*p0.Y + n.Z*p0.Z)
	return p.Normalize(p)
}

// Neg sets p to the componentwise negation of pp: all four coefficients
// flipped. This does flip the normal and move the plane — despite
// commentary to the contrary in some derivations, componentwise
// negation is the contract here.
func (p *Plane) Neg(pp *Plane) *Plane {
	p.A, p.B, p.C, p.D = -pp.A, -pp.B, -pp.C, -pp.D
	return p
}

// Normalize sets p to pp divided by the length of pp's normal. Undefined
// for a null plane (zero normal).
func (p *Plane) Normalize(pp *Plane) *Plane {
	l := rSqrt(pp.A*pp.A + pp.B*pp.B + pp.C*pp.C)
	if l == 0 {
		zlog.Warn().Msg("lin.Plane.Normalize: null plane")
		p.Set(pp.A, pp.B, pp.C, pp.D)
		return p
	}
	inv := 1 / l
	p.A, p.B, p.C, p.D = pp.A*inv, pp.B*inv, pp.C*inv, pp.D*inv
	return p
}

// DotV3 returns the three-component dot of p's normal with v.
func (p *Plane) DotV3(v *V3) Real { return p.A*v.X + p.B*v.Y + p.C*v.Z }

// DotV4 returns the three-component dot of p's normal with v; v.W does
// not participate.
func (p *Plane) DotV4(v *V4) Real { return p.A*v.X + p.B*v.Y + p.C*v.Z }

// DotPlane returns the three-component dot of p's and pp's normals.
func (p *Plane) DotPlane(pp *Plane) Real { return p.A*pp.A + p.B*pp.B + p.C*pp.C }

// AngleBetween returns the angle, in [0,π], between p's and pp's
// normals, assuming both are unit. Asserts both planes are non-null.
func (p *Plane) AngleBetween(pp *Plane) Real {
	assertf(!(p.A == 0 && p.B == 0 && p.C == 0), "lin.Plane.AngleBetween: null plane p")
	assertf(!(pp.A == 0 && pp.B == 0 && pp.C == 0), "lin.Plane.AngleBetween: null plane pp")
	return rAcos(Clamp(p.DotPlane(pp), -1, 1))
}

// residualV3 evaluates a·x + b·y + c·z + d at v.
func (p *Plane) residualV3(v *V3) Real { return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D }

// residualV4 evaluates a·x + b·y + c·z + d at v, ignoring v.W.
func (p *Plane) residualV4(v *V4) Real { return p.A*v.X + p.B*v.Y + p.C*v.Z + p.D }

// ProjectV3 writes into out the projection of v onto p: v minus the
// signed residual times the normal. Requires p normalized.
func (p *Plane) ProjectV3(out, v *V3) *V3 {
	k := p.residualV3(v)
	out.X = v.X - k*p.A
	out.Y = v.Y - k*p.B
	out.Z = v.Z - k*p.C
	return out
}

// ProjectV4 writes into out the projection of v onto p; out.W equals
// v.W. Requires p normalized.
func (p *Plane) ProjectV4(out, v *V4) *V4 {
	k := p.residualV4(v)
	out.X = v.X - k*p.A
	out.Y = v.Y - k*p.B
	out.Z = v.Z - k*p.C
	out.W = v.W
	return out
}

// ContainsV3 returns true if v lies on p within Epsilon.
func (p *Plane) ContainsV3(v *V3) bool { return rAbs(p.residualV3(v)) < Epsilon }

// ContainsV4 returns true if v lies on p within Epsilon; v.W does not
// participate.
func (p *Plane) ContainsV4(v *V4) bool { return rAbs(p.residualV4(v)) < Epsilon }

// PointDistanceV3 returns the distance from v to p, non-negative.
// Requires p normalized.
func (p *Plane) PointDistanceV3(v *V3) Real { return rAbs(p.residualV3(v)) }

// PointDistanceV4 returns the distance from v to p, non-negative.
// Requires p normalized.
func (p *Plane) PointDistanceV4(v *V4) Real { return rAbs(p.residualV4(v)) }

// SpaceRelationV3 classifies v against p.
func (p *Plane) SpaceRelationV3(v *V3) ESpaceRelation {
	r := p.residualV3(v)
	switch {
	case AeqZ(r):
		return ESpaceRelationContained
	case r > 0:
		return ESpaceRelationPositiveSide
	default:
		return ESpaceRelationNegativeSide
	}
}

// SpaceRelationV4 classifies v against p; v.W does not participate.
func (p *Plane) SpaceRelationV4(v *V4) ESpaceRelation {
	r := p.residualV4(v)
	switch {
	case AeqZ(r):
		return ESpaceRelationContained
	case r > 0:
		return ESpaceRelationPositiveSide
	default:
		return ESpaceRelationNegativeSide
	}
}

// SpaceRelation classifies pp against p: Contained if the two planes
// coincide, PositiveSide/NegativeSide if parallel with a signed offset,
// BothSides (intersecting) otherwise.
func (p *Plane) SpaceRelation(pp *Plane) ESpaceRelation {
	n := NewV3().Cross(NewV3S(p.A, p.B, p.C), NewV3S(pp.A, pp.B, pp.C))
	if !AeqZ(n.LenSqr()) {
		return ESpaceRelationBothSides
	}
	// parallel normals: compare offsets along p's normal direction.
	k := p.DotPlane(pp)
	sign := Real(1)
	if k < 0 {
		sign = -1
	}
	offset := p.D - sign*pp.D
	if AeqZ(offset) {
		return ESpaceRelationContained
	}
	if offset > 0 {
		return ESpaceRelationPositiveSide
	}
	return ESpaceRelationNegativeSide
}

// Translate sets p to pp translated by v: the normal is unchanged;
// d' = d − normal·v. A translation orthogonal to the normal leaves the
// plane unchanged.
func (p *Plane) Translate(pp *Plane, v *V3) *Plane {
	p.A, p.B, p.C = pp.A, pp.B, pp.C
	p.D = pp.D - pp.DotV3(v)
	return p
}

// TranslateWithPivot translates pp by v about pivot; equivalent to
// Translate when pivot is the zero vector.
func (p *Plane) TranslateWithPivot(pp *Plane, v, pivot *V3) *Plane {
	return p.Translate(pp, v)
}

// Rotate sets p to pp rotated by q: rebuilt from the rotated normal and
// a rotated in-plane point.
func (p *Plane) Rotate(pp *Plane, q *Q) *Plane {
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	n := NewV3().MultvQ(NewV3S(pp.A, pp.B, pp.C), q)
	rpt := NewV3().MultvQ(pt, q)
	p.A, p.B, p.C = n.X, n.Y, n.Z
	p.D = -(n.X*rpt.X + n.Y*rpt.Y + n.Z*rpt.Z)
	return p
}

// RotateWithPivot rotates pp by q about pivot.
func (p *Plane) RotateWithPivot(pp *Plane, q *Q, pivot *V3) *Plane {
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	pt.Sub(pt, pivot)
	n := NewV3().MultvQ(NewV3S(pp.A, pp.B, pp.C), q)
	rpt := NewV3().MultvQ(pt, q)
	rpt.Add(rpt, pivot)
	p.A, p.B, p.C = n.X, n.Y, n.Z
	p.D = -(n.X*rpt.X + n.Y*rpt.Y + n.Z*rpt.Z)
	return p
}

// Scale sets p to pp scaled componentwise by (sx,sy,sz), renormalized;
// d is scaled consistently. Requires non-zero scale on all axes.
func (p *Plane) Scale(pp *Plane, sx, sy, sz Real) *Plane {
	assertf(sx != 0 && sy != 0 && sz != 0, "lin.Plane.Scale: zero scale factor")
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	pt.X, pt.Y, pt.Z = pt.X*sx, pt.Y*sy, pt.Z*sz
	scaled := NewV3S(pp.A/sx, pp.B/sy, pp.C/sz)
	p.A, p.B, p.C, p.D = scaled.X, scaled.Y, scaled.Z, -(scaled.X*pt.X + scaled.Y*pt.Y + scaled.Z*pt.Z)
	return p.Normalize(p)
}

// ScaleWithPivot scales pp by (sx,sy,sz) about pivot; equivalent to
// Scale when pivot is the zero vector.
func (p *Plane) ScaleWithPivot(pp *Plane, sx, sy, sz Real, pivot *V3) *Plane {
	assertf(sx != 0 && sy != 0 && sz != 0, "lin.Plane.ScaleWithPivot: zero scale factor")
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	pt.Sub(pt, pivot)
	pt.X, pt.Y, pt.Z = pt.X*sx, pt.Y*sy, pt.Z*sz
	pt.Add(pt, pivot)
	scaled := NewV3S(pp.A/sx, pp.B/sy, pp.C/sz)
	p.A, p.B, p.C, p.D = scaled.X, scaled.Y, scaled.Z, -(scaled.X*pt.X + scaled.Y*pt.Y + scaled.Z*pt.Z)
	return p.Normalize(p)
}

// Transform sets p to pp transformed by t: rebuilt from the transformed
// normal and a transformed in-plane point.
func (p *Plane) Transform(pp *Plane, t *TransformationMatrix4x3) *Plane {
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	tPt := t.ApplyV3(NewV3(), pt)
	rot := &M3{}
	t.Storage.Block3x3(rot)
	deScale3x3(rot)
	n := NewV3().MultvM(NewV3S(pp.A, pp.B, pp.C), rot)
	p.A, p.B, p.C = n.X, n.Y, n.Z
	p.D = -(n.X*tPt.X + n.Y*tPt.Y + n.Z*tPt.Z)
	return p
}

// TransformWithPivot transforms pp by t about pivot.
func (p *Plane) TransformWithPivot(pp *Plane, t *TransformationMatrix4x3, pivot *V3) *Plane {
	pt := NewV3().Scale(NewV3S(pp.A, pp.B, pp.C), -pp.D)
	pt.Sub(pt, pivot)
	tPt := t.ApplyV3(NewV3(), pt)
	tPt.Add(tPt, pivot)
	rot := &M3{}
	t.Storage.Block3x3(rot)
	deScale3x3(rot)
	n := NewV3().MultvM(NewV3S(pp.A, pp.B, pp.C), rot)
	p.A, p.B, p.C = n.X, n.Y, n.Z
	p.D = -(n.X*tPt.X + n.Y*tPt.Y + n.Z*tPt.Z)
	return p
}

// IntersectionPoint solves the linear system of three plane equations,
// writing the unique point into out when the result is One. Uses
// Cramer's rule when the normals' 3x3 determinant is non-zero;
// otherwise classifies the degenerate case by pairwise normal
// parallelism and pairwise plane identity. When the result is not One,
// out is left unchanged.
func IntersectionPoint(p1, p2, p3 *Plane, out *V3) EIntersections {
	m := &M3{
		Xx: p1.A, Xy: p1.B, Xz: p1.C,
		Yx: p2.A, Yy: p2.B, Yz: p2.C,
		Zx: p3.A, Zy: p3.B, Zz: p3.C,
	}
	det := m.Det()
	if !AeqZ(det) {
		dx := &M3{
			Xx: -p1.D, Xy: p1.B, Xz: p1.C,
			Yx: -p2.D, Yy: p2.B, Yz: p2.C,
			Zx: -p3.D, Zy: p3.B, Zz: p3.C,
		}
		dy := &M3{
			Xx: p1.A, Xy: -p1.D, Xz: p1.C,
			Yx: p2.A, Yy: -p2.D, Yz: p2.C,
			Zx: p3.A, Zy: -p3.D, Zz: p3.C,
		}
		dz := &M3{
			Xx: p1.A, Xy: p1.B, Xz: -p1.D,
			Yx: p2.A, Yy: p2.B, Yz: -p2.D,
			Zx: p3.A, Zy: p3.B, Zz: -p3.D,
		}
		out.X, out.Y, out.Z = dx.Det()/det, dy.Det()/det, dz.Det()/det
		return EIntersectionsOne
	}

	parallel := func(a, b *Plane) bool {
		n := NewV3().Cross(NewV3S(a.A, a.B, a.C), NewV3S(b.A, b.B, b.C))
		return AeqZ(n.LenSqr())
	}
	coincide := func(a, b *Plane) bool {
		if !parallel(a, b) {
			return false
		}
		k := a.DotPlane(b)
		sign := Real(1)
		if k < 0 {
			sign = -1
		}
		return AeqZ(a.D - sign*b.D)
	}

	p12, p13, p23 := parallel(p1, p2), parallel(p1, p3), parallel(p2, p3)
	c12, c13, c23 := p12 && coincide(p1, p2), p13 && coincide(p1, p3), p23 && coincide(p2, p3)

	switch {
	case c12 && c13:
		// all three coincide.
		return EIntersectionsInfinite
	case c12 && !p13:
		// p1,p2 coincide, p3 crosses them: shared line.
		return EIntersectionsInfinite
	case c13 && !p12:
		return EIntersectionsInfinite
	case c23 && !p12:
		return EIntersectionsInfinite
	case p12 && p13 && p23:
		// all three parallel, none coincide: no intersection.
		return EIntersectionsNone
	case p12 && !c12:
		// p1 || p2 distinct; p3 crosses both in two distinct parallel lines.
		return EIntersectionsNone
	case p13 && !c13:
		return EIntersectionsNone
	case p23 && !c23:
		return EIntersectionsNone
	default:
		// no two normals parallel, yet the 3x3 determinant is zero: the
		// third normal is a linear combination of the other two, so p3
		// either contains the shared line of p1 and p2 (Infinite) or runs
		// parallel to it offset to one side (None, the triangular-prism
		// case).
		n1, n2, n3 := NewV3S(p1.A, p1.B, p1.C), NewV3S(p2.A, p2.B, p2.C), NewV3S(p3.A, p3.B, p3.C)
		alpha, beta := coplanarCoeffs(n1, n2, n3)
		if Aeq(alpha*p1.D+beta*p2.D, p3.D) {
			return EIntersectionsInfinite
		}
		return EIntersectionsNone
	}
}

// coplanarCoeffs solves n3 = alpha*n1 + beta*n2 for alpha and beta,
// assuming n1 and n2 are linearly independent and n3 lies in their span
// (the only case callers use this for). Tries each pair of coordinate
// axes in turn to avoid a singular 2x2 submatrix.
func coplanarCoeffs(n1, n2, n3 *V3) (alpha, beta Real) {
	if det := n1.X*n2.Y - n1.Y*n2.X; !AeqZ(det) {
		return (n3.X*n2.Y - n3.Y*n2.X) / det, (n1.X*n3.Y - n1.Y*n3.X) / det
	}
	if det := n1.X*n2.Z - n1.Z*n2.X; !AeqZ(det) {
		return (n3.X*n2.Z - n3.Z*n2.X) / det, (n1.X*n3.Z - n1.Z*n3.X) / det
	}
	det := n1.Y*n2.Z - n1.Z*n2.Y
	return (n3.Y*n2.Z - n3.Z*n2.Y) / det, (n1.Y*n3.Z - n1.Z*n3.Y) / det
}
