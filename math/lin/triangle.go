// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Triangle3 is a triangle with V3 vertices, wound per the caller's
// convention (the normal follows the right-hand rule of (P1-P0)×(P2-P0)).
type Triangle3 struct {
	P0, P1, P2 V3
}

// NewTriangle3 returns a triangle with the given three vertices.
func NewTriangle3(p0, p1, p2 *V3) *Triangle3 {
	return &Triangle3{P0: *p0, P1: *p1, P2: *p2}
}

// Normal returns the unit normal via the normalized cross of (P1-P0) and
// (P2-P0). Degenerate (collinear) vertices yield an undefined (zero)
// result, documented rather than asserted since callers may legitimately
// probe degenerate triangles.
func (t *Triangle3) Normal(out *V3) *V3 {
	e1 := NewV3().Sub(&t.P1, &t.P0)
	e2 := NewV3().Sub(&t.P2, &t.P0)
	out.Cross(e1, e2)
	return out.Unit()
}

// Circumcenter returns the point equidistant from all three vertices,
// computed in the triangle's plane via the standard barycentric formula.
func (t *Triangle3) Circumcenter(out *V3) *V3 {
	a := NewV3().Sub(&t.P0, &t.P2)
	b := NewV3().Sub(&t.P1, &t.P2)
	crossAB := NewV3().Cross(a, b)
	denom := 2 * crossAB.LenSqr()
	if AeqZ(denom) {
		zlog.Warn().Msg("lin.Triangle3.Circumcenter: degenerate (collinear) triangle")
		out.Set(&t.P0)
		return out
	}
	alpha := b.LenSqr() * a.Dot(NewV3().Sub(a, b)) / denom
	beta := a.LenSqr() * b.Dot(NewV3().Sub(b, a)) / denom
	pa := NewV3().Scale(a, alpha)
	pb := NewV3().Scale(b, beta)
	out.Add(pa, pb)
	return out.Add(out, &t.P2)
}

// Orthocenter returns the point where the triangle's three altitudes
// meet, via centroid and circumcenter: O = 3G − 2C.
func (t *Triangle3) Orthocenter(out *V3) *V3 {
	g := NewV3().Add(&t.P0, &t.P1)
	g.Add(g, &t.P2)
	g.Scale(g, 1.0/3.0)
	c := NewV3()
	t.Circumcenter(c)
	out.Scale(g, 3)
	cs := NewV3().Scale(c, 2)
	return out.Sub(out, cs)
}

// SpaceRelation classifies t against p by per-vertex half-space vote:
// Contained if every vertex is on p, PositiveSide/NegativeSide if all
// non-contained vertices agree, BothSides if they disagree.
func (t *Triangle3) SpaceRelation(p *Plane) ESpaceRelation {
	votes := [3]ESpaceRelation{
		p.SpaceRelationV3(&t.P0),
		p.SpaceRelationV3(&t.P1),
		p.SpaceRelationV3(&t.P2),
	}
	sawPositive, sawNegative := false, false
	allContained := true
	for _, v := range votes {
		switch v {
		case ESpaceRelationPositiveSide:
			sawPositive, allContained = true, false
		case ESpaceRelationNegativeSide:
			sawNegative, allContained = true, false
		}
	}
	switch {
	case allContained:
		return ESpaceRelationContained
	case sawPositive && sawNegative:
		return ESpaceRelationBothSides
	case sawPositive:
		return ESpaceRelationPositiveSide
	default:
		return ESpaceRelationNegativeSide
	}
}

// Extrude sets out to t's vertices pushed along its normal by distance.
func (t *Triangle3) Extrude(out *Triangle3, distance Real) *Triangle3 {
	n := NewV3()
	t.Normal(n)
	d := NewV3().Scale(n, distance)
	out.P0.Add(&t.P0, d)
	out.P1.Add(&t.P1, d)
	out.P2.Add(&t.P2, d)
	return out
}

// ProjectToPlane sets out to each of t's vertices projected onto p.
func (t *Triangle3) ProjectToPlane(out *Triangle3, p *Plane) *Triangle3 {
	p.ProjectV3(&out.P0, &t.P0)
	p.ProjectV3(&out.P1, &t.P1)
	p.ProjectV3(&out.P2, &t.P2)
	return out
}
