// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Sphere3 is a sphere with a V3 center.
type Sphere3 struct {
	Center V3
	Radius Real
}

// NewSphere3 returns a sphere of the given center and radius.
func NewSphere3(center *V3, radius Real) *Sphere3 {
	return &Sphere3{Center: *center, Radius: radius}
}

// Translate sets s to ss translated by v; the radius is unchanged.
func (s *Sphere3) Translate(ss *Sphere3, v *V3) *Sphere3 {
	s.Center.Add(&ss.Center, v)
	s.Radius = ss.Radius
	return s
}

// Rotate sets s to ss rotated by q about its own center, i.e. the center
// does not move and the radius is unchanged — rotation of a sphere in
// place is a no-op beyond copying.
func (s *Sphere3) Rotate(ss *Sphere3, q *Q) *Sphere3 {
	s.Center = ss.Center
	s.Radius = ss.Radius
	return s
}

// RotateAbout sets s to ss rotated by q about pivot: the center moves,
// the radius is unchanged.
func (s *Sphere3) RotateAbout(ss *Sphere3, q *Q, pivot *V3) *Sphere3 {
	rel := NewV3().Sub(&ss.Center, pivot)
	rel.MultvQ(rel, q)
	s.Center.Add(rel, pivot)
	s.Radius = ss.Radius
	return s
}

// Scale sets s to ss with center scaled about the origin and radius
// scaled by the independent factor radiusScale.
func (s *Sphere3) Scale(ss *Sphere3, sx, sy, sz, radiusScale Real) *Sphere3 {
	s.Center.X, s.Center.Y, s.Center.Z = ss.Center.X*sx, ss.Center.Y*sy, ss.Center.Z*sz
	s.Radius = ss.Radius * radiusScale
	return s
}

// Transform sets s to ss with its center run through t and radius scaled
// by the independent factor radiusScale (a general transform has no
// single well-defined radius scale, so the caller supplies one — e.g.
// the uniform component of t's scale).
func (s *Sphere3) Transform(ss *Sphere3, t *TransformationMatrix4x3, radiusScale Real) *Sphere3 {
	t.ApplyV3(&s.Center, &ss.Center)
	s.Radius = ss.Radius * radiusScale
	return s
}

// ProjectToPlane sets the new center to p.pointProjection(center); the
// radius is unchanged.
func (s *Sphere3) ProjectToPlane(ss *Sphere3, p *Plane) *Sphere3 {
	p.ProjectV3(&s.Center, &ss.Center)
	s.Radius = ss.Radius
	return s
}

// SpaceRelation classifies s against p by comparing the signed distance
// from the plane to the center against the radius.
func (s *Sphere3) SpaceRelation(p *Plane) ESpaceRelation {
	d := p.residualV3(&s.Center)
	switch {
	case rAbs(d) <= s.Radius:
		return ESpaceRelationBothSides
	case d > 0:
		return ESpaceRelationPositiveSide
	default:
		return ESpaceRelationNegativeSide
	}
}

// Sphere4 is a sphere with a V4 center; w is carried through and does
// not participate in any computation beyond being copied.
type Sphere4 struct {
	Center V4
	Radius Real
}

// NewSphere4 returns a sphere of the given center and radius.
func NewSphere4(center *V4, radius Real) *Sphere4 {
	return &Sphere4{Center: *center, Radius: radius}
}

// Translate sets s to ss translated by v; the radius and w are unchanged.
func (s *Sphere4) Translate(ss *Sphere4, v *V3) *Sphere4 {
	s.Center.X, s.Center.Y, s.Center.Z = ss.Center.X+v.X, ss.Center.Y+v.Y, ss.Center.Z+v.Z
	s.Center.W = ss.Center.W
	s.Radius = ss.Radius
	return s
}

// ProjectToPlane sets the new center to p.pointProjection(center),
// preserving w; the radius is unchanged.
func (s *Sphere4) ProjectToPlane(ss *Sphere4, p *Plane) *Sphere4 {
	p.ProjectV4(&s.Center, &ss.Center)
	s.Radius = ss.Radius
	return s
}

// SpaceRelation classifies s against p by comparing the signed distance
// from the plane to the center against the radius; center.W does not
// participate.
func (s *Sphere4) SpaceRelation(p *Plane) ESpaceRelation {
	d := p.residualV4(&s.Center)
	switch {
	case rAbs(d) <= s.Radius:
		return ESpaceRelationBothSides
	case d > 0:
		return ESpaceRelationPositiveSide
	default:
		return ESpaceRelationNegativeSide
	}
}
