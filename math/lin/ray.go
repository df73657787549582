// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Ray3 is an origin point and a direction, not required to be unit
// length — callers that need arc-length parameterization should
// normalize Dir themselves.
type Ray3 struct {
	Origin, Dir V3
}

// NewRay3 returns a ray from origin in direction dir.
func NewRay3(origin, dir *V3) *Ray3 {
	return &Ray3{Origin: *origin, Dir: *dir}
}

// PointAt returns the point origin + t*dir, written into out.
func (r *Ray3) PointAt(out *V3, t Real) *V3 {
	d := NewV3().Scale(&r.Dir, t)
	return out.Add(&r.Origin, d)
}

// Translate sets r to rr translated by v; direction is unchanged.
func (r *Ray3) Translate(rr *Ray3, v *V3) *Ray3 {
	r.Origin.Add(&rr.Origin, v)
	r.Dir = rr.Dir
	return r
}

// Rotate sets r to rr rotated by q: both origin and direction rotate
// about r's own origin, so the ray's start point does not move.
func (r *Ray3) Rotate(rr *Ray3, q *Q) *Ray3 {
	r.Origin = rr.Origin
	r.Dir.MultvQ(&rr.Dir, q)
	return r
}

// PlaneIntersection returns the parameter t at which r crosses p, and
// whether the ray is parallel to the plane (no intersection, or the ray
// lies in the plane — both reported as parallel=true; callers that need
// to distinguish coincidence should test Plane.ContainsV3(r.Origin)).
func (r *Ray3) PlaneIntersection(p *Plane) (t Real, parallel bool) {
	denom := p.DotV3(&r.Dir)
	if AeqZ(denom) {
		return 0, true
	}
	t = -p.residualV3(&r.Origin) / denom
	return t, false
}
