// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// LineSegment3 is a bounded segment between two endpoints.
type LineSegment3 struct {
	P0, P1 V3
}

// NewLineSegment3 returns the segment from p0 to p1.
func NewLineSegment3(p0, p1 *V3) *LineSegment3 {
	return &LineSegment3{P0: *p0, P1: *p1}
}

// Length returns the distance between the segment's endpoints.
func (l *LineSegment3) Length() Real { return l.P0.Dist(&l.P1) }

// Direction returns the unit vector from P0 to P1, written into out.
// Zero-length segments return the zero vector, matching V3.Unit's
// documented behavior on a zero-length input.
func (l *LineSegment3) Direction(out *V3) *V3 {
	out.Sub(&l.P1, &l.P0)
	return out.Unit()
}

// PointAt returns P0 + t*(P1−P0), written into out. t is not clamped to
// [0,1]; callers that need a bounded point should clamp before calling.
func (l *LineSegment3) PointAt(out *V3, t Real) *V3 {
	return out.Lerp(&l.P0, &l.P1, t)
}

// Translate sets l to ll translated by v.
func (l *LineSegment3) Translate(ll *LineSegment3, v *V3) *LineSegment3 {
	l.P0.Add(&ll.P0, v)
	l.P1.Add(&ll.P1, v)
	return l
}

// Rotate sets l to ll rotated by q about ll.P0 (the segment's own
// start point does not move).
func (l *LineSegment3) Rotate(ll *LineSegment3, q *Q) *LineSegment3 {
	l.P0 = ll.P0
	rel := NewV3().Sub(&ll.P1, &ll.P0)
	rel.MultvQ(rel, q)
	l.P1.Add(&l.P0, rel)
	return l
}

// SpaceRelation classifies l against p by the same per-vertex vote rule
// Triangle3.SpaceRelation uses.
func (l *LineSegment3) SpaceRelation(p *Plane) ESpaceRelation {
	v0, v1 := p.SpaceRelationV3(&l.P0), p.SpaceRelationV3(&l.P1)
	switch {
	case v0 == ESpaceRelationContained && v1 == ESpaceRelationContained:
		return ESpaceRelationContained
	case v0 == v1:
		return v0
	case v0 == ESpaceRelationContained:
		return v1
	case v1 == ESpaceRelationContained:
		return v0
	default:
		return ESpaceRelationBothSides
	}
}
