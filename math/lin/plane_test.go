// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestPlaneSetPtsAndNormalize(t *testing.T) {
	p := &Plane{}
	p.SetPts(NewV3S(0, 0, 0), NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	want := &Plane{0, 0, 1, 0}
	if !p.Aeq(want) {
		t.Errorf(format, p.Dump(), want.Dump())
	}
}

func TestPlaneNegIsComponentwise(t *testing.T) {
	p := &Plane{1, 2, 3, 4}
	n := NewPlane().Neg(p)
	want := &Plane{-1, -2, -3, -4}
	if !n.Aeq(want) {
		t.Errorf(format, n.Dump(), want.Dump())
	}
}

func TestPlaneContainsAndPointDistance(t *testing.T) {
	p := NewPlane().SetPts(NewV3S(0, 0, 0), NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	onPlane := NewV3S(5, -3, 0)
	if !p.ContainsV3(onPlane) {
		t.Error("expected point on z=0 plane to be contained")
	}
	above := NewV3S(0, 0, 2)
	if d := p.PointDistanceV3(above); !Aeq(d, 2) {
		t.Errorf("got distance %v, wanted 2", d)
	}
}

func TestPlaneProjectV3IsIdempotent(t *testing.T) {
	p := NewPlane().SetPts(NewV3S(0, 0, 1), NewV3S(1, 0, 1), NewV3S(0, 1, 1))
	v := NewV3S(3, -2, 7)
	proj := NewV3()
	p.ProjectV3(proj, v)
	again := NewV3()
	p.ProjectV3(again, proj)
	if !proj.Aeq(again) {
		t.Errorf(format, proj.Dump(), again.Dump())
	}
	if !p.ContainsV3(proj) {
		t.Error("projected point must lie on the plane")
	}
}

func TestPlaneAngleBetween(t *testing.T) {
	p1 := &Plane{1, 0, 0, 0}
	p2 := &Plane{0, 1, 0, 0}
	if a := p1.AngleBetween(p2); !Aeq(a, HalfPi) {
		t.Errorf("got angle %v, wanted pi/2", a)
	}
}

func TestPlaneScaleUsesReciprocalLaw(t *testing.T) {
	// plane x=1 (normal (1,0,0), d=-1), scaled by (2,1,1) should become
	// the plane x=2 (normal still (1,0,0), d=-2): a point that was on
	// x=1 maps to x=2 under the position scale, and the plane must
	// still contain it.
	p := &Plane{1, 0, 0, -1}
	scaled := NewPlane().Scale(p, 2, 1, 1)
	onScaled := NewV3S(2, 5, -3)
	if !scaled.ContainsV3(onScaled) {
		t.Errorf("scaled plane %s does not contain %s", scaled.Dump(), onScaled.Dump())
	}
}

func TestPlaneSpaceRelationV3(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	if p.SpaceRelationV3(NewV3S(0, 0, 5)) != ESpaceRelationPositiveSide {
		t.Error("expected positive side")
	}
	if p.SpaceRelationV3(NewV3S(0, 0, -5)) != ESpaceRelationNegativeSide {
		t.Error("expected negative side")
	}
	if p.SpaceRelationV3(NewV3S(1, 1, 0)) != ESpaceRelationContained {
		t.Error("expected contained")
	}
}

func TestIntersectionPointUniquePoint(t *testing.T) {
	p1 := &Plane{1, 0, 0, 0} // x=0
	p2 := &Plane{0, 1, 0, 0} // y=0
	p3 := &Plane{0, 0, 1, 0} // z=0
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsOne {
		t.Fatalf("got %s, wanted One", kind)
	}
	if !out.Aeq(NewV3()) {
		t.Errorf(format, out.Dump(), NewV3().Dump())
	}
}

func TestIntersectionPointParallelNone(t *testing.T) {
	p1 := &Plane{0, 0, 1, 0}  // z=0
	p2 := &Plane{0, 0, 1, -1} // z=1
	p3 := &Plane{1, 0, 0, 0}  // x=0
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsNone {
		t.Fatalf("got %s, wanted None", kind)
	}
}

func TestIntersectionPointCoincidentInfinite(t *testing.T) {
	p1 := &Plane{0, 0, 1, 0}
	p2 := &Plane{0, 0, 1, 0}
	p3 := &Plane{1, 0, 0, 0}
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsInfinite {
		t.Fatalf("got %s, wanted Infinite", kind)
	}
}

func TestIntersectionPointSharedLineInfinite(t *testing.T) {
	// x=0, y=0, x+y=0: all three contain the z-axis.
	p1 := &Plane{1, 0, 0, 0}
	p2 := &Plane{0, 1, 0, 0}
	p3 := &Plane{1, 1, 0, 0}
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsInfinite {
		t.Fatalf("got %s, wanted Infinite", kind)
	}
}

func TestIntersectionPointTriangularPrismNone(t *testing.T) {
	// x=0, y=0, x+y=1: third plane is a combination of the normals but
	// offset, so the three form a triangular prism with no common point.
	p1 := &Plane{1, 0, 0, 0}
	p2 := &Plane{0, 1, 0, 0}
	p3 := &Plane{1, 1, 0, -1}
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsNone {
		t.Fatalf("got %s, wanted None", kind)
	}
}

func TestIntersectionPointAllParallelDistinctNone(t *testing.T) {
	p1 := &Plane{0, 0, 1, 0}
	p2 := &Plane{0, 0, 1, -1}
	p3 := &Plane{0, 0, 1, -2}
	out := NewV3()
	if kind := IntersectionPoint(p1, p2, p3, out); kind != EIntersectionsNone {
		t.Fatalf("got %s, wanted None", kind)
	}
}

// NewPlane is a small test-only convenience constructor; the package
// otherwise builds Planes via literals or SetPts.
func NewPlane() *Plane { return &Plane{} }

func (p *Plane) Dump() string {
	return NewV3S(p.A, p.B, p.C).Dump() + " " + NewV3S(p.D, 0, 0).Dump()
}
