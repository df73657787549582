// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTriangle3Normal(t *testing.T) {
	tri := NewTriangle3(NewV3S(0, 0, 0), NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	n := NewV3()
	tri.Normal(n)
	want := NewV3S(0, 0, 1)
	if !n.Aeq(want) {
		t.Errorf(format, n.Dump(), want.Dump())
	}
}

func TestTriangle3CircumcenterIsEquidistant(t *testing.T) {
	tri := NewTriangle3(NewV3S(0, 0, 0), NewV3S(4, 0, 0), NewV3S(0, 4, 0))
	c := NewV3()
	tri.Circumcenter(c)
	d0, d1, d2 := c.Dist(&tri.P0), c.Dist(&tri.P1), c.Dist(&tri.P2)
	if !Aeq(d0, d1) || !Aeq(d1, d2) {
		t.Errorf("circumcenter not equidistant: %v %v %v", d0, d1, d2)
	}
}

func TestTriangle3OrthocenterOfRightTriangle(t *testing.T) {
	// for a right triangle the orthocenter is the right-angle vertex.
	tri := NewTriangle3(NewV3S(0, 0, 0), NewV3S(4, 0, 0), NewV3S(0, 3, 0))
	o := NewV3()
	tri.Orthocenter(o)
	if !o.Aeq(&tri.P0) {
		t.Errorf(format, o.Dump(), tri.P0.Dump())
	}
}

func TestTriangle3SpaceRelationContained(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	tri := NewTriangle3(NewV3S(0, 0, 0), NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	if tri.SpaceRelation(p) != ESpaceRelationContained {
		t.Error("triangle lying in the plane should report Contained")
	}
}

func TestTriangle3SpaceRelationBothSides(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	tri := NewTriangle3(NewV3S(0, 0, -1), NewV3S(1, 0, 1), NewV3S(0, 1, 1))
	if tri.SpaceRelation(p) != ESpaceRelationBothSides {
		t.Error("straddling triangle should report BothSides")
	}
}

func TestTriangle3ExtrudeMovesAlongNormal(t *testing.T) {
	tri := NewTriangle3(NewV3S(0, 0, 0), NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	out := &Triangle3{}
	tri.Extrude(out, 2)
	want := NewV3S(0, 0, 2)
	if !out.P0.Aeq(want) {
		t.Errorf(format, out.P0.Dump(), want.Dump())
	}
}

func TestTriangle3ProjectToPlane(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	tri := NewTriangle3(NewV3S(0, 0, 5), NewV3S(1, 0, 5), NewV3S(0, 1, 5))
	out := &Triangle3{}
	tri.ProjectToPlane(out, p)
	if !p.ContainsV3(&out.P0) || !p.ContainsV3(&out.P1) || !p.ContainsV3(&out.P2) {
		t.Error("projected vertices must lie on the plane")
	}
}
