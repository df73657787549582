// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestLineSegment3Length(t *testing.T) {
	l := NewLineSegment3(NewV3S(0, 0, 0), NewV3S(3, 4, 0))
	if got := l.Length(); !Aeq(got, 5) {
		t.Errorf("got length %v, wanted 5", got)
	}
}

func TestLineSegment3Direction(t *testing.T) {
	l := NewLineSegment3(NewV3S(0, 0, 0), NewV3S(0, 5, 0))
	d := NewV3()
	l.Direction(d)
	want := NewV3S(0, 1, 0)
	if !d.Aeq(want) {
		t.Errorf(format, d.Dump(), want.Dump())
	}
}

func TestLineSegment3PointAtEndpoints(t *testing.T) {
	l := NewLineSegment3(NewV3S(0, 0, 0), NewV3S(10, 0, 0))
	out := NewV3()
	l.PointAt(out, 0)
	if !out.Aeq(&l.P0) {
		t.Errorf(format, out.Dump(), l.P0.Dump())
	}
	l.PointAt(out, 1)
	if !out.Aeq(&l.P1) {
		t.Errorf(format, out.Dump(), l.P1.Dump())
	}
}

func TestLineSegment3SpaceRelation(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	straddle := NewLineSegment3(NewV3S(0, 0, -1), NewV3S(0, 0, 1))
	if straddle.SpaceRelation(p) != ESpaceRelationBothSides {
		t.Error("straddling segment should report BothSides")
	}
	above := NewLineSegment3(NewV3S(0, 0, 1), NewV3S(1, 0, 1))
	if above.SpaceRelation(p) != ESpaceRelationPositiveSide {
		t.Error("segment entirely above should report PositiveSide")
	}
	onPlane := NewLineSegment3(NewV3S(0, 0, 0), NewV3S(1, 1, 0))
	if onPlane.SpaceRelation(p) != ESpaceRelationContained {
		t.Error("segment lying in the plane should report Contained")
	}
}
