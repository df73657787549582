// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestSphere3Translate(t *testing.T) {
	s := NewSphere3(NewV3S(1, 1, 1), 2)
	out := &Sphere3{}
	out.Translate(s, NewV3S(1, 0, 0))
	want := NewV3S(2, 1, 1)
	if !out.Center.Aeq(want) || !Aeq(out.Radius, 2) {
		t.Errorf(format, out.Center.Dump(), want.Dump())
	}
}

func TestSphere3RotateInPlaceIsNoop(t *testing.T) {
	s := NewSphere3(NewV3S(3, 0, 0), 1)
	q := NewQ().SetAa(0, 0, 1, HalfPi)
	out := &Sphere3{}
	out.Rotate(s, q)
	if !out.Center.Aeq(&s.Center) {
		t.Errorf("Rotate about own center must not move the center: %s", out.Center.Dump())
	}
}

func TestSphere3RotateAboutPivotMovesCenter(t *testing.T) {
	s := NewSphere3(NewV3S(1, 0, 0), 1)
	q := NewQ().SetAa(0, 0, 1, HalfPi)
	out := &Sphere3{}
	out.RotateAbout(s, q, NewV3())
	want := NewV3S(0, 1, 0)
	if !out.Center.Aeq(want) {
		t.Errorf(format, out.Center.Dump(), want.Dump())
	}
}

func TestSphere3SpaceRelation(t *testing.T) {
	p := &Plane{0, 0, 1, 0}
	inside := NewSphere3(NewV3S(0, 0, 0), 1)
	if inside.SpaceRelation(p) != ESpaceRelationBothSides {
		t.Error("sphere straddling the plane should report BothSides")
	}
	above := NewSphere3(NewV3S(0, 0, 5), 1)
	if above.SpaceRelation(p) != ESpaceRelationPositiveSide {
		t.Error("sphere entirely above the plane should report PositiveSide")
	}
}

func TestSphere4TranslatePreservesW(t *testing.T) {
	s := NewSphere4(NewV4S(0, 0, 0, 9), 1)
	out := &Sphere4{}
	out.Translate(s, NewV3S(1, 2, 3))
	if out.Center.W != 9 {
		t.Errorf("got w=%v, wanted 9", out.Center.W)
	}
}
