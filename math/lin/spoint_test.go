// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestSPointTranslate3AndBack(t *testing.T) {
	pts := []V3{{1, 2, 3}, {4, 5, 6}}
	orig := make([]V3, len(pts))
	copy(orig, pts)

	v := NewV3S(1, -1, 2)
	SPointTranslate3(pts, v)
	neg := NewV3().Scale(v, -1)
	SPointTranslate3(pts, neg)

	for i := range pts {
		if !pts[i].Aeq(&orig[i]) {
			t.Errorf(format, pts[i].Dump(), orig[i].Dump())
		}
	}
}

func TestSPointRotate3AboutOrigin(t *testing.T) {
	pts := []V3{{1, 0, 0}}
	q := NewQ().SetAa(0, 0, 1, HalfPi)
	SPointRotate3(pts, q)
	want := NewV3S(0, 1, 0) // +90 degrees about z takes +x to +y
	if !pts[0].Aeq(want) {
		t.Errorf(format, pts[0].Dump(), want.Dump())
	}
}

func TestSPointScale3WithPivotAtPivotIsIdentity(t *testing.T) {
	pivot := NewV3S(5, 5, 5)
	pts := []V3{*pivot}
	SPointScale3WithPivot(pts, 2, 3, 4, pivot)
	if !pts[0].Aeq(pivot) {
		t.Errorf("scaling about the pivot must leave the pivot point fixed: %s", pts[0].Dump())
	}
}

func TestSPointRotate3WithPivotAtPivotIsIdentity(t *testing.T) {
	pivot := NewV3S(2, 2, 2)
	pts := []V3{*pivot}
	q := NewQ().SetAa(0, 1, 0, 1.1)
	SPointRotate3WithPivot(pts, q, pivot)
	if !pts[0].Aeq(pivot) {
		t.Errorf("rotating about the pivot must leave the pivot point fixed: %s", pts[0].Dump())
	}
}

func TestSPointTransformM34_4PreservesW(t *testing.T) {
	tm := NewTransformationMatrix4x3().SetSRT(NewV3S(1, 1, 1), NewQI(), NewV3S(1, 2, 3))
	pts := []V4{{0, 0, 0, 0}, {0, 0, 0, 1}}
	SPointTransformM34_4(pts, tm)
	if pts[0].W != 0 {
		t.Errorf("direction's w must stay 0, got %v", pts[0].W)
	}
	if pts[0].X != 0 || pts[0].Y != 0 || pts[0].Z != 0 {
		t.Error("direction must not be translated")
	}
	if pts[1].W != 1 {
		t.Errorf("position's w must stay 1, got %v", pts[1].W)
	}
	if !Aeq(pts[1].X, 1) || !Aeq(pts[1].Y, 2) || !Aeq(pts[1].Z, 3) {
		t.Error("position must be translated")
	}
}
