// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTransformationMatrix4x3SetSRTAppliesScaleRotateTranslate(t *testing.T) {
	scale := NewV3S(2, 1, 1)
	rot := NewQ().SetAa(0, 0, 1, HalfPi)
	trans := NewV3S(5, 0, 0)
	tm := NewTransformationMatrix4x3().SetSRT(scale, rot, trans)

	// (1,0,0) scaled to (2,0,0), rotated 90deg about Z (row-vector
	// convention: v' = v*M) to (0,-2,0), translated by (5,0,0) to (5,-2,0).
	in := NewV3S(1, 0, 0)
	out := NewV3()
	tm.ApplyV3(out, in)
	want := NewV3S(5, -2, 0)
	if !out.Aeq(want) {
		t.Errorf(format, out.Dump(), want.Dump())
	}
}

func TestTransformationMatrix4x3DecomposeRoundTrips(t *testing.T) {
	scale := NewV3S(2, 3, 4)
	rot := NewQ().SetAa(0, 1, 0, 0.7)
	trans := NewV3S(1, -2, 3)
	tm := NewTransformationMatrix4x3().SetSRT(scale, rot, trans)

	gotScale, gotRot, gotTrans := NewV3(), NewQ(), NewV3()
	tm.Decompose(gotScale, gotRot, gotTrans)

	if !gotScale.Aeq(scale) {
		t.Errorf(format, gotScale.Dump(), scale.Dump())
	}
	if !gotTrans.Aeq(trans) {
		t.Errorf(format, gotTrans.Dump(), trans.Dump())
	}
	if !gotRot.Aeq(rot) {
		t.Errorf(format, gotRot.Dump(), rot.Dump())
	}
}

func TestTransformationMatrix4x3ApplyV4PreservesW(t *testing.T) {
	tm := NewTransformationMatrix4x3().SetSRT(NewV3S(1, 1, 1), NewQI(), NewV3S(10, 0, 0))
	dir := NewV4S(1, 0, 0, 0)
	out := NewV4()
	tm.ApplyV4(out, dir)
	if out.W != 0 {
		t.Errorf("direction's w must stay 0, got %v", out.W)
	}
	if out.X != 1 {
		t.Errorf("direction must not be translated, got x=%v", out.X)
	}

	pos := NewV4S(1, 0, 0, 1)
	tm.ApplyV4(out, pos)
	if out.W != 1 {
		t.Errorf("position's w must stay 1, got %v", out.W)
	}
	if !Aeq(out.X, 11) {
		t.Errorf("position must be translated, got x=%v", out.X)
	}
}

func TestTransformationMatrix4x3MultComposesLeftToRight(t *testing.T) {
	a := NewTransformationMatrix4x3().SetSRT(NewV3S(1, 1, 1), NewQI(), NewV3S(1, 0, 0))
	b := NewTransformationMatrix4x3().SetSRT(NewV3S(1, 1, 1), NewQI(), NewV3S(0, 1, 0))
	combined := NewTransformationMatrix4x3().Mult(a, b)

	direct := NewV3()
	combined.ApplyV3(direct, NewV3())

	viaA := NewV3()
	a.ApplyV3(viaA, NewV3())
	viaB := NewV3()
	b.ApplyV3(viaB, viaA)

	if !direct.Aeq(viaB) {
		t.Errorf(format, direct.Dump(), viaB.Dump())
	}
}

func TestTransformationMatrix4x4SetSRTAndDecompose(t *testing.T) {
	scale := NewV3S(1, 2, 3)
	rot := NewQ().SetAa(1, 0, 0, 0.4)
	trans := NewV3S(2, 2, 2)
	tm := NewTransformationMatrix4x4().SetSRT(scale, rot, trans)

	gotScale, gotRot, gotTrans := NewV3(), NewQ(), NewV3()
	tm.Decompose(gotScale, gotRot, gotTrans)

	if !gotScale.Aeq(scale) {
		t.Errorf(format, gotScale.Dump(), scale.Dump())
	}
	if !gotTrans.Aeq(trans) {
		t.Errorf(format, gotTrans.Dump(), trans.Dump())
	}
	if !gotRot.Aeq(rot) {
		t.Errorf(format, gotRot.Dump(), rot.Dump())
	}
}
