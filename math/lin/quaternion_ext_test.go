// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestQConjugateNegatesAxis(t *testing.T) {
	r := NewQ().SetAa(0, 0, 1, 0.8)
	c := NewQ().Conjugate(r)
	if c.X != -r.X || c.Y != -r.Y || c.Z != -r.Z || c.W != r.W {
		t.Errorf(format, c.Dump(), r.Dump())
	}
}

func TestQInvertUnitIsConjugate(t *testing.T) {
	r := NewQ().SetAa(1, 0, 0, 0.5)
	inv := NewQ().InvertUnit(r)
	prod := NewQ().Mult(r, inv)
	if !prod.Aeq(NewQI()) {
		t.Errorf(format, prod.Dump(), NewQI().Dump())
	}
}

func TestQInvertGeneral(t *testing.T) {
	r := &Q{1, 2, 3, 4}
	inv := NewQ().Invert(r)
	prod := NewQ().Mult(r, inv)
	if !prod.Aeq(NewQI()) {
		t.Errorf(format, prod.Dump(), NewQI().Dump())
	}
}

func TestQSetEulerToEulerRoundTrip(t *testing.T) {
	yawZ, pitchX, rollY := Real(0.3), Real(0.2), Real(0.4)
	q := NewQ().SetEuler(yawZ, pitchX, rollY)
	gotYaw, gotPitch, gotRoll := q.ToEuler()
	if !Aeq(gotYaw, yawZ) || !Aeq(gotPitch, pitchX) || !Aeq(gotRoll, rollY) {
		t.Errorf("got (%v,%v,%v), wanted (%v,%v,%v)", gotYaw, gotPitch, gotRoll, yawZ, pitchX, rollY)
	}
}

func TestQSlerpBoundaries(t *testing.T) {
	r := NewQ().SetAa(0, 0, 1, 0.1)
	s := NewQ().SetAa(0, 0, 1, 1.2)
	q := NewQ()
	q.Slerp(r, s, 0)
	if !q.Aeq(r) {
		t.Errorf("t=0 must return r: %s vs %s", q.Dump(), r.Dump())
	}
	q.Slerp(r, s, 1)
	if !q.Aeq(s) {
		t.Errorf("t=1 must return s: %s vs %s", q.Dump(), s.Dump())
	}
}

func TestQSlerpMidpointIsUnit(t *testing.T) {
	r := NewQ().SetAa(1, 0, 0, 0.2)
	s := NewQ().SetAa(0, 1, 0, 1.5)
	q := NewQ().Slerp(r, s, 0.5)
	if !Aeq(q.Len(), 1) {
		t.Errorf("slerp midpoint must stay unit length, got %v", q.Len())
	}
}

func TestQSetTMRoundTrip(t *testing.T) {
	rot := NewQ().SetAa(0, 1, 0, 0.6)
	tm := NewTransformationMatrix4x3().SetSRT(NewV3S(3, 3, 3), rot, NewV3())
	got := NewQ().SetTM(tm)
	if !got.Aeq(rot) {
		t.Errorf(format, got.Dump(), rot.Dump())
	}
}

func TestQSetTM4RoundTrip(t *testing.T) {
	rot := NewQ().SetAa(1, 0, 0, 0.3)
	tm := NewTransformationMatrix4x4().SetSRT(NewV3S(2, 5, 1), rot, NewV3())
	got := NewQ().SetTM4(tm)
	if !got.Aeq(rot) {
		t.Errorf(format, got.Dump(), rot.Dump())
	}
}
