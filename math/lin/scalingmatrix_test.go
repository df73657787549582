// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestScalingMatrix3x3SetS(t *testing.T) {
	s := NewScalingMatrix3x3().SetS(2, 3, 4)
	if !s.Verify() {
		t.Error("diagonal scale matrix must verify")
	}
	x, y, z := s.Factors()
	if !Aeq(x, 2) || !Aeq(y, 3) || !Aeq(z, 4) {
		t.Errorf("got factors %v %v %v, wanted 2 3 4", x, y, z)
	}
}

func TestScalingMatrix3x3SetUniform(t *testing.T) {
	s := NewScalingMatrix3x3().SetUniform(5)
	x, y, z := s.Factors()
	if !Aeq(x, 5) || !Aeq(y, 5) || !Aeq(z, 5) {
		t.Errorf("got factors %v %v %v, wanted 5 5 5", x, y, z)
	}
}

func TestScalingMatrix3x3Inverse(t *testing.T) {
	s := NewScalingMatrix3x3().SetS(2, 4, 8)
	inv := &ScalingMatrix3x3{}
	s.Inverse(inv)
	prod := NewM3().Mult(&s.M3, &inv.M3)
	if !prod.Aeq(M3I) {
		t.Error("s * inverse(s) must be identity")
	}
}
