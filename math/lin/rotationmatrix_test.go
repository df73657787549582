// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestRotationMatrix3x3IdentityVerifies(t *testing.T) {
	r := NewRotationMatrix3x3()
	if !r.Verify() {
		t.Error("identity rotation must verify")
	}
}

func TestRotationMatrix3x3SetAaVerifies(t *testing.T) {
	r := NewRotationMatrix3x3().SetAa(0, 0, 1, HalfPi)
	if !r.Verify() {
		t.Error("90 degree rotation about Z must verify as orthonormal det+1")
	}
}

func TestRotationMatrix3x3InverseIsTranspose(t *testing.T) {
	r := NewRotationMatrix3x3().SetAa(1, 0, 0, 1.1)
	inv := &RotationMatrix3x3{}
	r.Inverse(inv)
	prod := NewM3().Mult(&r.M3, &inv.M3)
	if !prod.Aeq(M3I) {
		t.Error("r * inverse(r) must be identity")
	}
}

func TestRotationMatrix3x3SetEuler(t *testing.T) {
	r := NewRotationMatrix3x3().SetEuler(HalfPi, 0, 0)
	if !r.Verify() {
		t.Error("Euler-built rotation must verify")
	}
}
