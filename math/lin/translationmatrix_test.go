// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestTranslationMatrix4x3SetVAndVector(t *testing.T) {
	v := NewV3S(1, 2, 3)
	m := NewTranslationMatrix4x3().SetV(v)
	out := NewV3()
	m.Vector(out)
	if !out.Aeq(v) {
		t.Errorf(format, out.Dump(), v.Dump())
	}
	if !m.Verify() {
		t.Error("translation matrix's 3x3 block must remain identity")
	}
}

func TestTranslationMatrix4x4SetVAndVector(t *testing.T) {
	v := NewV3S(4, 5, 6)
	m := NewTranslationMatrix4x4().SetV(v)
	out := NewV3()
	m.Vector(out)
	if !out.Aeq(v) {
		t.Errorf(format, out.Dump(), v.Dump())
	}
}
