// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestRay3PointAt(t *testing.T) {
	r := NewRay3(NewV3S(1, 0, 0), NewV3S(0, 1, 0))
	out := NewV3()
	r.PointAt(out, 3)
	want := NewV3S(1, 3, 0)
	if !out.Aeq(want) {
		t.Errorf(format, out.Dump(), want.Dump())
	}
}

func TestRay3TranslateLeavesDirectionAlone(t *testing.T) {
	r := NewRay3(NewV3S(0, 0, 0), NewV3S(1, 0, 0))
	out := &Ray3{}
	out.Translate(r, NewV3S(0, 5, 0))
	if !out.Dir.Aeq(&r.Dir) {
		t.Error("translate must not change direction")
	}
	if !out.Origin.Aeq(NewV3S(0, 5, 0)) {
		t.Errorf(format, out.Origin.Dump(), "(0,5,0)")
	}
}

func TestRay3PlaneIntersection(t *testing.T) {
	r := NewRay3(NewV3S(0, 0, 5), NewV3S(0, 0, -1))
	p := &Plane{0, 0, 1, 0}
	tVal, parallel := r.PlaneIntersection(p)
	if parallel {
		t.Fatal("ray toward the plane must not report parallel")
	}
	if !Aeq(tVal, 5) {
		t.Errorf("got t=%v, wanted 5", tVal)
	}
}

func TestRay3PlaneIntersectionParallel(t *testing.T) {
	r := NewRay3(NewV3S(0, 0, 5), NewV3S(1, 0, 0))
	p := &Plane{0, 0, 1, 0}
	_, parallel := r.PlaneIntersection(p)
	if !parallel {
		t.Fatal("ray parallel to the plane must report parallel")
	}
}
