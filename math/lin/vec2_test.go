// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"fmt"
	"testing"
)

func TestV2AddSub(t *testing.T) {
	a, b := NewV2S(1, 2), NewV2S(3, 4)
	sum := NewV2().Add(a, b)
	want := NewV2S(4, 6)
	if !sum.Aeq(want) {
		t.Errorf(format, sum.Dump(), want.Dump())
	}
	diff := NewV2().Sub(sum, b)
	if !diff.Aeq(a) {
		t.Errorf(format, diff.Dump(), a.Dump())
	}
}

func TestV2UnitLength(t *testing.T) {
	v := NewV2S(3, 4)
	u := NewV2().Scale(v, 1)
	u.Unit()
	if !Aeq(u.Len(), 1) {
		t.Errorf("got length %v, wanted 1", u.Len())
	}
}

func TestV2DotAndLenSqr(t *testing.T) {
	v := NewV2S(3, 4)
	if got := v.LenSqr(); !Aeq(got, 25) {
		t.Errorf("got %v, wanted 25", got)
	}
}

func TestSPointTranslate2RoundTrip(t *testing.T) {
	pts := []V2{{1, 1}, {2, 2}}
	orig := make([]V2, len(pts))
	copy(orig, pts)
	v := NewV2S(5, -3)
	SPointTranslate2(pts, v)
	SPointTranslate2(pts, NewV2().Scale(v, -1))
	for i := range pts {
		if !pts[i].Aeq(&orig[i]) {
			t.Errorf(format, pts[i].Dump(), orig[i].Dump())
		}
	}
}

func (v *V2) Dump() string { return fmt.Sprintf("%2.9f", *v) }
