// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import "testing"

func TestSpaceConversionMatrixSetViewMovesCameraToOrigin(t *testing.T) {
	cam := NewV3S(0, 0, 5)
	s := NewSpaceConversionMatrix().SetView(cam, NewQI())
	out := NewV4()
	s.TransformV4(out, NewV4S(0, 0, 5, 1))
	want := NewV3S(0, 0, 0)
	if !Aeq(out.X, want.X) || !Aeq(out.Y, want.Y) || !Aeq(out.Z, want.Z) {
		t.Errorf("camera position did not map to the view-space origin: %s", out.Dump())
	}
}

func TestSpaceConversionMatrixComposeIsViewThenProjection(t *testing.T) {
	view := NewSpaceConversionMatrix().SetView(NewV3S(0, 0, 0), NewQI())
	proj := NewSpaceConversionMatrix().SetOrtho(-1, 1, -1, 1, 0.1, 100)
	combined := NewSpaceConversionMatrix().Compose(view, proj)

	direct := NewV4()
	combined.TransformV4(direct, NewV4S(0.5, 0.5, -1, 1))

	viaView := NewV4()
	view.TransformV4(viaView, NewV4S(0.5, 0.5, -1, 1))
	viaBoth := NewV4()
	proj.TransformV4(viaBoth, viaView)

	if !Aeq(direct.X, viaBoth.X) || !Aeq(direct.Y, viaBoth.Y) || !Aeq(direct.Z, viaBoth.Z) || !Aeq(direct.W, viaBoth.W) {
		t.Errorf(format, direct.Dump(), viaBoth.Dump())
	}
}
