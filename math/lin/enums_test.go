// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEIntersectionsString(t *testing.T) {
	assert.Equal(t, "None", EIntersectionsNone.String())
	assert.Equal(t, "One", EIntersectionsOne.String())
	assert.Equal(t, "Infinite", EIntersectionsInfinite.String())
	assert.Equal(t, "Unknown", EIntersections(99).String())
}

func TestESpaceRelationString(t *testing.T) {
	assert.Equal(t, "Contained", ESpaceRelationContained.String())
	assert.Equal(t, "PositiveSide", ESpaceRelationPositiveSide.String())
	assert.Equal(t, "NegativeSide", ESpaceRelationNegativeSide.String())
	assert.Equal(t, "BothSides", ESpaceRelationBothSides.String())
	assert.Equal(t, "Unknown", ESpaceRelation(99).String())
}
