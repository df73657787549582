// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEThreadPriorityString(t *testing.T) {
	assert.Equal(t, "Lowest", Lowest.String())
	assert.Equal(t, "Low", Low.String())
	assert.Equal(t, "Normal", Normal.String())
	assert.Equal(t, "High", High.String())
	assert.Equal(t, "Highest", Highest.String())
	assert.Equal(t, "Unknown", EThreadPriority(99).String())
}

func TestEThreadPriorityOrdering(t *testing.T) {
	require.Less(t, int(Lowest), int(Low))
	require.Less(t, int(Low), int(Normal))
	require.Less(t, int(Normal), int(High))
	require.Less(t, int(High), int(Highest))
}
