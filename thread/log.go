// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package thread

import (
	"os"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("pkg", "thread").Logger()
