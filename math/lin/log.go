// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

import (
	"os"

	"github.com/rs/zerolog"
)

// zlog is the package's developer-error sink. The math kernel's happy path
// never logs; these lines fire only for the "undefined-input" class of
// mistakes documented throughout this package (null-length normalize,
// singular inverse, zero-length axis, ...) where returning a garbage value
// is cheaper than threading an error return through every hot-path method.
var zlog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Str("pkg", "lin").Logger()
