/*
Package grapheme implements Unicode Annex #29 extended grapheme cluster
breaking.

UAX#29 defines code-point classes and a cascade of rules for placing
break points between grapheme clusters. This package applies that
cascade directly over the tables in package gbp.

Typical usage:

	g := grapheme.NewGraphemes("🇩🇪🧑‍🚀")
	for g.Next() {
		cluster := g.Str()
		_ = cluster
	}

For whole-string convenience, Split and Count wrap the same iterator.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.
*/
package grapheme

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Version is the Unicode version this package conforms to.
const Version = "15.0.0"
