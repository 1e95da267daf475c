/*
Package uax is a Unicode text-processing core.

It provides the primitives that the sub-packages build on: a UTF-8
code-point iterator (see CodePointIterator), the shared error kinds
surfaced by iterators and normalizers, and a package-level tracer used
throughout the module's sub-packages.

Sub-packages

  - gbp:      grapheme-break, Indic-conjunct-break and Extended_Pictographic
    property tables (UAX#29 code-point classes), plus the offline generator
    that builds them from GraphemeBreakProperty.txt / emoji-data.txt /
    DerivedCoreProperties.txt.
  - ccc:      canonical combining class table (UnicodeData.txt /
    DerivedCombiningClass.txt), plus its generator.
  - dwp:      monospace display-width table (UAX#11 East_Asian_Width),
    plus its generator and an East-Asian rendering Context.
  - fold:     full case-folding table (CaseFolding.txt statuses C and F),
    plus its generator.
  - norm:     canonical/compatibility decomposition and composition
    tables and the NFD/NFKD/NFC/NFKC algorithms, plus their generator.
  - grapheme: the UAX#29 extended grapheme cluster iterator, built on gbp.
  - width:    codePointWidth / strWidth (UAX#11 combined with
    grapheme-aware emoji/variation-selector rules), built on dwp and
    grapheme.
  - caseless: canonical and compatibility caseless matching (UAX#44
    D145/D146), built on norm and fold.

Each table package is usable standalone; the higher-level packages
(grapheme, width, caseless) compose them the way a client normally wants
to use them.

Conformance

grapheme's conformance test runs every line of GraphemeBreakTest.txt when
that fixture has been downloaded (see internal/testdata for the loader);
it is skipped otherwise. The norm tests do not read NormalizationTest.txt.
*/
package uax

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer, shared by every sub-package that does not
// carry a more specific tracer of its own.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
