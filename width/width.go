/*
Package width computes the monospace display width of text: single code
points via dwp, and whole grapheme clusters via dwp combined with package
grapheme, honoring the two variation-selector overrides (text presentation
U+FE0E forces width 1, emoji presentation U+FE0F forces width 2) that sit
on top of a cluster's otherwise-determined width.

Grounded on the reference uax11.Context / Width split between a per-code-
point table lookup and a context-aware, grapheme-level Width function,
adapted here to a working implementation (the reference's resolveToNarrow
/ resolveToWide were stubs that always returned 0).
*/
package width

import (
	"github.com/go-uax/uax/dwp"
	"github.com/go-uax/uax/grapheme"
)

// CodePointWidth returns the monospace display width of a single code
// point in the default (Latin) rendering context.
func CodePointWidth(cp rune) int8 {
	return dwp.CodePointWidth(cp)
}

// CodePointWidthContext returns the monospace display width of cp under
// ctx, letting an East-Asian context resolve Ambiguous code points to 2.
func CodePointWidthContext(cp rune, ctx *dwp.Context) int8 {
	return dwp.CodePointWidthContext(cp, ctx)
}

const (
	variationSelectorText = 0xFE0E // VS15: force text presentation, width 1
	variationSelectorEmoji = 0xFE0F // VS16: force emoji presentation, width 2
)

// clusterWidth returns the display width of one extended grapheme
// cluster: the width of its first non-zero-width code point, overridden
// by a trailing variation selector if present.
func clusterWidth(cluster string, ctx *dwp.Context) int {
	runes := []rune(cluster)
	if len(runes) == 0 {
		return 0
	}
	base := 0
	for _, cp := range runes {
		if w := CodePointWidthContext(cp, ctx); w != 0 {
			base = int(w)
			break
		}
	}
	last := runes[len(runes)-1]
	switch last {
	case variationSelectorText:
		return 1
	case variationSelectorEmoji:
		return 2
	}
	return base
}

// StrWidth returns the total monospace display width of s in the default
// (Latin) rendering context, processing s cluster by cluster so that
// combining marks, skin-tone modifiers and variation selectors do not
// each contribute their own width.
func StrWidth(s string) int {
	return StrWidthContext(s, nil)
}

// StrWidthContext is StrWidth under an explicit rendering Context. A nil
// ctx behaves like dwp.LatinContext.
//
// Negative-width code points (backspace-like controls) are folded into
// the running total and clamped to zero only once, at the very end,
// rather than after every cluster: "\x7FA\x08\x08" totals -1 + 1 - 1 - 1
// = -2 along the way but the string's width is reported as 0, not
// clamped mid-stream to hide the fact that more backspaces were consumed
// than printable width was produced.
func StrWidthContext(s string, ctx *dwp.Context) int {
	total := 0
	g := grapheme.NewGraphemes(s)
	for g.Next() {
		total += clusterWidth(g.Str(), ctx)
	}
	if total < 0 {
		return 0
	}
	return total
}
