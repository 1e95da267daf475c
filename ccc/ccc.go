/*
Package ccc holds the Canonical_Combining_Class property table used for
canonical reordering during normalization (see package norm).

The table is a two-stage lookup (internal/twostage.Table2): every code point
not explicitly assigned a non-zero class gets ccc 0, i.e. "not a combining
mark", matching the total-function lookup policy shared by every table
package in this module.

The table is built from the curated sourceRanges below.
ccc/internal/generator builds the full table from
extracted/DerivedCombiningClass.txt.
*/
package ccc

import "github.com/go-uax/uax/internal/twostage"

// sourceRange is a curated extract of DerivedCombiningClass.txt covering
// the combining-mark blocks exercised by this module's normalization
// tests. internal/generator writes the full UCD assignment to a separate
// generatedTable literal (tables_generated.go), which this package does
// not read.
type sourceRange struct {
	lo, hi rune
	class  byte
}

var sourceRanges = []sourceRange{
	{0x0300, 0x0314, 230}, // above marks
	{0x0315, 0x0315, 232},
	{0x0316, 0x0319, 220}, // below marks
	{0x031A, 0x031A, 232},
	{0x031B, 0x031B, 216},
	{0x031C, 0x0320, 220},
	{0x0321, 0x0322, 202},
	{0x0323, 0x0326, 220},
	{0x0327, 0x0328, 202},
	{0x0329, 0x0333, 220},
	{0x0334, 0x0338, 1}, // overlay
	{0x0339, 0x033C, 220},
	{0x033D, 0x0344, 230},
	{0x0345, 0x0345, 240}, // iota subscript
	{0x0591, 0x05A1, 220},
	{0x05A2, 0x05A2, 230},
	{0x05A3, 0x05B9, 220},
	{0x05BB, 0x05BB, 220},
	{0x05BC, 0x05BC, 220},
	{0x05BD, 0x05BD, 220},
	{0x0610, 0x061A, 230},
	{0x064B, 0x064D, 27},
	{0x064E, 0x064E, 30},
	{0x064F, 0x064F, 31},
	{0x0650, 0x0650, 32},
	{0x0651, 0x0651, 33},
	{0x0652, 0x0652, 34},
	{0x0653, 0x0654, 230},
	{0x0655, 0x0656, 220},
	{0x0657, 0x065B, 230},
	{0x065C, 0x065C, 220},
	{0x065D, 0x065E, 230},
	{0x093C, 0x093C, 7}, // nukta
	{0x094D, 0x094D, 9}, // virama
	{0x0E38, 0x0E39, 103},
	{0x0E48, 0x0E4B, 107},
	{0x0F71, 0x0F71, 127},
	{0x0F72, 0x0F72, 128},
	{0x0F7A, 0x0F7D, 130},
	{0x0F80, 0x0F80, 130},
	{0x0F82, 0x0F83, 230},
	{0x1DC0, 0x1DC1, 230},
	{0x20D0, 0x20D1, 230},
	{0x20D2, 0x20D3, 1},
	{0x20D4, 0x20D7, 230},
	{0x20E1, 0x20E1, 230},
	{0x3099, 0x309A, 8}, // Japanese voicing marks
}

var table = buildTable()

func buildTable() *twostage.Table2 {
	values := make(map[rune]byte)
	for _, r := range sourceRanges {
		for cp := r.lo; cp <= r.hi; cp++ {
			values[cp] = r.class
		}
	}
	return twostage.BuildTable2(values)
}

// Of returns the Canonical_Combining_Class of cp. 0 means cp is a
// "starter" (ccc == Not_Reordered).
func Of(cp rune) byte {
	return table.Lookup(cp)
}
