/*
Package norm implements the four Unicode normalization forms (NFD, NFKD,
NFC, NFKC) from first principles: recursive decomposition mapping,
canonical ordering of combining marks via package ccc, and canonical
composition with the exclusion, singleton, non-starter and blocking
rules from UAX#15.

The tables are curated extracts (see decompEntry). norm/internal/generator
builds the full tables from UnicodeData.txt (field 5, decomposition
mappings) and DerivedNormalizationProps.txt (Full_Composition_Exclusion).
*/
package norm

import (
	"sort"
	"unicode/utf8"

	"github.com/go-uax/uax/ccc"
)

// decompEntry is one retained UnicodeData.txt decomposition mapping.
// decompEntries below is a curated extract; internal/generator writes the
// complete UnicodeData.txt assignment to a separate
// generatedDecompEntries literal (tables_generated.go), which this package
// does not read.
type decompEntry struct {
	cp     rune
	compat bool // true: compatibility decomposition (<tag> prefixed)
	to     []rune
}

var decompEntries = []decompEntry{
	// Canonical decompositions: Latin-1 and Latin Extended-A accents.
	{0x00C0, false, []rune{0x0041, 0x0300}}, // À
	{0x00C1, false, []rune{0x0041, 0x0301}}, // Á
	{0x00C2, false, []rune{0x0041, 0x0302}}, // Â
	{0x00C3, false, []rune{0x0041, 0x0303}}, // Ã
	{0x00C4, false, []rune{0x0041, 0x0308}}, // Ä
	{0x00C8, false, []rune{0x0045, 0x0300}}, // È
	{0x00C9, false, []rune{0x0045, 0x0301}}, // É
	{0x00CA, false, []rune{0x0045, 0x0302}}, // Ê
	{0x00D1, false, []rune{0x004E, 0x0303}}, // Ñ
	{0x00D6, false, []rune{0x004F, 0x0308}}, // Ö
	{0x00DC, false, []rune{0x0055, 0x0308}}, // Ü
	{0x00E0, false, []rune{0x0061, 0x0300}}, // à
	{0x00E1, false, []rune{0x0061, 0x0301}}, // á
	{0x00E2, false, []rune{0x0061, 0x0302}}, // â
	{0x00E3, false, []rune{0x0061, 0x0303}}, // ã
	{0x00E4, false, []rune{0x0061, 0x0308}}, // ä
	{0x00E8, false, []rune{0x0065, 0x0300}}, // è
	{0x00E9, false, []rune{0x0065, 0x0301}}, // é
	{0x00EA, false, []rune{0x0065, 0x0302}}, // ê
	{0x00EB, false, []rune{0x0065, 0x0308}}, // ë
	{0x00F1, false, []rune{0x006E, 0x0303}}, // ñ
	{0x00F6, false, []rune{0x006F, 0x0308}}, // ö
	{0x00FC, false, []rune{0x0075, 0x0308}}, // ü

	// Non-starter canonical decomposition (must never be composed back;
	// listed in fullCompositionExclusions below).
	{0x0344, false, []rune{0x0308, 0x0301}}, // COMBINING GREEK DIALYTIKA TONOS

	// Compatibility decompositions.
	{0xFB00, true, []rune{0x0066, 0x0066}},         // ﬀ
	{0xFB01, true, []rune{0x0066, 0x0069}},         // ﬁ
	{0xFB02, true, []rune{0x0066, 0x006C}},         // ﬂ
	{0xFB03, true, []rune{0x0066, 0x0066, 0x0069}}, // ﬃ
	{0xFB04, true, []rune{0x0066, 0x0066, 0x006C}}, // ﬄ
	{0x00BD, true, []rune{0x0031, 0x2044, 0x0032}}, // ½
	{0x2460, true, []rune{0x0031}},                 // CIRCLED DIGIT ONE
	{0x3300, true, []rune{0x30A2, 0x30D8, 0x3099}}, // example CJK square compat (abridged)
	{0x00A0, true, []rune{0x0020}},                 // NO-BREAK SPACE -> SPACE

	// Devanagari nukta-based canonical decomposition, mirroring ccc's
	// curated Indic coverage.
	{0x0929, false, []rune{0x0928, 0x093C}},
	{0x0931, false, []rune{0x0930, 0x093C}},
	{0x0934, false, []rune{0x0933, 0x093C}},
}

// fullCompositionExclusions lists code points that must never be produced
// by canonical composition even though they have a canonical decomposition
// (singletons, script-specific exclusions, and non-starter decompositions).
var fullCompositionExclusions = map[rune]bool{
	0x0344: true,
}

const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount
	hangulSCount = hangulLCount * hangulNCount
)

// decomposeHangul implements the algorithmic Hangul syllable decomposition
// of UAX#44 section 3.12, returning (L,V[,T]) or nil if cp is not a
// precomposed Hangul syllable.
func decomposeHangul(cp rune) []rune {
	sIndex := cp - hangulSBase
	if sIndex < 0 || sIndex >= hangulSCount {
		return nil
	}
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := sIndex % hangulTCount
	if t == 0 {
		return []rune{l, v}
	}
	return []rune{l, v, hangulTBase + t}
}

// composeHangul is the inverse of decomposeHangul: given a starter and the
// next code point, returns the composed syllable and true if they combine.
func composeHangul(starter, cp rune) (rune, bool) {
	if starter >= hangulLBase && starter < hangulLBase+hangulLCount &&
		cp >= hangulVBase && cp < hangulVBase+hangulVCount {
		lIndex := starter - hangulLBase
		vIndex := cp - hangulVBase
		return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount, true
	}
	if starter >= hangulSBase && starter < hangulSBase+hangulSCount &&
		(starter-hangulSBase)%hangulTCount == 0 &&
		cp > hangulTBase && cp < hangulTBase+hangulTCount {
		return starter + (cp - hangulTBase), true
	}
	return 0, false
}

var decompByRune = buildDecompIndex()

func buildDecompIndex() map[rune]decompEntry {
	m := make(map[rune]decompEntry, len(decompEntries))
	for _, e := range decompEntries {
		m[e.cp] = e
	}
	return m
}

// composePairs maps (starter, combining) -> composed, built as the
// inverse of every two-codepoint canonical (non-excluded) decomposition.
var composePairs = buildComposePairs()

func buildComposePairs() map[[2]rune]rune {
	m := make(map[[2]rune]rune)
	for _, e := range decompEntries {
		if e.compat || len(e.to) != 2 || fullCompositionExclusions[e.cp] {
			continue
		}
		m[[2]rune{e.to[0], e.to[1]}] = e.cp
	}
	return m
}

// decomposeOne returns the one-level decomposition of cp under the given
// compatibility policy, or nil if cp has no applicable mapping.
func decomposeOne(cp rune, compat bool) []rune {
	if to := decomposeHangul(cp); to != nil {
		return to
	}
	e, ok := decompByRune[cp]
	if !ok {
		return nil
	}
	if e.compat && !compat {
		return nil
	}
	return e.to
}

// decomposeFull recursively decomposes cp to its canonical or compatibility
// base form.
func decomposeFull(cp rune, compat bool) []rune {
	one := decomposeOne(cp, compat)
	if one == nil {
		return []rune{cp}
	}
	out := make([]rune, 0, len(one))
	for _, c := range one {
		out = append(out, decomposeFull(c, compat)...)
	}
	return out
}

// reorder applies the canonical ordering algorithm (UAX#15): a stable sort
// by combining class within each maximal run of non-starter (ccc != 0)
// code points.
func reorder(cps []rune) {
	start := 0
	for start < len(cps) {
		if ccc.Of(cps[start]) == 0 {
			start++
			continue
		}
		end := start
		for end < len(cps) && ccc.Of(cps[end]) != 0 {
			end++
		}
		run := cps[start:end]
		sort.SliceStable(run, func(i, j int) bool {
			return ccc.Of(run[i]) < ccc.Of(run[j])
		})
		start = end
	}
}

func decompose(cps []rune, compat bool) []rune {
	out := make([]rune, 0, len(cps))
	for _, cp := range cps {
		out = append(out, decomposeFull(cp, compat)...)
	}
	reorder(out)
	return out
}

// compose implements canonical composition over an already canonically
// ordered, fully decomposed sequence: a starter absorbs a following
// combining mark when (a) the pair has a registered composition and
// (b) no intervening combining mark of the same or higher class blocks
// it (UAX#15's blocking rule).
func compose(cps []rune) []rune {
	if len(cps) == 0 {
		return cps
	}
	out := make([]rune, 0, len(cps))
	out = append(out, cps[0])
	lastStarterIdx := 0
	if ccc.Of(cps[0]) != 0 {
		lastStarterIdx = -1
	}
	maxCCCSinceStarter := -1
	for i := 1; i < len(cps); i++ {
		cp := cps[i]
		cls := ccc.Of(cp)
		if lastStarterIdx >= 0 {
			if composed, ok := composeHangul(out[lastStarterIdx], cp); ok {
				out[lastStarterIdx] = composed
				continue
			}
			if composed, ok := composePairs[[2]rune{out[lastStarterIdx], cp}]; ok &&
				int(cls) > maxCCCSinceStarter {
				out[lastStarterIdx] = composed
				continue
			}
		}
		out = append(out, cp)
		if cls == 0 {
			lastStarterIdx = len(out) - 1
			maxCCCSinceStarter = -1
		} else if int(cls) > maxCCCSinceStarter {
			maxCCCSinceStarter = int(cls)
		}
	}
	return out
}

// NFD returns the canonical decomposition of s.
func NFD(s string) string {
	return string(decompose([]rune(s), false))
}

// NFKD returns the compatibility decomposition of s.
func NFKD(s string) string {
	return string(decompose([]rune(s), true))
}

// NFC returns the canonical composition of s: NFD followed by canonical
// recomposition.
func NFC(s string) string {
	return string(compose(decompose([]rune(s), false)))
}

// NFKC returns the compatibility composition of s: NFKD followed by
// canonical recomposition.
func NFKC(s string) string {
	return string(compose(decompose([]rune(s), true)))
}

// QuickCheckResult is the outcome of a Quick_Check probe (UAX#15 section
// 8): Yes means the string is already in the target form, No means it
// definitely is not, Maybe means a full normalization pass is required to
// tell.
type QuickCheckResult int

const (
	QCYes QuickCheckResult = iota
	QCNo
	QCMaybe
)

// QuickCheckNFC performs a cheap ASCII-fast-path probe: pure ASCII is
// always already NFC (and NFD, NFKC, NFKD). Anything outside ASCII falls
// back to Maybe, deferring to a full NFC pass.
func QuickCheckNFC(s string) QuickCheckResult {
	for _, b := range []byte(s) {
		if b >= utf8.RuneSelf {
			return QCMaybe
		}
	}
	return QCYes
}
