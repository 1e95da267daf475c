/*
Package grapheme segments text into extended grapheme clusters per UAX#29,
using the rule cascade GB1 through GB999 over the property table in
package gbp: CR×LF, control/CR/LF boundaries, Hangul syllable assembly
(GB6-GB8), Extend/ZWJ/SpacingMark/Prepend joining (GB9, GB9a, GB9b), the
Indic conjunct-break exception (GB9c), Extended_Pictographic ZWJ sequences
(GB11), and Regional_Indicator pairing (GB12/GB13).

Grounded on the rule layout of the reference Breaker, rewritten as a
single forward-scanning state machine instead of an NFA-recognizer
pipeline: the property table already resolves every code point to one of
14 classes plus Indic/Extended_Pictographic flags, so the only state that
must survive across code points is the small set of rolling flags
tracked in breakState.
*/
package grapheme

import (
	"unicode/utf8"

	"github.com/go-uax/uax/gbp"
)

// breakState carries the rolling lookback needed by GB9c, GB11 and
// GB12/GB13: none of UAX#29's rules need more than "what happened since
// the last class change", so a handful of booleans plus a run counter
// suffice.
type breakState struct {
	riRun int // count of consecutive Regional_Indicator code points so far

	extPicPending  bool // saw Extended_Pictographic, only Extend since
	zwjAfterExtPic bool // ... followed by a ZWJ

	indicConsonant bool // saw InCB=Consonant, only Extend/Linker since
	indicLinker    bool // ... and at least one of those was a Linker
}

// update folds the just-consumed code point (whose break decision has
// already been made) into the rolling state for the next decision.
func (s *breakState) update(cls gbp.Class, ind gbp.Indic, extPic bool) {
	if cls == gbp.RegionalIndicator {
		s.riRun++
	} else {
		s.riRun = 0
	}

	switch {
	case extPic:
		s.extPicPending = true
		s.zwjAfterExtPic = false
	case cls == gbp.ZWJ && s.extPicPending && !s.zwjAfterExtPic:
		s.zwjAfterExtPic = true
	case cls == gbp.Extend && s.extPicPending && !s.zwjAfterExtPic:
		// stay pending: Extend may only come before the ZWJ
	default:
		s.extPicPending = false
		s.zwjAfterExtPic = false
	}

	switch {
	case ind == gbp.IndicConsonant:
		s.indicConsonant = true
		s.indicLinker = false
	case ind == gbp.IndicLinker && s.indicConsonant:
		s.indicLinker = true
	case ind == gbp.IndicExtend && s.indicConsonant:
		// stay pending
	case cls == gbp.ZWJ && s.indicConsonant:
		// GB9c's Linker* clause is Extend|ZWJ: a ZWJ code point carries
		// ind == IndicNone, but it must not clear the Consonant/Linker
		// run it sits inside, or the following Consonant never sees
		// indicLinker still set.
	default:
		s.indicConsonant = false
		s.indicLinker = false
	}
}

// breakBefore reports whether a grapheme cluster boundary falls between
// the previous code point (already folded into state, with class
// prevClass) and the current one.
func breakBefore(prevClass gbp.Class, cls gbp.Class, ind gbp.Indic, extPic bool, state *breakState) bool {
	// GB3: CR x LF
	if prevClass == gbp.CR && cls == gbp.LF {
		return false
	}
	// GB4: (Control|CR|LF) ÷
	if prevClass == gbp.Control || prevClass == gbp.CR || prevClass == gbp.LF {
		return true
	}
	// GB5: ÷ (Control|CR|LF)
	if cls == gbp.Control || cls == gbp.CR || cls == gbp.LF {
		return true
	}
	// GB6: L x (L|V|LV|LVT)
	if prevClass == gbp.L && (cls == gbp.L || cls == gbp.V || cls == gbp.LV || cls == gbp.LVT) {
		return false
	}
	// GB7: (LV|V) x (V|T)
	if (prevClass == gbp.LV || prevClass == gbp.V) && (cls == gbp.V || cls == gbp.T) {
		return false
	}
	// GB8: (LVT|T) x T
	if (prevClass == gbp.LVT || prevClass == gbp.T) && cls == gbp.T {
		return false
	}
	// GB9: x (Extend|ZWJ)
	if cls == gbp.Extend || cls == gbp.ZWJ {
		return false
	}
	// GB9a: x SpacingMark
	if cls == gbp.SpacingMark {
		return false
	}
	// GB9b: Prepend x
	if prevClass == gbp.Prepend {
		return false
	}
	// GB9c: Indic conjunct break exception.
	if ind == gbp.IndicConsonant && state.indicConsonant && state.indicLinker {
		return false
	}
	// GB11: ExtPic Extend* ZWJ x ExtPic
	if extPic && state.zwjAfterExtPic {
		return false
	}
	// GB12/GB13: sot (RI RI)* RI x RI
	if prevClass == gbp.RegionalIndicator && cls == gbp.RegionalIndicator && state.riRun%2 == 1 {
		return false
	}
	// GB999: Any ÷ Any
	return true
}

// Graphemes is a forward iterator over the extended grapheme clusters of
// a string, in the style of a bufio.Scanner.
type Graphemes struct {
	src   string
	pos   int
	start int
	end   int
}

// NewGraphemes creates a grapheme cluster iterator over s.
func NewGraphemes(s string) *Graphemes {
	return &Graphemes{src: s}
}

// Next advances to the next grapheme cluster, returning false once the
// string is exhausted.
func (g *Graphemes) Next() bool {
	if g.pos >= len(g.src) {
		return false
	}
	g.start = g.pos
	var state breakState
	firstCP, size := utf8.DecodeRuneInString(g.src[g.pos:])
	prevClass, prevInd, prevExtPic := gbp.Lookup(firstCP)
	state.update(prevClass, prevInd, prevExtPic)
	g.pos += size

	for g.pos < len(g.src) {
		cp, size := utf8.DecodeRuneInString(g.src[g.pos:])
		cls, ind, extPic := gbp.Lookup(cp)
		if breakBefore(prevClass, cls, ind, extPic, &state) {
			break
		}
		state.update(cls, ind, extPic)
		prevClass = cls
		g.pos += size
	}
	g.end = g.pos
	return true
}

// Str returns the current grapheme cluster as a string.
func (g *Graphemes) Str() string {
	return g.src[g.start:g.end]
}

// Bounds returns the byte offsets [start, end) of the current cluster
// within the original string.
func (g *Graphemes) Bounds() (int, int) {
	return g.start, g.end
}

// Split breaks s into a slice of its extended grapheme clusters.
func Split(s string) []string {
	var out []string
	g := NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of extended grapheme clusters in s.
func Count(s string) int {
	n := 0
	g := NewGraphemes(s)
	for g.Next() {
		n++
	}
	return n
}

// FirstGraphemeCluster returns the first extended grapheme cluster of s
// and the remainder, the "pop one cluster off the front" idiom streaming
// consumers need.
func FirstGraphemeCluster(s string) (cluster, rest string) {
	g := NewGraphemes(s)
	if !g.Next() {
		return "", s
	}
	return g.Str(), s[g.end:]
}

// ClassForCodePoint exposes the grapheme break class, Indic conjunct
// category, and Extended_Pictographic flag gbp assigns to cp, for callers
// that need to inspect the property table directly rather than run the
// full breaking algorithm.
func ClassForCodePoint(cp rune) (class gbp.Class, indic gbp.Indic, extendedPictographic bool) {
	return gbp.Lookup(cp)
}
