package grapheme

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// String is a type to represent a grapheme string, i.e. a sequence of
// "user perceived characters" as defined by Unicode.
// A grapheme string is a read-only data structure.
//
// Finding graphemes from a string (or array of bytes) is an operation with
// runtime complexity O(N). Clients should not convert large texts into
// grapheme strings in one go, but rather operate on manageable fragments.
type String interface {
	Nth(int) string // return nth grapheme
	Len() int       // length of string in units of user perceived characters
}

// MaxByteLen is the maximum byte count a grapheme string may consist of.
const MaxByteLen int = 65534

// StringFromString creates a grapheme string from a Go string.
// As grapheme strings are not meant to be created for large amounts of text, but
// rather for manageable segments, s is not allowed to exceed 2^16-2 = 65534 bytes.
//
// StringFromString will panic if a larger input string is given.
//
// StringFromString will trim the input Go string to valid Unicode code point (rune)
// boundaries. If s does not contain any legal runes, the resulting grapheme string
// may be of length 0 even if the input string is not.
func StringFromString(s string) String {
	if len(s) < math.MaxUint8 {
		return makeShortString(s)
	} else if len(s) < math.MaxUint16 {
		return makeMidString(s)
	}
	panic(fmt.Sprintf("grapheme.String may not be built from more than %d bytes, have %d",
		MaxByteLen, len(s)))
}

// StringFromBytes creates a grapheme string from an array of bytes. As grapheme
// strings are a read-only data structure, StringFromBytes will create a private
// copy of the input.
func StringFromBytes(b []byte) String {
	return StringFromString(string(b))
}

// --- Short version ---------------------------------------------------------

type shortString struct {
	content string
	breaks  []uint8
}

func makeShortString(s string) String {
	start := positionOfFirstLegalRune(s)
	gstr := &shortString{content: s[start:]}
	if gstr.content == "" {
		return gstr
	}
	gstr.breaks = make([]uint8, 1, len(gstr.content)/4+1)
	gstr.breaks[0] = 0
	g := NewGraphemes(gstr.content)
	for g.Next() {
		_, end := g.Bounds()
		tracer().Debugf("next grapheme = '%s'", g.Str())
		gstr.breaks = append(gstr.breaks, uint8(end))
	}
	return gstr
}

func (gstr *shortString) Nth(n int) string {
	if n < 0 || n > max(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, max(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *shortString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// --- Mid version -----------------------------------------------------------

type midString struct {
	content string
	breaks  []uint16
}

func makeMidString(s string) String {
	start := positionOfFirstLegalRune(s)
	gstr := &midString{content: s[start:]}
	if gstr.content == "" {
		return gstr
	}
	gstr.breaks = make([]uint16, 1, len(gstr.content)/4+1)
	gstr.breaks[0] = 0
	g := NewGraphemes(gstr.content)
	for g.Next() {
		_, end := g.Bounds()
		tracer().Debugf("next grapheme = '%s'", g.Str())
		gstr.breaks = append(gstr.breaks, uint16(end))
	}
	return gstr
}

func (gstr *midString) Nth(n int) string {
	if n < 0 || n > max(len(gstr.breaks)-2, 0) {
		panic(fmt.Sprintf("grapheme string index out of bounds, [%d] in [0:%d]",
			n, max(len(gstr.breaks)-2, 0)))
	} else if len(gstr.breaks) < 2 {
		return ""
	}
	l, r := gstr.breaks[n], gstr.breaks[n+1]
	return gstr.content[l:r]
}

func (gstr *midString) Len() int {
	if len(gstr.breaks) < 2 {
		return 0
	}
	return len(gstr.breaks) - 1
}

// ---------------------------------------------------------------------------

// positionOfFirstLegalRune returns the byte index of the first legal rune
// in s, or len(s) if s contains no legal rune.
func positionOfFirstLegalRune(s string) int {
	i, l := 0, len(s)
	for i < l {
		if utf8.RuneStart(s[i]) {
			r, _ := utf8.DecodeRuneInString(s[i:])
			if r != utf8.RuneError {
				return i
			}
		}
		i++
	}
	return l
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
