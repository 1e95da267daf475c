package uax

import "unicode/utf8"

// CodePoint is a single decoded Unicode scalar value together with its
// position in the source byte slice it was decoded from.
type CodePoint struct {
	Code   rune // the decoded code point
	Offset int  // byte offset within the source slice
	Len    int  // UTF-8 encoded length in bytes, 1..4
}

// UTF8Mode selects how a CodePointIterator reacts to ill-formed UTF-8.
type UTF8Mode int

const (
	// SubstituteUTF8 replaces each ill-formed subpart with U+FFFD and
	// advances by the maximal-subpart rule. This is the default.
	SubstituteUTF8 UTF8Mode = iota
	// StrictUTF8 makes Next return an *InvalidUTF8Error instead of
	// substituting.
	StrictUTF8
)

// CodePointIterator walks a UTF-8 byte slice producing CodePoint records.
// It holds a borrowed view of the caller's bytes: it does not copy them and
// must not outlive them. A CodePointIterator is not safe for concurrent use.
type CodePointIterator struct {
	src  []byte
	pos  int
	mode UTF8Mode
}

// NewCodePointIterator creates an iterator over src in SubstituteUTF8 mode.
func NewCodePointIterator(src []byte) *CodePointIterator {
	return &CodePointIterator{src: src}
}

// WithMode sets the ill-formed-UTF-8 policy and returns the iterator for
// chaining.
func (it *CodePointIterator) WithMode(mode UTF8Mode) *CodePointIterator {
	it.mode = mode
	return it
}

// Next returns the next code point, or ok=false at end of input. In
// StrictUTF8 mode it returns a non-nil error instead of substituting on
// ill-formed input; the iterator does not advance past the error and a
// repeated call will return the same error.
func (it *CodePointIterator) Next() (cp CodePoint, ok bool, err error) {
	if it.pos >= len(it.src) {
		return CodePoint{}, false, nil
	}
	r, size := utf8.DecodeRune(it.src[it.pos:])
	if r == utf8.RuneError && size <= 1 {
		if it.mode == StrictUTF8 {
			return CodePoint{}, false, &InvalidUTF8Error{Offset: it.pos}
		}
		// SubstituteUTF8: utf8.DecodeRune consumes a single byte here, so
		// extend over the maximal subpart, i.e. the longest prefix that
		// could still begin a well-formed sequence.
		size = 1
		for n := 2; n <= 3 && it.pos+n <= len(it.src) && !utf8.FullRune(it.src[it.pos:it.pos+n]); n++ {
			size = n
		}
	}
	cp = CodePoint{Code: r, Offset: it.pos, Len: size}
	it.pos += size
	return cp, true, nil
}

// Reset rewinds the iterator to the start of its source slice.
func (it *CodePointIterator) Reset() {
	it.pos = 0
}

// IterateCodePoints is the consumer-facing entry point: it returns a fresh
// iterator over src. Equivalent to NewCodePointIterator(src).
func IterateCodePoints(src []byte) *CodePointIterator {
	return NewCodePointIterator(src)
}
