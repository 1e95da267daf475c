/*
Package caseless implements canonical and compatibility caseless matching
per UAX#44 D145/D146, composing package norm (NFD/NFKD) with package fold
(full case folding).

Grounded on the teacher's segment.Segmenter / uax.RunePublisher push
style for the streaming variant: NewMatcher lets a caller feed two
readers incrementally and short-circuit on the first mismatching
grapheme cluster, instead of materializing both fully-folded buffers
first.
*/
package caseless

import (
	"bufio"
	"io"
	"unicode/utf8"

	"github.com/go-uax/uax/fold"
	"github.com/go-uax/uax/grapheme"
	"github.com/go-uax/uax/norm"
)

// canonKey returns NFD(fold(NFD(s))), the canonical caseless key of s
// (UAX#44 D145).
func canonKey(s string) string {
	return norm.NFD(fold.FoldString(norm.NFD(s)))
}

// compatKey returns NFKD(fold(NFKD(fold(NFD(s))))), the compatibility
// caseless key of s (UAX#44 D146). One extra fold+NFKD round beyond the
// first suffices to reach a fixed point for all Unicode-assigned
// characters.
func compatKey(s string) string {
	return norm.NFKD(fold.FoldString(norm.NFKD(fold.FoldString(norm.NFD(s)))))
}

// CanonCaselessMatch reports whether a and b are canonically caseless
// equal: NFD(fold(NFD(a))) == NFD(fold(NFD(b))).
func CanonCaselessMatch(a, b string) bool {
	return canonKey(a) == canonKey(b)
}

// CompatCaselessMatch reports whether a and b are compatibility caseless
// equal: NFKD(fold(NFKD(fold(NFD(a))))) == NFKD(fold(NFKD(fold(NFD(b))))).
func CompatCaselessMatch(a, b string) bool {
	return compatKey(a) == compatKey(b)
}

// Mode selects which caseless equivalence a Matcher evaluates.
type Mode int

const (
	Canonical Mode = iota
	Compatibility
)

// Matcher performs an incremental caseless comparison of two readers,
// one extended grapheme cluster at a time, so a mismatch partway through
// a long pair of strings can be reported without normalizing and folding
// the remainder of either one.
type Matcher struct {
	mode Mode
	a, b *clusterReader
}

// NewMatcher creates a Matcher that compares everything read from ra
// against everything read from rb under the given Mode.
func NewMatcher(ra, rb io.Reader, mode Mode) *Matcher {
	return &Matcher{
		mode: mode,
		a:    newClusterReader(ra),
		b:    newClusterReader(rb),
	}
}

// Equal drains both readers and reports whether they are caseless-equal
// under the Matcher's Mode, stopping at the first mismatching folded key
// byte without buffering either stream in full.
func (m *Matcher) Equal() (bool, error) {
	keyOf := canonKey
	if m.mode == Compatibility {
		keyOf = compatKey
	}
	var pendingA, pendingB string
	for {
		if pendingA == "" {
			cluster, err := m.a.next()
			if err != nil && err != io.EOF {
				return false, err
			}
			pendingA = keyOf(cluster)
		}
		if pendingB == "" {
			cluster, err := m.b.next()
			if err != nil && err != io.EOF {
				return false, err
			}
			pendingB = keyOf(cluster)
		}
		if pendingA == "" && pendingB == "" {
			return true, nil
		}
		n := min(len(pendingA), len(pendingB))
		if pendingA[:n] != pendingB[:n] {
			return false, nil
		}
		pendingA = pendingA[n:]
		pendingB = pendingB[n:]
		if n == 0 {
			// one side ran out of clusters before the other
			return false, nil
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clusterReader pulls grapheme clusters off an io.Reader's byte stream
// one at a time, buffering only as many bytes as a single cluster needs.
type clusterReader struct {
	r   *bufio.Reader
	buf []byte
}

func newClusterReader(r io.Reader) *clusterReader {
	return &clusterReader{r: bufio.NewReader(r)}
}

// next returns the next complete grapheme cluster. It only knows a
// cluster is complete once either more bytes have arrived that fall
// outside it, or the stream has ended: both cases are unambiguous
// boundaries, since grapheme.NewGraphemes always reports the first
// cluster of its input conservatively (it may still grow if the buffer
// is extended).
func (c *clusterReader) next() (string, error) {
	for {
		if len(c.buf) > 0 {
			g := grapheme.NewGraphemes(string(c.buf))
			g.Next()
			_, end := g.Bounds()
			if end < len(c.buf) {
				cluster := string(c.buf[:end])
				c.buf = c.buf[end:]
				return cluster, nil
			}
		}
		// Read whole code points, so the breaker never sees the truncated
		// front of a multi-byte sequence as a cluster of its own.
		r, _, err := c.r.ReadRune()
		if err != nil {
			if len(c.buf) > 0 {
				s := string(c.buf)
				c.buf = nil
				return s, nil
			}
			return "", err
		}
		c.buf = utf8.AppendRune(c.buf, r)
	}
}
