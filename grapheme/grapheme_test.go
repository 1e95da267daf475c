package grapheme

import (
	"bufio"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/go-uax/uax/internal/testdata"
)

func TestGraphemesBasicASCII(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if got, want := Split("Hello"), []string{"H", "e", "l", "l", "o"}; !equalSlices(got, want) {
		t.Errorf("Split(Hello) = %v, want %v", got, want)
	}
}

func TestGraphemesCRLF(t *testing.T) {
	if got := Split("a\r\nb"); !equalSlices(got, []string{"a", "\r\n", "b"}) {
		t.Errorf("Split(a\\r\\nb) = %v", got)
	}
}

func TestGraphemesCombiningMark(t *testing.T) {
	// 'e' + combining acute accent: one cluster.
	s := "é"
	if n := Count(s); n != 1 {
		t.Errorf("Count(e+acute) = %d, want 1", n)
	}
}

func TestGraphemesHangulSyllable(t *testing.T) {
	// 개 = GAE, an LV Hangul syllable, is already precomposed: one cluster.
	if n := Count("개"); n != 1 {
		t.Errorf("Count(개) = %d, want 1", n)
	}
	// Decomposed L+V Jamo sequence also clusters into one grapheme.
	lv := string(rune(0x1100)) + string(rune(0x1161))
	if n := Count(lv); n != 1 {
		t.Errorf("Count(decomposed L+V) = %d, want 1", n)
	}
}

func TestGraphemesRegionalIndicatorPairs(t *testing.T) {
	// Two flags (DE, FR): 4 Regional_Indicator symbols pair up as 2 clusters.
	de := string(rune(0x1F1E9)) + string(rune(0x1F1EA))
	fr := string(rune(0x1F1EB)) + string(rune(0x1F1F7))
	if n := Count(de + fr); n != 2 {
		t.Errorf("Count(DE+FR flags) = %d, want 2", n)
	}
}

func TestGraphemesExtendedPictographicZWJ(t *testing.T) {
	zwj := string(rune(0x200D))
	// man + ZWJ + woman + ZWJ + girl: family emoji, one cluster.
	family := string(rune(0x1F468)) + zwj + string(rune(0x1F469)) + zwj + string(rune(0x1F467))
	if n := Count(family); n != 1 {
		t.Errorf("Count(family emoji) = %d, want 1", n)
	}
}

func TestGraphemesSkinToneModifier(t *testing.T) {
	// waving hand + medium skin tone modifier: one cluster (Extend joins).
	s := string(rune(0x1F44B)) + string(rune(0x1F3FD))
	if n := Count(s); n != 1 {
		t.Errorf("Count(waving hand + skin tone) = %d, want 1", n)
	}
}

func TestGraphemesIndicConjunct(t *testing.T) {
	// Devanagari KA + virama + SSA: a conjunct, one cluster under GB9c.
	s := string(rune(0x0915)) + string(rune(0x094D)) + string(rune(0x0937))
	if n := Count(s); n != 1 {
		t.Errorf("Count(Devanagari conjunct) = %d, want 1", n)
	}
}

func TestGraphemesIndicConjunctWithZWJ(t *testing.T) {
	// GB9c's Linker* clause is (Extend|ZWJ)*: KA + virama + ZWJ + SSA
	// must still be one cluster, the ZWJ does not break the conjunct.
	zwj := string(rune(0x200D))
	s := string(rune(0x0915)) + string(rune(0x094D)) + zwj + string(rune(0x0937))
	if n := Count(s); n != 1 {
		t.Errorf("Count(Devanagari conjunct with ZWJ) = %d, want 1", n)
	}
}

func TestGraphemesControlBreaksEagerly(t *testing.T) {
	if got, want := Split("a\tb"), []string{"a", "\t", "b"}; !equalSlices(got, want) {
		t.Errorf("Split(a\\tb) = %v, want %v", got, want)
	}
}

func TestFirstGraphemeCluster(t *testing.T) {
	cluster, rest := FirstGraphemeCluster("éf")
	if cluster != "é" || rest != "f" {
		t.Errorf("FirstGraphemeCluster = (%q, %q)", cluster, rest)
	}
}

// TestGraphemesConformance runs the full rule cascade against
// GraphemeBreakTest.txt when that fixture has been downloaded into
// internal/testdata/ucd (see internal/testdata/download.go); it is
// skipped otherwise rather than failing on missing test data.
func TestGraphemesConformance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r, err := testdata.UCDReader("GraphemeBreakTest.txt")
	if err != nil {
		t.Skipf("GraphemeBreakTest.txt not available: %v", err)
	}
	scan := bufio.NewScanner(r)
	total, failed := 0, 0
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "#", 2)
		in, want := breakTestInput(parts[0])
		total++
		if got := Split(in); !equalSlices(got, want) {
			failed++
			t.Logf("mismatch: input=%+q got=%q want=%q", in, got, want)
		}
	}
	if failed > 0 {
		t.Errorf("%d/%d GraphemeBreakTest.txt cases failed", failed, total)
	}
}

func breakTestInput(ti string) (string, []string) {
	sc := bufio.NewScanner(strings.NewReader(ti))
	sc.Split(bufio.ScanWords)
	var out []string
	var input, run strings.Builder
	for sc.Scan() {
		token := sc.Text()
		switch token {
		case "÷":
			if run.Len() > 0 {
				out = append(out, run.String())
				run.Reset()
			}
		case "×":
			// no boundary: fold into current run
		default:
			n, _ := strconv.ParseUint(token, 16, 32)
			run.WriteRune(rune(n))
			input.WriteRune(rune(n))
		}
	}
	return input.String(), out
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
