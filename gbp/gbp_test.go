package gbp

import "testing"

func TestClassOf(t *testing.T) {
	cases := []struct {
		cp   rune
		want Class
	}{
		{'\r', CR},
		{'\n', LF},
		{'A', Other},
		{0x0300, Extend}, // combining grave accent
		{0x200D, ZWJ},
		{0x1F1E6, RegionalIndicator}, // REGIONAL INDICATOR SYMBOL LETTER A
		{0x1100, L},
		{0x1161, V},
		{0x11A8, T},
		{0xAC00, LV}, // GA, trailing index 0
		{0xAC01, LVT},
	}
	for _, c := range cases {
		if got := ClassOf(c.cp); got != c.want {
			t.Errorf("ClassOf(%#U) = %v, want %v", c.cp, got, c.want)
		}
	}
}

func TestIndicOf(t *testing.T) {
	if got := IndicOf(0x0915); got != IndicConsonant {
		t.Errorf("IndicOf(DEVANAGARI KA) = %v, want Consonant", got)
	}
	if got := IndicOf(0x094D); got != IndicLinker {
		t.Errorf("IndicOf(VIRAMA) = %v, want Linker", got)
	}
	if got := IndicOf('A'); got != IndicNone {
		t.Errorf("IndicOf('A') = %v, want None", got)
	}
}

func TestIsExtendedPictographic(t *testing.T) {
	if !IsExtendedPictographic(0x1F600) {
		t.Error("GRINNING FACE should be Extended_Pictographic")
	}
	if IsExtendedPictographic('A') {
		t.Error("'A' should not be Extended_Pictographic")
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, cls := range []Class{Other, CR, LF, Control, Extend, ZWJ, RegionalIndicator, Prepend, SpacingMark, L, V, T, LV, LVT} {
		for _, ind := range []Indic{IndicNone, IndicConsonant, IndicExtend, IndicLinker} {
			for _, ext := range []bool{false, true} {
				b := pack(cls, ind, ext)
				gotCls, gotInd, gotExt := unpack(b)
				if gotCls != cls || gotInd != ind || gotExt != ext {
					t.Errorf("pack/unpack(%v,%v,%v) = %v,%v,%v", cls, ind, ext, gotCls, gotInd, gotExt)
				}
			}
		}
	}
}
