package dwp

import "testing"

func TestCodePointWidth(t *testing.T) {
	cases := []struct {
		cp   rune
		want int8
	}{
		{'A', 1},
		{0x0008, -1}, // BACKSPACE
		{0x007F, -1}, // DEL
		{0x0001, 0},  // C0 control
		{0x4E2D, 2},  // 中
		{0x2E3B, 3},  // THREE-EM DASH
		{0x26A1, 2},  // HIGH VOLTAGE SIGN, default emoji presentation
	}
	for _, c := range cases {
		if got := CodePointWidth(c.cp); got != c.want {
			t.Errorf("CodePointWidth(%#U) = %d, want %d", c.cp, got, c.want)
		}
	}
}

func TestCodePointWidthContext(t *testing.T) {
	const ambiguous = 0x00A1 // INVERTED EXCLAMATION MARK
	if got := CodePointWidthContext(ambiguous, LatinContext); got != 1 {
		t.Errorf("LatinContext width = %d, want 1", got)
	}
	if got := CodePointWidthContext(ambiguous, EastAsianContext); got != 2 {
		t.Errorf("EastAsianContext width = %d, want 2", got)
	}
	if got := CodePointWidthContext(ambiguous, nil); got != 1 {
		t.Errorf("nil context width = %d, want 1 (LatinContext default)", got)
	}
}
