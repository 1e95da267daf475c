package ccc

import "testing"

func TestOf(t *testing.T) {
	cases := []struct {
		cp   rune
		want byte
	}{
		{'A', 0},
		{0x0301, 230}, // combining acute accent
		{0x093C, 7},   // nukta
		{0x094D, 9},   // virama
		{0x0000, 0},
	}
	for _, c := range cases {
		if got := Of(c.cp); got != c.want {
			t.Errorf("Of(%#U) = %d, want %d", c.cp, got, c.want)
		}
	}
}
