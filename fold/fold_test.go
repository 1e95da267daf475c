package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOfCommonFold(t *testing.T) {
	cases := []struct {
		cp   rune
		want []rune
	}{
		{'A', []rune{'a'}},
		{0x03A9, []rune{0x03C9}}, // Ω -> ω
		{'a', nil},               // already lower: identity
		{0x0041, []rune{'a'}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Of(c.cp), "Of(%#U)", c.cp)
	}
}

func TestOfFullFold(t *testing.T) {
	assert.Equal(t, []rune{'s', 's'}, Of(0x00DF), "Of(ß)")
	assert.Equal(t, []rune{'f', 'f', 'i'}, Of(0xFB03), "Of(ﬃ)")
}

func TestFoldIdempotent(t *testing.T) {
	cases := [][]rune{
		[]rune("Hello, World!"),
		[]rune("ΩΣ"),
		{0xFB03},
	}
	for _, seq := range cases {
		once := Fold(seq)
		twice := Fold(once)
		assert.Equal(t, once, twice, "Fold not idempotent for %v", seq)
	}
}

func TestFoldStringOmegaExample(t *testing.T) {
	assert.Equal(t, "ω", FoldString("Ω"))
}
