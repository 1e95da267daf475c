package caseless

import (
	"strings"
	"testing"
)

func TestCanonCaselessMatchIdentity(t *testing.T) {
	cases := []string{"Hello", "café", "Ω", "ﬃ"}
	for _, s := range cases {
		if !CanonCaselessMatch(s, s) {
			t.Errorf("CanonCaselessMatch(%q, %q) = false, want true", s, s)
		}
		if !CompatCaselessMatch(s, s) {
			t.Errorf("CompatCaselessMatch(%q, %q) = false, want true", s, s)
		}
	}
}

func TestCanonCaselessMatchOmega(t *testing.T) {
	if !CanonCaselessMatch("Ω", "ω") {
		t.Errorf(`CanonCaselessMatch("Ω", "ω") = false, want true`)
	}
}

func TestCompatCaselessMatchLigature(t *testing.T) {
	if !CompatCaselessMatch("ﬃ", "FFI") {
		t.Errorf(`CompatCaselessMatch("ﬃ", "FFI") = false, want true`)
	}
}

func TestCanonCaselessMatchAccentedForms(t *testing.T) {
	// precomposed vs decomposed: both canonicalize to the same NFD form.
	precomposed := "À"
	decomposed := "A" + string(rune(0x0300))
	if !CanonCaselessMatch(precomposed, decomposed) {
		t.Errorf("CanonCaselessMatch(precomposed, decomposed À) = false, want true")
	}
}

func TestCaselessMatchMismatch(t *testing.T) {
	if CanonCaselessMatch("Hello", "World") {
		t.Errorf("CanonCaselessMatch(Hello, World) = true, want false")
	}
}

func TestMatcherEqualCanonical(t *testing.T) {
	m := NewMatcher(strings.NewReader("Ω"), strings.NewReader("ω"), Canonical)
	eq, err := m.Equal()
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if !eq {
		t.Errorf("Matcher.Equal(Ω, ω) = false, want true")
	}
}

func TestMatcherEqualCompatibility(t *testing.T) {
	m := NewMatcher(strings.NewReader("ﬃ"), strings.NewReader("FFI"), Compatibility)
	eq, err := m.Equal()
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if !eq {
		t.Errorf("Matcher.Equal(ﬃ, FFI) = false, want true")
	}
}

func TestMatcherMismatchShortCircuits(t *testing.T) {
	m := NewMatcher(strings.NewReader("Hello"), strings.NewReader("World"), Canonical)
	eq, err := m.Equal()
	if err != nil {
		t.Fatalf("Equal() error: %v", err)
	}
	if eq {
		t.Errorf("Matcher.Equal(Hello, World) = true, want false")
	}
}
