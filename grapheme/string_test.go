package grapheme

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "Hello World"
	s := StringFromString(input)
	if s == nil {
		t.Fatalf("resulting grapheme string should not be nil")
	}
	x := s.Nth(2)
	if x != "l" {
		t.Errorf("expected s.Nth(2) to be 'l', is %#v", x)
	}
	if l := s.Len(); l != 11 {
		t.Errorf("expected s.Len() to be 11, is %d", l)
	}
}

func TestChineseString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "世界"
	s := StringFromString(input)
	if s == nil {
		t.Fatalf("resulting grapheme string should not be nil")
	}
	if l := s.Len(); l != 2 {
		t.Errorf("expected \"%s\".Len() to be 2, is %d", input, l)
	}
	x := s.Nth(1)
	if x != "界" {
		t.Errorf("expected s.Nth(1) to be '界', is %s", x)
	}
}

func TestEmojiZWJString(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// family emoji: man + ZWJ + woman + ZWJ + girl, one grapheme cluster.
	zwj := string(rune(0x200D))
	input := string(rune(0x1F468)) + zwj + string(rune(0x1F469)) + zwj + string(rune(0x1F467))
	s := StringFromString(input)
	if l := s.Len(); l != 1 {
		t.Errorf("expected family emoji sequence to be 1 grapheme, is %d", l)
	}
}
