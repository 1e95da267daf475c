package uax

import (
	"errors"
	"testing"
)

func TestCodePointIteratorASCII(t *testing.T) {
	it := NewCodePointIterator([]byte("abc"))
	var got []rune
	for {
		cp, ok, err := it.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, cp.Code)
	}
	if string(got) != "abc" {
		t.Errorf("expected 'abc', got %q", string(got))
	}
}

func TestCodePointIteratorOffsets(t *testing.T) {
	it := NewCodePointIterator([]byte("a£€"))
	want := []CodePoint{
		{Code: 'a', Offset: 0, Len: 1},
		{Code: '£', Offset: 1, Len: 2},
		{Code: '€', Offset: 3, Len: 3},
	}
	for i, w := range want {
		cp, ok, err := it.Next()
		if err != nil || !ok {
			t.Fatalf("Next() #%d: ok=%v err=%v", i, ok, err)
		}
		if cp != w {
			t.Errorf("Next() #%d = %+v, want %+v", i, cp, w)
		}
	}
	if _, ok, _ := it.Next(); ok {
		t.Error("expected end of input")
	}
}

func TestCodePointIteratorSubstitute(t *testing.T) {
	it := NewCodePointIterator([]byte{'a', 0xff, 'b'})
	cp, ok, err := it.Next()
	if err != nil || !ok || cp.Code != 'a' {
		t.Fatalf("unexpected first code point: %+v %v %v", cp, ok, err)
	}
	cp, ok, err = it.Next()
	if err != nil || !ok || cp.Code != 0xFFFD {
		t.Fatalf("expected replacement character, got %+v %v %v", cp, ok, err)
	}
}

func TestCodePointIteratorStrict(t *testing.T) {
	it := NewCodePointIterator([]byte{'a', 0xff, 'b'}).WithMode(StrictUTF8)
	if _, ok, err := it.Next(); !ok || err != nil {
		t.Fatalf("unexpected result on valid prefix: ok=%v err=%v", ok, err)
	}
	_, ok, err := it.Next()
	if ok || err == nil {
		t.Fatalf("expected InvalidUTF8Error, got ok=%v err=%v", ok, err)
	}
	var target *InvalidUTF8Error
	if !errors.As(err, &target) {
		t.Errorf("expected *InvalidUTF8Error, got %T", err)
	}
}
