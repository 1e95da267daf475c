/*
Command generator builds gbp's runtime tables from the Unicode Character
Database.

It reads GraphemeBreakProperty.txt, the InCB values out of
DerivedCoreProperties.txt and the Extended_Pictographic values out of
emoji-data.txt, merges them into one packed-byte-per-code-point table, and
emits a new gbp/tables_generated.go containing the flattened Stage1/Stage2/
Stage3 literals, ready to use instead of the hand-curated sourceRanges in
gbp/tables.go.

Usage:

	generator [-v] [-ucd dir]

It looks for the three input files under dir (default "$GOPATH/etc"), the
same convention used by the other generators in this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/text/unicode/rangetable"

	"github.com/go-uax/uax/internal/twostage"
	"github.com/go-uax/uax/internal/ucdparse"
)

var (
	verbose bool
	ucdDir  string
)

var gbpClassnames = map[string]byte{
	"CR": 1, "LF": 2, "Control": 3, "Extend": 4, "ZWJ": 5,
	"Regional_Indicator": 6, "Prepend": 7, "SpacingMark": 8,
	"L": 9, "V": 10, "T": 11, "LV": 12, "LVT": 13,
}

var incbValues = map[string]byte{"Consonant": 1, "Extend": 2, "Linker": 3}

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.StringVar(&ucdDir, "ucd", filepath.Join(os.Getenv("GOPATH"), "etc"), "directory holding the UCD input files")
	flag.Parse()

	packed := make(map[rune]byte)

	// Runes are collected per class and merged through rangetable.New
	// before being packed, the same dedup-via-RangeTable step the
	// teacher's emoji and grapheme generators use: a code point listed in
	// more than one GraphemeBreakProperty.txt line for the same class
	// collapses to a single membership test instead of being packed
	// twice.
	classRunes := make(map[byte][]rune)
	mustParse(filepath.Join(ucdDir, "GraphemeBreakProperty.txt"), func(tok *ucdparse.Token) {
		class, ok := gbpClassnames[tok.Field(1)]
		if !ok {
			return
		}
		from, to := tok.Range()
		for cp := from; cp <= to; cp++ {
			classRunes[class] = append(classRunes[class], cp)
		}
	})
	for class, runes := range classRunes {
		rangetable.Visit(rangetable.New(runes...), func(cp rune) {
			packed[cp] = setClass(packed[cp], class)
		})
	}
	mustParse(filepath.Join(ucdDir, "DerivedCoreProperties.txt"), func(tok *ucdparse.Token) {
		if tok.Field(1) != "InCB" {
			return
		}
		indic, ok := incbValues[tok.Field(2)]
		if !ok {
			return
		}
		from, to := tok.Range()
		for cp := from; cp <= to; cp++ {
			packed[cp] = setIndic(packed[cp], indic)
		}
	})
	mustParse(filepath.Join(ucdDir, "emoji-data.txt"), func(tok *ucdparse.Token) {
		if tok.Field(1) != "Extended_Pictographic" {
			return
		}
		from, to := tok.Range()
		for cp := from; cp <= to; cp++ {
			packed[cp] |= 1
		}
	})

	tbl := twostage.BuildTable3(packed)
	if verbose {
		log.Printf("stage1=%d stage2=%d stage3=%d", len(tbl.Stage1), len(tbl.Stage2), len(tbl.Stage3))
	}

	out, err := os.Create("tables_generated.go")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err := tablesTemplate.Execute(w, tbl); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// setClass packs class into bits [7:4] without disturbing Indic/ExtPic.
func setClass(b byte, class byte) byte {
	return b&0x0F | class<<4
}

// setIndic packs an InCB value into bits [3:1].
func setIndic(b byte, indic byte) byte {
	return b&0xF1 | indic<<1
}

func mustParse(path string, f func(*ucdparse.Token)) {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("skipping %s: %v", path, err)
		return
	}
	defer file.Close()
	if err := ucdparse.Parse(file, f); err != nil {
		log.Fatalf("parsing %s: %v", path, err)
	}
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"u16s": formatU16Slice,
	"u8s":  formatU8Slice,
}).Parse(`// Code generated by gbp/internal/generator. DO NOT EDIT.

package gbp

import "github.com/go-uax/uax/internal/twostage"

var generatedTable = &twostage.Table3{
	Stage1: []uint16{ {{u16s .Stage1}} },
	Stage2: []uint16{ {{u16s .Stage2}} },
	Stage3: []byte{ {{u8s .Stage3}} },
}
`))

func formatU16Slice(v []uint16) string {
	s := ""
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", x)
	}
	return s
}

func formatU8Slice(v []byte) string {
	s := ""
	for i, x := range v {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", x)
	}
	return s
}
