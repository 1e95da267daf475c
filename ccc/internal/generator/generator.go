/*
Command generator builds ccc's runtime table from
extracted/DerivedCombiningClass.txt, emitting ccc/tables_generated.go with
flattened Stage1/Stage2 literals ready to replace the curated sourceRanges
in ccc/ccc.go.

Usage:

	generator [-v] [-ucd dir]
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"golang.org/x/text/unicode/rangetable"

	"github.com/go-uax/uax/internal/twostage"
	"github.com/go-uax/uax/internal/ucdparse"
)

func main() {
	var verbose bool
	var ucdDir string
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.StringVar(&ucdDir, "ucd", filepath.Join(os.Getenv("GOPATH"), "etc"), "directory holding extracted/DerivedCombiningClass.txt")
	flag.Parse()

	path := filepath.Join(ucdDir, "extracted", "DerivedCombiningClass.txt")
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	// Runes are grouped by combining class and merged through
	// rangetable.New before being packed, so a code point repeated across
	// adjoining DerivedCombiningClass.txt ranges for the same class is
	// only ever packed once.
	classRunes := make(map[byte][]rune)
	err = ucdparse.Parse(f, func(tok *ucdparse.Token) {
		n, err := strconv.ParseUint(tok.Field(1), 10, 8)
		if err != nil || n == 0 {
			return
		}
		from, to := tok.Range()
		for cp := from; cp <= to; cp++ {
			classRunes[byte(n)] = append(classRunes[byte(n)], cp)
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	values := make(map[rune]byte)
	for class, runes := range classRunes {
		rangetable.Visit(rangetable.New(runes...), func(cp rune) {
			values[cp] = class
		})
	}

	tbl := twostage.BuildTable2(values)
	if verbose {
		log.Printf("stage1=%d stage2=%d", len(tbl.Stage1), len(tbl.Stage2))
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

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"u16s": formatU16Slice,
	"u8s":  formatU8Slice,
}).Parse(`// Code generated by ccc/internal/generator. DO NOT EDIT.

package ccc

import "github.com/go-uax/uax/internal/twostage"

var generatedTable = &twostage.Table2{
	Stage1: []uint16{ {{u16s .Stage1}} },
	Stage2: []byte{ {{u8s .Stage2}} },
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
