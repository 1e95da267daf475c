/*
Command generator builds fold's runtime case-folding table from
CaseFolding.txt, keeping only status C (common) and F (full) rows per
spec.md §4.4 and discarding S (simple) and T (Turkic). It emits
fold/tables_generated.go with an expansions literal and a Stage1/Stage2
index table, ready to replace the curated sourceFolds in fold/fold.go.

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
	"text/template"

	"github.com/go-uax/uax/internal/twostage"
	"github.com/go-uax/uax/internal/ucdparse"
)

func main() {
	var verbose bool
	var ucdDir string
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.StringVar(&ucdDir, "ucd", filepath.Join(os.Getenv("GOPATH"), "etc"), "directory holding CaseFolding.txt")
	flag.Parse()

	path := filepath.Join(ucdDir, "CaseFolding.txt")
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var expansions [][]rune
	expansions = append(expansions, nil) // index 0: identity
	index := make(map[rune]byte)

	err = ucdparse.Parse(f, func(tok *ucdparse.Token) {
		status := tok.Field(1)
		if status != "C" && status != "F" {
			return
		}
		from, _ := tok.Range()
		to, err := ucdparse.ParseCodePoints(tok.Field(2))
		if err != nil || len(to) == 0 || len(to) > 3 {
			return
		}
		idx := len(expansions)
		if idx > 255 {
			log.Fatal("fold expansions overflow byte index; widen to Table3")
		}
		expansions = append(expansions, to)
		index[from] = byte(idx)
	})
	if err != nil {
		log.Fatal(err)
	}

	tbl := twostage.BuildTable2(index)
	if verbose {
		log.Printf("fold stage1=%d stage2=%d expansions=%d", len(tbl.Stage1), len(tbl.Stage2), len(expansions))
	}

	out, err := os.Create("tables_generated.go")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	data := struct {
		Table      *twostage.Table2
		Expansions [][]rune
	}{tbl, expansions}
	if err := tablesTemplate.Execute(w, data); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"u16s":        formatU16Slice,
	"u8s":         formatU8Slice,
	"expansions":  formatExpansions,
}).Parse(`// Code generated by fold/internal/generator. DO NOT EDIT.

package fold

import "github.com/go-uax/uax/internal/twostage"

var generatedTable = &twostage.Table2{
	Stage1: []uint16{ {{u16s .Table.Stage1}} },
	Stage2: []byte{ {{u8s .Table.Stage2}} },
}

var generatedExpansions = [][]rune{
{{expansions .Expansions}}
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

func formatExpansions(exps [][]rune) string {
	s := ""
	for _, exp := range exps {
		s += "\t{"
		for i, cp := range exp {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("0x%04X", cp)
		}
		s += "},\n"
	}
	return s
}
