/*
Command generator builds norm's decomposition and composition-exclusion
tables from UnicodeData.txt (field 5) and DerivedNormalizationProps.txt
(Full_Composition_Exclusion), emitting norm/tables_generated.go with
literal decompEntries and fullCompositionExclusions data ready to replace
the curated extracts in norm/norm.go.

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
	"sort"
	"strings"
	"text/template"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/go-uax/uax/internal/ucdparse"
)

type entry struct {
	cp     rune
	compat bool
	to     []rune
}

func main() {
	var verbose bool
	var ucdDir string
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.StringVar(&ucdDir, "ucd", filepath.Join(os.Getenv("GOPATH"), "etc"), "directory holding UnicodeData.txt and DerivedNormalizationProps.txt")
	flag.Parse()

	entries := parseUnicodeData(filepath.Join(ucdDir, "UnicodeData.txt"))
	exclusions := parseExclusions(filepath.Join(ucdDir, "DerivedNormalizationProps.txt"))
	if verbose {
		log.Printf("decompositions=%d exclusions=%d", len(entries), len(exclusions))
	}

	out, err := os.Create("tables_generated.go")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	data := struct {
		Entries    []entry
		Exclusions []rune
	}{entries, exclusions}
	if err := tablesTemplate.Execute(w, data); err != nil {
		log.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		log.Fatal(err)
	}
}

// parseUnicodeData reads field 5 (Decomposition_Mapping). A leading
// "<tag>" token marks a compatibility mapping; its absence marks a
// canonical one. Rows with no field 5 content have no decomposition.
func parseUnicodeData(path string) []entry {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	var out []entry
	err = ucdparse.Parse(f, func(tok *ucdparse.Token) {
		field := tok.Field(5)
		if field == "" {
			return
		}
		cp, _ := tok.Range()
		compat := false
		if strings.HasPrefix(field, "<") {
			compat = true
			if idx := strings.Index(field, ">"); idx >= 0 {
				field = strings.TrimSpace(field[idx+1:])
			}
		}
		to, err := ucdparse.ParseCodePoints(field)
		if err != nil || len(to) == 0 {
			return
		}
		out = append(out, entry{cp: cp, compat: compat, to: to})
	})
	if err != nil {
		log.Fatal(err)
	}
	return out
}

// parseExclusions reads DerivedNormalizationProps.txt rows whose property
// field is Full_Composition_Exclusion. Full_Composition_Exclusion is
// itself the union of several derived sub-properties (Composition_Exclusion,
// the singleton decompositions, the non-starter decompositions...), so the
// file can list the same code point under more than one block; a hashset
// collapses those before the range is flattened and sorted for the
// generated table.
func parseExclusions(path string) []rune {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	seen := hashset.New()
	err = ucdparse.Parse(f, func(tok *ucdparse.Token) {
		if strings.TrimSpace(tok.Field(1)) != "Full_Composition_Exclusion" {
			return
		}
		from, to := tok.Range()
		for cp := from; cp <= to; cp++ {
			seen.Add(cp)
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	out := make([]rune, 0, seen.Size())
	for _, v := range seen.Values() {
		out = append(out, v.(rune))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var tablesTemplate = template.Must(template.New("tables").Funcs(template.FuncMap{
	"entries":    formatEntries,
	"exclusions": formatExclusions,
}).Parse(`// Code generated by norm/internal/generator. DO NOT EDIT.

package norm

var generatedDecompEntries = []decompEntry{
{{entries .Entries}}
}

var generatedFullCompositionExclusions = map[rune]bool{
{{exclusions .Exclusions}}
}
`))

func formatEntries(es []entry) string {
	s := ""
	for _, e := range es {
		s += fmt.Sprintf("\t{0x%04X, %v, []rune{", e.cp, e.compat)
		for i, cp := range e.to {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("0x%04X", cp)
		}
		s += "}},\n"
	}
	return s
}

func formatExclusions(rs []rune) string {
	s := ""
	for _, r := range rs {
		s += fmt.Sprintf("\t0x%04X: true,\n", r)
	}
	return s
}
