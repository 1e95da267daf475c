/*
Package ucdparse provides a parser for Unicode Character Database files, the
format of which is defined in http://www.unicode.org/reports/tr44/. See
http://www.unicode.org/Public/UCD/latest/ucd/ for example files.

UCD files share a line-oriented format: semicolon-separated fields, an
optional "#"-introduced comment, and a first field that is either a single
hex code point or a "FROM..TO" hex range. Blank lines and comment-only lines
are skipped.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token is one data line of a UCD file, already split into fields.
type Token struct {
	LineNo   int
	runeFrom rune
	runeTo   rune
	Fields   []string
	Comment  string
}

func (t *Token) String() string {
	return fmt.Sprintf("token[line %d, %#U..%#U, %v]", t.LineNo, t.runeFrom, t.runeTo, t.Fields)
}

// Field returns field i (1-based; field 1 is the first field after the
// code-point/range field).
func (t *Token) Field(i int) string {
	if i >= 1 && i <= len(t.Fields) {
		return strings.TrimSpace(t.Fields[i-1])
	}
	return ""
}

// Range returns the code-point range of this data line. For a single
// code-point line, from == to.
func (t *Token) Range() (from, to rune) {
	return t.runeFrom, t.runeTo
}

// Parser scans a UCD file line by line.
type Parser struct {
	scanner *bufio.Scanner
	lineNo  int
	Token   *Token
	Err     error
}

// New creates a Parser over r.
func New(r io.Reader) (*Parser, error) {
	if r == nil {
		return nil, fmt.Errorf("ucdparse: nil reader")
	}
	return &Parser{scanner: bufio.NewScanner(r)}, nil
}

// Next advances to the next data line, populating p.Token. It returns false
// at end of input or on a parse error (see p.Err).
func (p *Parser) Next() bool {
	for p.scanner.Scan() {
		p.lineNo++
		line := p.scanner.Text()
		tok, ok, err := parseLine(line, p.lineNo)
		if err != nil {
			p.Err = err
			return false
		}
		if !ok {
			continue // blank or comment-only line
		}
		p.Token = tok
		return true
	}
	p.Err = p.scanner.Err()
	return false
}

// Parse calls f for every data line of r.
func Parse(r io.Reader, f func(*Token)) error {
	p, err := New(r)
	if err != nil {
		return err
	}
	for p.Next() {
		f(p.Token)
	}
	return p.Err
}

func parseLine(line string, lineNo int) (*Token, bool, error) {
	body := line
	var comment string
	if i := strings.IndexByte(line, '#'); i >= 0 {
		body, comment = line[:i], strings.TrimSpace(line[i+1:])
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, false, nil
	}
	fields := strings.Split(body, ";")
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	from, to, err := parseRange(fields[0])
	if err != nil {
		return nil, false, fmt.Errorf("ucdparse: line %d: %w", lineNo, err)
	}
	return &Token{
		LineNo:   lineNo,
		runeFrom: from,
		runeTo:   to,
		Fields:   fields[1:],
		Comment:  comment,
	}, true, nil
}

func parseRange(field string) (from, to rune, err error) {
	if i := strings.Index(field, ".."); i >= 0 {
		lo, err := strconv.ParseInt(field[:i], 16, 32)
		if err != nil {
			return 0, 0, err
		}
		hi, err := strconv.ParseInt(field[i+2:], 16, 32)
		if err != nil {
			return 0, 0, err
		}
		return rune(lo), rune(hi), nil
	}
	cp, err := strconv.ParseInt(field, 16, 32)
	if err != nil {
		return 0, 0, err
	}
	return rune(cp), rune(cp), nil
}

// ParseCodePoints parses a space-separated list of hex code points, as used
// in CaseFolding.txt's and UnicodeData.txt's multi-codepoint mapping fields.
func ParseCodePoints(field string) ([]rune, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return nil, nil
	}
	parts := strings.Fields(field)
	out := make([]rune, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(p, 16, 32)
		if err != nil {
			return nil, err
		}
		out = append(out, rune(v))
	}
	return out, nil
}
