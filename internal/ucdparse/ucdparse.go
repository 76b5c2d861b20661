/*
Package ucdparse provides a parser for Unicode Character Database files.

The file format is defined in http://www.unicode.org/reports/tr44/:
semicolon-separated fields, where the first field is a code point or
a code-point range, hash starts a rest-of-line comment, and blank
lines are ignored:

	<start>[..<end>] ; <property>  # comment

See http://www.unicode.org/Public/UCD/latest/ucd/ for example files.
*/
package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Token subsumes the properties of one data line of UCD input.
type Token struct {
	LineNo   int      // line within the input source
	runeFrom rune     // first/single rune
	runeTo   rune     // final rune of range (may be identical to runeFrom)
	Fields   []string // fields following the code-point field
	Comment  string   // rest-of-line comment, if any
	Error    error    // error condition, if any
}

func (token *Token) String() string {
	return fmt.Sprintf("token[line %d: %#U..%#U %v]", token.LineNo,
		token.runeFrom, token.runeTo, token.Fields)
}

// Field gets field #i (1…n) following the code-point field.
func (token *Token) Field(i int) string {
	if i >= 1 && i <= len(token.Fields) {
		return token.Fields[i-1]
	}
	return ""
}

// Range gets the character range from the current data item.
func (token *Token) Range() (from, to rune) {
	return token.runeFrom, token.runeTo
}

// --- Line level scanner ----------------------------------------------------

// Scanner walks the data lines of a UCD file, skipping comment-only
// and blank lines.
type Scanner struct {
	buf       *bufio.Scanner
	lineno    int
	LastError error
	Token     *Token // last token produced by the scanner
}

// New creates a scanner for an input reader.
func New(inputReader io.Reader) (*Scanner, error) {
	if inputReader == nil {
		return nil, fmt.Errorf("no input present")
	}
	return &Scanner{buf: bufio.NewScanner(inputReader)}, nil
}

// Parse iterates over each data line of the file and calls callback f
// on the resulting token.
func Parse(r io.Reader, f func(token *Token)) error {
	sc, err := New(r)
	if err != nil {
		return err
	}
	for sc.Next() {
		f(sc.Token)
	}
	return sc.LastError
}

// Next is called to receive the next line-level token. It returns
// false at the end of the input.
func (sc *Scanner) Next() bool {
	for sc.buf.Scan() {
		sc.lineno++
		line := sc.buf.Text()
		var comment string
		if inx := strings.IndexByte(line, '#'); inx >= 0 {
			comment = strings.TrimSpace(line[inx+1:])
			line = line[:inx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		token := &Token{LineNo: sc.lineno, Comment: comment}
		sc.scanLine(token, line)
		sc.Token = token
		if token.Error != nil {
			sc.LastError = token.Error
		}
		return true
	}
	if err := sc.buf.Err(); err != nil {
		sc.LastError = err
	}
	return false
}

func (sc *Scanner) scanLine(token *Token, line string) {
	fields := strings.Split(line, ";")
	cps := strings.TrimSpace(fields[0])
	for _, f := range fields[1:] {
		token.Fields = append(token.Fields, strings.TrimSpace(f))
	}
	var from, to string
	if inx := strings.Index(cps, ".."); inx >= 0 {
		from, to = cps[:inx], cps[inx+2:]
	} else {
		from, to = cps, cps
	}
	token.runeFrom = token.hex(from)
	token.runeTo = token.hex(to)
}

// hex decodes one 4–6 digit code-point field.
func (token *Token) hex(s string) rune {
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil && token.Error == nil {
		token.Error = fmt.Errorf("line %d: hex decoding error: %w", token.LineNo, err)
	}
	return rune(n)
}
