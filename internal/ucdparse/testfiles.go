package ucdparse

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"testing"
)

// TestFile reads a UCD conformance-test file (WordBreakTest.txt and
// friends) line by line, skipping comment lines.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
}

// OpenTestFile opens a UCD test file. The test files are downloaded
// from unicode.org, not checked in; if the file is not present the
// calling test is skipped.
func OpenTestFile(filename string, t *testing.T) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		t.Skipf("UCD test file not present, skipping: %s", filename)
		return nil
	}
	tf := &TestFile{in: f}
	tf.scanner = bufio.NewScanner(f)
	return tf
}

// Scan advances to the next test-case line.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if parts := strings.SplitN(line, "#", 2); len(parts) > 1 {
			tf.text, tf.comment = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		} else {
			tf.text, tf.comment = line, ""
		}
		return true
	}
	return false
}

// Text returns the test-case part of the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the trailing comment of the current line.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}

// BreakTestInput decodes one line of a UCD break-test file: hex code
// points separated by "÷" (break here) and "×" (no break here). It
// returns the assembled input string and the expected segments.
func BreakTestInput(ti string) (string, []string) {
	sc := bufio.NewScanner(strings.NewReader(ti))
	sc.Split(bufio.ScanWords)
	out := make([]string, 0, 5)
	inp := bytes.NewBuffer(make([]byte, 0, 20))
	run := bytes.NewBuffer(make([]byte, 0, 20))
	for sc.Scan() {
		token := sc.Text()
		switch token {
		case "÷":
			if run.Len() > 0 {
				out = append(out, run.String())
				run.Reset()
			}
		case "×":
			// no break between the surrounding code points
		default:
			n, _ := strconv.ParseUint(token, 16, 32)
			run.WriteRune(rune(n))
			inp.WriteRune(rune(n))
		}
	}
	return inp.String(), out
}
