/*
Generator for UTS#51 Extended_Pictographic character classes.

Content

Generator for the Unicode Extended_Pictographic code-point table. For
more information see
http://www.unicode.org/reports/tr51/#Emoji_Properties_and_Data_Files

The table is generated from a companion file: "emoji-data.txt". Only
the rows carrying the Extended_Pictographic property are consumed.

Usage

The generator has a "verbose" flag and a flag for the location of the
UCD input file:

	generator [-v] [-ucd emoji-data.txt]

This creates a file "pictographic.go" in the current directory. It is
designed to be called from the "emoji" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the
root folder of this module.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/utils"

	"github.com/eddieantonio/unicode-default-word-boundary/internal/ucdparse"
)

var logger = log.New(os.Stderr, "emoji generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

type codePointRange struct {
	from, to rune
}

func byLowCodePoint(a, b interface{}) int {
	ra, rb := a.(codePointRange), b.(codePointRange)
	return utils.Int32Comparator(int32(ra.from), int32(rb.from))
}

// loadEmojiDataFile reads emoji-data.txt and collects the
// Extended_Pictographic ranges, sorted and merged.
func loadEmojiDataFile(path string) ([]codePointRange, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading emoji-data.txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	list := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		if token.Field(1) != "Extended_Pictographic" {
			return
		}
		from, to := token.Range()
		list.Add(codePointRange{from: from, to: to})
	})
	if err != nil {
		return nil, err
	}
	list.Sort(byLowCodePoint)
	var merged []codePointRange
	it := list.Iterator()
	for it.Next() {
		r := it.Value().(codePointRange)
		if n := len(merged); n > 0 && r.from <= merged[n-1].to+1 {
			if r.to > merged[n-1].to {
				merged[n-1].to = r.to
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged, nil
}

var header = `package emoji

// This file has been generated -- you probably should NOT EDIT IT !
//
// Extended_Pictographic ranges, generated from emoji-data.txt of the
// Unicode Character Database. The table is split at the plane
// boundary; SetupEmojiClasses() merges the two parts.

import "unicode"
`

// generateTables emits the two range-table parts, split at the plane
// boundary so that the 16-bit representation can be used below it.
func generateTables(w *bufio.Writer, ranges []codePointRange) {
	defer timeTrack(time.Now(), "generate range tables")
	w.WriteString(header)
	latinOffset := 0
	w.WriteString("\nvar _ExtendedPictographicBMP = &unicode.RangeTable{\n\tR16: []unicode.Range16{\n")
	for _, r := range ranges {
		if r.from > 0xFFFF {
			continue
		}
		if r.to <= 0xFF {
			latinOffset++
		}
		fmt.Fprintf(w, "\t\t{%#04x, %#04x, 1},\n", r.from, r.to)
	}
	w.WriteString("\t},\n")
	fmt.Fprintf(w, "\tLatinOffset: %d,\n}\n", latinOffset)
	w.WriteString("\nvar _ExtendedPictographicSMP = &unicode.RangeTable{\n\tR32: []unicode.Range32{\n")
	for _, r := range ranges {
		if r.from <= 0xFFFF {
			continue
		}
		fmt.Fprintf(w, "\t\t{%#04x, %#04x, 1},\n", r.from, r.to)
	}
	w.WriteString("\t},\n}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdFile := flag.String("ucd", "emoji-data.txt", "location of the UCD input file")
	flag.Parse()
	verbose = *doVerbose
	ranges, err := loadEmojiDataFile(*ucdFile)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d Extended_Pictographic ranges", len(ranges))
	}
	f, ioerr := os.Create("pictographic.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	generateTables(w, ranges)
	w.Flush()
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
