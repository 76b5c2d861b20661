/*
Generator for the dense word-break property table.

Content

This is a generator for the UAX#29 word-break code-point table of
package words. Classes are generated from a UAX#29 companion file:
"WordBreakProperty.txt". This is the definite source for UAX#29
code-point classes.

The property ranges of the input file are sorted, merged, and
completed into a dense table: every code point of 0x0..0x10FFFF is
covered, with Other filling the unassigned gaps.

Usage

The generator has a "verbose" flag and a flag for the location of the
UCD input file:

	generator [-v] [-ucd WordBreakProperty.txt]

This creates a file "wbranges.go" in the current directory. It is
designed to be called from the module root.

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

var logger = log.New(os.Stderr, "UAX#29 generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// The classes of WordBreakProperty.txt, spelled the way the data file
// spells them. Everything else maps to Other.
var wordBreakClassNames = []string{"ALetter", "CR", "Double_Quote", "Extend",
	"ExtendNumLet", "Format", "Hebrew_Letter", "Katakana", "LF", "MidLetter",
	"MidNum", "MidNumLet", "Newline", "Numeric", "Regional_Indicator",
	"Single_Quote", "WSegSpace", "ZWJ"}

type propRange struct {
	from, to rune
	prop     string
}

func byLowCodePoint(a, b interface{}) int {
	ra, rb := a.(propRange), b.(propRange)
	return utils.Int32Comparator(int32(ra.from), int32(rb.from))
}

// loadWordBreakFile reads the UAX#29 definition file WordBreakProperty.txt
// and returns its property ranges, sorted by first code point.
func loadWordBreakFile(path string) (*arraylist.List, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading WordBreakProperty.txt")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	known := make(map[string]bool, len(wordBreakClassNames))
	for _, name := range wordBreakClassNames {
		known[name] = true
	}
	list := arraylist.New()
	err = ucdparse.Parse(f, func(token *ucdparse.Token) {
		prop := token.Field(1)
		if !known[prop] {
			logger.Printf("skipping unknown property %q", prop)
			return
		}
		from, to := token.Range()
		list.Add(propRange{from: from, to: to, prop: prop})
	})
	list.Sort(byLowCodePoint)
	return list, err
}

// densify turns the sorted assigned ranges into the dense table
// representation: one entry per run start, Other runs filling the
// gaps, the final run extending through 0x10FFFF.
func densify(list *arraylist.List) []propRange {
	var dense []propRange
	next := rune(0)
	it := list.Iterator()
	for it.Next() {
		r := it.Value().(propRange)
		if r.from > next {
			dense = append(dense, propRange{from: next, prop: "Other"})
		}
		if n := len(dense); n > 0 && dense[n-1].prop == r.prop && r.from <= next {
			// adjacent run of the same class; extend it
		} else {
			dense = append(dense, propRange{from: r.from, prop: r.prop})
		}
		if r.to+1 > next {
			next = r.to + 1
		}
	}
	if next <= 0x10FFFF {
		dense = append(dense, propRange{from: next, prop: "Other"})
	}
	if dense[0].from != 0 {
		panic("generated table does not start at code point 0")
	}
	return dense
}

var header = `package words

// This file has been generated -- you probably should NOT EDIT IT !
//
// Dense word-break property table, generated from WordBreakProperty.txt
// of the Unicode Character Database. Entry i covers the code points
// from its lo up to, but not including, the lo of entry i+1; the
// final entry extends through 0x10FFFF. Code points of unassigned
// gaps carry the class Other.

var wordBreakRanges = []wbRange{
`

func generateTable(w *bufio.Writer, dense []propRange) {
	defer timeTrack(time.Now(), "generate dense table")
	w.WriteString(header)
	for i, r := range dense {
		if i%4 == 0 {
			w.WriteString("\t")
		}
		fmt.Fprintf(w, "{%#04x, %s},", r.from, r.prop)
		if i%4 == 3 {
			w.WriteString("\n")
		} else {
			w.WriteString(" ")
		}
	}
	if len(dense)%4 != 0 {
		w.WriteString("\n")
	}
	w.WriteString("}\n")
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdFile := flag.String("ucd", "WordBreakProperty.txt", "location of the UCD input file")
	flag.Parse()
	verbose = *doVerbose
	list, err := loadWordBreakFile(*ucdFile)
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d property ranges", list.Size())
	}
	dense := densify(list)
	if verbose {
		logger.Printf("dense table has %d entries", len(dense))
	}
	f, ioerr := os.Create("wbranges.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	generateTable(w, dense)
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
