package words

import (
	"sync"

	"github.com/eddieantonio/unicode-default-word-boundary/emoji"
)

// wbRange is one entry of the generated word-break property table.
// The table is dense: entry i covers the code points from lo up to,
// but not including, the lo of entry i+1; the final entry extends
// through 0x10FFFF.
type wbRange struct {
	lo   rune
	prop Property
}

// The packed lookup covers the Basic Multilingual Plane: one 64-bit
// word per 8 code points, 5 bits per class. Code points above the
// ceiling go through binary search on the range table instead, which
// keeps the packed table at 64 KB while still serving the vast
// majority of lookups with two memory references.
const (
	packedCeiling   = 0x10000
	bitsPerProperty = 5
	propertyMask    = 1<<bitsPerProperty - 1
)

var packed []uint64

var setupOnce sync.Once

// SetupClasses is the top-level preparation function: it builds the
// packed word-break property lookup from the generated range table
// and sets up the emoji classes as well. (Concurrency-safe.)
//
// The property resolver will call this transparently if it has not
// been called beforehand.
func SetupClasses() {
	setupOnce.Do(setupClasses)
	emoji.SetupEmojiClasses()
}

func setupClasses() {
	tracer().Infof("building packed word-break property table")
	table := make([]uint64, packedCeiling/8)
	inx := 0 // current entry of wordBreakRanges
	for c := rune(0); c < packedCeiling; c++ {
		for inx+1 < len(wordBreakRanges) && wordBreakRanges[inx+1].lo <= c {
			inx++
		}
		table[c>>3] |= uint64(wordBreakRanges[inx].prop) << (uint(c&7) * bitsPerProperty)
	}
	packed = table
}

func packedProperty(r rune) Property {
	SetupClasses()
	w := packed[r>>3]
	return Property(w >> (uint(r&7) * bitsPerProperty) & propertyMask)
}

// searchProperty resolves a class by iterative binary search for the
// entry with the greatest lo <= r. The table starts at 0, so the
// search cannot fall off the front.
func searchProperty(r rune) Property {
	lo, hi := 0, len(wordBreakRanges)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if wordBreakRanges[mid].lo <= r {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return wordBreakRanges[lo].prop
}

// IsExtendedPictographic reports whether the code point carries the
// UTS#51 Extended_Pictographic property. Such code points combine
// with ZWJ to form emoji sequences (rule WB3c).
func IsExtendedPictographic(r rune) bool {
	return emoji.IsExtendedPictographic(r)
}
