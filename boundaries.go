package words

import (
	"unicode/utf8"
)

// Boundaries walks a string and reports the word-boundary positions
// of UAX#29 section 4.1, one per call to Next. Positions are byte
// offsets into the input and strictly increase; for non-empty input
// the first position is 0 and the last is len(text).
//
// The walk keeps a window of four word-break classes — lookbehind,
// left, right, lookahead — which is shifted one scalar value to the
// right per step. A boundary, when one is found, lies between left
// and right, at the position of right.
//
// A Boundaries iterator is a cheap, short-lived object. It must not
// be shared between goroutines; distinct iterators over distinct (or
// identical) inputs are safe to use concurrently.
type Boundaries struct {
	text       string
	lookbehind Property
	left       Property
	right      Property
	lookahead  Property
	rightPos   int // byte offset of the left edge of right
	aheadPos   int // byte offset of the left edge of lookahead
	riRun      int // consecutive Regional_Indicators ending at left
	pos        int // most recently emitted boundary
	done       bool
}

// FindBoundaries creates an iterator over the word boundaries of
// text. The iterator is lazy: it advances one scalar value per
// step and holds no state beyond the four-class window and the
// Regional_Indicator run length.
func FindBoundaries(text string) *Boundaries {
	b := &Boundaries{}
	b.Init(text)
	return b
}

// Init (re-)initializes an iterator for a new input, retaining no
// state from a previous walk.
func (b *Boundaries) Init(text string) {
	b.text = text
	b.lookbehind, b.left, b.right = sot, sot, sot
	b.rightPos = 0
	b.aheadPos = 0
	b.lookahead = b.propertyAt(0)
	b.riRun = 0
	b.pos = -1
	b.done = len(text) == 0 // empty input produces no boundaries
}

// Pos returns the boundary found by the last successful call to Next.
func (b *Boundaries) Pos() int {
	return b.pos
}

// Next advances the iterator to the next word boundary. It returns
// false when the input is exhausted.
func (b *Boundaries) Next() bool {
	if b.done {
		return false
	}
	for {
		b.shift()
		brk, terminal := b.step()
		// Track the run of Regional_Indicators ending at left, for
		// the parity decision of WB15/WB16 on the next step.
		if b.right == Regional_Indicator {
			b.riRun++
		} else {
			b.riRun = 0
		}
		if terminal {
			b.done = true
		}
		if brk {
			b.pos = b.rightPos
			return true
		}
	}
}

// step applies the word-boundary rules, in priority order, to the
// current window. It reports whether a boundary lies between left
// and right, and whether the walk is complete (right reached the end
// of the text).
func (b *Boundaries) step() (brk, terminal bool) {
	switch {
	case b.left == sot: // WB1
		return true, false
	case b.right == eot: // WB2
		return true, true
	case b.left == CR && b.right == LF: // WB3
		return false, false
	case newlineCRLF(b.left): // WB3a
		return true, false
	case newlineCRLF(b.right): // WB3b
		return true, false
	}
	// A raw WB4 sweep would erase the ZWJ that WB3c needs; pull a
	// pending ZWJ + pictograph pair into (left, right) first.
	b.foldPictographs()
	if b.left == ZWJ && b.extPictAt(b.rightPos) { // WB3c
		return false, false
	}
	if b.left == WSegSpace && b.right == WSegSpace { // WB3d
		return false, false
	}
	// WB4: Ignore Format and Extend characters, except after sot,
	// CR, LF, and Newline. Those exceptions are already honoured:
	// WB1/WB3a emitted their boundaries above, so absorbing into
	// right and lookahead here is safe.
	if b.sweepIgnorable() {
		return true, true
	}
	switch {
	case aHLetter(b.left) && aHLetter(b.right): // WB5
		return false, false
	case aHLetter(b.left) && (b.right == MidLetter || midNumLetQ(b.right)) &&
		aHLetter(b.lookahead): // WB6
		return false, false
	case (b.left == MidLetter || midNumLetQ(b.left)) && aHLetter(b.right) &&
		aHLetter(b.lookbehind): // WB7
		return false, false
	case b.left == Hebrew_Letter && b.right == Single_Quote: // WB7a
		return false, false
	case b.left == Hebrew_Letter && b.right == Double_Quote &&
		b.lookahead == Hebrew_Letter: // WB7b
		return false, false
	case b.left == Double_Quote && b.right == Hebrew_Letter &&
		b.lookbehind == Hebrew_Letter: // WB7c
		return false, false
	case b.left == Numeric && b.right == Numeric: // WB8
		return false, false
	case aHLetter(b.left) && b.right == Numeric: // WB9
		return false, false
	case b.left == Numeric && aHLetter(b.right): // WB10
		return false, false
	case (b.left == MidNum || midNumLetQ(b.left)) && b.right == Numeric &&
		b.lookbehind == Numeric: // WB11
		return false, false
	case b.left == Numeric && (b.right == MidNum || midNumLetQ(b.right)) &&
		b.lookahead == Numeric: // WB12
		return false, false
	case b.left == Katakana && b.right == Katakana: // WB13
		return false, false
	case (aHLetter(b.left) || b.left == Numeric || b.left == Katakana ||
		b.left == ExtendNumLet) && b.right == ExtendNumLet: // WB13a
		return false, false
	case b.left == ExtendNumLet &&
		(aHLetter(b.right) || b.right == Numeric || b.right == Katakana): // WB13b
		return false, false
	case b.right == Regional_Indicator && b.riRun%2 == 1: // WB15/WB16
		// An odd run of Regional_Indicators ends at left, so left
		// and right pair up into one flag sequence.
		return false, false
	}
	return true, false // WB999
}

// shift moves the window one scalar value to the right.
func (b *Boundaries) shift() {
	b.lookbehind, b.left, b.right = b.left, b.right, b.lookahead
	b.rightPos = b.aheadPos
	b.aheadPos += b.widthAt(b.aheadPos)
	b.lookahead = b.propertyAt(b.aheadPos)
}

// foldPictographs advances the window over the lookahead patterns
//
//	(Extend|Format) ZWJ Extended_Pictographic
//	ZWJ Extended_Pictographic
//
// starting at right, so that the ZWJ lands in left and WB3c can see
// it. The skipped positions carry no boundary: WB4 would have
// absorbed them anyway.
func (b *Boundaries) foldPictographs() {
	if (b.right == Extend || b.right == Format) && b.lookahead == ZWJ &&
		b.extPictAt(b.aheadPos+b.widthAt(b.aheadPos)) {
		b.shift()
		b.shift()
	} else if b.right == ZWJ && b.extPictAt(b.aheadPos) {
		b.shift()
	}
}

// sweepIgnorable performs the WB4 absorption: while right is Extend,
// Format or ZWJ, it is attached to the segment on its left, without
// touching lookbehind or left. The same absorption is applied to
// lookahead, so that the rules with lookahead conditions (WB6, WB7b,
// WB12) see through ignorable characters. Absorption may run off the
// end of the text; then the final boundary at len(text) is due and
// the walk terminates.
func (b *Boundaries) sweepIgnorable() (terminal bool) {
	for extendFormatZWJ(b.right) {
		b.rightPos = b.aheadPos
		b.right = b.lookahead
		b.aheadPos += b.widthAt(b.aheadPos)
		b.lookahead = b.propertyAt(b.aheadPos)
		if b.right == eot {
			return true
		}
	}
	for extendFormatZWJ(b.lookahead) {
		b.aheadPos += b.widthAt(b.aheadPos)
		b.lookahead = b.propertyAt(b.aheadPos)
	}
	return false
}

// propertyAt resolves the word-break class of the scalar value
// starting at byte offset i, or eot past the end of the text.
// Invalid bytes resolve to Other; they are stepped over bytewise, so
// no boundary is ever emitted inside an encoded scalar value.
func (b *Boundaries) propertyAt(i int) Property {
	if i >= len(b.text) {
		return eot
	}
	r, _ := utf8.DecodeRuneInString(b.text[i:])
	return PropertyForRune(r)
}

// widthAt returns the encoded byte length of the scalar value at
// offset i (1 for an invalid byte, 0 past the end).
func (b *Boundaries) widthAt(i int) int {
	if i >= len(b.text) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(b.text[i:])
	return w
}

func (b *Boundaries) extPictAt(i int) bool {
	if i >= len(b.text) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(b.text[i:])
	return IsExtendedPictographic(r)
}
