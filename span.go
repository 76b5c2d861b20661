package words

import (
	"unicode/utf8"
)

// Span is the substring between two adjacent word boundaries. Text
// is a slice of the original input (no copy is made); its byte
// length equals End - Start.
type Span struct {
	Start int
	End   int
	Text  string
}

// Len returns the length of the span in bytes.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// SpanIterator yields the spans of a string, lazily, in order.
//
//	it := words.Spans(input)
//	for it.Next() {
//	    sp := it.Span()
//	    …
//	}
type SpanIterator struct {
	text string
	b    *Boundaries
	cur  Span
	prev int
	live bool
}

// Spans creates an iterator over the spans between adjacent word
// boundaries of text. Concatenating all spans, in order,
// reconstructs text exactly.
func Spans(text string) *SpanIterator {
	it := &SpanIterator{text: text, b: FindBoundaries(text)}
	if it.b.Next() { // leading boundary at 0
		it.prev = it.b.Pos()
		it.live = true
	}
	return it
}

// Next advances the iterator to the next span. It returns false when
// the input is exhausted.
func (it *SpanIterator) Next() bool {
	if !it.live || !it.b.Next() {
		it.live = false
		return false
	}
	end := it.b.Pos()
	it.cur = Span{Start: it.prev, End: end, Text: it.text[it.prev:end]}
	it.prev = end
	return true
}

// Span returns the span found by the last successful call to Next.
func (it *SpanIterator) Span() Span {
	return it.cur
}

// SplitWords breaks text at the word boundaries of UAX#29 and
// returns the resulting words.
//
// Spans consisting solely of segment-breaking whitespace — the CR,
// LF, Newline and WSegSpace classes — are dropped; every other span
// is retained, punctuation included. (The alternative filter, "keep
// only spans containing a letter, number or Katakana", would drop
// free-standing punctuation as well; this implementation
// deliberately keeps it.)
func SplitWords(text string) []string {
	b := borrowBoundaries(text)
	defer releaseBoundaries(b)
	if !b.Next() {
		return []string{}
	}
	out := make([]string, 0, len(text)/4+1)
	prev := b.Pos()
	for b.Next() {
		end := b.Pos()
		if !whitespaceOnly(text[prev:end]) {
			out = append(out, text[prev:end])
		}
		prev = end
	}
	return out
}

// CountWords reports how many words SplitWords would return, without
// materialising them.
func CountWords(text string) int {
	b := borrowBoundaries(text)
	defer releaseBoundaries(b)
	if !b.Next() {
		return 0
	}
	n, prev := 0, b.Pos()
	for b.Next() {
		end := b.Pos()
		if !whitespaceOnly(text[prev:end]) {
			n++
		}
		prev = end
	}
	return n
}

// whitespaceOnly reports whether every scalar value of s belongs to
// one of the whitespace word-break classes.
func whitespaceOnly(s string) bool {
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		switch PropertyForRune(r) {
		case CR, LF, Newline, WSegSpace:
			// keep scanning
		default:
			return false
		}
		i += w
	}
	return true
}
