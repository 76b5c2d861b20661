package words

import (
	"testing"
	"unicode"
)

func TestPropertySpotChecks(t *testing.T) {
	checks := []struct {
		r    rune
		want Property
	}{
		{'a', ALetter}, {'Z', ALetter}, {'В', ALetter}, {'ß', ALetter},
		{'א', Hebrew_Letter}, {0xFB1D, Hebrew_Letter},
		{'7', Numeric}, {0x0660, Numeric},
		{'\r', CR}, {'\n', LF}, {0x0085, Newline}, {0x2028, Newline},
		{' ', WSegSpace}, {0x2009, WSegSpace}, {0x3000, WSegSpace},
		{'"', Double_Quote}, {'\'', Single_Quote},
		{':', MidLetter}, {0x00B7, MidLetter}, {0x05F4, MidLetter},
		{',', MidNum}, {';', MidNum},
		{'.', MidNumLet}, {0x2019, MidNumLet},
		{'_', ExtendNumLet}, {0x202F, ExtendNumLet},
		{0x0301, Extend}, {0x200C, Extend}, {0xFE0F, Extend}, {0x1F3FB, Extend},
		{0x00AD, Format}, {0x200E, Format}, {0xFEFF, Format},
		{0x200D, ZWJ},
		{0x30A2, Katakana}, {0x30FC, Katakana}, {0xFF76, Katakana},
		{0x1F1E6, Regional_Indicator}, {0x1F1FF, Regional_Indicator},
		{'米', Other}, {0x3042, Other}, {'?', Other}, {0x201C, Other},
		{0x166E, Other}, {0x0E01, Other},
	}
	for _, c := range checks {
		if have := PropertyForRune(c.r); have != c.want {
			t.Errorf("property of %#U is %s, expected %s", c.r, have, c.want)
		}
	}
}

func TestPropertyTotal(t *testing.T) {
	// never panic, always yield a table value; the variation-selector
	// plane and the table tail are the historic trouble spots
	probe := func(lo, hi rune) {
		for r := lo; r <= hi; r++ {
			p := PropertyForRune(r)
			if p < Other || p > ZWJ {
				t.Fatalf("property of %#U out of range: %d", r, int(p))
			}
		}
	}
	probe(0, 0x2FF)
	probe(0xD7F0, 0xE010) // across the surrogate gap
	probe(0xE0000, 0xE01FF)
	probe(0x10FF00, unicode.MaxRune)
	if PropertyForRune(-1) != Other || PropertyForRune(unicode.MaxRune+1) != Other {
		t.Errorf("out-of-range code points must resolve to Other")
	}
}

func TestTableDensity(t *testing.T) {
	if wordBreakRanges[0].lo != 0 {
		t.Errorf("table must start at code point 0, starts at %#U", wordBreakRanges[0].lo)
	}
	for i := 1; i < len(wordBreakRanges); i++ {
		if wordBreakRanges[i].lo <= wordBreakRanges[i-1].lo {
			t.Fatalf("table entries not strictly increasing at index %d (%#U)",
				i, wordBreakRanges[i].lo)
		}
	}
	last := wordBreakRanges[len(wordBreakRanges)-1]
	if last.lo > unicode.MaxRune {
		t.Errorf("last entry starts past the code-point space: %#U", last.lo)
	}
	// the final run extends through 0x10FFFF
	if PropertyForRune(unicode.MaxRune) != last.prop {
		t.Errorf("lookup at U+10FFFF does not hit the final run")
	}
}

func TestPackedMatchesSearch(t *testing.T) {
	SetupClasses()
	for r := rune(0); r < packedCeiling; r++ {
		if packedProperty(r) != searchProperty(r) {
			t.Fatalf("packed lookup disagrees with binary search at %#U: %s vs %s",
				r, packedProperty(r), searchProperty(r))
		}
	}
}

func TestPropertyStringer(t *testing.T) {
	cases := map[Property]string{
		Other:              "Other",
		ALetter:            "ALetter",
		Double_Quote:       "Double_Quote",
		Hebrew_Letter:      "Hebrew_Letter",
		Regional_Indicator: "Regional_Indicator",
		WSegSpace:          "WSegSpace",
		ZWJ:                "ZWJ",
		sot:                "sot",
		eot:                "eot",
	}
	for p, want := range cases {
		if p.String() != want {
			t.Errorf("stringer of class %d is %q, expected %q", int(p), p.String(), want)
		}
	}
	if Property(99).String() != "Property(99)" {
		t.Errorf("unexpected stringer fallback %q", Property(99).String())
	}
}
