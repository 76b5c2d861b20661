package words_test

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	words "github.com/eddieantonio/unicode-default-word-boundary"
	"github.com/eddieantonio/unicode-default-word-boundary/internal/ucdparse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func ExampleFindBoundaries() {
	b := words.FindBoundaries("Hi there")
	for b.Next() {
		fmt.Println(b.Pos())
	}
	// Output:
	// 0
	// 2
	// 3
	// 8
}

func collect(t *testing.T, input string) []int {
	t.Helper()
	var bounds []int
	b := words.FindBoundaries(input)
	for b.Next() {
		bounds = append(bounds, b.Pos())
	}
	return bounds
}

func TestEmptyInput(t *testing.T) {
	if bounds := collect(t, ""); len(bounds) != 0 {
		t.Errorf("expected no boundaries for empty input, have %v", bounds)
	}
	if ws := words.SplitWords(""); len(ws) != 0 {
		t.Errorf("expected no words for empty input, have %v", ws)
	}
}

var sampleCorpus = []string{
	"a",
	"Hello World🇩🇪!",
	"The quick (“brown”) fox can’t jump 32.3 feet, right?",
	"a\r\nb",
	"phở",
	"🧚🏽‍♂️",
	"ain't ain’t",
	"エラー",
	"В чащах юга жил бы цитрус?",
	"3.2 3,456.789",
	"क्‍ष",
	"\na\n",
}

func TestBoundaryInvariants(t *testing.T) {
	for _, input := range sampleCorpus {
		bounds := collect(t, input)
		if len(bounds) < 2 {
			t.Fatalf("%q: expected at least 2 boundaries, have %v", input, bounds)
		}
		if bounds[0] != 0 {
			t.Errorf("%q: first boundary is %d, expected 0", input, bounds[0])
		}
		if bounds[len(bounds)-1] != len(input) {
			t.Errorf("%q: last boundary is %d, expected %d", input,
				bounds[len(bounds)-1], len(input))
		}
		for i := 1; i < len(bounds); i++ {
			if bounds[i] <= bounds[i-1] {
				t.Errorf("%q: boundaries not strictly increasing: %v", input, bounds)
			}
		}
		for _, pos := range bounds {
			if pos < len(input) && !utf8.RuneStart(input[pos]) {
				t.Errorf("%q: boundary %d splits an encoded scalar value", input, pos)
			}
		}
		// concatenating all spans reconstructs the input
		var sb strings.Builder
		it := words.Spans(input)
		for it.Next() {
			sb.WriteString(it.Span().Text)
		}
		if sb.String() != input {
			t.Errorf("%q: span concatenation is %q", input, sb.String())
		}
	}
}

func TestIdempotence(t *testing.T) {
	for _, input := range sampleCorpus {
		bounds := collect(t, input)
		// re-splitting the concatenation of any run of adjacent spans
		// reproduces the boundaries of that run
		for i := 0; i+1 < len(bounds); i++ {
			for j := i + 1; j < len(bounds); j++ {
				sub := input[bounds[i]:bounds[j]]
				again := collect(t, sub)
				if len(again) != j-i+1 {
					t.Fatalf("%q[%d:%d]: expected %d boundaries, have %v",
						input, bounds[i], bounds[j], j-i+1, again)
				}
				for k, pos := range again {
					if pos != bounds[i+k]-bounds[i] {
						t.Errorf("%q[%d:%d]: boundary %d is %d, expected %d",
							input, bounds[i], bounds[j], k, pos, bounds[i+k]-bounds[i])
					}
				}
			}
		}
	}
}

// Rule-level fixtures. Each input must split exactly as listed by
// SplitWords, which drops whitespace-only spans; an expectation
// holding the whole input means the string is one indivisible span.
var ruleFixtures = []struct {
	name  string
	input string
	want  []string
}{
	{"WB3 CRLF", "a\r\nb", []string{"a", "b"}},
	{"WB3a break after newline", "\na", []string{"a"}},
	{"WB3b break before newline", "a\n", []string{"a"}},
	{"WB3c emoji zwj sequence", "\U0001F9DA\U0001F3FD\u200D\u2642\uFE0F", []string{"\U0001F9DA\U0001F3FD\u200D\u2642\uFE0F"}},
	{"WB3c bare zwj", "\U0001F44D\u200D\U0001F44D", []string{"\U0001F44D\u200D\U0001F44D"}},
	{"WB3d keep whitespace together", "a \u2009 b", []string{"a", "b"}},
	{"WB4 extend", "pho\u031B\u0309", []string{"pho\u031B\u0309"}},
	{"WB4 format", "Ka\u00ADwen\u00ADnon:\u00ADnis", []string{"Ka\u00ADwen\u00ADnon:\u00ADnis"}},
	{"WB4 zwj devanagari", "\u0915\u094D\u200D\u0937", []string{"\u0915\u094D\u200D\u0937"}},
	{"WB5 aletter x hebrew", "aא", []string{"aא"}},
	{"WB6 WB7 apostrophe", "ain't", []string{"ain't"}},
	{"WB7a hebrew single quote", "א'", []string{"א'"}},
	{"WB7b WB7c hebrew double quote", "א\"א", []string{"א\"א"}},
	{"WB8 numerics", "42", []string{"42"}},
	{"WB9 letter digit", "A3", []string{"A3"}},
	{"WB10 digit letter", "3a", []string{"3a"}},
	{"WB11 WB12 numbers", "3.2 3,456.789", []string{"3.2", "3,456.789"}},
	{"WB13 katakana", "エラー", []string{"エラー"}},
	{"WB13a WB13b extendnumlet", "\u1401\u202F\u14C2\u1438\u141F", []string{"\u1401\u202F\u14C2\u1438\u141F"}},
	{"WB13a underscore", "snake_case_42", []string{"snake_case_42"}},
	{"WB15 flag pair", "🇩🇪", []string{"🇩🇪"}},
	{"WB15 three indicators", "🇦🇧🇨", []string{"🇦🇧", "🇨"}},
	{"WB16 after letter", "a🇩🇪", []string{"a", "🇩🇪"}},
	{"WB999 ideographs", "米饼", []string{"米", "饼"}},
}

func TestRuleFixtures(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	for _, fixture := range ruleFixtures {
		have := words.SplitWords(fixture.input)
		if len(have) != len(fixture.want) {
			t.Errorf("%s: %+q split into %+q, expected %+q",
				fixture.name, fixture.input, have, fixture.want)
			continue
		}
		for i := range have {
			if have[i] != fixture.want[i] {
				t.Errorf("%s: %+q split into %+q, expected %+q",
					fixture.name, fixture.input, have, fixture.want)
				break
			}
		}
	}
}

func TestPropertyTotalityDuringWalk(t *testing.T) {
	// lone high surrogate half, smuggled in as raw WTF-8-ish bytes;
	// the engine must not panic and must not emit mid-scalar cuts
	input := "a\xed\xa0\x80b"
	bounds := collect(t, input)
	if bounds[0] != 0 || bounds[len(bounds)-1] != len(input) {
		t.Errorf("unexpected boundaries %v for surrogate input", bounds)
	}
}

func TestWordBreakTestFile(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	tf := ucdparse.OpenTestFile("testdata/WordBreakTest.txt", t)
	defer tf.Close()
	failcnt, i := 0, 0
	for tf.Scan() {
		i++
		in, out := ucdparse.BreakTestInput(tf.Text())
		if !executeSingleTest(t, i, in, out) {
			failcnt++
		}
	}
	if err := tf.Err(); err != nil {
		t.Errorf("reading input: %s", err)
	}
	if failcnt > 0 {
		t.Errorf("%d test cases out of %d failed", failcnt, i)
	}
}

func executeSingleTest(t *testing.T, tno int, in string, out []string) bool {
	it := words.Spans(in)
	i, ok := 0, true
	for it.Next() {
		if len(out) <= i {
			t.Errorf("test #%d: number of segments too large: %d > %d", tno, i+1, len(out))
			ok = false
		} else if out[i] != it.Span().Text {
			t.Errorf("test #%d: %+q should be %+q", tno, it.Span().Text, out[i])
			ok = false
		}
		i++
	}
	return ok && i == len(out)
}
