package words_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	words "github.com/eddieantonio/unicode-default-word-boundary"
	"github.com/npillmayer/schuko/testconfig"
)

func ExampleSplitWords() {
	for _, w := range words.SplitWords("Hello World🇩🇪!") {
		fmt.Printf("'%s'\n", w)
	}
	// Output: 'Hello'
	// 'World'
	// '🇩🇪'
	// '!'
}

func ExampleSpans() {
	it := words.Spans("Hi there")
	for it.Next() {
		sp := it.Span()
		fmt.Printf("%d-%d '%s'\n", sp.Start, sp.End, sp.Text)
	}
	// Output: 0-2 'Hi'
	// 2-3 ' '
	// 3-8 'there'
}

func TestSplitWordsEnglish(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	input := "The quick (“brown”) fox can’t jump 32.3 feet, right?"
	want := []string{"The", "quick", "(", "“", "brown", "”", ")",
		"fox", "can’t", "jump", "32.3", "feet", ",", "right", "?"}
	assertWords(t, input, want)
}

func TestSplitWordsCyrillic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	input := "В чащах юга жил бы цитрус? Да, но фальшивый экземпляр!"
	want := []string{"В", "чащах", "юга", "жил", "бы", "цитрус", "?",
		"Да", ",", "но", "фальшивый", "экземпляр", "!"}
	assertWords(t, input, want)
}

func TestSplitWordsSyllabics(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// the span written with U+202F (an ExtendNumLet) stays together;
	// the syllabics full stop U+166E is a span of its own
	input := "ᑕᐻ ᒥᔪ ᑭᓯᑲᐤ ᐊᓄᐦᐨ᙮"
	want := []string{"ᑕᐻ", "ᒥᔪ ᑭᓯᑲᐤ", "ᐊᓄᐦᐨ", "᙮"}
	assertWords(t, input, want)
}

func assertWords(t *testing.T, input string, want []string) {
	t.Helper()
	have := words.SplitWords(input)
	if len(have) != len(want) {
		t.Fatalf("%+q split into %+q, expected %+q", input, have, want)
	}
	for i := range have {
		if have[i] != want[i] {
			t.Fatalf("word %d is %+q, expected %+q", i, have[i], want[i])
		}
	}
}

func TestSpansWithEmoji(t *testing.T) {
	input := "Hello, world🌎!"
	type span struct {
		start, end int
		text       string
	}
	want := []span{
		{0, 5, "Hello"}, {5, 6, ","}, {6, 7, " "},
		{7, 12, "world"}, {12, 16, "🌎"}, {16, 17, "!"},
	}
	it := words.Spans(input)
	for _, w := range want {
		if !it.Next() {
			t.Fatalf("iterator exhausted early, expected %+v", w)
		}
		sp := it.Span()
		if sp.Start != w.start || sp.End != w.end || sp.Text != w.text {
			t.Errorf("have span %+v, expected %+v", sp, w)
		}
	}
	if it.Next() {
		t.Errorf("iterator yields extra span %+v", it.Span())
	}
}

func TestSpanInvariants(t *testing.T) {
	for _, input := range sampleCorpus {
		it := words.Spans(input)
		for it.Next() {
			sp := it.Span()
			if sp.Len() != sp.End-sp.Start {
				t.Errorf("%q: span %+v: Len() != End-Start", input, sp)
			}
			if sp.Len() != len(sp.Text) {
				t.Errorf("%q: span %+v: Len() != len(Text)", input, sp)
			}
			if sp.Len() <= 0 {
				t.Errorf("%q: span %+v has non-positive length", input, sp)
			}
			if !utf8.ValidString(sp.Text) {
				t.Errorf("%q: span %+v is not a valid scalar-value sequence", input, sp)
			}
		}
	}
}

func TestCountWords(t *testing.T) {
	for _, input := range sampleCorpus {
		if n, l := words.CountWords(input), len(words.SplitWords(input)); n != l {
			t.Errorf("%q: CountWords is %d, SplitWords yields %d", input, n, l)
		}
	}
	if n := words.CountWords(""); n != 0 {
		t.Errorf("expected 0 words in empty input, have %d", n)
	}
}

func TestSplitWordsReentrant(t *testing.T) {
	// pooled iterators must not leak state between concurrent walks
	want := []string{"one", "two", "three"}
	done := make(chan error, 8)
	for g := 0; g < 8; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				have := words.SplitWords("one two three")
				if len(have) != len(want) {
					done <- fmt.Errorf("split into %+q, expected %+q", have, want)
					return
				}
				for k := range have {
					if have[k] != want[k] {
						done <- fmt.Errorf("word %d is %+q, expected %+q", k, have[k], want[k])
						return
					}
				}
			}
			done <- nil
		}()
	}
	for g := 0; g < 8; g++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
