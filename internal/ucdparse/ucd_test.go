package ucdparse

import (
	"strings"
	"testing"
)

func TestParseSingle(t *testing.T) {
	input := `
# comment line
000D          ; CR # Cc       <control-000D>
`
	var tokens []*Token
	err := Parse(strings.NewReader(input), func(token *Token) {
		tokens = append(tokens, token)
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, have %d", len(tokens))
	}
	from, to := tokens[0].Range()
	if from != 0x0D || to != 0x0D {
		t.Errorf("expected range 0x0D..0x0D, have %#U..%#U", from, to)
	}
	if tokens[0].Field(1) != "CR" {
		t.Errorf("expected field 1 to be CR, have %q", tokens[0].Field(1))
	}
}

func TestParseRange(t *testing.T) {
	input := "1F1E6..1F1FF  ; Regional_Indicator # So  [32] REGIONAL INDICATOR..."
	err := Parse(strings.NewReader(input), func(token *Token) {
		from, to := token.Range()
		if from != 0x1F1E6 || to != 0x1F1FF {
			t.Errorf("unexpected range %#U..%#U", from, to)
		}
		if token.Field(1) != "Regional_Indicator" {
			t.Errorf("unexpected field %q", token.Field(1))
		}
		if token.Comment == "" {
			t.Errorf("expected comment to be preserved")
		}
	})
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
}

func TestBreakTestInput(t *testing.T) {
	in, out := BreakTestInput("÷ 0061 × 0062 ÷ 0020 ÷")
	if in != "ab " {
		t.Errorf("expected input 'ab ', have %q", in)
	}
	if len(out) != 2 || out[0] != "ab" || out[1] != " " {
		t.Errorf("unexpected segments %#v", out)
	}
}
