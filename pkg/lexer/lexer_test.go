package lexer

import (
	"math"
	"strings"
	"testing"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func assertKinds(t *testing.T, got []Token, want ...Kind) {
	t.Helper()
	kinds := kindsOf(got)
	if len(kinds) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(kinds), len(want), kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("token %d = %s, want %s (all: %v)", i, kinds[i], want[i], kinds)
		}
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, errs := Scan("(){},.-+;*/ ! != = == < <= > >=")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens,
		KindLeftParen, KindRightParen, KindLeftBrace, KindRightBrace,
		KindComma, KindDot, KindMinus, KindPlus, KindSemicolon, KindStar, KindSlash,
		KindBang, KindBangEqual, KindEqual, KindEqualEqual,
		KindLess, KindLessEqual, KindGreater, KindGreaterEqual,
		KindEOF,
	)
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens, errs := Scan("bakkabutee x = dhugaa fi soba ykn duwwaa; barreessi yoo kanbiroo yeroo hama hojjaa kutaa deebihi olaanoo kana barreessii")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens,
		KindVar, KindIdentifier, KindEqual, KindTrue, KindAnd, KindFalse, KindOr, KindNil, KindSemicolon,
		KindPrint, KindIf, KindElse, KindWhile, KindFor, KindFun, KindClass, KindReturn, KindSuper, KindThis,
		KindIdentifier,
		KindEOF,
	)
	if tokens[1].Lexeme != "x" {
		t.Fatalf("identifier lexeme = %q, want x", tokens[1].Lexeme)
	}
	if last := tokens[len(tokens)-2]; last.Lexeme != "barreessii" {
		t.Fatalf("keyword prefix should stay an identifier, got %q", last.Lexeme)
	}
}

func TestScanNumbers(t *testing.T) {
	tokens, errs := Scan("123 45.67 8.")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens, KindNumber, KindNumber, KindNumber, KindDot, KindEOF)
	cases := []struct {
		idx  int
		want float64
	}{
		{0, 123},
		{1, 45.67},
		{2, 8},
	}
	for _, tc := range cases {
		got, ok := tokens[tc.idx].Literal.(float64)
		if !ok || got != tc.want {
			t.Fatalf("token %d literal = %#v, want %v", tc.idx, tokens[tc.idx].Literal, tc.want)
		}
	}
	if tokens[2].Lexeme != "8" {
		t.Fatalf("trailing dot consumed into number: %q", tokens[2].Lexeme)
	}
}

func TestScanHugeNumberOverflowsToInf(t *testing.T) {
	huge := strings.Repeat("9", 400)
	tokens, errs := Scan(huge + ";")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens, KindNumber, KindSemicolon, KindEOF)
	got, ok := tokens[0].Literal.(float64)
	if !ok || !math.IsInf(got, 1) {
		t.Fatalf("literal = %#v, want +Inf", tokens[0].Literal)
	}
	if tokens[0].Lexeme != huge {
		t.Fatalf("lexeme truncated: %d chars", len(tokens[0].Lexeme))
	}
}

func TestScanStrings(t *testing.T) {
	tokens, errs := Scan("\"akkam\" \"two\nlines\" x")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens, KindString, KindString, KindIdentifier, KindEOF)
	if got := tokens[0].Literal; got != "akkam" {
		t.Fatalf("literal = %#v, want akkam", got)
	}
	if got := tokens[1].Literal; got != "two\nlines" {
		t.Fatalf("multi-line literal = %#v", got)
	}
	if tokens[2].Line != 2 {
		t.Fatalf("identifier after multi-line string on line %d, want 2", tokens[2].Line)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tokens, errs := Scan("barreessi \"oops")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[0].Message != "Unterminated string." || errs[0].Line != 1 {
		t.Fatalf("unexpected error: %+v", errs[0])
	}
	assertKinds(t, tokens, KindPrint, KindEOF)
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	tokens, errs := Scan("a @ b # c")
	if len(errs) != 2 {
		t.Fatalf("expected two errors, got %v", errs)
	}
	for _, err := range errs {
		if err.Message != "Unexpected character." {
			t.Fatalf("unexpected message %q", err.Message)
		}
	}
	assertKinds(t, tokens, KindIdentifier, KindIdentifier, KindIdentifier, KindEOF)
	if !strings.Contains(errs.Error(), "2 lexical errors") {
		t.Fatalf("ErrorList message = %q", errs.Error())
	}
}

func TestScanCommentsAndLines(t *testing.T) {
	source := "// header\nbakkabutee a = 1; // trailing\n\n\tbarreessi a / 2;\r\n"
	tokens, errs := Scan(source)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	assertKinds(t, tokens,
		KindVar, KindIdentifier, KindEqual, KindNumber, KindSemicolon,
		KindPrint, KindIdentifier, KindSlash, KindNumber, KindSemicolon,
		KindEOF,
	)
	if tokens[0].Line != 2 || tokens[5].Line != 4 {
		t.Fatalf("lines = %d/%d, want 2/4", tokens[0].Line, tokens[5].Line)
	}
	if eof := tokens[len(tokens)-1]; eof.Line != 5 {
		t.Fatalf("EOF line = %d, want 5", eof.Line)
	}
}

func TestScanEndsWithSingleEOFAndMonotoneLines(t *testing.T) {
	sources := []string{
		"",
		"   ",
		"bakkabutee a = 1;\nbarreessi a;",
		"yoo (a < 3) {\n barreessi \"x\";\n} kanbiroo {\n barreessi \"y\";\n}\n",
		"\"a\nb\nc\" + 1\n// done",
		"hama (bakkabutee i = 0; i < 3; i = i + 1) barreessi i;",
	}
	for _, src := range sources {
		tokens, errs := Scan(src)
		if len(errs) != 0 {
			t.Fatalf("%q: unexpected errors %v", src, errs)
		}
		eofCount := 0
		for i, tok := range tokens {
			if tok.Kind == KindEOF {
				eofCount++
				if i != len(tokens)-1 {
					t.Fatalf("%q: EOF at index %d of %d", src, i, len(tokens))
				}
			}
			if i > 0 && tok.Line < tokens[i-1].Line {
				t.Fatalf("%q: line decreased at token %d (%d < %d)", src, i, tok.Line, tokens[i-1].Line)
			}
		}
		if eofCount != 1 {
			t.Fatalf("%q: EOF count = %d", src, eofCount)
		}
	}
}

func TestScanUnicodeIdentifiers(t *testing.T) {
	tokens, errs := Scan("bakkabutee maqaaÑ1 = \"Tolaa\";")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[1].Kind != KindIdentifier || tokens[1].Lexeme != "maqaaÑ1" {
		t.Fatalf("identifier = %v", tokens[1])
	}
}

func TestTokenString(t *testing.T) {
	tokens, _ := Scan("bakkabutee a = 1.5; \"s\"")
	want := []string{
		"BAKKABUTEE bakkabutee nil 1",
		"IDENTIFIER a nil 1",
		"EQUAL = nil 1",
		"NUMBER 1.5 1.5 1",
		"SEMICOLON ; nil 1",
		"STRING \"s\" \"s\" 1",
		"DHUMA  nil 1",
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, tok := range tokens {
		if got := tok.String(); got != want[i] {
			t.Fatalf("token %d String() = %q, want %q", i, got, want[i])
		}
	}
}
