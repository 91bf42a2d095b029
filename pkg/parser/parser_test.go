package parser

import (
	"errors"
	"testing"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/lexer"
)

func parseSource(t *testing.T, source string) ([]ast.Statement, ErrorList) {
	t.Helper()
	tokens, lexErrs := lexer.Scan(source)
	if len(lexErrs) > 0 {
		t.Fatalf("unexpected lexical errors: %v", lexErrs)
	}
	statements, err := Parse(tokens)
	if err == nil {
		return statements, nil
	}
	var list ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected ErrorList, got %T", err)
	}
	return statements, list
}

func mustParse(t *testing.T, source string) string {
	t.Helper()
	statements, errs := parseSource(t, source)
	if len(errs) > 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	return ast.FormatProgram(statements)
}

func TestParsePrecedence(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"barreessi 1 + 2 * 3;", "(barreessi (+ 1 (* 2 3)))"},
		{"barreessi (1 + 2) * 3;", "(barreessi (* (group (+ 1 2)) 3))"},
		{"barreessi 1 - 2 - 3;", "(barreessi (- (- 1 2) 3))"},
		{"barreessi !!dhugaa;", "(barreessi (! (! dhugaa)))"},
		{"barreessi -1 < 2 == soba;", "(barreessi (== (< (- 1) 2) soba))"},
		{"a = b = 3;", "(; (= a (= b 3)))"},
		{"barreessi 1 ykn 2 fi 3;", "(barreessi (ykn 1 (fi 2 3)))"},
		{"barreessi duwwaa != \"x\";", "(barreessi (!= duwwaa \"x\"))"},
	}
	for _, tc := range cases {
		if got := mustParse(t, tc.source); got != tc.want {
			t.Fatalf("parse %q = %s, want %s", tc.source, got, tc.want)
		}
	}
}

func TestParseStatements(t *testing.T) {
	source := `bakkabutee a = 1;
bakkabutee b;
{ barreessi a; }
yoo (a) barreessi 1; kanbiroo barreessi 2;
yoo (b) barreessi 3;
yeroo (soba) a;`
	want := "(bakkabutee a 1)\n" +
		"(bakkabutee b)\n" +
		"(block (barreessi a))\n" +
		"(yoo a (barreessi 1) (barreessi 2))\n" +
		"(yoo b (barreessi 3))\n" +
		"(yeroo soba (; a))"
	if got := mustParse(t, source); got != want {
		t.Fatalf("program mismatch:\n got: %s\nwant: %s", got, want)
	}
}

func TestDanglingElseBindsToNearestIf(t *testing.T) {
	got := mustParse(t, "yoo (a) yoo (b) barreessi 1; kanbiroo barreessi 2;")
	want := "(yoo a (yoo b (barreessi 1) (barreessi 2)))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestForLoopDesugarsToWhile(t *testing.T) {
	got := mustParse(t, "hama (bakkabutee i = 0; i < 3; i = i + 1) barreessi i;")
	want := "(block (bakkabutee i 0) (yeroo (< i 3) (block (barreessi i) (; (= i (+ i 1))))))"
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}

	got = mustParse(t, "hama (;;) barreessi 1;")
	if want := "(yeroo dhugaa (barreessi 1))"; got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestParseRecoversAfterError(t *testing.T) {
	statements, errs := parseSource(t, "bakkabutee = 1;\nbarreessi 2;\nbarreessi ;\nbarreessi 3;")
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].Message != "Expect variable name." || errs[0].Where() != " at '='" || errs[0].Token.Line != 1 {
		t.Fatalf("unexpected first error: %+v", errs[0])
	}
	if errs[1].Message != "Expect expression." || errs[1].Where() != " at ';'" || errs[1].Token.Line != 3 {
		t.Fatalf("unexpected second error: %+v", errs[1])
	}
	if got, want := ast.FormatProgram(statements), "(barreessi 2)\n(barreessi 3)"; got != want {
		t.Fatalf("recovered statements = %s, want %s", got, want)
	}
}

func TestInvalidAssignmentTargetKeepsStatement(t *testing.T) {
	statements, errs := parseSource(t, "a + b = 3;")
	if len(errs) != 1 || errs[0].Message != "Invalid assignment target." {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if errs[0].Token.Kind != lexer.KindEqual {
		t.Fatalf("error should point at '=', got %s", errs[0].Token.Kind)
	}
	if len(statements) != 1 {
		t.Fatalf("expected statement to survive, got %d", len(statements))
	}
}

func TestErrorAtEnd(t *testing.T) {
	_, errs := parseSource(t, "barreessi 1")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %v", errs)
	}
	if errs[0].Where() != " at end" || errs[0].Message != "Expect ';' after value." {
		t.Fatalf("unexpected error: %+v", errs[0])
	}

	_, errs = parseSource(t, "{ barreessi 1;")
	if len(errs) != 1 || errs[0].Message != "Expect '}' after block." {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseWithoutEOFToken(t *testing.T) {
	tokens := []lexer.Token{
		{Kind: lexer.KindPrint, Lexeme: "barreessi", Line: 1},
		{Kind: lexer.KindNumber, Lexeme: "7", Literal: 7.0, Line: 1},
		{Kind: lexer.KindSemicolon, Lexeme: ";", Line: 1},
	}
	statements, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := ast.FormatProgram(statements); got != "(barreessi 7)" {
		t.Fatalf("got %s", got)
	}
}

func TestErrorListMessage(t *testing.T) {
	_, errs := parseSource(t, "barreessi ;")
	if got, want := errs.Error(), "parser: line 1: error at ';': Expect expression."; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
