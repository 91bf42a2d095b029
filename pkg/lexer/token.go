package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies the lexical category of a token.
type Kind string

const (
	// Single-character tokens.
	KindLeftParen  Kind = "LEFT_PAREN"
	KindRightParen Kind = "RIGHT_PAREN"
	KindLeftBrace  Kind = "LEFT_BRACE"
	KindRightBrace Kind = "RIGHT_BRACE"
	KindComma      Kind = "COMMA"
	KindDot        Kind = "DOT"
	KindMinus      Kind = "MINUS"
	KindPlus       Kind = "PLUS"
	KindSemicolon  Kind = "SEMICOLON"
	KindSlash      Kind = "SLASH"
	KindStar       Kind = "STAR"

	// One or two character tokens.
	KindBang         Kind = "BANG"
	KindBangEqual    Kind = "BANG_EQUAL"
	KindEqual        Kind = "EQUAL"
	KindEqualEqual   Kind = "EQUAL_EQUAL"
	KindGreater      Kind = "GREATER"
	KindGreaterEqual Kind = "GREATER_EQUAL"
	KindLess         Kind = "LESS"
	KindLessEqual    Kind = "LESS_EQUAL"

	// Literals.
	KindIdentifier Kind = "IDENTIFIER"
	KindString     Kind = "STRING"
	KindNumber     Kind = "NUMBER"

	// Keywords.
	KindAnd    Kind = "FI"
	KindClass  Kind = "KUTAA"
	KindElse   Kind = "KANBIROO"
	KindFalse  Kind = "SOBA"
	KindFun    Kind = "HOJJAA"
	KindFor    Kind = "HAMA"
	KindIf     Kind = "YOO"
	KindNil    Kind = "DUWWAA"
	KindOr     Kind = "YKN"
	KindPrint  Kind = "BARREESSI"
	KindReturn Kind = "DEEBIHI"
	KindSuper  Kind = "OLAANOO"
	KindThis   Kind = "KANA"
	KindTrue   Kind = "DHUGAA"
	KindVar    Kind = "BAKKABUTEE"
	KindWhile  Kind = "YEROO"

	KindEOF Kind = "DHUMA"
)

// Keyword spellings. The display rules of the interpreter reuse the literal ones.
const (
	KeywordAnd    = "fi"
	KeywordClass  = "kutaa"
	KeywordElse   = "kanbiroo"
	KeywordFalse  = "soba"
	KeywordFun    = "hojjaa"
	KeywordFor    = "hama"
	KeywordIf     = "yoo"
	KeywordNil    = "duwwaa"
	KeywordOr     = "ykn"
	KeywordPrint  = "barreessi"
	KeywordReturn = "deebihi"
	KeywordSuper  = "olaanoo"
	KeywordThis   = "kana"
	KeywordTrue   = "dhugaa"
	KeywordVar    = "bakkabutee"
	KeywordWhile  = "yeroo"
)

var keywords = map[string]Kind{
	KeywordAnd:    KindAnd,
	KeywordClass:  KindClass,
	KeywordElse:   KindElse,
	KeywordFalse:  KindFalse,
	KeywordFun:    KindFun,
	KeywordFor:    KindFor,
	KeywordIf:     KindIf,
	KeywordNil:    KindNil,
	KeywordOr:     KindOr,
	KeywordPrint:  KindPrint,
	KeywordReturn: KindReturn,
	KeywordSuper:  KindSuper,
	KeywordThis:   KindThis,
	KeywordTrue:   KindTrue,
	KeywordVar:    KindVar,
	KeywordWhile:  KindWhile,
}

// LookupKeyword reports the keyword kind for text, if any.
func LookupKeyword(text string) (Kind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}

// Token is a single lexeme with its category and source line.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

// String renders the token as "KIND LEXEME LITERAL LINE".
func (t Token) String() string {
	return fmt.Sprintf("%s %s %s %d", t.Kind, t.Lexeme, formatLiteral(t.Literal), t.Line)
}

func formatLiteral(literal any) string {
	switch v := literal.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
