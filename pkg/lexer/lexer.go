package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Error is a lexical error recorded while scanning.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ErrorList aggregates the lexical errors of one scan.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "lexer: no errors"
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d lexical errors:", len(l))
	for _, err := range l {
		b.WriteString("\n- ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Lexer converts Orlang source text into tokens.
type Lexer struct {
	source  []rune
	tokens  []Token
	errors  ErrorList
	start   int
	current int
	line    int
}

// New returns a lexer over source.
func New(source string) *Lexer {
	return &Lexer{source: []rune(source), line: 1}
}

// Scan is a convenience wrapper that scans source in one call.
func Scan(source string) ([]Token, ErrorList) {
	l := New(source)
	tokens := l.ScanTokens()
	return tokens, l.Errors()
}

// ScanTokens consumes the whole source. The result always ends with exactly one
// EOF token, whatever errors were recorded along the way.
func (l *Lexer) ScanTokens() []Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, Token{Kind: KindEOF, Line: l.line})
	return l.tokens
}

// Errors returns the lexical errors recorded so far.
func (l *Lexer) Errors() ErrorList {
	return l.errors
}

func (l *Lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.addToken(KindLeftParen, nil)
	case ')':
		l.addToken(KindRightParen, nil)
	case '{':
		l.addToken(KindLeftBrace, nil)
	case '}':
		l.addToken(KindRightBrace, nil)
	case ',':
		l.addToken(KindComma, nil)
	case '.':
		l.addToken(KindDot, nil)
	case '-':
		l.addToken(KindMinus, nil)
	case '+':
		l.addToken(KindPlus, nil)
	case ';':
		l.addToken(KindSemicolon, nil)
	case '*':
		l.addToken(KindStar, nil)
	case '!':
		l.addToken(l.choose('=', KindBangEqual, KindBang), nil)
	case '=':
		l.addToken(l.choose('=', KindEqualEqual, KindEqual), nil)
	case '<':
		l.addToken(l.choose('=', KindLessEqual, KindLess), nil)
	case '>':
		l.addToken(l.choose('=', KindGreaterEqual, KindGreater), nil)
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.isAtEnd() {
				l.advance()
			}
			return
		}
		l.addToken(KindSlash, nil)
	case ' ', '\r', '\t':
	case '\n':
		l.line++
	case '"':
		l.scanString()
	default:
		switch {
		case isDigit(c):
			l.scanNumber()
		case unicode.IsLetter(c):
			l.scanIdentifier()
		default:
			l.error("Unexpected character.")
		}
	}
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := string(l.source[l.start:l.current])
	kind, ok := LookupKeyword(text)
	if !ok {
		kind = KindIdentifier
	}
	l.addToken(kind, nil)
}

func (l *Lexer) scanNumber() {
	for isDigit(l.peek()) {
		l.advance()
	}
	// A trailing '.' without a digit after it is not part of the number.
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	text := string(l.source[l.start:l.current])
	// Literals beyond float64 range overflow to +Inf rather than failing.
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		l.error(fmt.Sprintf("Invalid number '%s'.", text))
		return
	}
	l.addToken(KindNumber, value)
}

func (l *Lexer) scanString() {
	for l.peek() != '"' && !l.isAtEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.error("Unterminated string.")
		return
	}
	l.advance() // closing quote
	value := string(l.source[l.start+1 : l.current-1])
	l.addToken(KindString, value)
}

func (l *Lexer) addToken(kind Kind, literal any) {
	l.tokens = append(l.tokens, Token{
		Kind:    kind,
		Lexeme:  string(l.source[l.start:l.current]),
		Literal: literal,
		Line:    l.line,
	})
}

func (l *Lexer) error(message string) {
	l.errors = append(l.errors, &Error{Line: l.line, Message: message})
}

func (l *Lexer) choose(expected rune, matched, otherwise Kind) Kind {
	if l.match(expected) {
		return matched
	}
	return otherwise
}

func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) advance() rune {
	c := l.source[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c rune) bool {
	return unicode.IsLetter(c) || isDigit(c)
}
