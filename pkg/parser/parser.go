package parser

import (
	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/lexer"
)

// Parser turns a token sequence into statements using recursive descent.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  ErrorList
}

// New creates a parser over tokens. A missing trailing EOF token is supplied.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.KindEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(append([]lexer.Token{}, tokens...), lexer.Token{Kind: lexer.KindEOF, Line: line})
	}
	return &Parser{tokens: tokens}
}

// Parse is a convenience wrapper around New(tokens).Parse().
func Parse(tokens []lexer.Token) ([]ast.Statement, error) {
	return New(tokens).Parse()
}

// Parse consumes all tokens. Malformed statements are dropped after the
// parser resynchronizes; the returned error is an ErrorList whenever at least
// one syntax error was recorded, and the statements parsed around the errors
// are returned alongside it.
func (p *Parser) Parse() ([]ast.Statement, error) {
	var statements []ast.Statement
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	if len(p.errors) > 0 {
		return statements, p.errors
	}
	return statements, nil
}

// Errors returns the syntax errors recorded so far.
func (p *Parser) Errors() ErrorList {
	return p.errors
}

func (p *Parser) record(err *ParseError) {
	p.errors = append(p.errors, err)
}

func (p *Parser) errorAt(token lexer.Token, message string) *ParseError {
	return &ParseError{Token: token, Message: message}
}

// synchronize discards tokens until a likely statement boundary.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.KindSemicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.KindClass, lexer.KindFun, lexer.KindVar, lexer.KindFor,
			lexer.KindIf, lexer.KindWhile, lexer.KindPrint, lexer.KindReturn:
			return
		}
		p.advance()
	}
}

func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.Kind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

func (p *Parser) check(kind lexer.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.KindEOF
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	if p.current == 0 {
		return p.tokens[0]
	}
	return p.tokens[p.current-1]
}
