package parser

import (
	"fmt"
	"strings"

	"github.com/firo1919/orlang/pkg/lexer"
)

// ParseError is a syntax error anchored at the offending token.
type ParseError struct {
	Token   lexer.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: error%s: %s", e.Token.Line, e.Where(), e.Message)
}

// Where describes the error position: " at end" for the end marker,
// " at 'LEXEME'" otherwise.
func (e *ParseError) Where() string {
	if e.Token.Kind == lexer.KindEOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

// ErrorList aggregates the syntax errors of one parse, in source order.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "parser: no errors"
	case 1:
		return "parser: " + l[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "parser: %d syntax errors:", len(l))
	for _, err := range l {
		b.WriteString("\n- ")
		b.WriteString(err.Error())
	}
	return b.String()
}
