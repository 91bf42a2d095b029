package interpreter

import (
	"fmt"

	"github.com/firo1919/orlang/pkg/lexer"
)

// RuntimeError reports a failure during evaluation, anchored at the token
// that triggered it.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Line returns the source line of the offending token.
func (e *RuntimeError) Line() int {
	return e.Token.Line
}

// Describe renders the error as it is reported to users: the message
// followed by the line on its own row.
func (e *RuntimeError) Describe() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

func newRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}
