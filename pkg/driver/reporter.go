package driver

import (
	"fmt"
	"io"

	"github.com/firo1919/orlang/pkg/interpreter"
	"github.com/firo1919/orlang/pkg/lexer"
	"github.com/firo1919/orlang/pkg/parser"
)

// StyleFunc decorates a rendered diagnostic before it is written.
type StyleFunc func(string) string

// Reporter writes user-facing diagnostics to an error stream.
type Reporter struct {
	w     io.Writer
	style StyleFunc
}

// NewReporter creates a reporter writing to w. A nil style leaves text as is.
func NewReporter(w io.Writer, style StyleFunc) *Reporter {
	if w == nil {
		w = io.Discard
	}
	return &Reporter{w: w, style: style}
}

// FormatStatic renders a static diagnostic line.
func FormatStatic(line int, where, message string) string {
	return fmt.Sprintf("[line %d] Error%s: %s", line, where, message)
}

// FormatRuntime renders a runtime diagnostic: the message, then the line.
func FormatRuntime(err *interpreter.RuntimeError) string {
	return err.Describe()
}

func (r *Reporter) Lexical(err *lexer.Error) {
	r.emit(FormatStatic(err.Line, "", err.Message))
}

func (r *Reporter) Syntax(err *parser.ParseError) {
	r.emit(FormatStatic(err.Token.Line, err.Where(), err.Message))
}

func (r *Reporter) Runtime(err *interpreter.RuntimeError) {
	r.emit(FormatRuntime(err))
}

// Failure reports an error that carries no source position.
func (r *Reporter) Failure(err error) {
	r.emit(err.Error())
}

func (r *Reporter) emit(text string) {
	if r.style != nil {
		text = r.style(text)
	}
	fmt.Fprintln(r.w, text)
}
