package interpreter

import (
	"io"
	"log/slog"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/runtime"
)

// Interpreter executes Orlang statements against a persistent global scope.
type Interpreter struct {
	global *runtime.Environment
	out    io.Writer
	logger *slog.Logger
}

// New creates an interpreter whose barreessi output goes to out.
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		global: runtime.NewEnvironment(nil),
		out:    out,
		logger: slog.New(slog.DiscardHandler),
	}
}

// SetLogger replaces the logger used for evaluation traces.
func (i *Interpreter) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	i.logger = logger
}

// GlobalEnvironment exposes the interpreter's global scope.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Interpret executes statements in order in the global scope. It stops at the
// first failure; bindings made before the failure are kept.
func (i *Interpreter) Interpret(statements []ast.Statement) error {
	for idx, stmt := range statements {
		if err := i.evaluateStatement(stmt, i.global); err != nil {
			i.logger.Debug("evaluation aborted", slog.Int("statement", idx), slog.String("error", err.Error()))
			return err
		}
	}
	return nil
}
