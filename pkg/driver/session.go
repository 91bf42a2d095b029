package driver

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/interpreter"
	"github.com/firo1919/orlang/pkg/lexer"
	"github.com/firo1919/orlang/pkg/parser"
	"github.com/firo1919/orlang/pkg/runtime"
)

// Outcome classifies how a run ended.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeStaticError
	OutcomeRuntimeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeStaticError:
		return "static-error"
	case OutcomeRuntimeError:
		return "runtime-error"
	}
	return "unknown"
}

// ParseOutcome maps the textual form back to an Outcome.
func ParseOutcome(text string) (Outcome, bool) {
	switch text {
	case "", "ok":
		return OutcomeOK, true
	case "static-error":
		return OutcomeStaticError, true
	case "runtime-error":
		return OutcomeRuntimeError, true
	}
	return OutcomeOK, false
}

// Process exit codes.
const (
	ExitOK           = 0
	ExitUsage        = 64
	ExitStaticError  = 65
	ExitNoInput      = 66
	ExitRuntimeError = 70
)

// ExitCode maps a run outcome to the process exit status.
func ExitCode(outcome Outcome) int {
	switch outcome {
	case OutcomeStaticError:
		return ExitStaticError
	case OutcomeRuntimeError:
		return ExitRuntimeError
	}
	return ExitOK
}

// Session owns one interpreter, its global environment and the error flags
// of the runs made through it.
type Session struct {
	id       string
	interp   *interpreter.Interpreter
	reporter *Reporter
	logger   *slog.Logger

	hadError        bool
	hadRuntimeError bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger attaches a logger; sessions log phase summaries at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStyle decorates diagnostics written to stderr.
func WithStyle(style StyleFunc) Option {
	return func(s *Session) {
		s.reporter.style = style
	}
}

// NewSession creates a session printing program output to stdout and
// diagnostics to stderr.
func NewSession(stdout, stderr io.Writer, opts ...Option) *Session {
	s := &Session{
		id:       uuid.New().String(),
		interp:   interpreter.New(stdout),
		reporter: NewReporter(stderr, nil),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("session", s.id))
	s.interp.SetLogger(s.logger)
	return s
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// HadError reports whether a lexical or syntax error was seen since the last reset.
func (s *Session) HadError() bool { return s.hadError }

// HadRuntimeError reports whether any run of this session failed at runtime.
func (s *Session) HadRuntimeError() bool { return s.hadRuntimeError }

// ResetError clears the static error flag so the next run may execute.
func (s *Session) ResetError() { s.hadError = false }

// Environment exposes the global scope that persists across runs.
func (s *Session) Environment() *runtime.Environment {
	return s.interp.GlobalEnvironment()
}

// Scan tokenizes source, reporting lexical errors. The token sequence is
// always returned; ok is false when any error was reported.
func (s *Session) Scan(source string) ([]lexer.Token, bool) {
	tokens, errs := lexer.Scan(source)
	for _, err := range errs {
		s.reporter.Lexical(err)
	}
	if len(errs) > 0 {
		s.hadError = true
	}
	s.logger.Debug("scanned", slog.Int("tokens", len(tokens)), slog.Int("errors", len(errs)))
	return tokens, len(errs) == 0
}

// Parse scans and parses source, reporting every static error.
func (s *Session) Parse(source string) ([]ast.Statement, bool) {
	tokens, scanned := s.Scan(source)
	statements, err := parser.Parse(tokens)
	parsed := true
	if err != nil {
		parsed = false
		s.hadError = true
		var list parser.ErrorList
		if errors.As(err, &list) {
			for _, perr := range list {
				s.reporter.Syntax(perr)
			}
		} else {
			s.reporter.Failure(err)
		}
	}
	s.logger.Debug("parsed", slog.Int("statements", len(statements)), slog.Bool("ok", parsed))
	return statements, scanned && parsed
}

// Run scans, parses and, when no static error was reported, executes source.
func (s *Session) Run(source string) Outcome {
	statements, ok := s.Parse(source)
	if !ok || s.hadError {
		s.logger.Debug("run finished", slog.String("outcome", OutcomeStaticError.String()))
		return OutcomeStaticError
	}
	outcome := OutcomeOK
	if err := s.interp.Interpret(statements); err != nil {
		s.hadRuntimeError = true
		outcome = OutcomeRuntimeError
		var rtErr *interpreter.RuntimeError
		if errors.As(err, &rtErr) {
			s.reporter.Runtime(rtErr)
		} else {
			s.reporter.Failure(err)
		}
	}
	s.logger.Debug("run finished", slog.String("outcome", outcome.String()))
	return outcome
}
