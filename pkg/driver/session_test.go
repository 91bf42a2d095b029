package driver

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestSession() (*Session, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewSession(&stdout, &stderr), &stdout, &stderr
}

func TestRunPrintsProgramOutput(t *testing.T) {
	s, stdout, stderr := newTestSession()
	if outcome := s.Run("barreessi 1 + 2 * 3;"); outcome != OutcomeOK {
		t.Fatalf("outcome = %s", outcome)
	}
	if stdout.String() != "7\n" || stderr.Len() != 0 {
		t.Fatalf("stdout %q stderr %q", stdout.String(), stderr.String())
	}
}

func TestHugeNumberLiteralRuns(t *testing.T) {
	s, stdout, stderr := newTestSession()
	if outcome := s.Run("barreessi " + strings.Repeat("9", 400) + ";"); outcome != OutcomeOK {
		t.Fatalf("outcome = %s, stderr %q", outcome, stderr.String())
	}
	if stdout.String() != "inf\n" || stderr.Len() != 0 {
		t.Fatalf("stdout %q stderr %q", stdout.String(), stderr.String())
	}
}

func TestStaticErrorsSuppressExecution(t *testing.T) {
	s, stdout, stderr := newTestSession()
	source := "barreessi 1;\nbakkabutee = 2;\nbarreessi @;\nbarreessi 3"
	if outcome := s.Run(source); outcome != OutcomeStaticError {
		t.Fatalf("outcome = %s", outcome)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing may run after a static error, got %q", stdout.String())
	}
	want := "[line 3] Error: Unexpected character.\n" +
		"[line 2] Error at '=': Expect variable name.\n" +
		"[line 3] Error at ';': Expect expression.\n" +
		"[line 4] Error at end: Expect ';' after value.\n"
	if stderr.String() != want {
		t.Fatalf("stderr mismatch:\n got: %q\nwant: %q", stderr.String(), want)
	}
	if !s.HadError() {
		t.Fatalf("HadError should be set")
	}
	if ExitCode(OutcomeStaticError) != 65 {
		t.Fatalf("unexpected exit code")
	}
}

func TestRuntimeErrorReport(t *testing.T) {
	s, stdout, stderr := newTestSession()
	outcome := s.Run("barreessi \"a\";\n\nbarreessi \"a\" + 1;\nbarreessi \"b\";")
	if outcome != OutcomeRuntimeError {
		t.Fatalf("outcome = %s", outcome)
	}
	if stdout.String() != "a\n" {
		t.Fatalf("stdout %q", stdout.String())
	}
	if want := "Operands must be two numbers or two strings.\n[line 3]\n"; stderr.String() != want {
		t.Fatalf("stderr %q, want %q", stderr.String(), want)
	}
	if !s.HadRuntimeError() || s.HadError() {
		t.Fatalf("unexpected flags: runtime=%v static=%v", s.HadRuntimeError(), s.HadError())
	}
	if ExitCode(outcome) != ExitRuntimeError {
		t.Fatalf("exit code %d", ExitCode(outcome))
	}
}

func TestReplStyleResetKeepsEnvironment(t *testing.T) {
	s, stdout, _ := newTestSession()
	s.Run("bakkabutee a = 1;")
	if s.Run("barreessi ;") != OutcomeStaticError {
		t.Fatalf("expected static error")
	}
	if s.Run("barreessi a;") != OutcomeStaticError {
		t.Fatalf("flag must persist until reset")
	}
	s.ResetError()
	if s.Run("barreessi a;") != OutcomeOK {
		t.Fatalf("expected ok after reset")
	}
	if stdout.String() != "1\n" {
		t.Fatalf("stdout %q", stdout.String())
	}
	if !s.Environment().Has("a") {
		t.Fatalf("global binding lost")
	}
}

func TestRunIsRepeatableWithFreshSessions(t *testing.T) {
	source := "bakkabutee a = 1;\n{ bakkabutee a = 2; barreessi a; }\nbarreessi a;\nbarreessi b;"
	var outputs []string
	for range 2 {
		s, stdout, stderr := newTestSession()
		if s.Run(source) != OutcomeRuntimeError {
			t.Fatalf("expected runtime error")
		}
		outputs = append(outputs, stdout.String()+"|"+stderr.String())
	}
	if outputs[0] != outputs[1] {
		t.Fatalf("runs differ: %q vs %q", outputs[0], outputs[1])
	}
	if want := "2\n1\n|Undefined variable 'b'.\n[line 4]\n"; outputs[0] != want {
		t.Fatalf("got %q, want %q", outputs[0], want)
	}
}

func TestSessionStyleAndLogging(t *testing.T) {
	var stdout, stderr, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSession(&stdout, &stderr,
		WithLogger(logger),
		WithStyle(func(text string) string { return "!" + text }))
	s.Run("barreessi x;")
	if !strings.HasPrefix(stderr.String(), "!Undefined variable 'x'.") {
		t.Fatalf("style not applied: %q", stderr.String())
	}
	if !strings.Contains(logs.String(), "session="+s.ID()) {
		t.Fatalf("log records should carry the session id: %s", logs.String())
	}
	if !strings.Contains(logs.String(), "outcome=runtime-error") {
		t.Fatalf("missing outcome log: %s", logs.String())
	}
}

func TestOutcomeText(t *testing.T) {
	for _, outcome := range []Outcome{OutcomeOK, OutcomeStaticError, OutcomeRuntimeError} {
		parsed, ok := ParseOutcome(outcome.String())
		if !ok || parsed != outcome {
			t.Fatalf("round trip failed for %s", outcome)
		}
	}
	if _, ok := ParseOutcome("crash"); ok {
		t.Fatalf("unknown outcome accepted")
	}
	if ExitCode(OutcomeOK) != 0 || ExitUsage != 64 {
		t.Fatalf("unexpected exit codes")
	}
}
