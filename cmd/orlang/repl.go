package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/firo1919/orlang/pkg/driver"
	"github.com/firo1919/orlang/pkg/runtime"
)

// lineReader is the part of liner.State the prompt loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

type linerReader struct {
	*liner.State
	historyPath string
	logger      *slog.Logger
}

func newLinerReader(historyPath string, logger *slog.Logger) *linerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &linerReader{State: ln, historyPath: historyPath, logger: logger}
}

func (r *linerReader) Close() error {
	if r.historyPath != "" {
		if f, err := os.Create(r.historyPath); err == nil {
			_, _ = r.WriteHistory(f)
			_ = f.Close()
		} else {
			r.logger.Warn("write history", slog.String("path", r.historyPath), slog.String("error", err.Error()))
		}
	}
	return r.State.Close()
}

// scanReader serves prompts from a plain reader when stdin is not the
// process terminal.
type scanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newScanReader(in io.Reader, out io.Writer) *scanReader {
	return &scanReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scanReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scanReader) AppendHistory(string) {}

func (r *scanReader) Close() error { return nil }

func (c *cli) runRepl() error {
	var reader lineReader
	if f, ok := c.stdin.(*os.File); ok && f == os.Stdin {
		reader = newLinerReader(c.cfg.HistoryPath(), c.logger)
	} else {
		reader = newScanReader(c.stdin, c.stdout)
	}
	defer reader.Close()

	c.exitCode = repl(reader, c.newSession, c.stdout, c.cfg.REPL.Prompt, newStyles(c.stdout, c.cfg.REPL.Color))
	return nil
}

// repl reads lines until EOF or :quit. Each line runs in the same session;
// the static error flag is cleared after every line so later input runs.
func repl(reader lineReader, newSession func() *driver.Session, out io.Writer, prompt string, st styles) int {
	session := newSession()
	for {
		line, err := reader.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				return driver.ExitOK
			}
			fmt.Fprintln(out, st.diagnostic(err.Error()))
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		reader.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return driver.ExitOK
			case ":env":
				printEnvironment(out, session.Environment(), st)
			case ":reset":
				session = newSession()
				fmt.Fprintln(out, st.hint("session reset"))
			default:
				fmt.Fprintln(out, st.hint("unknown command. Commands: :env :reset :quit"))
			}
			continue
		}

		session.Run(line)
		session.ResetError()
	}
}

func printEnvironment(out io.Writer, env *runtime.Environment, st styles) {
	values := env.Snapshot()
	for _, name := range env.Keys() {
		fmt.Fprintf(out, "%s = %s\n", st.binding(name), runtime.Stringify(values[name]))
	}
}
