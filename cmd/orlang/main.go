package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/firo1919/orlang/pkg/driver"
)

const cliToolVersion = "orlang 0.1.0-dev"

// usageError marks invocation mistakes that exit with driver.ExitUsage.
type usageError struct {
	message string
}

func (e usageError) Error() string { return e.message }

type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	noColor    bool

	cfg      *driver.Config
	logger   *slog.Logger
	exitCode int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stdin: stdin, stdout: stdout, stderr: stderr}
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(context.Background()); err != nil {
		var usage usageError
		if errors.As(err, &usage) {
			printUsage(stdout)
			return driver.ExitUsage
		}
		fmt.Fprintf(stderr, "orlang: %v\n", err)
		return 1
	}
	return c.exitCode
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "orlang [script]",
		Short: "Orlang interpreter",
		Long: `Orlang is a small scripting language with Afaan Oromo keywords.

Without arguments orlang starts an interactive prompt; with a script path it
runs the script and exits with 65 on a static error or 70 on a runtime error.`,
		Version:           cliToolVersion,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 0:
				return c.runRepl()
			case 1:
				return c.runFile(args[0])
			}
			return usageError{message: "too many arguments"}
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{message: err.Error()}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "project file (default: nearest orlang.yml, orlang.yaml or orlang.toml)")
	flags.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		c.runCommand(),
		c.replCommand(),
		c.tokensCommand(),
		c.astCommand(),
		c.testCommand(),
	)
	return root
}

// setup loads the project configuration, applies flag overrides and builds
// the logger shared by every command.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	cfg, err := driver.ResolveConfig(c.configPath, wd)
	if err != nil {
		return err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.noColor {
		cfg.REPL.Color = false
	}
	logger, err := driver.NewLogger(c.stderr, cfg.Log)
	if err != nil {
		return usageError{message: err.Error()}
	}
	c.cfg = cfg
	c.logger = logger
	if cfg.Path != "" {
		logger.Debug("loaded config", slog.String("path", cfg.Path))
	}
	return nil
}

func (c *cli) newSession() *driver.Session {
	st := newStyles(c.stderr, c.cfg.REPL.Color)
	return driver.NewSession(c.stdout, c.stderr,
		driver.WithLogger(c.logger),
		driver.WithStyle(st.diagnostic))
}

func exactlyOneFile(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageError{message: fmt.Sprintf("expected one file, got %d arguments", len(args))}
	}
	return nil
}

func (c *cli) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run an Orlang script",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFile(args[0])
		},
	}
}

func (c *cli) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRepl()
		},
	}
}

// readSource loads a script; a missing file sets ExitNoInput.
func (c *cli) readSource(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(c.stderr, "orlang: read %s: %v\n", path, err)
		c.exitCode = driver.ExitNoInput
		return "", false
	}
	return string(data), true
}

func (c *cli) runFile(path string) error {
	source, ok := c.readSource(path)
	if !ok {
		return nil
	}
	session := c.newSession()
	outcome := session.Run(source)
	c.logger.Debug("script finished", slog.String("path", path), slog.String("outcome", outcome.String()))
	c.exitCode = driver.ExitCode(outcome)
	return nil
}
