package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firo1919/orlang/pkg/fixtures"
)

type testOptions struct {
	gitURL   string
	ref      string
	cacheDir string
	verbose  bool
}

func (c *cli) testCommand() *cobra.Command {
	var opts testOptions
	cmd := &cobra.Command{
		Use:   "test [dir]",
		Short: "Run conformance fixtures",
		Long: `Runs every fixture (a directory holding fixture.yml) below dir, or below the
configured fixtures directory. With --git the suite is cloned from a repository
first and dir is taken relative to its checkout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTests(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.gitURL, "git", "", "fetch the fixture suite from this git repository")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "commit, tag or branch name of the git suite (default HEAD)")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "directory for git checkouts")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "list passing fixtures too")
	return cmd
}

func (c *cli) runTests(cmd *cobra.Command, args []string, opts testOptions) error {
	gitURL := opts.gitURL
	ref := opts.ref
	if gitURL == "" {
		gitURL = c.cfg.Fixtures.Git.URL
		if ref == "" {
			ref = c.cfg.Fixtures.Git.Ref
		}
	}

	root := c.cfg.FixturesDir()
	if gitURL != "" {
		cacheDir := opts.cacheDir
		if cacheDir == "" {
			cacheDir = c.cfg.FixturesCacheDir()
		}
		checkout, err := fixtures.Fetch(cmd.Context(), fixtures.FetchOptions{URL: gitURL, Ref: ref, CacheDir: cacheDir})
		if err != nil {
			return err
		}
		c.logger.Info("fetched fixture suite", slog.String("url", gitURL), slog.String("commit", checkout.Commit))
		root = checkout.Dir
		if len(args) == 1 {
			root = filepath.Join(checkout.Dir, args[0])
		}
	} else if len(args) == 1 {
		root = args[0]
	}

	suite, err := fixtures.Discover(root)
	if err != nil {
		return err
	}
	if len(suite) == 0 {
		fmt.Fprintf(c.stderr, "no fixtures found under %s\n", root)
		c.exitCode = 1
		return nil
	}

	st := newStyles(c.stdout, c.cfg.REPL.Color)
	failed := 0
	for _, result := range fixtures.RunAll(suite) {
		if result.Passed() {
			if opts.verbose {
				fmt.Fprintf(c.stdout, "PASS %s\n", result.Fixture.Name)
			}
			continue
		}
		failed++
		fmt.Fprintf(c.stdout, "%s %s\n", st.diagnostic("FAIL"), result.Fixture.Name)
		for _, mismatch := range result.Mismatches {
			fmt.Fprintf(c.stdout, "    %s\n", mismatch)
		}
	}
	fmt.Fprintf(c.stdout, "%d passed, %d failed\n", len(suite)-failed, failed)
	if failed > 0 {
		c.exitCode = 1
	}
	return nil
}
