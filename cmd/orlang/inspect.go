package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firo1919/orlang/pkg/ast"
	"github.com/firo1919/orlang/pkg/driver"
)

func (c *cli) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a script",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, ok := c.readSource(args[0])
			if !ok {
				return nil
			}
			tokens, scanned := c.newSession().Scan(source)
			for _, token := range tokens {
				fmt.Fprintln(c.stdout, token)
			}
			if !scanned {
				c.exitCode = driver.ExitStaticError
			}
			return nil
		},
	}
}

func (c *cli) astCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the syntax tree of a script",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, ok := c.readSource(args[0])
			if !ok {
				return nil
			}
			statements, parsed := c.newSession().Parse(source)
			if !parsed {
				c.exitCode = driver.ExitStaticError
				return nil
			}
			if len(statements) > 0 {
				fmt.Fprintln(c.stdout, ast.FormatProgram(statements))
			}
			return nil
		},
	}
}
