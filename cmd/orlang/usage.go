package main

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: orlang [script]")
	fmt.Fprintln(w, "       orlang run <file>")
	fmt.Fprintln(w, "       orlang repl")
	fmt.Fprintln(w, "       orlang tokens <file>")
	fmt.Fprintln(w, "       orlang ast <file>")
	fmt.Fprintln(w, "       orlang test [dir] [--git url] [--ref ref]")
}
