// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command robdd decides whether the Boolean expressions stored in two files
// are equivalent. It prints 1 if they are, and 0 otherwise.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		// errors go to stderr, while color only checks stdout
		red := color.New(color.FgRed)
		if _, ok := os.LookupEnv("NO_COLOR"); !ok && (isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())) {
			red.EnableColor()
		} else {
			red.DisableColor()
		}
		red.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
