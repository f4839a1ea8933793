/*
File   : golox/cmd/golox/main.go
Package: main
*/

// Command golox is the interpreter's command-line entry point. It
// dispatches to one of three modes:
//
//	golox                 interactive REPL on stdin/stdout
//	golox <file>           read and evaluate a UTF-8 source file
//	golox e "<source>"     evaluate inline source text
//
// Exit codes follow the conventional sysexits split used throughout the
// pipeline: 0 success, 64 usage error, 1 any scan/parse/runtime failure.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/gomix-lang/golox/driver"
	"github.com/gomix-lang/golox/repl"
)

const (
	exitSuccess = 0
	exitUsage   = 64
	exitFailure = 1
)

const banner = "GoLox -- a tree-walking Lox interpreter. Type '.exit' to quit."

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		return runRepl()
	case 1:
		return runFile(args[0])
	case 2:
		if args[0] != "e" {
			usage()
			return exitUsage
		}
		return runAndReport(args[1])
	default:
		usage()
		return exitUsage
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: golox [<file> | e <source>]")
}

func runRepl() int {
	if err := repl.New(banner).Start(os.Stdout); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err.Error())
		return exitFailure
	}
	return exitSuccess
}

func runFile(path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: could not read %q: %v\n", path, err)
		return exitUsage
	}
	return runAndReport(string(src))
}

func runAndReport(source string) int {
	if err := driver.RunSource(source); err != nil {
		color.New(color.FgRed).Fprintln(os.Stdout, err.Error())
		return exitFailure
	}
	return exitSuccess
}
