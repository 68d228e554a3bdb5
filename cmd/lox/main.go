// Command lox runs Lox source files or starts an interactive REPL.
//
// Usage:
//
//	lox              run as a REPL, reading one line at a time from stdin
//	lox PATH         execute the file at PATH
//	lox -debug PATH  execute PATH with pipeline trace logging on stderr
//	lox -ast PATH    print the parsed statement tree as YAML instead of running it
//
// Exit codes follow §6: 0 on success, 65 on a compile-time (lexical,
// syntactic or semantic) error, 70 on a runtime error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/loxlang/golox"
)

const (
	exitOK         = 0
	exitDataErr    = 65
	exitSoftware   = 70
	exitUsageNoErr = 0 // §6: more than one argument prints usage and exits 0.
)

func main() {
	debug := flag.Bool("debug", false, "trace scanner/parser/resolver/evaluator stages to stderr")
	dumpAST := flag.Bool("ast", false, "print the parsed statement tree as YAML instead of running it")
	flag.Parse()

	lox.SetDebug(*debug)

	args := flag.Args()
	switch {
	case len(args) > 1:
		printUsage()
		os.Exit(exitUsageNoErr)
	case len(args) == 1:
		os.Exit(runFile(args[0], *dumpAST))
	default:
		os.Exit(runREPL())
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: lox [-debug] [-ast] [path]")
}

func runFile(path string, dumpAST bool) int {
	contents, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitDataErr
	}
	source := stripBOM(string(contents))

	runner := lox.NewRunner(os.Stdout, os.Stderr)

	if dumpAST {
		statements, hadError := runner.ParseAST(source)
		if hadError {
			return exitDataErr
		}
		out, err := lox.DumpAST(statements)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitSoftware
		}
		fmt.Print(out)
		return exitOK
	}

	hadError, hadRuntimeError := runner.Run(source)
	switch {
	case hadError:
		return exitDataErr
	case hadRuntimeError:
		return exitSoftware
	default:
		return exitOK
	}
}

// runREPL reads one line at a time and runs it, resetting the compile-error
// state after every line (§4.6) so one bad line doesn't end the session.
// Runtime errors are reported but never terminate the REPL either.
func runREPL() int {
	runner := lox.NewRunner(os.Stdout, os.Stderr)
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("lox %s\n", lox.Version)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return exitOK
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		runner.Run(line)
	}
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "﻿")
}
