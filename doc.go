// A tree-walking interpreter for Lox, a small dynamically typed scripting
// language with first-class functions, lexical closures, block scoping and
// C-family control flow.
//
// Current caveats
//   - No classes, inheritance, `this` or `super`: this core only implements
//     the procedural subset of Lox.
//   - Environments are not safe to share across goroutines; a single Run
//     (file or one REPL line) is expected to execute to completion before
//     another begins.
//
// A tiny example:
//
//	src := `print "hello, " + "world";`
//	runner := lox.NewRunner(os.Stdout, os.Stderr)
//	if hadError, hadRuntimeError := runner.Run(src); hadError || hadRuntimeError {
//		os.Exit(1)
//	}
package lox
