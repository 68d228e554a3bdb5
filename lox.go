package lox

import (
	"fmt"
	"io"
)

// Version identifies this interpreter build, printed in the driver's REPL
// banner.
const Version = "0.1.0"

// Runner ties the pipeline stages together (§2: scanner → parser →
// resolver → evaluator) and aggregates diagnostics the way §4.6 describes.
// It is the in-scope half of the driver; reading argv, opening files and
// calling os.Exit are the thin, out-of-scope collaborators left to cmd/lox.
type Runner struct {
	interp *Interpreter
	errOut io.Writer
}

// NewRunner constructs a Runner. Print statements write to stdout;
// diagnostics write to errOut (§6: diagnostics go to stderr).
func NewRunner(stdout, errOut io.Writer) *Runner {
	return &Runner{interp: New(stdout), errOut: errOut}
}

// compile runs scan → parse → resolve and reports every diagnostic it
// collects along the way, in source order by stage. It returns the
// statement tree (possibly partial) and whether any diagnostic fired.
func (r *Runner) compile(source string) ([]Stmt, map[Expr]int, bool) {
	scanner := NewScanner(source)
	tokens, lexErrs := scanner.ScanTokens()
	hadError := r.reportLex(lexErrs)

	parser := NewParser(tokens)
	statements, parseErrs := parser.Parse()
	hadError = r.reportParse(parseErrs) || hadError

	resolver := NewResolver()
	locals, resolveErrs := resolver.Resolve(statements)
	hadError = r.reportResolve(resolveErrs) || hadError

	return statements, locals, hadError
}

// Run executes source to completion. hadError signals a compile-time
// failure (lexical, syntactic, or semantic); hadRuntimeError signals the
// evaluator aborted partway through (§4.6, §7). The two are mutually
// exclusive: a compile error means the program was never interpreted.
func (r *Runner) Run(source string) (hadError, hadRuntimeError bool) {
	statements, locals, hadError := r.compile(source)
	if hadError {
		return true, false
	}

	if err := r.interp.Interpret(statements, locals); err != nil {
		r.reportRuntime(err)
		return false, true
	}
	return false, false
}

// ParseAST runs scan → parse only (no resolution, no execution) for the
// driver's -ast flag (§10.3, §12).
func (r *Runner) ParseAST(source string) ([]Stmt, bool) {
	scanner := NewScanner(source)
	tokens, lexErrs := scanner.ScanTokens()
	hadError := r.reportLex(lexErrs)

	parser := NewParser(tokens)
	statements, parseErrs := parser.Parse()
	hadError = r.reportParse(parseErrs) || hadError

	return statements, hadError
}

func (r *Runner) reportLex(errs []*LexError) bool {
	for _, e := range errs {
		fmt.Fprintln(r.errOut, e.Error())
	}
	return len(errs) > 0
}

func (r *Runner) reportParse(errs []*ParseError) bool {
	for _, e := range errs {
		fmt.Fprintln(r.errOut, e.Error())
	}
	return len(errs) > 0
}

func (r *Runner) reportResolve(errs []*ResolveError) bool {
	for _, e := range errs {
		fmt.Fprintln(r.errOut, e.Error())
	}
	return len(errs) > 0
}

func (r *Runner) reportRuntime(err error) {
	fmt.Fprintln(r.errOut, err.Error())
}
