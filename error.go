package lox

import (
	"fmt"

	"github.com/juju/errors"
)

// diagnostic is implemented by every compile-time error tier (lexical,
// syntactic, semantic). A RuntimeError is deliberately not a diagnostic: it
// belongs to a different failure tier (§7) with its own reporting format.
type diagnostic interface {
	error
	Line() int
}

// LexError is reported by the scanner. Scanning continues after one is
// recorded; it never aborts the scan.
type LexError struct {
	line    int
	message string
}

func newLexError(line int, message string) *LexError {
	return &LexError{line: line, message: message}
}

func (e *LexError) Line() int { return e.line }

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.line, e.message)
}

// ParseError is reported by the parser at a specific token. Where is either
// "end" (for an EOF token) or the token's lexeme, quoted.
type ParseError struct {
	token   Token
	message string
}

func newParseError(tok Token, message string) *ParseError {
	return &ParseError{token: tok, message: message}
}

func (e *ParseError) Line() int { return e.token.Line }

func (e *ParseError) where() string {
	if e.token.Kind == TokenEOF {
		return "end"
	}
	return "'" + e.token.Lexeme + "'"
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error at %s: %s", e.token.Line, e.where(), e.message)
}

// ResolveError is reported by the static resolver.
type ResolveError struct {
	token   Token
	message string
}

func newResolveError(tok Token, message string) *ResolveError {
	return &ResolveError{token: tok, message: message}
}

func (e *ResolveError) Line() int { return e.token.Line }

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.token.Line, e.token.Lexeme, e.message)
}

// RuntimeError is tier four (§7): raised by the evaluator or the
// environment, caught once at the top of Interpreter.Interpret and reported
// in "MSG\n[line L]" form (§4.6). It carries the offending token so the
// driver can point at a source location.
type RuntimeError struct {
	Token   Token
	Message string
}

func newRuntimeError(tok Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
}

// annotatef wraps err with additional context using juju/errors, preserving
// the original error so errors.Cause can still recover it.
func annotatef(err error, format string, args ...any) error {
	return errors.Annotatef(err, format, args...)
}
