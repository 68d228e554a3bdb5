package lox

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/kr/pretty"
	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func TestEndToEnd(t *testing.T) { TestingT(t) }

type EndToEndSuite struct{}

var _ = Suite(&EndToEndSuite{})

// run executes source through the full pipeline and returns stdout, trimmed
// of its trailing newline to match §8's "ignoring trailing newline" scenarios.
func run(c *C, source string) string {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	hadError, hadRuntimeError := runner.Run(source)
	if hadError || hadRuntimeError {
		c.Fatalf("unexpected failure running %q:\nstdout: %s\nstderr: %s\n%# v",
			source, out.String(), errOut.String(), pretty.Formatter(errOut.String()))
	}
	return strings.TrimRight(out.String(), "\n")
}

func (s *EndToEndSuite) TestArithmetic(c *C) {
	c.Check(run(c, `print 1 + 2;`), Equals, "3")
}

func (s *EndToEndSuite) TestStringNumberConcatenation(c *C) {
	c.Check(run(c, `print "hi" + 1;`), Equals, "hi1")
}

func (s *EndToEndSuite) TestReassignment(c *C) {
	c.Check(run(c, `var a = 1; a = a + 1; print a;`), Equals, "2")
}

func (s *EndToEndSuite) TestClosureCapturesByReference(c *C) {
	out := run(c, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var c = makeCounter();
		c();
		c();
	`)
	c.Check(out, Equals, "1\n2")
}

func (s *EndToEndSuite) TestScopeResolvedAtDeclarationTime(c *C) {
	out := run(c, `
		var a = "global";
		{
			fun show() { print a; }
			show();
			var a = "local";
			show();
		}
	`)
	c.Check(out, Equals, "global\nglobal")
}

func (s *EndToEndSuite) TestForLoop(c *C) {
	out := run(c, `for (var i = 0; i < 3; i = i + 1) print i;`)
	c.Check(out, Equals, "0\n1\n2")
}

func (s *EndToEndSuite) TestClockReturnsNumber(c *C) {
	out := run(c, `print clock() + 0;`)
	_, err := strconv.ParseFloat(out, 64)
	c.Check(err, IsNil)
}

func (s *EndToEndSuite) TestShadowingAcrossBlocks(c *C) {
	out := run(c, `var a=1; { var a=2; print a; } print a;`)
	c.Check(out, Equals, "2\n1")
}

func (s *EndToEndSuite) TestDivisionByZeroIsARuntimeError(c *C) {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	_, hadRuntimeError := runner.Run(`print 1 / 0;`)
	c.Check(hadRuntimeError, Equals, true)
	c.Check(strings.HasPrefix(errOut.String(), "Dominominator"), Equals, true)
}

func (s *EndToEndSuite) TestUndefinedVariableIsARuntimeError(c *C) {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	_, hadRuntimeError := runner.Run(`print nope;`)
	c.Check(hadRuntimeError, Equals, true)
}

func (s *EndToEndSuite) TestRedeclareInSameEnvironmentIsARuntimeError(c *C) {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	// The resolver exempts the global scope from its redeclaration check
	// (§4.3), so both declarations reach the single global environment and
	// Environment.define rejects the second one at runtime. Inside a block the
	// resolver reports the same program as a compile-time error instead, and
	// cross-block shadowing (TestShadowingAcrossBlocks) is fine.
	_, hadRuntimeError := runner.Run(`var a = 1; var a = 2;`)
	c.Check(hadRuntimeError, Equals, true)
	c.Check(strings.Contains(errOut.String(), "Attempted to redeclare variable 'a'."), Equals, true)
}

func (s *EndToEndSuite) TestCompileErrorsNeverReachTheEvaluator(c *C) {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	hadError, hadRuntimeError := runner.Run(`print "unterminated;`)
	c.Check(hadError, Equals, true)
	c.Check(hadRuntimeError, Equals, false)
}

func (s *EndToEndSuite) TestFunctionWithoutReturnYieldsNil(c *C) {
	out := run(c, `fun f() {} print f();`)
	c.Check(out, Equals, "nil")
}

func (s *EndToEndSuite) TestArityMismatchIsARuntimeError(c *C) {
	var out, errOut bytes.Buffer
	runner := NewRunner(&out, &errOut)
	_, hadRuntimeError := runner.Run(`fun f(a) { return a; } f(1, 2);`)
	c.Check(hadRuntimeError, Equals, true)
	c.Check(strings.Contains(errOut.String(), "Expected 1 arguments but got 2."), Equals, true)
}
