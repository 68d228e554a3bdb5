package lox

import "fmt"

// Callable is implemented by every value that can appear as the callee of a
// Call expression: native functions and user-defined Lox functions.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// nativeFunction adapts a Go func into a Callable, the way clock (§4.5,
// §11) and any future built-in would be registered in globals.
type nativeFunction struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) (Value, error)
}

func (f *nativeFunction) Arity() int { return f.arity }

func (f *nativeFunction) Call(interp *Interpreter, args []Value) (Value, error) {
	return f.fn(interp, args)
}

func (f *nativeFunction) String() string {
	return fmt.Sprintf("<native fn %s>", f.name)
}

// function is a user-defined Lox function: a Function statement paired with
// the environment active at its declaration (§3 invariants, §4.4). Calling
// it creates a fresh child of that closure environment, not of whatever
// environment happens to be active at the call site.
type function struct {
	declaration *StmtFunction
	closure     *Environment
}

func newFunction(decl *StmtFunction, closure *Environment) *function {
	return &function{declaration: decl, closure: closure}
}

func (f *function) Arity() int { return len(f.declaration.Params) }

func (f *function) Call(interp *Interpreter, args []Value) (result Value, err error) {
	env := newEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.define(param.Lexeme, args[i])
	}

	sig, err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return nil, nil
}

func (f *function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}
