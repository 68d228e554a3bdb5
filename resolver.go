package lox

// functionType tracks what kind of function body the resolver is currently
// inside, used to reject `return` at top-level code (§4.3).
type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// scope maps a name to whether it has finished initializing: false means
// "declared but not yet defined" (mid-initializer), used to catch
// `var a = a;` self-reference (§4.3).
type scope map[string]bool

// Resolver is a single static pass that annotates every Variable and Assign
// expression with the number of enclosing environments to skip at
// evaluation time (§4.3). It shares no state with the Interpreter beyond the
// side table it produces.
type Resolver struct {
	scopes          []scope
	locals          map[Expr]int
	currentFunction functionType
	errs            []*ResolveError
}

// NewResolver constructs a Resolver with an empty side table.
func NewResolver() *Resolver {
	return &Resolver{locals: make(map[Expr]int)}
}

// Resolve walks statements and returns the completed side table plus any
// semantic diagnostics. Re-running Resolve with a fresh Resolver over an
// already-resolved tree reproduces an identical side table (§8), since
// resolution only reads the AST and the name text of tokens.
func (r *Resolver) Resolve(statements []Stmt) (map[Expr]int, []*ResolveError) {
	r.resolveStatements(statements)
	logger.Tracef("resolved %d local references (%d errors)", len(r.locals), len(r.errs))
	return r.locals, r.errs
}

func (r *Resolver) errorf(tok Token, message string) {
	err := newResolveError(tok, message)
	r.errs = append(r.errs, err)
	logger.Debugf("%s", err.Error())
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(scope))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	innermost := r.scopes[len(r.scopes)-1]
	if _, ok := innermost[name.Lexeme]; ok {
		r.errorf(name, "Already a variable with this name in this scope.")
	}
	innermost[name.Lexeme] = false
}

func (r *Resolver) define(name Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward; depth 0 means
// the innermost enclosing scope (§4.3). No match leaves expr absent from the
// side table, which the evaluator treats as "look it up in globals".
func (r *Resolver) resolveLocal(expr Expr, name Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStatements(statements []Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *StmtBlock:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()
	case *StmtVar:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *StmtFunction:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)
	case *StmtExpression:
		r.resolveExpr(s.Expr)
	case *StmtIf:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *StmtPrint:
		r.resolveExpr(s.Expr)
	case *StmtReturn:
		if r.currentFunction == functionNone {
			r.errorf(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *StmtWhile:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveFunction(fn *StmtFunction, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr Expr) {
	switch e := expr.(type) {
	case *ExprVariable:
		if len(r.scopes) > 0 {
			if defined, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ExprAssign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ExprBinary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ExprLogical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ExprUnary:
		r.resolveExpr(e.Right)
	case *ExprGrouping:
		r.resolveExpr(e.Inner)
	case *ExprCall:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ExprLiteral:
		// no children
	}
}
