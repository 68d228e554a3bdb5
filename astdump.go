package lox

import "gopkg.in/yaml.v2"

// DumpAST renders a parsed (pre-resolution) statement tree as YAML, for the
// driver's -ast flag (§10.3, §12). It is a one-shot static dump, not a
// debugger or source-map (§1 Non-goals) — just a readable view of what the
// parser produced, the way a maintainer might eyeball the token dump pongo2
// leaves commented out in template.go.
func DumpAST(statements []Stmt) (string, error) {
	nodes := make([]any, 0, len(statements))
	for _, stmt := range statements {
		nodes = append(nodes, dumpStmt(stmt))
	}
	out, err := yaml.Marshal(nodes)
	if err != nil {
		return "", annotatef(err, "marshaling ast")
	}
	return string(out), nil
}

func dumpStmt(stmt Stmt) map[string]any {
	switch s := stmt.(type) {
	case *StmtExpression:
		return node("Expression", map[string]any{"expr": dumpExpr(s.Expr)})
	case *StmtPrint:
		return node("Print", map[string]any{"expr": dumpExpr(s.Expr)})
	case *StmtVar:
		fields := map[string]any{"name": s.Name.Lexeme}
		if s.Initializer != nil {
			fields["initializer"] = dumpExpr(s.Initializer)
		}
		return node("Var", fields)
	case *StmtBlock:
		stmts := make([]any, 0, len(s.Statements))
		for _, inner := range s.Statements {
			stmts = append(stmts, dumpStmt(inner))
		}
		return node("Block", map[string]any{"statements": stmts})
	case *StmtIf:
		fields := map[string]any{
			"condition": dumpExpr(s.Condition),
			"then":      dumpStmt(s.Then),
		}
		if s.Else != nil {
			fields["else"] = dumpStmt(s.Else)
		}
		return node("If", fields)
	case *StmtWhile:
		return node("While", map[string]any{
			"condition": dumpExpr(s.Condition),
			"body":      dumpStmt(s.Body),
		})
	case *StmtFunction:
		params := make([]string, 0, len(s.Params))
		for _, p := range s.Params {
			params = append(params, p.Lexeme)
		}
		body := make([]any, 0, len(s.Body))
		for _, inner := range s.Body {
			body = append(body, dumpStmt(inner))
		}
		return node("Function", map[string]any{
			"name":   s.Name.Lexeme,
			"params": params,
			"body":   body,
		})
	case *StmtReturn:
		fields := map[string]any{}
		if s.Value != nil {
			fields["value"] = dumpExpr(s.Value)
		}
		return node("Return", fields)
	default:
		return node("Unknown", nil)
	}
}

func dumpExpr(expr Expr) map[string]any {
	switch e := expr.(type) {
	case *ExprLiteral:
		return node("Literal", map[string]any{"value": e.Value})
	case *ExprGrouping:
		return node("Grouping", map[string]any{"inner": dumpExpr(e.Inner)})
	case *ExprUnary:
		return node("Unary", map[string]any{"op": e.Op.Lexeme, "right": dumpExpr(e.Right)})
	case *ExprBinary:
		return node("Binary", map[string]any{"op": e.Op.Lexeme, "left": dumpExpr(e.Left), "right": dumpExpr(e.Right)})
	case *ExprLogical:
		return node("Logical", map[string]any{"op": e.Op.Lexeme, "left": dumpExpr(e.Left), "right": dumpExpr(e.Right)})
	case *ExprVariable:
		return node("Variable", map[string]any{"name": e.Name.Lexeme})
	case *ExprAssign:
		return node("Assign", map[string]any{"name": e.Name.Lexeme, "value": dumpExpr(e.Value)})
	case *ExprCall:
		args := make([]any, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, dumpExpr(a))
		}
		return node("Call", map[string]any{"callee": dumpExpr(e.Callee), "args": args})
	default:
		return node("Unknown", nil)
	}
}

func node(kind string, fields map[string]any) map[string]any {
	out := map[string]any{"node": kind}
	for k, v := range fields {
		out[k] = v
	}
	return out
}
