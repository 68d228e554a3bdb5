package lox

// Parser is a recursive-descent parser over the grammar in §4.2. It reports
// diagnostics to errs rather than aborting outright, synchronizing to the
// next plausible statement boundary (panic-mode recovery) so one malformed
// declaration doesn't prevent the rest of the file from being checked.
type Parser struct {
	tokens  []Token
	current int
	errs    []*ParseError
}

// NewParser constructs a Parser over a complete, EOF-terminated token
// stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs program → declaration* EOF and returns every statement that
// parsed successfully, plus any diagnostics. A faulted top-level declaration
// contributes no statement to the result (§4.2).
func (p *Parser) Parse() ([]Stmt, []*ParseError) {
	var statements []Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	logger.Tracef("parsed %d top-level statements (%d errors)", len(statements), len(p.errs))
	return statements, p.errs
}

// --- token cursor -----------------------------------------------------

func (p *Parser) check(kind TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(kind TokenKind, message string) (Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return Token{}, p.error(p.peek(), message)
}

func (p *Parser) error(tok Token, message string) *ParseError {
	err := newParseError(tok, message)
	p.errs = append(p.errs, err)
	logger.Debugf("%s", err.Error())
	return err
}

// synchronize discards tokens until just past the next ";" or until the next
// token starts a new statement (§4.2's panic-mode recovery list).
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == TokenSemicolon {
			return
		}
		switch p.peek().Kind {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}
		p.advance()
	}
}

// --- declarations & statements -----------------------------------------

func (p *Parser) declaration() (stmt Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*ParseError); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	if p.match(TokenVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

// panicOn raises a ParseError that unwinds to the nearest declaration()
// frame via recover, mirroring the source's exception-based error
// propagation (§9) without needing every parse* method to thread an error
// return through the grammar's deep recursion.
func (p *Parser) panicOn(err *ParseError) {
	panic(err)
}

func (p *Parser) mustConsume(kind TokenKind, message string) Token {
	tok, err := p.consume(kind, message)
	if err != nil {
		p.panicOn(err.(*ParseError))
	}
	return tok
}

func (p *Parser) varDeclaration() Stmt {
	name := p.mustConsume(TokenIdentifier, "Expect variable name.")

	var initializer Expr
	if p.match(TokenEqual) {
		initializer = p.expression()
	}

	p.mustConsume(TokenSemicolon, "Expect ';' after variable declaration.")
	return &StmtVar{Name: name, Initializer: initializer}
}

func (p *Parser) statement() Stmt {
	switch {
	case p.match(TokenFor):
		return p.forStatement()
	case p.match(TokenIf):
		return p.ifStatement()
	case p.match(TokenPrint):
		return p.printStatement()
	case p.match(TokenWhile):
		return p.whileStatement()
	case p.match(TokenFun):
		return p.functionDeclaration("function")
	case p.match(TokenReturn):
		keyword := p.previous()
		var value Expr
		if !p.check(TokenSemicolon) {
			value = p.expression()
		}
		p.mustConsume(TokenSemicolon, "Expect ';' after return value.")
		return &StmtReturn{Keyword: keyword, Value: value}
	case p.match(TokenLeftBrace):
		return &StmtBlock{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// forStatement desugars `for` into a `while` per §4.2: the initializer, if
// any, wraps the loop in a block; the increment, if any, is appended to the
// loop body; a missing condition is treated as `true`.
func (p *Parser) forStatement() Stmt {
	p.mustConsume(TokenLeftParen, "Expect '(' after 'for'.")

	var initializer Stmt
	switch {
	case p.match(TokenSemicolon):
		initializer = nil
	case p.match(TokenVar):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition Expr
	if !p.check(TokenSemicolon) {
		condition = p.expression()
	}
	p.mustConsume(TokenSemicolon, "Expect ';' after loop condition.")

	var increment Expr
	if !p.check(TokenRightParen) {
		increment = p.expression()
	}
	p.mustConsume(TokenRightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &StmtBlock{Statements: []Stmt{body, &StmtExpression{Expr: increment}}}
	}
	if condition == nil {
		condition = &ExprLiteral{Value: true}
	}
	body = &StmtWhile{Condition: condition, Body: body}

	if initializer != nil {
		body = &StmtBlock{Statements: []Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) ifStatement() Stmt {
	p.mustConsume(TokenLeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.mustConsume(TokenRightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch Stmt
	if p.match(TokenElse) {
		elseBranch = p.statement()
	}
	return &StmtIf{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) printStatement() Stmt {
	value := p.expression()
	p.mustConsume(TokenSemicolon, "Expect ';' after value.")
	return &StmtPrint{Expr: value}
}

func (p *Parser) whileStatement() Stmt {
	p.mustConsume(TokenLeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.mustConsume(TokenRightParen, "Expect ')' after condition.")
	body := p.statement()
	return &StmtWhile{Condition: condition, Body: body}
}

func (p *Parser) functionDeclaration(kind string) Stmt {
	name := p.mustConsume(TokenIdentifier, "Expect "+kind+" name.")
	p.mustConsume(TokenLeftParen, "Expect '(' after "+kind+" name.")

	var params []Token
	if !p.check(TokenRightParen) {
		for {
			params = append(params, p.mustConsume(TokenIdentifier, "Expect parameter name."))
			if !p.match(TokenComma) {
				break
			}
		}
	}
	p.mustConsume(TokenRightParen, "Expect ')' after parameters.")

	p.mustConsume(TokenLeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &StmtFunction{Name: name, Params: params, Body: body}
}

func (p *Parser) block() []Stmt {
	var statements []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.mustConsume(TokenRightBrace, "Expect '}' after block.")
	return statements
}

func (p *Parser) expressionStatement() Stmt {
	expr := p.expression()
	p.mustConsume(TokenSemicolon, "Expect ';' after expression.")
	return &StmtExpression{Expr: expr}
}

// --- expressions ---------------------------------------------------------

func (p *Parser) expression() Expr {
	return p.assignment()
}

// assignment is right-associative and the one place the grammar must check,
// after the fact, that the parsed left-hand side is a valid assignment
// target (§4.2) — a `Variable` node.
func (p *Parser) assignment() Expr {
	expr := p.logicOr()

	if p.match(TokenEqual) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ExprVariable); ok {
			return &ExprAssign{Name: variable.Name, Value: value}
		}
		p.error(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

func (p *Parser) logicOr() Expr {
	expr := p.logicAnd()
	for p.match(TokenOr) {
		op := p.previous()
		right := p.logicAnd()
		expr = &ExprLogical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) logicAnd() Expr {
	expr := p.equality()
	for p.match(TokenAnd) {
		op := p.previous()
		right := p.equality()
		expr = &ExprLogical{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() Expr {
	expr := p.comparison()
	for p.match(TokenBangEqual, TokenEqualEqual) {
		op := p.previous()
		right := p.comparison()
		expr = &ExprBinary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() Expr {
	expr := p.term()
	for p.match(TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual) {
		op := p.previous()
		right := p.term()
		expr = &ExprBinary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) term() Expr {
	expr := p.factor()
	for p.match(TokenMinus, TokenPlus) {
		op := p.previous()
		right := p.factor()
		expr = &ExprBinary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() Expr {
	expr := p.unary()
	for p.match(TokenSlash, TokenStar) {
		op := p.previous()
		right := p.unary()
		expr = &ExprBinary{Left: expr, Op: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() Expr {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()
		right := p.unary()
		return &ExprUnary{Op: op, Right: right}
	}
	return p.call()
}

func (p *Parser) call() Expr {
	expr := p.primary()
	for {
		if p.match(TokenLeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee Expr) Expr {
	var args []Expr
	if !p.check(TokenRightParen) {
		for {
			args = append(args, p.expression())
			if !p.match(TokenComma) {
				break
			}
		}
	}
	paren := p.mustConsume(TokenRightParen, "Expect ')' after arguments.")
	return &ExprCall{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() Expr {
	switch {
	case p.match(TokenFalse):
		return &ExprLiteral{Value: false}
	case p.match(TokenTrue):
		return &ExprLiteral{Value: true}
	case p.match(TokenNil):
		return &ExprLiteral{Value: nil}
	case p.match(TokenNumber, TokenString):
		return &ExprLiteral{Value: p.previous().Literal}
	case p.match(TokenIdentifier):
		return &ExprVariable{Name: p.previous()}
	case p.match(TokenLeftParen):
		expr := p.expression()
		p.mustConsume(TokenRightParen, "Expect ')' after expression.")
		return &ExprGrouping{Inner: expr}
	}

	p.panicOn(p.error(p.peek(), "Expect expression."))
	return nil // unreachable: panicOn always panics
}
