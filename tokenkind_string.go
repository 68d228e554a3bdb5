// Code generated by "stringer -type=TokenKind -trimprefix=Token"; adapted by
// hand to avoid a go:generate step in this checkout — the shape matches what
// stringer would emit for the TokenKind const block in token.go.

package lox

import "strconv"

func _() {
	// An "invalid array index" compile error signals that the constant
	// values have changed and this file needs regenerating.
	var x [1]struct{}
	_ = x[TokenLeftParen-0]
	_ = x[TokenRightParen-1]
	_ = x[TokenLeftBrace-2]
	_ = x[TokenRightBrace-3]
	_ = x[TokenComma-4]
	_ = x[TokenDot-5]
	_ = x[TokenMinus-6]
	_ = x[TokenPlus-7]
	_ = x[TokenSemicolon-8]
	_ = x[TokenSlash-9]
	_ = x[TokenStar-10]
	_ = x[TokenBang-11]
	_ = x[TokenBangEqual-12]
	_ = x[TokenEqual-13]
	_ = x[TokenEqualEqual-14]
	_ = x[TokenGreater-15]
	_ = x[TokenGreaterEqual-16]
	_ = x[TokenLess-17]
	_ = x[TokenLessEqual-18]
	_ = x[TokenIdentifier-19]
	_ = x[TokenString-20]
	_ = x[TokenNumber-21]
	_ = x[TokenAnd-22]
	_ = x[TokenClass-23]
	_ = x[TokenElse-24]
	_ = x[TokenFalse-25]
	_ = x[TokenFor-26]
	_ = x[TokenFun-27]
	_ = x[TokenIf-28]
	_ = x[TokenNil-29]
	_ = x[TokenOr-30]
	_ = x[TokenPrint-31]
	_ = x[TokenReturn-32]
	_ = x[TokenSuper-33]
	_ = x[TokenThis-34]
	_ = x[TokenTrue-35]
	_ = x[TokenVar-36]
	_ = x[TokenWhile-37]
	_ = x[TokenEOF-38]
}

const _TokenKind_name = "LeftParenRightParenLeftBraceRightBraceCommaDotMinusPlusSemicolonSlashStarBangBangEqualEqualEqualEqualGreaterGreaterEqualLessLessEqualIdentifierStringNumberAndClassElseFalseForFunIfNilOrPrintReturnSuperThisTrueVarWhileEOF"

var _TokenKind_index = [...]uint16{0, 9, 19, 28, 38, 43, 46, 51, 55, 64, 69, 73, 77, 86, 91, 101, 108, 120, 124, 133, 143, 149, 155, 158, 163, 167, 172, 175, 178, 180, 183, 185, 190, 196, 201, 205, 209, 212, 217, 220}

// String returns the token kind's name, e.g. TokenPlus.String() == "Plus".
func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(_TokenKind_index)-1 {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return _TokenKind_name[_TokenKind_index[k]:_TokenKind_index[k+1]]
}
