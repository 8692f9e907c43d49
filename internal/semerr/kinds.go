package semerr

import (
	"yaplc/internal/diag"
	"yaplc/internal/source"
	"yaplc/internal/token"
)

// DuplicateDeclaration reports tok re-declaring a name that prev already
// holds in the same scope. prevPos, when valid, becomes a note.
func DuplicateDeclaration(prev Described, prevPos source.Pos, tok token.Token) *Error {
	return newError(diag.SemaDuplicateDeclaration, tok,
		"symbol %s already declared in current scope (as %s)", tok.Lexeme(), prev.KindString()).
		withNote(prevPos, "previous declaration here")
}

func UndeclaredSymbol(tok token.Token) *Error {
	return newError(diag.SemaUndeclaredSymbol, tok, "identifier %s not declared", tok.Lexeme())
}

// IllegalUse reports that tok uses sym in a way its kind does not allow.
func IllegalUse(sym Described, tok token.Token) *Error {
	return newError(diag.SemaIllegalUse, tok, "illegal use of %s %s", sym.KindString(), sym.Name())
}

// EndIdentMismatch reports an End name that differs from the declaration.
// kindWord is "Procedure" or "Program".
func EndIdentMismatch(end token.Token, kindWord, name string) *Error {
	return newError(diag.SemaEndIdentMismatch, end, "End %s does not match %s %s", end.Lexeme(), kindWord, name)
}

func SelectorNotRecord(tok token.Token) *Error {
	return newError(diag.SemaSelectorNotRecord, tok, "expression before '.' is not a record type")
}

func InvalidRecordField(field token.Token, record string) *Error {
	return newError(diag.SemaInvalidRecordField, field, "invalid field %s of record %s", field.Lexeme(), record)
}

func SelectorNotArray(tok token.Token) *Error {
	return newError(diag.SemaSelectorNotArray, tok, "expression before '[' is not an array type")
}

func BadArraySelector(tok token.Token) *Error {
	return newError(diag.SemaBadArraySelector, tok, "array index or dimension is not an integer type")
}

func ArrayLenNotArray(tok token.Token) *Error {
	return newError(diag.SemaArrayLenNotArray, tok, "expression after '#' is not an array type")
}

func IllegalRelOpType(op token.Token) *Error {
	return newError(diag.SemaIllegalRelOpType, op, "non-numeric operand type for relational operator %s", op.Lexeme())
}

func IllegalEqualOpType(op token.Token) *Error {
	return newError(diag.SemaIllegalEqualOpType, op, "illegal operand types for equality operator %s", op.Lexeme())
}

func IllegalOp1Type(op token.Token) *Error {
	return newError(diag.SemaIllegalOp1Type, op, "illegal operand type for unary operator %s", op.Lexeme())
}

func IllegalOp2Type(op token.Token) *Error {
	return newError(diag.SemaIllegalOp2Type, op, "illegal operand types for binary operator %s", op.Lexeme())
}

// TypeMismatch reports a value of type actual stored where expected is
// required. Both are already-rendered type labels.
func TypeMismatch(tok token.Token, expected, actual string) *Error {
	return newError(diag.SemaTypeMismatch, tok, "type mismatch in assignment: expected %s, found %s", expected, actual)
}

func CondNotBool(tok token.Token) *Error {
	return newError(diag.SemaCondNotBool, tok, "condition is not a boolean expression")
}

// ArgNotApplicable reports the n-th (1-based) argument of a call to proc.
func ArgNotApplicable(tok token.Token, n int, proc string) *Error {
	return newError(diag.SemaArgNotApplicable, tok, "argument #%d not applicable to procedure %s", n, proc)
}

// ArityMismatch reports a call to proc with got arguments where want are declared.
func ArityMismatch(tok token.Token, proc string, want, got int) *Error {
	if got < want {
		return newError(diag.SemaArityMismatch, tok, "too few arguments for procedure %s", proc)
	}
	return newError(diag.SemaArityMismatch, tok, "too many arguments for procedure %s", proc)
}

func InvalidReturnType(tok token.Token, proc string) *Error {
	return newError(diag.SemaInvalidReturnType, tok, "returning none or invalid type from function %s", proc)
}

func IllegalRetValProc(tok token.Token, proc string) *Error {
	return newError(diag.SemaIllegalRetValProc, tok, "illegal return value in procedure %s (not a function)", proc)
}

func IllegalRetValMain(tok token.Token) *Error {
	return newError(diag.SemaIllegalRetValMain, tok, "illegal return value in main program")
}

func MissingReturn(tok token.Token, proc string) *Error {
	return newError(diag.SemaMissingReturn, tok, "missing Return statement in function %s", proc)
}

func ProcNotFuncExpr(tok token.Token, proc string) *Error {
	return newError(diag.SemaProcNotFuncExpr, tok, "using procedure %s (not a function) in expression", proc)
}

func ConstNotFoldable(tok token.Token, name string) *Error {
	return newError(diag.SemaConstNotFoldable, tok, "initializer of constant %s is not a constant expression", name)
}

func ConstDivByZero(op token.Token) *Error {
	return newError(diag.SemaConstDivByZero, op, "division by zero in constant expression")
}
