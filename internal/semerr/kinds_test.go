package semerr

import (
	"testing"

	"yaplc/internal/diag"
	"yaplc/internal/source"
	"yaplc/internal/token"
)

type described struct{ kind, name string }

func (d described) KindString() string { return d.kind }
func (d described) Name() string       { return d.name }

func at(kind token.Kind, text string, line, col uint32) token.Token {
	return token.Token{Kind: kind, Text: text, Pos: source.Pos{Line: line, Col: col}}
}

func TestIllegalUseMessageAndPosition(t *testing.T) {
	err := IllegalUse(described{kind: "procedure", name: "foo"}, at(token.Ident, "foo", 3, 7))
	if err.Code != diag.SemaIllegalUse {
		t.Fatalf("code: got %v", err.Code)
	}
	if err.Message != "illegal use of procedure foo" {
		t.Fatalf("message: got %q", err.Message)
	}
	if err.Pos != (source.Pos{Line: 3, Col: 7}) {
		t.Fatalf("position: got %v", err.Pos)
	}
	if err.Error() != "3:7: illegal use of procedure foo" {
		t.Fatalf("Error(): got %q", err.Error())
	}
}

func TestEveryKindFormatsDeterministically(t *testing.T) {
	id := at(token.Ident, "x", 4, 2)
	op := token.Token{Kind: token.LtEq, Pos: source.Pos{Line: 5, Col: 9}}
	prev := described{kind: "variable", name: "x"}

	cases := []struct {
		err  *Error
		code diag.Code
		msg  string
	}{
		{DuplicateDeclaration(prev, source.Pos{}, id), diag.SemaDuplicateDeclaration, "symbol x already declared in current scope (as variable)"},
		{UndeclaredSymbol(id), diag.SemaUndeclaredSymbol, "identifier x not declared"},
		{EndIdentMismatch(at(token.Ident, "bar", 9, 5), "Procedure", "foo"), diag.SemaEndIdentMismatch, "End bar does not match Procedure foo"},
		{SelectorNotRecord(id), diag.SemaSelectorNotRecord, "expression before '.' is not a record type"},
		{InvalidRecordField(at(token.Ident, "z", 1, 1), "Point"), diag.SemaInvalidRecordField, "invalid field z of record Point"},
		{SelectorNotArray(id), diag.SemaSelectorNotArray, "expression before '[' is not an array type"},
		{BadArraySelector(id), diag.SemaBadArraySelector, "array index or dimension is not an integer type"},
		{ArrayLenNotArray(id), diag.SemaArrayLenNotArray, "expression after '#' is not an array type"},
		{IllegalRelOpType(op), diag.SemaIllegalRelOpType, "non-numeric operand type for relational operator <="},
		{IllegalEqualOpType(token.Token{Kind: token.EqEq}), diag.SemaIllegalEqualOpType, "illegal operand types for equality operator =="},
		{IllegalOp1Type(token.Token{Kind: token.Minus}), diag.SemaIllegalOp1Type, "illegal operand type for unary operator -"},
		{IllegalOp2Type(at(token.KwAnd, "And", 1, 1)), diag.SemaIllegalOp2Type, "illegal operand types for binary operator And"},
		{TypeMismatch(id, "int", "bool"), diag.SemaTypeMismatch, "type mismatch in assignment: expected int, found bool"},
		{CondNotBool(id), diag.SemaCondNotBool, "condition is not a boolean expression"},
		{ArgNotApplicable(id, 2, "foo"), diag.SemaArgNotApplicable, "argument #2 not applicable to procedure foo"},
		{ArityMismatch(id, "foo", 2, 1), diag.SemaArityMismatch, "too few arguments for procedure foo"},
		{ArityMismatch(id, "foo", 1, 2), diag.SemaArityMismatch, "too many arguments for procedure foo"},
		{InvalidReturnType(id, "f"), diag.SemaInvalidReturnType, "returning none or invalid type from function f"},
		{IllegalRetValProc(id, "p"), diag.SemaIllegalRetValProc, "illegal return value in procedure p (not a function)"},
		{IllegalRetValMain(id), diag.SemaIllegalRetValMain, "illegal return value in main program"},
		{MissingReturn(id, "f"), diag.SemaMissingReturn, "missing Return statement in function f"},
		{ProcNotFuncExpr(id, "p"), diag.SemaProcNotFuncExpr, "using procedure p (not a function) in expression"},
		{ConstNotFoldable(id, "N"), diag.SemaConstNotFoldable, "initializer of constant N is not a constant expression"},
		{ConstDivByZero(op), diag.SemaConstDivByZero, "division by zero in constant expression"},
	}
	covered := make(map[diag.Code]bool)
	for _, tc := range cases {
		if tc.err.Code != tc.code {
			t.Errorf("%q: code %v, want %v", tc.msg, tc.err.Code, tc.code)
		}
		if tc.err.Message != tc.msg {
			t.Errorf("message %q, want %q", tc.err.Message, tc.msg)
		}
		covered[tc.code] = true
	}
	for _, c := range diag.SemanticCodes() {
		if !covered[c] {
			t.Errorf("%s has no constructor test", c.ID())
		}
	}
}

func TestDuplicateDeclarationCarriesNote(t *testing.T) {
	prevPos := source.Pos{Line: 1, Col: 9}
	err := DuplicateDeclaration(described{kind: "constant", name: "n"}, prevPos, at(token.Ident, "n", 2, 9))
	d := err.Diagnostic()
	if d.Severity != diag.SevError || d.Primary != err.Pos {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Pos != prevPos {
		t.Fatalf("expected previous-declaration note, got %+v", d.Notes)
	}

	bag := diag.NewBag(0)
	if !err.Report(diag.BagReporter{Bag: bag}) || bag.Len() != 1 {
		t.Fatalf("Report must append to the bag")
	}
	var nilErr *Error
	if nilErr.Report(diag.BagReporter{Bag: bag}) {
		t.Fatalf("nil error must not report")
	}
}
