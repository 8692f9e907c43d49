package sema

import (
	"testing"

	"yaplc/internal/ast"
	"yaplc/internal/diag"
	"yaplc/internal/source"
	"yaplc/internal/token"
)

func at(line, col uint32) source.Pos { return source.Pos{Line: line, Col: col} }

func ident(name string, line, col uint32) token.Token {
	return token.Token{Kind: token.Ident, Text: name, Pos: at(line, col)}
}

func op(kind token.Kind, line, col uint32) token.Token {
	return token.Token{Kind: kind, Pos: at(line, col)}
}

func lit(kind token.Kind, text string, line, col uint32) token.Token {
	return token.Token{Kind: kind, Text: text, Pos: at(line, col)}
}

func intLit(text string, line, col uint32) ast.Expr {
	return ast.IntLit(lit(token.IntLit, text, line, col))
}

func floatLit(text string, line, col uint32) ast.Expr {
	return ast.FloatLit(lit(token.FloatLit, text, line, col))
}

func boolLit(text string, line, col uint32) ast.Expr {
	return ast.BoolLit(lit(token.BoolLit, text, line, col))
}

func name(n string, line, col uint32) ast.Expr { return ast.Ident(ident(n, line, col)) }

func typ(n string, dims int) ast.TypeExpr { return ast.Type(ident(n, 1, 1), dims) }

func typAt(n string, dims int, line, col uint32) ast.TypeExpr {
	return ast.Type(ident(n, line, col), dims)
}

func assign(target ast.Expr, line, col uint32, value ast.Expr) ast.Stmt {
	return ast.Assign(op(token.Assign, line, col), target, value)
}

// program builds `Program demo; decls Begin stmts End demo.`
func program(decls []ast.Decl, stmts ...ast.Stmt) *ast.Program {
	return &ast.Program{
		Name:  ident("demo", 1, 9),
		Decls: decls,
		Body:  ast.Block{Begin: op(token.KwBegin, 2, 1), Stmts: stmts},
		End:   ident("demo", 99, 5),
	}
}

func body(stmts ...ast.Stmt) ast.Block {
	return ast.Block{Begin: op(token.KwBegin, 1, 1), Stmts: stmts}
}

func runCheck(t *testing.T, prog *ast.Program, maxErrors int) (Result, string) {
	t.Helper()
	bag := diag.NewBag(0)
	res := Check(prog, Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: maxErrors})
	if len(res.Errors) != bag.Len() {
		t.Fatalf("result has %d errors, bag has %d", len(res.Errors), bag.Len())
	}
	return res, diag.FormatGoldenDiagnostics(bag.Items(), nil, false)
}

func expectGolden(t *testing.T, prog *ast.Program, want string) Result {
	t.Helper()
	res, got := runCheck(t, prog, 0)
	if got != want {
		t.Fatalf("unexpected diagnostics:\nwant:\n%s\n\ngot:\n%s", want, got)
	}
	return res
}
