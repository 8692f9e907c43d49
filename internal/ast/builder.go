package ast

import "yaplc/internal/token"

// Constructors used by producers and tests to assemble trees.

func Ident(tok token.Token) Expr  { return Expr{Kind: ExprIdent, Tok: tok} }
func IntLit(tok token.Token) Expr { return Expr{Kind: ExprIntLit, Tok: tok} }
func FloatLit(tok token.Token) Expr {
	return Expr{Kind: ExprFloatLit, Tok: tok}
}
func BoolLit(tok token.Token) Expr { return Expr{Kind: ExprBoolLit, Tok: tok} }

func Unary(op token.Token, x Expr) Expr {
	return Expr{Kind: ExprUnary, Tok: op, Args: []Expr{x}}
}

func Binary(op token.Token, left, right Expr) Expr {
	return Expr{Kind: ExprBinary, Tok: op, Args: []Expr{left, right}}
}

func Index(lbrack token.Token, base, index Expr) Expr {
	return Expr{Kind: ExprIndex, Tok: lbrack, Args: []Expr{base, index}}
}

func Select(base Expr, field token.Token) Expr {
	return Expr{Kind: ExprSelect, Tok: field, Args: []Expr{base}}
}

func Len(hash token.Token, x Expr) Expr {
	return Expr{Kind: ExprLen, Tok: hash, Args: []Expr{x}}
}

func New(kw token.Token, typ TypeExpr, dims ...Expr) Expr {
	return Expr{Kind: ExprNew, Tok: kw, Type: &typ, Args: dims}
}

func Call(callee token.Token, args ...Expr) Expr {
	return Expr{Kind: ExprCall, Tok: callee, Args: args}
}

func Assign(op token.Token, target, value Expr) Stmt {
	return Stmt{Kind: StmtAssign, Tok: op, Target: &target, Value: &value}
}

func CallStmt(call Expr) Stmt {
	return Stmt{Kind: StmtCall, Tok: call.Tok, Value: &call}
}

func If(kw token.Token, cond Expr, then, els []Stmt) Stmt {
	return Stmt{Kind: StmtIf, Tok: kw, Cond: &cond, Then: then, Else: els}
}

func While(kw token.Token, cond Expr, body []Stmt) Stmt {
	return Stmt{Kind: StmtWhile, Tok: kw, Cond: &cond, Then: body}
}

// Return builds `Return [value]`; pass nil for a bare return.
func Return(kw token.Token, value *Expr) Stmt {
	return Stmt{Kind: StmtReturn, Tok: kw, Value: value}
}

func BlockStmt(b Block) Stmt {
	return Stmt{Kind: StmtBlock, Tok: b.Begin, Block: &b}
}

func Type(name token.Token, dims int) TypeExpr { return TypeExpr{Name: name, Dims: dims} }

func Const(name token.Token, value Expr) Decl {
	return Decl{Kind: DeclConst, Name: name, Value: &value}
}

func Var(name token.Token, typ TypeExpr) Decl {
	return Decl{Kind: DeclVar, Name: name, Type: &typ}
}

func Record(name token.Token, fields ...Binding) Decl {
	return Decl{Kind: DeclRecord, Name: name, Fields: fields}
}

func Proc(result TypeExpr, name token.Token, params []Binding, body Block, end token.Token) Decl {
	return Decl{Kind: DeclProc, Name: name, Type: &result, Params: params, Body: &body, End: end}
}
