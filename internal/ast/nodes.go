package ast

import (
	"yaplc/internal/token"
)

// Program is the root: `Program Name; decls Begin ... End Name.`
type Program struct {
	Name   token.Token `json:"name"`
	Source string      `json:"source,omitempty"` // path of the scanned source, for snippets
	Decls  []Decl      `json:"decls,omitempty"`
	Body   Block       `json:"body"`
	End    token.Token `json:"end"`
}

// Block is `[Declare ...] Begin stmts End`.
type Block struct {
	Begin token.Token `json:"begin"`
	Decls []Decl      `json:"decls,omitempty"`
	Stmts []Stmt      `json:"stmts,omitempty"`
}

// TypeExpr is a base type name followed by Dims pairs of brackets.
type TypeExpr struct {
	Name token.Token `json:"name"`
	Dims int         `json:"dims,omitempty"`
}

// Binding is a `name: type` pair used for parameters and record fields.
type Binding struct {
	Name token.Token `json:"name"`
	Type TypeExpr    `json:"type"`
}

// Decl is one declaration. Which fields are set depends on Kind:
// const uses Value; var uses Type; record uses Fields; proc uses Type
// (result), Params, Body and End.
type Decl struct {
	Kind   DeclKind    `json:"kind"`
	Name   token.Token `json:"name"`
	Type   *TypeExpr   `json:"type,omitempty"`
	Value  *Expr       `json:"value,omitempty"`
	Fields []Binding   `json:"fields,omitempty"`
	Params []Binding   `json:"params,omitempty"`
	Body   *Block      `json:"body,omitempty"`
	End    token.Token `json:"end,omitempty"`
}

// Stmt is one statement. Tok is the keyword (or ':=' for assignments).
type Stmt struct {
	Kind   StmtKind    `json:"kind"`
	Tok    token.Token `json:"tok"`
	Target *Expr       `json:"target,omitempty"`
	Value  *Expr       `json:"value,omitempty"`
	Cond   *Expr       `json:"cond,omitempty"`
	Then   []Stmt      `json:"then,omitempty"`
	Else   []Stmt      `json:"else,omitempty"`
	Block  *Block      `json:"block,omitempty"`
}

// Expr is one expression. Tok is the identifier, literal or operator token
// (the field name for selectors, the callee for calls).
type Expr struct {
	Kind ExprKind    `json:"kind"`
	Tok  token.Token `json:"tok"`
	Args []Expr      `json:"args,omitempty"`
	Type *TypeExpr   `json:"type,omitempty"`
}

// Anchor returns the token diagnostics about e point at. For selectors and
// subscripts that is the base expression.
func (e *Expr) Anchor() token.Token {
	if e == nil {
		return token.Token{}
	}
	switch e.Kind {
	case ExprIndex, ExprSelect:
		if len(e.Args) > 0 {
			return e.Args[0].Anchor()
		}
	}
	return e.Tok
}
