package ast

import (
	"yaplc/internal/source"
	"yaplc/internal/token"
)

// VisitTokens calls fn for every token stored in prog, in source order of
// the tree structure. fn may modify the token in place.
func VisitTokens(prog *Program, fn func(*token.Token)) {
	if prog == nil {
		return
	}
	fn(&prog.Name)
	visitDecls(prog.Decls, fn)
	visitBlock(&prog.Body, fn)
	fn(&prog.End)
}

// StampFile sets the file of every position that has none, so that
// diagnostics can be tied to a loaded source file.
func StampFile(prog *Program, file source.FileID) {
	VisitTokens(prog, func(tok *token.Token) {
		if tok.Pos.File == source.NoFileID && tok.Pos.IsValid() {
			tok.Pos.File = file
		}
	})
}

func visitBlock(b *Block, fn func(*token.Token)) {
	if b == nil {
		return
	}
	fn(&b.Begin)
	visitDecls(b.Decls, fn)
	visitStmts(b.Stmts, fn)
}

func visitDecls(decls []Decl, fn func(*token.Token)) {
	for i := range decls {
		d := &decls[i]
		fn(&d.Name)
		visitType(d.Type, fn)
		visitExpr(d.Value, fn)
		visitBindings(d.Fields, fn)
		visitBindings(d.Params, fn)
		visitBlock(d.Body, fn)
		fn(&d.End)
	}
}

func visitBindings(list []Binding, fn func(*token.Token)) {
	for i := range list {
		fn(&list[i].Name)
		visitType(&list[i].Type, fn)
	}
}

func visitType(t *TypeExpr, fn func(*token.Token)) {
	if t != nil {
		fn(&t.Name)
	}
}

func visitStmts(list []Stmt, fn func(*token.Token)) {
	for i := range list {
		s := &list[i]
		fn(&s.Tok)
		visitExpr(s.Target, fn)
		visitExpr(s.Value, fn)
		visitExpr(s.Cond, fn)
		visitStmts(s.Then, fn)
		visitStmts(s.Else, fn)
		visitBlock(s.Block, fn)
	}
}

func visitExpr(e *Expr, fn func(*token.Token)) {
	if e == nil {
		return
	}
	fn(&e.Tok)
	visitType(e.Type, fn)
	for i := range e.Args {
		visitExpr(&e.Args[i], fn)
	}
}
