package sema

import (
	"yaplc/internal/ast"
	"yaplc/internal/semerr"
	"yaplc/internal/token"
	"yaplc/internal/types"
)

func (c *checker) stmts(list []ast.Stmt) {
	for i := range list {
		if c.halted() {
			return
		}
		c.stmt(&list[i])
	}
}

func (c *checker) stmt(s *ast.Stmt) {
	switch s.Kind {
	case ast.StmtAssign:
		c.assign(s)
	case ast.StmtCall:
		if s.Value != nil {
			c.call(s.Value, false)
		}
	case ast.StmtIf:
		c.cond(s.Cond)
		c.stmts(s.Then)
		c.stmts(s.Else)
	case ast.StmtWhile:
		c.cond(s.Cond)
		c.stmts(s.Then)
	case ast.StmtReturn:
		c.returnStmt(s)
	case ast.StmtBlock:
		c.block(s.Block, true)
	}
}

func (c *checker) assign(s *ast.Stmt) {
	if s.Target == nil || s.Value == nil {
		return
	}
	target := c.lvalue(s.Target)
	value := c.expr(s.Value)
	c.report(CheckAssignable(c.types, target, value, s.Tok))
}

// lvalue types an assignment target. A bare name must be assignable; the
// base of a subscript or selector is an ordinary read.
func (c *checker) lvalue(e *ast.Expr) types.TypeID {
	if e.Kind == ast.ExprIdent {
		_, typ, _ := c.resolveUse(e.Tok, UseAssign)
		return typ
	}
	return c.expr(e)
}

func (c *checker) cond(e *ast.Expr) {
	if e == nil {
		return
	}
	typ := c.expr(e)
	if c.types.IsError(typ) || c.types.KindOf(typ) == types.KindBool {
		return
	}
	c.report(semerr.CondNotBool(e.Anchor()))
}

func (c *checker) returnStmt(s *ast.Stmt) {
	var value types.TypeID
	if s.Value != nil {
		value = c.expr(s.Value)
	}
	if c.proc == nil {
		if s.Value != nil {
			c.report(semerr.IllegalRetValMain(anchor(s)))
		}
		return
	}
	if !c.isFunction(c.proc.result) {
		if s.Value != nil && !c.types.IsError(c.proc.result) {
			c.report(semerr.IllegalRetValProc(anchor(s), c.proc.name))
		}
		return
	}
	c.proc.sawReturn = true
	if s.Value == nil || !c.types.Compatible(c.proc.result, value) {
		c.report(semerr.InvalidReturnType(anchor(s), c.proc.name))
	}
}

// anchor is the return value when present, the keyword otherwise.
func anchor(s *ast.Stmt) token.Token {
	if s.Value != nil {
		return s.Value.Anchor()
	}
	return s.Tok
}
