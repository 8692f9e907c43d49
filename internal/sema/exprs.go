package sema

import (
	"fortio.org/safecast"

	"yaplc/internal/ast"
	"yaplc/internal/semerr"
	"yaplc/internal/token"
	"yaplc/internal/types"
)

// expr returns the type of e, reporting violations on the way. Whenever an
// operand already has the error type the operation is not checked again.
func (c *checker) expr(e *ast.Expr) types.TypeID {
	if e == nil {
		return c.builtins.Error
	}
	switch e.Kind {
	case ast.ExprIdent:
		_, typ, _ := c.resolveUse(e.Tok, UseValue)
		return typ
	case ast.ExprIntLit:
		return c.builtins.Int
	case ast.ExprFloatLit:
		return c.builtins.Float
	case ast.ExprBoolLit:
		return c.builtins.Bool
	case ast.ExprUnary:
		return c.unary(e)
	case ast.ExprBinary:
		return c.binary(e)
	case ast.ExprIndex:
		return c.index(e)
	case ast.ExprSelect:
		return c.selector(e)
	case ast.ExprLen:
		return c.arrayLen(e)
	case ast.ExprNew:
		return c.newExpr(e)
	case ast.ExprCall:
		return c.call(e, true)
	default:
		return c.builtins.Error
	}
}

func (c *checker) operand(e *ast.Expr, i int) types.TypeID {
	if i >= len(e.Args) {
		return c.builtins.Error
	}
	return c.types.Base(c.expr(&e.Args[i]))
}

func (c *checker) unary(e *ast.Expr) types.TypeID {
	x := c.operand(e, 0)
	if c.types.IsError(x) {
		return x
	}
	switch e.Tok.Kind {
	case token.Plus, token.Minus:
		if c.types.IsNumeric(x) {
			return x
		}
	case token.Bang:
		if c.types.KindOf(x) == types.KindBool {
			return x
		}
	}
	c.report(semerr.IllegalOp1Type(e.Tok))
	return c.builtins.Error
}

func (c *checker) binary(e *ast.Expr) types.TypeID {
	left, right := c.operand(e, 0), c.operand(e, 1)
	if c.types.IsError(left) || c.types.IsError(right) {
		return c.builtins.Error
	}
	lk, rk := c.types.KindOf(left), c.types.KindOf(right)
	numeric := c.types.IsNumeric(left) && c.types.IsNumeric(right)

	switch e.Tok.Kind {
	case token.Plus, token.Minus, token.Star, token.Slash:
		if numeric {
			return c.arithResult(lk, rk)
		}
		c.report(semerr.IllegalOp2Type(e.Tok))
	case token.Percent:
		if lk == types.KindInt && rk == types.KindInt {
			return c.builtins.Int
		}
		c.report(semerr.IllegalOp2Type(e.Tok))
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		if numeric {
			return c.builtins.Bool
		}
		c.report(semerr.IllegalRelOpType(e.Tok))
	case token.EqEq, token.BangEq:
		if numeric || (lk == types.KindBool && rk == types.KindBool) {
			return c.builtins.Bool
		}
		c.report(semerr.IllegalEqualOpType(e.Tok))
	case token.KwAnd, token.KwOr:
		if lk == types.KindBool && rk == types.KindBool {
			return c.builtins.Bool
		}
		c.report(semerr.IllegalOp2Type(e.Tok))
	default:
		c.report(semerr.IllegalOp2Type(e.Tok))
	}
	return c.builtins.Error
}

// arithResult widens int to float when the operands are mixed.
func (c *checker) arithResult(lk, rk types.Kind) types.TypeID {
	if lk == types.KindFloat || rk == types.KindFloat {
		return c.builtins.Float
	}
	return c.builtins.Int
}

func (c *checker) index(e *ast.Expr) types.TypeID {
	if len(e.Args) < 2 {
		return c.builtins.Error
	}
	base := c.expr(&e.Args[0])
	idx := c.types.Base(c.expr(&e.Args[1]))
	if c.types.IsError(base) {
		return base
	}
	elem, ok := c.types.IndexResult(base)
	if !ok {
		c.report(semerr.SelectorNotArray(e.Args[0].Anchor()))
		return c.builtins.Error
	}
	if !c.types.IsError(idx) && c.types.KindOf(idx) != types.KindInt {
		c.report(semerr.BadArraySelector(e.Args[1].Anchor()))
	}
	return elem
}

func (c *checker) selector(e *ast.Expr) types.TypeID {
	if len(e.Args) < 1 {
		return c.builtins.Error
	}
	base := c.expr(&e.Args[0])
	if c.types.IsError(base) {
		return base
	}
	info, ok := c.types.RecordInfo(base)
	if !ok {
		c.report(semerr.SelectorNotRecord(e.Args[0].Anchor()))
		return c.builtins.Error
	}
	field, ok := c.types.RecordField(base, e.Tok.Lexeme())
	if !ok {
		c.report(semerr.InvalidRecordField(e.Tok, info.Name))
		return c.builtins.Error
	}
	return field.Type
}

func (c *checker) arrayLen(e *ast.Expr) types.TypeID {
	x := c.operand(e, 0)
	if c.types.IsError(x) {
		return x
	}
	if c.types.KindOf(x) != types.KindArray {
		c.report(semerr.ArrayLenNotArray(e.Args[0].Anchor()))
		return c.builtins.Error
	}
	return c.builtins.Int
}

// newExpr types `new T[d1]...[dn]` as an n-dimensional array of T, and a
// bare `new R` as the record R itself.
func (c *checker) newExpr(e *ast.Expr) types.TypeID {
	base := c.typeExpr(e.Type)
	for i := range e.Args {
		dim := c.types.Base(c.expr(&e.Args[i]))
		if !c.types.IsError(dim) && c.types.KindOf(dim) != types.KindInt {
			c.report(semerr.BadArraySelector(e.Args[i].Anchor()))
		}
	}
	if c.types.IsError(base) {
		return base
	}
	k := c.types.KindOf(base)
	if k == types.KindVoid || (len(e.Args) == 0 && k != types.KindRecord && k != types.KindArray) {
		c.report(semerr.IllegalOp1Type(e.Tok))
		return c.builtins.Error
	}
	if len(e.Args) == 0 {
		return base
	}
	dims, err := safecast.Conv[uint32](len(e.Args))
	if err != nil {
		return c.builtins.Error
	}
	return c.types.ArrayOf(base, dims)
}

// call checks a call to a procedure. In an expression the callee must
// return a value; as a statement any result is discarded.
func (c *checker) call(e *ast.Expr, inExpr bool) types.TypeID {
	sym, typ, resolved := c.resolveUse(e.Tok, UseCall)
	argTypes := make([]types.TypeID, len(e.Args))
	for i := range e.Args {
		argTypes[i] = c.expr(&e.Args[i])
	}
	if !resolved {
		return typ
	}
	info, ok := c.types.ProcInfo(typ)
	if !ok {
		return c.builtins.Error
	}
	name := sym.Name()
	if len(argTypes) != len(info.Params) {
		c.report(semerr.ArityMismatch(e.Tok, name, len(info.Params), len(argTypes)))
	}
	for i := 0; i < len(argTypes) && i < len(info.Params); i++ {
		if !c.types.Compatible(info.Params[i], argTypes[i]) {
			c.report(semerr.ArgNotApplicable(e.Args[i].Anchor(), i+1, name))
		}
	}
	if inExpr && c.types.KindOf(info.Result) == types.KindVoid {
		c.report(semerr.ProcNotFuncExpr(e.Tok, name))
		return c.builtins.Error
	}
	return info.Result
}
