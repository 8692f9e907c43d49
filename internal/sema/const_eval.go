package sema

import (
	"strconv"
	"strings"

	"yaplc/internal/ast"
	"yaplc/internal/token"
	"yaplc/internal/types"
)

// foldError explains why a constant initializer could not be evaluated.
type foldError struct {
	at        token.Token
	divByZero bool
}

func notFoldable(at token.Token) *foldError { return &foldError{at: at} }

// fold evaluates a constant expression. Only literals, other constants and
// scalar operators fold; the expression has already been type-checked.
// Integer arithmetic wraps like int64.
func (c *checker) fold(e *ast.Expr) (types.Value, *foldError) {
	switch e.Kind {
	case ast.ExprIntLit:
		n, err := strconv.ParseInt(e.Tok.Lexeme(), 10, 64)
		if err != nil {
			return types.Value{}, notFoldable(e.Tok)
		}
		return types.IntValue(n), nil
	case ast.ExprFloatLit:
		f, err := strconv.ParseFloat(e.Tok.Lexeme(), 64)
		if err != nil {
			return types.Value{}, notFoldable(e.Tok)
		}
		return types.FloatValue(f), nil
	case ast.ExprBoolLit:
		switch strings.ToLower(e.Tok.Lexeme()) {
		case "true":
			return types.BoolValue(true), nil
		case "false":
			return types.BoolValue(false), nil
		}
		return types.Value{}, notFoldable(e.Tok)
	case ast.ExprIdent:
		id, ok := c.scopes.Lookup(e.Tok.Lexeme())
		if !ok {
			return types.Value{}, notFoldable(e.Tok)
		}
		if v, ok := c.types.Literal(c.result.Symbols.MustSymbol(id).Type()); ok {
			return v, nil
		}
		return types.Value{}, notFoldable(e.Tok)
	case ast.ExprUnary:
		if len(e.Args) != 1 {
			return types.Value{}, notFoldable(e.Tok)
		}
		x, err := c.fold(&e.Args[0])
		if err != nil {
			return x, err
		}
		return foldUnary(e.Tok, x)
	case ast.ExprBinary:
		if len(e.Args) != 2 {
			return types.Value{}, notFoldable(e.Tok)
		}
		l, err := c.fold(&e.Args[0])
		if err != nil {
			return l, err
		}
		r, err := c.fold(&e.Args[1])
		if err != nil {
			return r, err
		}
		return foldBinary(e.Tok, l, r)
	default:
		return types.Value{}, notFoldable(e.Tok)
	}
}

func foldUnary(op token.Token, x types.Value) (types.Value, *foldError) {
	switch {
	case op.Kind == token.Plus && x.Kind != types.KindBool:
		return x, nil
	case op.Kind == token.Minus && x.Kind == types.KindInt:
		return types.IntValue(-x.Int), nil
	case op.Kind == token.Minus && x.Kind == types.KindFloat:
		return types.FloatValue(-x.Float), nil
	case op.Kind == token.Bang && x.Kind == types.KindBool:
		return types.BoolValue(!x.Bool), nil
	}
	return types.Value{}, notFoldable(op)
}

func foldBinary(op token.Token, l, r types.Value) (types.Value, *foldError) {
	if l.Kind == types.KindBool || r.Kind == types.KindBool {
		return foldLogic(op, l, r)
	}
	if l.Kind == types.KindInt && r.Kind == types.KindInt {
		return foldInt(op, l.Int, r.Int)
	}
	return foldFloat(op, l.AsFloat(), r.AsFloat())
}

func foldLogic(op token.Token, l, r types.Value) (types.Value, *foldError) {
	if l.Kind != types.KindBool || r.Kind != types.KindBool {
		return types.Value{}, notFoldable(op)
	}
	switch op.Kind {
	case token.KwAnd:
		return types.BoolValue(l.Bool && r.Bool), nil
	case token.KwOr:
		return types.BoolValue(l.Bool || r.Bool), nil
	case token.EqEq:
		return types.BoolValue(l.Bool == r.Bool), nil
	case token.BangEq:
		return types.BoolValue(l.Bool != r.Bool), nil
	}
	return types.Value{}, notFoldable(op)
}

func foldInt(op token.Token, l, r int64) (types.Value, *foldError) {
	switch op.Kind {
	case token.Plus:
		return types.IntValue(l + r), nil
	case token.Minus:
		return types.IntValue(l - r), nil
	case token.Star:
		return types.IntValue(l * r), nil
	case token.Slash, token.Percent:
		if r == 0 {
			return types.Value{}, &foldError{at: op, divByZero: true}
		}
		if op.Kind == token.Slash {
			return types.IntValue(l / r), nil
		}
		return types.IntValue(l % r), nil
	}
	return compare(op, l, r)
}

func foldFloat(op token.Token, l, r float64) (types.Value, *foldError) {
	switch op.Kind {
	case token.Plus:
		return types.FloatValue(l + r), nil
	case token.Minus:
		return types.FloatValue(l - r), nil
	case token.Star:
		return types.FloatValue(l * r), nil
	case token.Slash:
		if r == 0 {
			return types.Value{}, &foldError{at: op, divByZero: true}
		}
		return types.FloatValue(l / r), nil
	}
	return compare(op, l, r)
}

func compare[T int64 | float64](op token.Token, l, r T) (types.Value, *foldError) {
	switch op.Kind {
	case token.Lt:
		return types.BoolValue(l < r), nil
	case token.LtEq:
		return types.BoolValue(l <= r), nil
	case token.Gt:
		return types.BoolValue(l > r), nil
	case token.GtEq:
		return types.BoolValue(l >= r), nil
	case token.EqEq:
		return types.BoolValue(l == r), nil
	case token.BangEq:
		return types.BoolValue(l != r), nil
	}
	return types.Value{}, notFoldable(op)
}
