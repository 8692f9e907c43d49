package ast

import (
	"fmt"
	"strconv"
)

// MaxDims bounds the dimension count of array types and new expressions.
const MaxDims = 255

// Validate checks what a scanner and parser would have guaranteed for a
// tree read from a file: dimension counts within [0, MaxDims] and numeric
// literals that fit int64 / float64. It returns the first violation.
func Validate(prog *Program) error {
	if prog == nil {
		return nil
	}
	if err := validateDecls(prog.Decls); err != nil {
		return err
	}
	return validateBlock(&prog.Body)
}

func validateBlock(b *Block) error {
	if b == nil {
		return nil
	}
	if err := validateDecls(b.Decls); err != nil {
		return err
	}
	return validateStmts(b.Stmts)
}

func validateDecls(decls []Decl) error {
	for i := range decls {
		d := &decls[i]
		if err := validateType(d.Type); err != nil {
			return err
		}
		if err := validateExpr(d.Value); err != nil {
			return err
		}
		for _, list := range [][]Binding{d.Fields, d.Params} {
			for j := range list {
				if err := validateType(&list[j].Type); err != nil {
					return err
				}
			}
		}
		if err := validateBlock(d.Body); err != nil {
			return err
		}
	}
	return nil
}

func validateStmts(list []Stmt) error {
	for i := range list {
		s := &list[i]
		for _, e := range []*Expr{s.Target, s.Value, s.Cond} {
			if err := validateExpr(e); err != nil {
				return err
			}
		}
		if err := validateStmts(s.Then); err != nil {
			return err
		}
		if err := validateStmts(s.Else); err != nil {
			return err
		}
		if err := validateBlock(s.Block); err != nil {
			return err
		}
	}
	return nil
}

func validateType(t *TypeExpr) error {
	if t == nil || (t.Dims >= 0 && t.Dims <= MaxDims) {
		return nil
	}
	return fmt.Errorf("%s: array type %s has %d dimensions (want 0..%d)", t.Name.Pos, t.Name.Lexeme(), t.Dims, MaxDims)
}

func validateExpr(e *Expr) error {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ExprIntLit:
		if _, err := strconv.ParseInt(e.Tok.Lexeme(), 10, 64); err != nil {
			return fmt.Errorf("%s: invalid integer literal %q", e.Tok.Pos, e.Tok.Lexeme())
		}
	case ExprFloatLit:
		if _, err := strconv.ParseFloat(e.Tok.Lexeme(), 64); err != nil {
			return fmt.Errorf("%s: invalid float literal %q", e.Tok.Pos, e.Tok.Lexeme())
		}
	case ExprNew:
		if len(e.Args) > MaxDims {
			return fmt.Errorf("%s: new with %d dimensions (want at most %d)", e.Tok.Pos, len(e.Args), MaxDims)
		}
	}
	if err := validateType(e.Type); err != nil {
		return err
	}
	for i := range e.Args {
		if err := validateExpr(&e.Args[i]); err != nil {
			return err
		}
	}
	return nil
}
