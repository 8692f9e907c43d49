package sema

import (
	"fortio.org/safecast"

	"yaplc/internal/ast"
	"yaplc/internal/semerr"
	"yaplc/internal/symbols"
	"yaplc/internal/token"
	"yaplc/internal/trace"
	"yaplc/internal/types"
)

func (c *checker) decls(decls []ast.Decl) {
	for i := range decls {
		if c.halted() {
			return
		}
		d := &decls[i]
		trace.Point(c.tracer, trace.ScopeDecl, d.Kind.String()+":"+d.Name.Lexeme(), "", c.span)
		switch d.Kind {
		case ast.DeclConst:
			c.constDecl(d)
		case ast.DeclVar:
			c.varDecl(d)
		case ast.DeclRecord:
			c.recordDecl(d)
		case ast.DeclProc:
			c.procDecl(d)
		}
	}
}

func (c *checker) varDecl(d *ast.Decl) {
	typ := c.typeExpr(d.Type)
	c.declare(c.newSymbol(symbols.SymbolVariable, d.Name, typ), d.Name)
}

// constDecl folds the initializer into a literal-carrying type. A constant
// whose initializer already failed to type-check gets the error type and no
// further report.
func (c *checker) constDecl(d *ast.Decl) {
	typ := c.builtins.Error
	if d.Value != nil {
		if valueType := c.expr(d.Value); !c.types.IsError(valueType) {
			typ = c.foldConst(d.Name, d.Value)
		}
	}
	c.declare(c.newSymbol(symbols.SymbolConstant, d.Name, typ), d.Name)
}

func (c *checker) foldConst(name token.Token, e *ast.Expr) types.TypeID {
	v, err := c.fold(e)
	if err != nil {
		if err.divByZero {
			c.report(semerr.ConstDivByZero(err.at))
		} else {
			c.report(semerr.ConstNotFoldable(name, name.Lexeme()))
		}
		return c.builtins.Error
	}
	lit := c.types.NewLiteral(v.Kind)
	c.types.SetLiteral(lit, v)
	return lit
}

// recordDecl registers the record before its fields so that a field may
// refer to the record itself.
func (c *checker) recordDecl(d *ast.Decl) {
	name := d.Name.Lexeme()
	rec := c.types.RegisterRecord(name, d.Name.Pos)
	c.declare(c.newSymbol(symbols.SymbolTypeName, d.Name, rec), d.Name)

	scope := c.scopes.Enter(symbols.ScopeRecord, d.Name.Pos)
	fields := make([]types.Field, 0, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		typ := c.typeExpr(&f.Type)
		if _, ok := c.declare(c.newSymbol(symbols.SymbolField, f.Name, typ), f.Name); !ok {
			continue
		}
		fields = append(fields, types.Field{Name: f.Name.Lexeme(), Type: typ, Pos: f.Name.Pos})
	}
	c.scopes.Leave(scope)
	c.types.SetRecordFields(rec, fields)
}

// procDecl declares the procedure before checking its body so that it may
// call itself.
func (c *checker) procDecl(d *ast.Decl) {
	name := d.Name.Lexeme()
	span := trace.Begin(c.tracer, trace.ScopeDecl, "proc:"+name, c.span)
	defer span.End("")

	result := c.builtins.Void
	if d.Type != nil {
		result = c.typeExpr(d.Type)
	}
	params := make([]types.TypeID, len(d.Params))
	for i := range d.Params {
		params[i] = c.typeExpr(&d.Params[i].Type)
	}
	sig := c.types.RegisterProc(params, result)
	c.declare(c.newSymbol(symbols.SymbolProcedure, d.Name, sig), d.Name)

	scope := c.scopes.Enter(symbols.ScopeProcedure, d.Name.Pos)
	for i := range d.Params {
		p := &d.Params[i]
		c.declare(c.newSymbol(symbols.SymbolParameter, p.Name, params[i]), p.Name)
	}

	outer := c.proc
	ctx := &procContext{name: name, result: result}
	c.proc = ctx
	c.block(d.Body, false)
	c.proc = outer
	c.scopes.Leave(scope)

	c.endName(d.End, "Procedure", name)
	if c.isFunction(result) && !ctx.sawReturn {
		at := d.End
		if !at.Pos.IsValid() {
			at = d.Name
		}
		c.report(semerr.MissingReturn(at, name))
	}
}

// isFunction reports whether a procedure with this result must return a
// value. An unresolvable result type does not count.
func (c *checker) isFunction(result types.TypeID) bool {
	k := c.types.KindOf(result)
	return k != types.KindVoid && k != types.KindError
}

// typeExpr resolves a declared type. Failures yield the error type.
func (c *checker) typeExpr(te *ast.TypeExpr) types.TypeID {
	if te == nil {
		return c.builtins.Error
	}
	_, base, ok := c.resolveUse(te.Name, UseType)
	if !ok || te.Dims == 0 {
		return base
	}
	// driver отсекает такие деревья при декодировании
	dims, err := safecast.Conv[uint32](te.Dims)
	if err != nil {
		return c.builtins.Error
	}
	return c.types.ArrayOf(base, dims)
}

func (c *checker) newSymbol(kind symbols.SymbolKind, name token.Token, typ types.TypeID) symbols.Symbol {
	sym := symbols.New(kind, name.Lexeme(), typ, name.Pos)
	if scope := c.result.Symbols.Scopes.Get(c.scopes.CurrentScope()); scope != nil && scope.Kind == symbols.ScopeProgram {
		sym = sym.WithFlags(symbols.SymbolFlagGlobal)
	}
	return sym
}
