package sema

import (
	"fmt"

	"yaplc/internal/ast"
	"yaplc/internal/diag"
	"yaplc/internal/semerr"
	"yaplc/internal/symbols"
	"yaplc/internal/token"
	"yaplc/internal/trace"
	"yaplc/internal/types"
)

// Options configure a semantic pass over one program.
type Options struct {
	Reporter  diag.Reporter
	MaxErrors int // stop after this many errors, 0 = unlimited
	Tracer    trace.Tracer
	Types     *types.Interner // optional; a fresh interner otherwise
}

// Result stores semantic artefacts produced by the checker.
type Result struct {
	Types   *types.Interner
	Symbols *symbols.Table
	Errors  []*semerr.Error // accepted by the reporter, in detection order
	Halted  bool            // MaxErrors reached or the reporter refused more
}

// Check walks prog and reports every semantic violation.
func Check(prog *ast.Program, opts Options) Result {
	res := Result{Types: opts.Types}
	if res.Types == nil {
		res.Types = types.NewInterner()
	}
	res.Symbols = symbols.NewTable(symbols.Hints{Scopes: 16, Symbols: 64}, nil)
	if prog == nil {
		return res
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}

	c := &checker{
		types:     res.Types,
		builtins:  res.Types.Builtins(),
		reporter:  opts.Reporter,
		maxErrors: opts.MaxErrors,
		tracer:    tracer,
		result:    &res,
	}
	c.scopes = symbols.NewResolver(res.Symbols, symbols.ScopeUniverse, symbols.ResolverOptions{
		Prelude: Prelude(res.Types),
	})

	span := trace.Begin(tracer, trace.ScopePass, "sema", 0)
	c.span = span.ID()
	c.program(prog)
	span.End(fmt.Sprintf("%d errors", len(res.Errors)))
	return res
}

type checker struct {
	types     *types.Interner
	builtins  types.Builtins
	scopes    *symbols.Resolver
	reporter  diag.Reporter
	maxErrors int
	tracer    trace.Tracer
	span      uint64
	result    *Result
	proc      *procContext // nil while checking the main program
}

// procContext tracks the procedure whose body is being checked.
type procContext struct {
	name      string
	result    types.TypeID
	sawReturn bool
}

func (c *checker) halted() bool { return c.result.Halted }

// report forwards err to the reporter and records it once accepted. A
// refusal or the threshold halts the pass; later reports are ignored.
func (c *checker) report(err *semerr.Error) {
	if err == nil || c.halted() {
		return
	}
	accepted := true
	if c.reporter != nil {
		accepted = err.Report(c.reporter)
	}
	if accepted {
		c.result.Errors = append(c.result.Errors, err)
	}
	if !accepted || (c.maxErrors > 0 && len(c.result.Errors) >= c.maxErrors) {
		c.result.Halted = true
		trace.Point(c.tracer, trace.ScopePass, "halt", fmt.Sprintf("after %d errors", len(c.result.Errors)), c.span)
	}
}

// declare installs sym into the current scope, reporting a redeclaration.
func (c *checker) declare(sym symbols.Symbol, tok token.Token) (symbols.SymbolID, bool) {
	id, prev, ok := c.scopes.Declare(sym)
	if ok {
		return id, true
	}
	if prevSym, found := c.result.Symbols.Symbol(prev); found {
		c.report(semerr.DuplicateDeclaration(prevSym, prevSym.Pos(), tok))
	}
	return symbols.NoSymbolID, false
}

// resolve looks tok up innermost-first, reporting UndeclaredSymbol.
func (c *checker) resolve(tok token.Token) (symbols.Symbol, bool) {
	id, ok := c.scopes.Lookup(tok.Lexeme())
	if !ok {
		c.report(semerr.UndeclaredSymbol(tok))
		return symbols.Symbol{}, false
	}
	return c.result.Symbols.MustSymbol(id), true
}

// resolveUse resolves tok and checks it against use. The returned type is
// the error type whenever either step fails.
func (c *checker) resolveUse(tok token.Token, use Use) (symbols.Symbol, types.TypeID, bool) {
	sym, ok := c.resolve(tok)
	if !ok {
		return sym, c.builtins.Error, false
	}
	if err := CheckUse(sym, use, tok); err != nil {
		c.report(err)
		return sym, c.builtins.Error, false
	}
	return sym, sym.Type(), true
}

func (c *checker) program(prog *ast.Program) {
	name := prog.Name.Lexeme()
	sym := symbols.New(symbols.SymbolProgram, name, c.builtins.Void, prog.Name.Pos).WithFlags(symbols.SymbolFlagGlobal)
	c.declare(sym, prog.Name)

	scope := c.scopes.Enter(symbols.ScopeProgram, prog.Name.Pos)
	c.decls(prog.Decls)
	c.block(&prog.Body, false)
	c.scopes.Leave(scope)

	c.endName(prog.End, "Program", name)
}

// endName reports an End identifier that does not repeat the declared name.
// An absent End token is not checked.
func (c *checker) endName(end token.Token, kindWord, name string) {
	if end.Lexeme() == "" || end.Lexeme() == name {
		return
	}
	c.report(semerr.EndIdentMismatch(end, kindWord, name))
}

// block checks decls and statements of b. A nested block opens its own
// scope; procedure and program bodies share the enclosing one.
func (c *checker) block(b *ast.Block, nested bool) {
	if b == nil {
		return
	}
	if nested {
		scope := c.scopes.Enter(symbols.ScopeBlock, b.Begin.Pos)
		defer c.scopes.Leave(scope)
	}
	c.decls(b.Decls)
	c.stmts(b.Stmts)
}
