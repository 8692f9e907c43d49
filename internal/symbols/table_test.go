package symbols

import (
	"testing"

	"yaplc/internal/source"
	"yaplc/internal/types"
)

func pos(line, col uint32) source.Pos { return source.Pos{Line: line, Col: col} }

func TestSymbolAccessors(t *testing.T) {
	in := types.NewInterner()
	proc := in.RegisterProc(nil, in.Builtins().Void)
	sym := New(SymbolProcedure, "foo", proc, pos(3, 7))
	if sym.KindString() != "procedure" || sym.Name() != "foo" || sym.Type() != proc {
		t.Fatalf("unexpected accessors: %q %q %d", sym.KindString(), sym.Name(), sym.Type())
	}
	if sym.Pos() != pos(3, 7) || !sym.Is(SymbolProcedure) {
		t.Fatalf("unexpected position or kind")
	}
	flagged := sym.WithFlags(SymbolFlagGlobal)
	if sym.Flags() != 0 || flagged.Flags() != SymbolFlagGlobal {
		t.Fatalf("WithFlags must not mutate the receiver")
	}
}

func TestSymbolKindStrings(t *testing.T) {
	want := map[SymbolKind]string{
		SymbolProgram:   "program",
		SymbolProcedure: "procedure",
		SymbolVariable:  "variable",
		SymbolConstant:  "constant",
		SymbolTypeName:  "type",
		SymbolField:     "field",
		SymbolParameter: "parameter",
	}
	kinds := SymbolKinds()
	if len(kinds) != len(want) {
		t.Fatalf("SymbolKinds returned %d kinds, want %d", len(kinds), len(want))
	}
	for _, k := range kinds {
		if k.String() != want[k] {
			t.Errorf("%d: got %q, want %q", k, k.String(), want[k])
		}
	}
	if SymbolInvalid.String() != "invalid" {
		t.Fatalf("invalid kind label")
	}
}

func TestResolverDeclareAndLookup(t *testing.T) {
	table := NewTable(Hints{}, nil)
	res := NewResolver(table, ScopeProgram, ResolverOptions{})

	outer, _, ok := res.Declare(New(SymbolVariable, "x", types.NoTypeID, pos(1, 1)))
	if !ok {
		t.Fatalf("declare returned false")
	}
	scope := res.Enter(ScopeBlock, pos(2, 1))
	inner, _, ok := res.Declare(New(SymbolConstant, "x", types.NoTypeID, pos(3, 1)))
	if !ok {
		t.Fatalf("shadowing an outer scope must be allowed")
	}
	if outer == inner {
		t.Fatalf("same-named declarations must be distinct symbols")
	}
	if got, ok := res.Lookup("x"); !ok || got != inner {
		t.Fatalf("expected innermost declaration, got %d", got)
	}
	res.Leave(scope)
	if got, ok := res.Lookup("x"); !ok || got != outer {
		t.Fatalf("expected outer declaration after leave, got %d", got)
	}
	if _, ok := res.Lookup("missing"); ok {
		t.Fatalf("lookup of undeclared name must fail")
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestResolverRejectsDuplicateInSameScope(t *testing.T) {
	table := NewTable(Hints{}, nil)
	res := NewResolver(table, ScopeProgram, ResolverOptions{})

	first, _, ok := res.Declare(New(SymbolVariable, "a", types.NoTypeID, pos(1, 1)))
	if !ok {
		t.Fatalf("first declaration must succeed")
	}
	if _, _, ok := res.Declare(New(SymbolVariable, "b", types.NoTypeID, pos(2, 1))); !ok {
		t.Fatalf("unrelated declaration must succeed")
	}
	id, prev, ok := res.Declare(New(SymbolProcedure, "a", types.NoTypeID, pos(3, 1)))
	if ok || id.IsValid() {
		t.Fatalf("second declaration must be rejected")
	}
	if prev != first {
		t.Fatalf("prev must point to first declaration, got %d", prev)
	}
	if sym := table.MustSymbol(first); sym.Pos() != pos(1, 1) {
		t.Fatalf("first declaration must be untouched")
	}
	if got, _ := res.LookupLocal("a"); got != first {
		t.Fatalf("LookupLocal: got %d", got)
	}
	if err := table.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestResolverPrelude(t *testing.T) {
	table := NewTable(Hints{}, nil)
	res := NewResolver(table, ScopeUniverse, ResolverOptions{
		Prelude: []Symbol{New(SymbolProcedure, "writeln", types.NoTypeID, source.Pos{})},
	})
	id, ok := res.Lookup("writeln")
	if !ok {
		t.Fatalf("prelude symbol not visible")
	}
	if table.MustSymbol(id).Flags()&SymbolFlagPredeclared == 0 {
		t.Fatalf("prelude symbol must be flagged predeclared")
	}
	if table.Symbols.ScopeOf(id) != res.CurrentScope() {
		t.Fatalf("prelude symbol must live in the root scope")
	}
}

func TestResolverLeaveMismatchPanics(t *testing.T) {
	table := NewTable(Hints{}, nil)
	res := NewResolver(table, ScopeProgram, ResolverOptions{})
	outer := res.Enter(ScopeProcedure, pos(1, 1))
	res.Enter(ScopeBlock, pos(2, 1))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on mismatched leave")
		}
	}()
	res.Leave(outer)
}
