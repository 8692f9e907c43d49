package sema

import (
	"yaplc/internal/source"
	"yaplc/internal/symbols"
	"yaplc/internal/types"
)

// Prelude returns the universe-scope symbols: the scalar type names and the
// predeclared I/O procedures.
func Prelude(in *types.Interner) []symbols.Symbol {
	b := in.Builtins()
	proc := func(name string, result types.TypeID, params ...types.TypeID) symbols.Symbol {
		return symbols.New(symbols.SymbolProcedure, name, in.RegisterProc(params, result), source.Pos{})
	}
	typeName := func(name string, id types.TypeID) symbols.Symbol {
		return symbols.New(symbols.SymbolTypeName, name, id, source.Pos{})
	}
	return []symbols.Symbol{
		typeName("void", b.Void),
		typeName("bool", b.Bool),
		typeName("int", b.Int),
		typeName("float", b.Float),
		proc("writeint", b.Void, b.Int),
		proc("writefloat", b.Void, b.Float),
		proc("writebool", b.Void, b.Bool),
		proc("writeln", b.Void),
		proc("readint", b.Int),
	}
}
