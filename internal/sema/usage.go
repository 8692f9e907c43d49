package sema

import (
	"yaplc/internal/semerr"
	"yaplc/internal/symbols"
	"yaplc/internal/token"
	"yaplc/internal/types"
)

// Use is the syntactic context a name appears in.
type Use uint8

const (
	UseValue  Use = iota // read in an expression
	UseAssign            // left-hand side of :=
	UseCall              // callee of a call
	UseType              // type position in a declaration

	useCount
)

func (u Use) String() string {
	switch u {
	case UseValue:
		return "value"
	case UseAssign:
		return "assign"
	case UseCall:
		return "call"
	case UseType:
		return "type"
	default:
		return "invalid"
	}
}

// legalUse is indexed [symbol kind][use]. Missing entries are illegal.
var legalUse = [...][useCount]bool{
	symbols.SymbolProgram:   {},
	symbols.SymbolProcedure: {UseCall: true},
	symbols.SymbolVariable:  {UseValue: true, UseAssign: true},
	symbols.SymbolConstant:  {UseValue: true},
	symbols.SymbolTypeName:  {UseType: true},
	symbols.SymbolField:     {UseValue: true, UseAssign: true},
	symbols.SymbolParameter: {UseValue: true, UseAssign: true},
}

// Legal reports whether a symbol of kind may appear in context use.
func Legal(kind symbols.SymbolKind, use Use) bool {
	if int(kind) >= len(legalUse) || use >= useCount {
		return false
	}
	return legalUse[kind][use]
}

// CheckUse returns IllegalUse when sym may not appear as use at tok.
func CheckUse(sym symbols.Symbol, use Use, tok token.Token) *semerr.Error {
	if Legal(sym.Kind(), use) {
		return nil
	}
	return semerr.IllegalUse(sym, tok)
}

// CheckAssignable returns TypeMismatch when a value of type actual cannot be
// stored where expected is required. The error type on either side passes.
func CheckAssignable(in *types.Interner, expected, actual types.TypeID, tok token.Token) *semerr.Error {
	if in.Compatible(expected, actual) {
		return nil
	}
	return semerr.TypeMismatch(tok, types.Label(in, expected), types.Label(in, actual))
}
