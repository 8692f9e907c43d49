package symbols

import (
	"yaplc/internal/source"
	"yaplc/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolProgram
	SymbolProcedure
	SymbolVariable
	SymbolConstant
	SymbolTypeName
	SymbolField
	SymbolParameter

	symbolKindCount
)

// SymbolKinds lists every valid kind, in declaration order.
func SymbolKinds() []SymbolKind {
	kinds := make([]SymbolKind, 0, symbolKindCount-1)
	for k := SymbolInvalid + 1; k < symbolKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the label used verbatim in diagnostics.
func (k SymbolKind) String() string {
	switch k {
	case SymbolProgram:
		return "program"
	case SymbolProcedure:
		return "procedure"
	case SymbolVariable:
		return "variable"
	case SymbolConstant:
		return "constant"
	case SymbolTypeName:
		return "type"
	case SymbolField:
		return "field"
	case SymbolParameter:
		return "parameter"
	default:
		return "invalid"
	}
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint8

const (
	SymbolFlagPredeclared SymbolFlags = 1 << iota
	SymbolFlagGlobal
)

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 2)
	if f&SymbolFlagPredeclared != 0 {
		labels = append(labels, "predeclared")
	}
	if f&SymbolFlagGlobal != 0 {
		labels = append(labels, "global")
	}
	return labels
}

// Symbol is an immutable reference to a declared entity. It carries no
// validation logic; the checker decides what a use of it means.
type Symbol struct {
	kind  SymbolKind
	name  string
	typ   types.TypeID
	pos   source.Pos
	flags SymbolFlags
}

// New builds a symbol. The value never changes afterwards.
func New(kind SymbolKind, name string, typ types.TypeID, pos source.Pos) Symbol {
	return Symbol{kind: kind, name: name, typ: typ, pos: pos}
}

// WithFlags returns a copy of s carrying flags.
func (s Symbol) WithFlags(flags SymbolFlags) Symbol {
	s.flags = flags
	return s
}

func (s Symbol) Kind() SymbolKind     { return s.kind }
func (s Symbol) KindString() string   { return s.kind.String() }
func (s Symbol) Name() string         { return s.name }
func (s Symbol) Type() types.TypeID   { return s.typ }
func (s Symbol) Pos() source.Pos      { return s.pos }
func (s Symbol) Flags() SymbolFlags   { return s.flags }
func (s Symbol) Is(k SymbolKind) bool { return s.kind == k }
