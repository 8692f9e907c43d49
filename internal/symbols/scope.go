package symbols

import (
	"yaplc/internal/source"
)

// ScopeKind enumerates supported scope categories.
type ScopeKind uint8

const (
	ScopeInvalid   ScopeKind = iota
	ScopeUniverse            // predeclared procedures
	ScopeProgram             // top-level declarations of the program
	ScopeProcedure           // parameters and locals of a procedure
	ScopeBlock               // nested Begin ... End block
	ScopeRecord              // field names of one record
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeUniverse:
		return "universe"
	case ScopeProgram:
		return "program"
	case ScopeProcedure:
		return "procedure"
	case ScopeBlock:
		return "block"
	case ScopeRecord:
		return "record"
	default:
		return "invalid"
	}
}

// Scope models a lexical scope with a parent-child hierarchy.
type Scope struct {
	Kind      ScopeKind
	Parent    ScopeID
	Pos       source.Pos
	NameIndex map[source.StringID]SymbolID
	Symbols   []SymbolID
	Children  []ScopeID
}
