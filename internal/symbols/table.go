package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"yaplc/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table arenas.
type Hints struct{ Scopes, Symbols uint }

// Table aggregates symbol-related arenas and shared resources.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
}

// NewTable builds a fresh table with optional capacity hints.
// If strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
}

// Symbol returns the symbol stored under id.
func (t *Table) Symbol(id SymbolID) (Symbol, bool) {
	return t.Symbols.Get(id)
}

// MustSymbol panics when id is not allocated.
func (t *Table) MustSymbol(id SymbolID) Symbol {
	sym, ok := t.Symbols.Get(id)
	if !ok {
		panic(fmt.Errorf("symbols: invalid SymbolID %d", id))
	}
	return sym
}
