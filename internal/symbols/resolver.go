package symbols

import (
	"fmt"

	"yaplc/internal/source"
)

// ResolverOptions configures resolver construction.
type ResolverOptions struct {
	// Prelude is declared into the root scope before anything else and
	// marked SymbolFlagPredeclared.
	Prelude []Symbol
}

// Resolver is the scope manager used by the checking pass: it nests scopes,
// declares symbols into the current one and resolves names innermost-first.
type Resolver struct {
	table *Table
	stack []ScopeID
}

// NewResolver creates a root scope of the given kind and makes it current.
func NewResolver(table *Table, rootKind ScopeKind, opts ResolverOptions) *Resolver {
	r := &Resolver{
		table: table,
		stack: make([]ScopeID, 0, 8),
	}
	r.Enter(rootKind, source.Pos{})
	for _, sym := range opts.Prelude {
		if _, _, ok := r.Declare(sym.WithFlags(sym.Flags() | SymbolFlagPredeclared)); !ok {
			panic(fmt.Errorf("symbols: duplicate prelude entry %q", sym.Name()))
		}
	}
	return r
}

// Table returns the backing table.
func (r *Resolver) Table() *Table { return r.table }

// CurrentScope returns the scope at the top of the stack.
func (r *Resolver) CurrentScope() ScopeID {
	if len(r.stack) == 0 {
		return NoScopeID
	}
	return r.stack[len(r.stack)-1]
}

// Depth reports how many scopes are open.
func (r *Resolver) Depth() int { return len(r.stack) }

// Enter creates a child scope, pushes it onto the stack, and returns its ID.
func (r *Resolver) Enter(kind ScopeKind, pos source.Pos) ScopeID {
	scope := r.table.Scopes.New(kind, r.CurrentScope(), pos)
	r.stack = append(r.stack, scope)
	return scope
}

// Leave pops the current scope. Leaving any scope other than the current one
// is a bug in the caller and panics.
func (r *Resolver) Leave(expected ScopeID) {
	top := r.CurrentScope()
	if !top.IsValid() || top != expected {
		panic(fmt.Errorf("symbols: leave scope %d, but current scope is %d", expected, top))
	}
	r.stack = r.stack[:len(r.stack)-1]
}

// Declare installs sym into the current scope. When the name is already
// declared in that same scope nothing is inserted: ok is false and prev is
// the earlier declaration. Shadowing an enclosing scope is allowed.
func (r *Resolver) Declare(sym Symbol) (id, prev SymbolID, ok bool) {
	scopeID := r.CurrentScope()
	scope := r.table.Scopes.Get(scopeID)
	if scope == nil {
		return NoSymbolID, NoSymbolID, false
	}
	name := r.table.Strings.Intern(sym.Name())
	if existing, dup := scope.NameIndex[name]; dup {
		return NoSymbolID, existing, false
	}
	id = r.table.Symbols.New(sym, scopeID)
	scope.Symbols = append(scope.Symbols, id)
	scope.NameIndex[name] = id
	return id, NoSymbolID, true
}

// Lookup walks the scope chain searching for a symbol with the given name.
func (r *Resolver) Lookup(name string) (SymbolID, bool) {
	key, known := r.table.Strings.Find(name)
	if !known {
		return NoSymbolID, false
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if scope := r.table.Scopes.Get(r.stack[i]); scope != nil {
			if id, ok := scope.NameIndex[key]; ok {
				return id, true
			}
		}
	}
	return NoSymbolID, false
}

// LookupLocal searches only the current scope.
func (r *Resolver) LookupLocal(name string) (SymbolID, bool) {
	key, known := r.table.Strings.Find(name)
	if !known {
		return NoSymbolID, false
	}
	scope := r.table.Scopes.Get(r.CurrentScope())
	if scope == nil {
		return NoSymbolID, false
	}
	id, ok := scope.NameIndex[key]
	return id, ok
}
