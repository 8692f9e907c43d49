// Package testkit holds structural checks shared by tests that run the
// semantic pass end to end.
package testkit

import (
	"errors"
	"fmt"

	"yaplc/internal/sema"
	"yaplc/internal/symbols"
)

// CheckResultInvariants verifies a sema.Result independently of the program
// that produced it:
// 1) the symbol table is structurally consistent
// 2) every symbol type is interned (the error type counts)
// 3) every recorded error is positioned
func CheckResultInvariants(res sema.Result) error {
	if res.Symbols == nil || res.Types == nil {
		return fmt.Errorf("result without symbol table or interner")
	}
	var errs []error

	// 1) арены
	if err := res.Symbols.Validate(); err != nil {
		errs = append(errs, err)
	}

	// 2) типы символов
	for i := 1; i <= res.Symbols.Symbols.Len(); i++ {
		id := symbols.SymbolID(i) //nolint:gosec // bounded by Len
		sym, ok := res.Symbols.Symbol(id)
		if !ok {
			errs = append(errs, fmt.Errorf("symbol %d is missing", id))
			continue
		}
		if _, ok := res.Types.Lookup(sym.Type()); !ok {
			errs = append(errs, fmt.Errorf("symbol %q has unknown type %d", sym.Name(), sym.Type()))
		}
	}

	// 3) ошибки
	for i, e := range res.Errors {
		if e == nil {
			errs = append(errs, fmt.Errorf("error %d is nil", i))
			continue
		}
		if !e.Pos.IsValid() {
			errs = append(errs, fmt.Errorf("error %d (%s) has no position", i, e.Code.ID()))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
