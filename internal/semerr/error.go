package semerr

import (
	"fmt"

	"yaplc/internal/diag"
	"yaplc/internal/source"
	"yaplc/internal/token"
)

// Described is what diagnostics need to know about a declared entity.
// symbols.Symbol satisfies it.
type Described interface {
	KindString() string
	Name() string
}

// Error is one semantic violation. It is immutable once built.
type Error struct {
	Code    diag.Code
	Message string
	Pos     source.Pos
	Notes   []diag.Note
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Diagnostic converts the error into an error-severity diagnostic.
func (e *Error) Diagnostic() diag.Diagnostic {
	d := diag.NewError(e.Code, e.Pos, e.Message)
	for _, n := range e.Notes {
		d = d.WithNote(n.Pos, n.Msg)
	}
	return d
}

// Report forwards the error to r and returns whether r accepted it.
func (e *Error) Report(r diag.Reporter) bool {
	if e == nil || r == nil {
		return false
	}
	b := diag.ReportError(r, e.Code, e.Pos, e.Message)
	for _, n := range e.Notes {
		b.WithNote(n.Pos, n.Msg)
	}
	return b.Emit()
}

func newError(code diag.Code, tok token.Token, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     tok.Pos,
	}
}

func (e *Error) withNote(pos source.Pos, msg string) *Error {
	if pos.IsValid() {
		e.Notes = append(e.Notes, diag.Note{Pos: pos, Msg: msg})
	}
	return e
}
