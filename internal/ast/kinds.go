package ast

import "fmt"

// DeclKind enumerates declaration forms.
type DeclKind uint8

const (
	DeclConst DeclKind = iota
	DeclVar
	DeclRecord
	DeclProc
)

// StmtKind enumerates statement forms.
type StmtKind uint8

const (
	StmtAssign StmtKind = iota
	StmtCall
	StmtIf
	StmtWhile
	StmtReturn
	StmtBlock
)

// ExprKind enumerates expression forms.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprIntLit
	ExprFloatLit
	ExprBoolLit
	ExprUnary
	ExprBinary
	ExprIndex  // Args[0][Args[1]]
	ExprSelect // Args[0].Tok
	ExprLen    // #Args[0]
	ExprNew    // new Type[Args...]
	ExprCall   // Tok(Args...)
)

var (
	declKindNames = []string{"const", "var", "record", "proc"}
	stmtKindNames = []string{"assign", "call", "if", "while", "return", "block"}
	exprKindNames = []string{"ident", "int", "float", "bool", "unary", "binary", "index", "select", "len", "new", "call"}
)

func (k DeclKind) String() string { return kindName(declKindNames, int(k)) }
func (k StmtKind) String() string { return kindName(stmtKindNames, int(k)) }
func (k ExprKind) String() string { return kindName(exprKindNames, int(k)) }

func (k DeclKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (k StmtKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
func (k ExprKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *DeclKind) UnmarshalText(b []byte) error {
	v, err := parseKind(declKindNames, "declaration", b)
	*k = DeclKind(v)
	return err
}

func (k *StmtKind) UnmarshalText(b []byte) error {
	v, err := parseKind(stmtKindNames, "statement", b)
	*k = StmtKind(v)
	return err
}

func (k *ExprKind) UnmarshalText(b []byte) error {
	v, err := parseKind(exprKindNames, "expression", b)
	*k = ExprKind(v)
	return err
}

func kindName(names []string, k int) string {
	if k >= 0 && k < len(names) {
		return names[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

func parseKind(names []string, what string, b []byte) (uint8, error) {
	for i, name := range names {
		if name == string(b) {
			return uint8(i), nil //nolint:gosec // tables are tiny
		}
	}
	return 0, fmt.Errorf("unknown %s kind %q", what, b)
}
