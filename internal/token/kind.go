package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	IntLit
	FloatLit
	BoolLit
	StringLit

	KwProgram
	KwProcedure
	KwDeclare
	KwConst
	KwRecord
	KwEndRecord
	KwBegin
	KwEnd
	KwIf
	KwThen
	KwElse
	KwEndIf
	KwWhile
	KwDo
	KwEndWhile
	KwReturn
	KwNew
	KwAnd
	KwOr

	Plus    // +
	Minus   // -
	Star    // *
	Slash   // /
	Percent // %
	Bang    // !
	Hash    // #
	Assign  // :=
	EqEq    // ==
	BangEq  // !=
	Lt      // <
	LtEq    // <=
	Gt      // >
	GtEq    // >=
	Dot     // .
	Comma   // ,
	Colon   // :
	Semicolon
	LParen
	RParen
	LBracket
	RBracket
)

var kindNames = [...]string{
	Invalid:     "invalid",
	EOF:         "EOF",
	Ident:       "identifier",
	IntLit:      "int literal",
	FloatLit:    "float literal",
	BoolLit:     "bool literal",
	StringLit:   "string literal",
	KwProgram:   "Program",
	KwProcedure: "Procedure",
	KwDeclare:   "Declare",
	KwConst:     "Const",
	KwRecord:    "Record",
	KwEndRecord: "EndRecord",
	KwBegin:     "Begin",
	KwEnd:       "End",
	KwIf:        "If",
	KwThen:      "Then",
	KwElse:      "Else",
	KwEndIf:     "EndIf",
	KwWhile:     "While",
	KwDo:        "Do",
	KwEndWhile:  "EndWhile",
	KwReturn:    "Return",
	KwNew:       "new",
	KwAnd:       "And",
	KwOr:        "Or",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Bang:        "!",
	Hash:        "#",
	Assign:      ":=",
	EqEq:        "==",
	BangEq:      "!=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	Dot:         ".",
	Comma:       ",",
	Colon:       ":",
	Semicolon:   ";",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// MarshalText encodes the kind by its spelling so that serialized trees
// stay readable and independent of the enumeration order.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) || kindNames[k] == "" {
		return nil, fmt.Errorf("token: cannot marshal %s", k)
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i) //nolint:gosec // table is smaller than 256
			return nil
		}
	}
	return fmt.Errorf("token: unknown kind %q", b)
}
