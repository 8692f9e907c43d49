package token

import (
	"yaplc/internal/source"
)

// Token is a single lexeme with its kind and position.
type Token struct {
	Kind Kind       `json:"kind"`
	Text string     `json:"text"`
	Pos  source.Pos `json:"pos"`
}

// Lexeme returns the token text, falling back to the kind spelling for
// synthesized operator tokens that carry no text.
func (t Token) Lexeme() string {
	if t.Text != "" {
		return t.Text
	}
	if t.IsPunctOrOp() || t.IsKeyword() {
		return t.Kind.String()
	}
	return ""
}

// IsLiteral reports whether the token is a numeric, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, BoolLit, StringLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwProgram && t.Kind <= KwOr
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
