// Package token defines the lexical token model that the external YAPL
// scanner hands to the semantic core.
// Invariants:
//   - Token.Pos is the 1-based line/column of the first character of Text.
//   - Keywords are case-sensitive and spelled as in YAPL (Program, Procedure,
//     Declare, Const, Record, Begin, End, If, Then, Else, EndIf, While, Do,
//     EndWhile, Return, New, And, Or).
//   - Built-in type names (int, bool, float, void) are identifiers. They are
//     recognized by the semantic layer, not the lexer.
package token
