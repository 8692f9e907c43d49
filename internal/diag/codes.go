package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Семантические
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaDuplicateDeclaration Code = 3010
	SemaUndeclaredSymbol     Code = 3011
	SemaIllegalUse           Code = 3012
	SemaEndIdentMismatch     Code = 3013

	// selectors & operators
	SemaSelectorNotRecord  Code = 3020
	SemaInvalidRecordField Code = 3021
	SemaSelectorNotArray   Code = 3022
	SemaBadArraySelector   Code = 3023
	SemaArrayLenNotArray   Code = 3024
	SemaIllegalRelOpType   Code = 3025
	SemaIllegalEqualOpType Code = 3026
	SemaIllegalOp1Type     Code = 3027
	SemaIllegalOp2Type     Code = 3028
	SemaTypeMismatch       Code = 3029
	SemaCondNotBool        Code = 3030

	// procedures
	SemaArgNotApplicable  Code = 3031
	SemaArityMismatch     Code = 3032
	SemaInvalidReturnType Code = 3034
	SemaIllegalRetValProc Code = 3035
	SemaIllegalRetValMain Code = 3036
	SemaMissingReturn     Code = 3037
	SemaProcNotFuncExpr   Code = 3038

	// constant folding
	SemaConstNotFoldable Code = 3039
	SemaConstDivByZero   Code = 3040

	// IO / driver
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	SemaInfo:                 "Semantic information",
	SemaError:                "Semantic error",
	SemaDuplicateDeclaration: "Duplicate declaration",
	SemaUndeclaredSymbol:     "Undeclared identifier",
	SemaIllegalUse:           "Illegal use of symbol",
	SemaEndIdentMismatch:     "End name does not match declaration",
	SemaSelectorNotRecord:    "Selector on non-record value",
	SemaInvalidRecordField:   "Unknown record field",
	SemaSelectorNotArray:     "Subscript on non-array value",
	SemaBadArraySelector:     "Non-integer array index or dimension",
	SemaArrayLenNotArray:     "Length of non-array value",
	SemaIllegalRelOpType:     "Illegal operand type for relational operator",
	SemaIllegalEqualOpType:   "Illegal operand types for equality operator",
	SemaIllegalOp1Type:       "Illegal operand type for unary operator",
	SemaIllegalOp2Type:       "Illegal operand types for binary operator",
	SemaTypeMismatch:         "Type mismatch",
	SemaCondNotBool:          "Condition is not boolean",
	SemaArgNotApplicable:     "Argument not applicable",
	SemaArityMismatch:        "Wrong number of arguments",
	SemaInvalidReturnType:    "Invalid return type",
	SemaIllegalRetValProc:    "Return value in procedure",
	SemaIllegalRetValMain:    "Return value in main program",
	SemaMissingReturn:        "Missing return statement",
	SemaProcNotFuncExpr:      "Procedure used as function",
	SemaConstNotFoldable:     "Constant initializer is not constant",
	SemaConstDivByZero:       "Division by zero in constant expression",
	IOLoadFileError:          "Failed to load file",
	IODecodeError:            "Failed to decode program",
}

// SemanticCodes lists every semantic error kind, in numeric order.
func SemanticCodes() []Code {
	return []Code{
		SemaDuplicateDeclaration, SemaUndeclaredSymbol, SemaIllegalUse, SemaEndIdentMismatch,
		SemaSelectorNotRecord, SemaInvalidRecordField, SemaSelectorNotArray, SemaBadArraySelector,
		SemaArrayLenNotArray, SemaIllegalRelOpType, SemaIllegalEqualOpType, SemaIllegalOp1Type,
		SemaIllegalOp2Type, SemaTypeMismatch, SemaCondNotBool, SemaArgNotApplicable,
		SemaArityMismatch, SemaInvalidReturnType, SemaIllegalRetValProc, SemaIllegalRetValMain,
		SemaMissingReturn, SemaProcNotFuncExpr, SemaConstNotFoldable, SemaConstDivByZero,
	}
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
