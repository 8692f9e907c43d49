package types

import (
	"fmt"
	"strconv"
)

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindBool
	KindInt
	KindFloat
	KindArray
	KindRecord
	KindProc
	// KindError is assigned wherever a type failed to resolve. It is
	// compatible with everything so that one root cause yields one diagnostic.
	KindError

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	case KindProc:
		return "procedure"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// IsScalar reports whether values of this kind carry no structure.
func (k Kind) IsScalar() bool {
	return k == KindVoid || k == KindBool || k == KindInt || k == KindFloat
}

// Type is a compact descriptor for any supported type.
type Type struct {
	Kind    Kind
	Elem    TypeID // arrays: element type, never an array itself
	Count   uint32 // arrays: number of dimensions
	Payload uint32 // record/proc info slot or literal slot
}

// MakeArray describes Array(elem, dim).
func MakeArray(elem TypeID, dim uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: dim}
}

// Value is a folded compile-time constant stored in a literal slot.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
}

// IntValue wraps an integer constant.
func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

// FloatValue wraps a float constant.
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// BoolValue wraps a boolean constant.
func BoolValue(v bool) Value { return Value{Kind: KindBool, Bool: v} }

// AsFloat widens an Int value; Float values are returned unchanged.
func (v Value) AsFloat() float64 {
	if v.Kind == KindInt {
		return float64(v.Int)
	}
	return v.Float
}

func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	default:
		return "?"
	}
}
