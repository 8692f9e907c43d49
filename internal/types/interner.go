package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Void  TypeID
	Bool  TypeID
	Int   TypeID
	Float TypeID
	Error TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Records and literal-carrying scalars bypass deduplication: each
// registration is its own type.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
	records  []RecordInfo
	procs    []ProcInfo
	literals []literalSlot
}

type literalSlot struct {
	value Value
	set   bool
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.records = append(in.records, RecordInfo{}) // reserve 0 as invalid sentinel
	in.procs = append(in.procs, ProcInfo{})
	in.literals = append(in.literals, literalSlot{})
	in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(Type{Kind: KindInt})
	in.builtins.Float = in.Intern(Type{Kind: KindFloat})
	in.builtins.Error = in.Intern(Type{Kind: KindError})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if in == nil || id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// KindOf returns the kind of id, or KindInvalid for unknown IDs.
func (in *Interner) KindOf(id TypeID) Kind {
	tt, _ := in.Lookup(id)
	return tt.Kind
}

// IsError reports whether id is the error type.
func (in *Interner) IsError(id TypeID) bool {
	return in.KindOf(id) == KindError
}

// ArrayOf builds Array(elem, dim). An array element is flattened, so
// ArrayOf(int[], 2) is int[][][].
func (in *Interner) ArrayOf(elem TypeID, dim uint32) TypeID {
	if dim == 0 {
		return elem
	}
	if tt, ok := in.Lookup(elem); ok && tt.Kind == KindArray {
		return in.Intern(MakeArray(tt.Elem, tt.Count+dim))
	}
	return in.Intern(MakeArray(elem, dim))
}

// IndexResult returns the type produced by one subscript on an array type:
// Array(T, 1)[i] is T and Array(T, d)[i] is Array(T, d-1).
func (in *Interner) IndexResult(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindArray {
		return NoTypeID, false
	}
	if tt.Count <= 1 {
		return tt.Elem, true
	}
	return in.Intern(MakeArray(tt.Elem, tt.Count-1)), true
}

// Base strips the literal slot from a scalar type, returning the builtin.
func (in *Interner) Base(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Payload == 0 || !tt.Kind.IsScalar() {
		return id
	}
	switch tt.Kind {
	case KindBool:
		return in.builtins.Bool
	case KindInt:
		return in.builtins.Int
	case KindFloat:
		return in.builtins.Float
	default:
		return id
	}
}

type typeKey struct {
	Kind    Kind
	Elem    TypeID
	Count   uint32
	Payload uint32
}
