package types

import (
	"fmt"

	"fortio.org/safecast"
)

// NewLiteral allocates a fresh Bool, Int or Float type with an empty value
// slot. Other kinds cannot carry literals and yield NoTypeID.
func (in *Interner) NewLiteral(kind Kind) TypeID {
	if kind != KindBool && kind != KindInt && kind != KindFloat {
		return NoTypeID
	}
	in.literals = append(in.literals, literalSlot{})
	slot, err := safecast.Conv[uint32](len(in.literals) - 1)
	if err != nil {
		panic(fmt.Errorf("literal slot overflow: %w", err))
	}
	return in.internRaw(Type{Kind: kind, Payload: slot})
}

// SetLiteral stores v in the literal slot of id. The slot is written at most
// once; it reports false when id has no slot, the slot is already set, or
// the value kind does not match the type.
func (in *Interner) SetLiteral(id TypeID, v Value) bool {
	slot := in.literalSlot(id)
	if slot == nil || slot.set || v.Kind != in.KindOf(id) {
		return false
	}
	slot.value = v
	slot.set = true
	return true
}

// Literal returns the folded value of id, if any.
func (in *Interner) Literal(id TypeID) (Value, bool) {
	slot := in.literalSlot(id)
	if slot == nil || !slot.set {
		return Value{}, false
	}
	return slot.value, true
}

func (in *Interner) literalSlot(id TypeID) *literalSlot {
	tt, ok := in.Lookup(id)
	if !ok || !tt.Kind.IsScalar() || tt.Payload == 0 || int(tt.Payload) >= len(in.literals) {
		return nil
	}
	return &in.literals[tt.Payload]
}
