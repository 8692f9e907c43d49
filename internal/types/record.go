package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"yaplc/internal/source"
)

// Field describes a single field inside a record type.
type Field struct {
	Name string
	Type TypeID
	Pos  source.Pos
}

// RecordInfo stores metadata for a record type.
type RecordInfo struct {
	Name   string
	Decl   source.Pos
	Fields []Field
}

// RegisterRecord allocates a nominal record type slot and returns its TypeID.
// Fields are attached later with SetRecordFields so that a record may refer
// to itself.
func (in *Interner) RegisterRecord(name string, decl source.Pos) TypeID {
	in.records = append(in.records, RecordInfo{Name: name, Decl: decl})
	slot, err := safecast.Conv[uint32](len(in.records) - 1)
	if err != nil {
		panic(fmt.Errorf("record info overflow: %w", err))
	}
	return in.internRaw(Type{Kind: KindRecord, Payload: slot})
}

// SetRecordFields stores the resolved fields of the record type.
func (in *Interner) SetRecordFields(id TypeID, fields []Field) {
	info := in.recordInfo(id)
	if info == nil {
		return
	}
	info.Fields = slices.Clone(fields)
}

// RecordInfo returns metadata for the provided record TypeID.
func (in *Interner) RecordInfo(id TypeID) (*RecordInfo, bool) {
	info := in.recordInfo(id)
	return info, info != nil
}

// RecordField finds a field by name.
func (in *Interner) RecordField(id TypeID, name string) (Field, bool) {
	info := in.recordInfo(id)
	if info == nil {
		return Field{}, false
	}
	for _, f := range info.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (in *Interner) recordInfo(id TypeID) *RecordInfo {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRecord || tt.Payload == 0 || int(tt.Payload) >= len(in.records) {
		return nil
	}
	return &in.records[tt.Payload]
}
