package types

import (
	"testing"

	"yaplc/internal/source"
)

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID || b.Bool == NoTypeID || b.Error == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	if in.KindOf(b.Float) != KindFloat {
		t.Fatalf("expected float kind, got %v", in.KindOf(b.Float))
	}
	if _, ok := in.Lookup(NoTypeID); ok {
		t.Fatalf("NoTypeID must not resolve")
	}
}

func TestInternerDeduplicatesArrays(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().Int
	arr1 := in.Intern(MakeArray(elem, 2))
	arr2 := in.ArrayOf(elem, 2)
	if arr1 != arr2 {
		t.Fatalf("array types should be deduplicated")
	}
	if in.ArrayOf(in.ArrayOf(elem, 1), 1) != arr1 {
		t.Fatalf("nested ArrayOf must flatten to one descriptor")
	}
}

func TestIndexResultPeelsOneDimension(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	arr := in.ArrayOf(b.Float, 2)
	row, ok := in.IndexResult(arr)
	if !ok || row != in.ArrayOf(b.Float, 1) {
		t.Fatalf("expected float[], got %s", Label(in, row))
	}
	cell, ok := in.IndexResult(row)
	if !ok || cell != b.Float {
		t.Fatalf("expected float, got %s", Label(in, cell))
	}
	if _, ok := in.IndexResult(b.Int); ok {
		t.Fatalf("int is not indexable")
	}
}

func TestRecordsAreNominal(t *testing.T) {
	in := NewInterner()
	a := in.RegisterRecord("Point", source.Pos{Line: 1, Col: 1})
	b := in.RegisterRecord("Point", source.Pos{Line: 9, Col: 1})
	if a == b {
		t.Fatalf("each record declaration must get its own TypeID")
	}
	in.SetRecordFields(a, []Field{{Name: "x", Type: in.Builtins().Int}})
	if f, ok := in.RecordField(a, "x"); !ok || f.Type != in.Builtins().Int {
		t.Fatalf("field lookup failed")
	}
	if _, ok := in.RecordField(b, "x"); ok {
		t.Fatalf("fields must not leak between records")
	}
}

func TestRegisterProcDeduplicates(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	p1 := in.RegisterProc([]TypeID{b.Int, b.Bool}, b.Void)
	p2 := in.RegisterProc([]TypeID{b.Int, b.Bool}, b.Void)
	p3 := in.RegisterProc([]TypeID{b.Int}, b.Void)
	if p1 != p2 || p1 == p3 {
		t.Fatalf("unexpected proc identities %d %d %d", p1, p2, p3)
	}
}

func TestLiteralSlotIsSingleAssignment(t *testing.T) {
	in := NewInterner()
	lit := in.NewLiteral(KindInt)
	if _, ok := in.Literal(lit); ok {
		t.Fatalf("fresh literal slot must be empty")
	}
	if !in.SetLiteral(lit, IntValue(42)) {
		t.Fatalf("first assignment must succeed")
	}
	if in.SetLiteral(lit, IntValue(7)) {
		t.Fatalf("second assignment must be rejected")
	}
	if v, ok := in.Literal(lit); !ok || v.Int != 42 {
		t.Fatalf("expected 42, got %v", v)
	}
	if in.SetLiteral(in.NewLiteral(KindFloat), IntValue(1)) {
		t.Fatalf("value kind must match the slot kind")
	}
	if in.SetLiteral(in.Builtins().Int, IntValue(1)) {
		t.Fatalf("builtins carry no literal slot")
	}
	if in.NewLiteral(KindVoid) != NoTypeID {
		t.Fatalf("void cannot carry a literal")
	}
	if in.Base(lit) != in.Builtins().Int {
		t.Fatalf("Base must strip the literal slot")
	}
}

func TestLabel(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	rec := in.RegisterRecord("Pair", source.Pos{})
	cases := []struct {
		id   TypeID
		want string
	}{
		{b.Void, "void"},
		{b.Error, "<error>"},
		{in.ArrayOf(b.Int, 2), "int[][]"},
		{rec, "Pair"},
		{in.RegisterProc([]TypeID{b.Int, in.ArrayOf(rec, 1)}, b.Bool), "procedure(int, Pair[]): bool"},
		{NoTypeID, "?"},
	}
	for _, tc := range cases {
		if got := Label(in, tc.id); got != tc.want {
			t.Errorf("Label = %q, want %q", got, tc.want)
		}
	}
}
