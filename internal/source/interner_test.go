package source

import "testing"

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID must map to empty string, got %q ok=%v", s, ok)
	}
	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Fatalf("Intern must not return NoStringID for non-empty string")
	}
	if id2 := interner.Intern("hello"); id1 != id2 {
		t.Fatalf("expected same ID for same string: %d != %d", id1, id2)
	}
	if got := interner.MustLookup(id1); got != "hello" {
		t.Fatalf("MustLookup: got %q", got)
	}
	if interner.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", interner.Len())
	}
}

func TestInternerNormalizesToNFC(t *testing.T) {
	interner := NewInterner()
	composed := interner.Intern("caf\u00e9")
	decomposed := interner.Intern("cafe\u0301")
	if composed != decomposed {
		t.Fatalf("NFC-equivalent names must share an ID: %d != %d", composed, decomposed)
	}
	if id, ok := interner.Find("café"); !ok || id != composed {
		t.Fatalf("Find should locate the normalized name")
	}
	if _, ok := interner.Find("missing"); ok {
		t.Fatalf("Find must not register new names")
	}
}

func TestInternerSnapshotIsCopy(t *testing.T) {
	interner := NewInterner()
	interner.Intern("a")
	snap := interner.Snapshot()
	snap[1] = "mutated"
	if got := interner.MustLookup(1); got != "a" {
		t.Fatalf("snapshot must not alias interner storage, got %q", got)
	}
}
