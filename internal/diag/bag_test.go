package diag

import (
	"testing"

	"yaplc/internal/source"
)

func TestBagKeepsDetectionOrderAndLimit(t *testing.T) {
	bag := NewBag(2)
	r := BagReporter{Bag: bag}
	if !r.Report(SemaTypeMismatch, SevError, source.Pos{Line: 5, Col: 1}, "late", nil) {
		t.Fatalf("first report must be accepted")
	}
	if !r.Report(SemaIllegalUse, SevError, source.Pos{Line: 1, Col: 1}, "early", nil) {
		t.Fatalf("second report must be accepted")
	}
	if r.Report(SemaCondNotBool, SevError, source.Pos{Line: 9, Col: 1}, "dropped", nil) {
		t.Fatalf("report beyond the limit must be refused")
	}
	if !bag.Full() || bag.Len() != 2 {
		t.Fatalf("expected full bag with 2 items, got %d", bag.Len())
	}
	if bag.Items()[0].Message != "late" {
		t.Fatalf("bag must keep detection order")
	}
	bag.Sort()
	if bag.Items()[0].Message != "early" {
		t.Fatalf("Sort must order by position")
	}
}

func TestBagUnlimitedAndCounts(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 100; i++ {
		if !bag.Add(NewError(SemaError, source.Pos{Line: 1}, "x")) {
			t.Fatalf("unlimited bag refused item %d", i)
		}
	}
	bag.Add(New(SevWarning, SemaInfo, source.Pos{Line: 1}, "w"))
	if !bag.HasErrors() || bag.ErrorCount() != 100 || bag.Len() != 101 {
		t.Fatalf("unexpected counts: errors=%d len=%d", bag.ErrorCount(), bag.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SemaError, source.Pos{Line: 1}, "a"))
	b := NewBag(1)
	b.Add(NewError(SemaError, source.Pos{Line: 2}, "b"))
	a.Merge(b)
	if a.Len() != 2 || a.Cap() != 2 {
		t.Fatalf("merge: len=%d cap=%d", a.Len(), a.Cap())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, SemaDuplicateDeclaration, source.Pos{Line: 2, Col: 3}, "dup").
		WithNote(source.Pos{Line: 1, Col: 3}, "previous declaration here")
	if !b.Emit() || b.Emit() {
		t.Fatalf("Emit must succeed exactly once")
	}
	if bag.Len() != 1 || len(bag.Items()[0].Notes) != 1 {
		t.Fatalf("expected one diagnostic with one note")
	}
}

func TestCodeIDsAndTitles(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range SemanticCodes() {
		id := c.ID()
		if seen[id] {
			t.Fatalf("duplicate code id %s", id)
		}
		seen[id] = true
		if c.Title() == UnknownCode.Title() {
			t.Errorf("%s has no description", id)
		}
	}
	if SemaIllegalUse.ID() != "SEM3012" || IODecodeError.ID() != "IO4002" || UnknownCode.ID() != "E0000" {
		t.Fatalf("unexpected ids")
	}
}

func TestBagCountsOnlyErrors(t *testing.T) {
	bag := NewBag(0)
	bag.Add(New(SevWarning, IOLoadFileError, source.Pos{}, "warn"))
	bag.Add(New(SevInfo, IOLoadFileError, source.Pos{}, "info"))
	if bag.HasErrors() || bag.ErrorCount() != 0 {
		t.Fatalf("warnings and notes are not errors")
	}
	bag.Add(NewError(SemaTypeMismatch, source.Pos{Line: 1, Col: 1}, "boom"))
	if !bag.HasErrors() || bag.ErrorCount() != 1 {
		t.Fatalf("expected one error, got %d", bag.ErrorCount())
	}
	for sev, want := range map[Severity]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR", Severity(9): "UNKNOWN"} {
		if sev.String() != want {
			t.Fatalf("Severity(%d) = %q, want %q", sev, sev.String(), want)
		}
	}
}
