package diag

import "yaplc/internal/source"

// Reporter is the minimal contract for receiving diagnostics from a pass.
// Report returns false once the sink refuses more diagnostics.
type Reporter interface {
	Report(code Code, sev Severity, primary source.Pos, msg string, notes []Note) bool
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Pos, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, primary, msg),
	}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, primary source.Pos, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// WithNote appends a note to diagnostic.
func (b *ReportBuilder) WithNote(pos source.Pos, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(pos, msg)
	return b
}

// Emit sends diagnostic to underlying reporter exactly once and returns
// whether the reporter accepted it.
func (b *ReportBuilder) Emit() bool {
	if b == nil || b.emitted {
		return false
	}
	b.emitted = true
	if b.reporter == nil {
		return false
	}
	return b.reporter.Report(b.diag.Code, b.diag.Severity, b.diag.Primary, b.diag.Message, b.diag.Notes)
}

// Diagnostic returns accumulated diagnostic without emitting.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter адаптирует Reporter к *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, primary source.Pos, msg string, notes []Note) bool {
	if r.Bag == nil {
		return false
	}
	return r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Primary: primary, Notes: notes,
	})
}

// NopReporter discards everything and never asks the producer to stop.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.Pos, string, []Note) bool { return true }
