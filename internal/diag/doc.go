// Package diag defines the diagnostic model shared by the semantic pass and
// the reporting driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – deterministic text; together with Code it is a golden-file
//     contract, so wording changes are breaking changes.
//   - Primary – the source.Pos of the offending token.
//   - Notes – optional secondary positions (e.g. "previous declaration here").
//
// # Emitting diagnostics
//
// Producers use a Reporter so that emission is decoupled from storage.
// BagReporter appends into a Bag, which keeps diagnostics in the order they
// were detected and enforces a capacity limit; once the limit is reached Add
// reports false and the producer is expected to stop.
//
// Package diag performs no IO. Rendering lives in internal/diagfmt.
package diag
