// Package sema is the semantic pass over a YAPL program tree: scope
// resolution, type checking, constant folding and the usage-legality
// contract between symbol kinds and the places they appear.
//
// The pass never stops at the first violation. Each failure substitutes
// the error type for the offending expression, and operations over the
// error type stay silent, so one mistake yields one diagnostic. Reporting
// stops only when Options.MaxErrors is reached.
package sema
