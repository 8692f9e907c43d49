// Package semerr is the closed taxonomy of semantic errors.
//
// Every kind has exactly one constructor. A constructor takes the domain data
// the message needs plus the offending token, and derives the position from
// that token, so no call site ever formats a message itself. Construction
// cannot fail.
package semerr
