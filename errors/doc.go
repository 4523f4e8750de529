// Package errors provides structured error types for the fixedseq module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: operation name, expected and actual
// lengths, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTransform, errors.KindLengthMismatch).
//		Op("split").
//		Lengths(4, 5).
//		Detail("pivot 2 leaves 2 elements").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.LengthMismatch(errors.PhaseTransform, "concat", 7, 6)
//	err := errors.OutOfBounds(errors.PhaseTransform, "at", 10, 5)
//
// Violated length relations and reuse of consumed sequences are programming
// errors. They are raised with panic(*Error); Recover turns such a panic back
// into an error at an API boundary.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
