// Package seq provides fixed-length sequences whose length is part of the type.
//
// A Sequence[T, N] holds exactly nat.Value[N]() elements. Transforms consume
// their inputs and return differently shaped sequences built from the same
// elements:
//
//	s := seq.MustNew[nat.U3](1, 2, 3)
//	s4 := seq.Append(s, 4)                 // [1 2 3 4], s is consumed
//	init, last := seq.PopBack(s4)          // [1 2 3], 4
//	head, tail := seq.Split[nat.U1, nat.U2](init)
//	joined := seq.Concat[nat.U3](head, tail)
//
// # Length Checking
//
// Append, Prepend, PopBack and PopFront relate N and nat.S[N], so the compiler
// checks them; popping a zero-length sequence does not compile. Split and
// Concat take their result lengths as type arguments and verify them once
// through the nat package before touching any element. A relation that does
// not hold is a programming error and panics with an *errors.Error.
//
// # Ownership
//
// A consumed handle, and every copy of it, panics with errors.KindConsumed on
// further use. Output storage is assembled by a builder that tracks written
// slots and refuses to hand out a buffer with a missing or doubly written
// slot. Shrinking and splitting reuse the input storage without copying.
//
// Sequences are not safe for concurrent use.
package seq
