// Package fixedseq provides fixed-length sequences whose length is part of
// their type.
//
// A sequence of N elements can grow to N+1 by appending or prepending, shrink
// to N-1 by popping from either end, split into a head of K and a remainder
// of N-K, or concatenate with an M-element sequence into N+M. Each transform
// consumes its input and reuses the input's storage where it can.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	fixedseq/            Root package, documentation only
//	├── nat/             Type-level lengths and proven length relations
//	├── seq/             Sequence type and its transforms
//	├── layout/          Canonical ABI size and alignment of sequences
//	├── memory/          Relocation of sequences into linear memory
//	├── errors/          Structured error types for debugging
//	└── cmd/seqdemo/     Walk-through CLI with an optional TUI
//
// # Quick Start
//
//	s := seq.MustNew[nat.U3](1, 2, 3)
//	grown := seq.Append(s, 4)                          // [1 2 3 4], s is consumed
//	shorter, last := seq.PopBack(grown)                // [1 2 3], 4
//	head, tail := seq.Split[nat.U1, nat.U2](shorter)   // [1], [2 3]
//	whole := seq.Concat[nat.U3](head, tail)            // [1 2 3]
//
// # Length Relations
//
// Go generics take types, not integers, so lengths are encoded as Peano
// naturals: nat.Z is zero and nat.S[N] is N+1. Append, Prepend, PopBack and
// PopFront relate N to nat.S[N] and are checked entirely by the compiler.
// Popping from an empty sequence does not compile.
//
// Split and Concat need the result lengths spelled out as type arguments.
// The relation between them is proven once at the call, and a violation
// panics with an *errors.Error of kind length_mismatch or out_of_bounds. Use
// nat.Add or nat.Sub with SplitProven and ConcatProven to prove a relation
// ahead of time and handle a failure as an error instead.
//
// # Ownership
//
// Transforms consume their arguments. Every copy of a consumed handle panics
// on use, reporting which operation consumed it. Slice returns a copy and
// leaves the sequence live. Into releases the elements and consumes it.
//
// # Thread Safety
//
// A Sequence is a value with no internal locking. Share it between
// goroutines only after it is no longer transformed, or synchronize access.
package fixedseq
