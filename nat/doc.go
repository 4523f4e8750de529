// Package nat provides type-level natural numbers used as sequence lengths.
//
// Go generics cannot be parameterized by an integer, so a length is a type:
// Z is zero and S[N] is N+1. U0 through U32 are aliases for the common
// small lengths, and any type whose zero value reports a fixed Len can serve
// as a custom length:
//
//	type L100 struct{}
//	func (L100) Len() int { return 100 }
//
// # Length Relations
//
// Successor relations (N and N+1) are checked by the compiler through S[N].
// Sums and differences cannot be computed by the type checker; Add and Sub
// check them once and return a proof value that transforms accept:
//
//	p := nat.MustAdd[nat.U2, nat.U3, nat.U5]()
//	d, err := nat.Sub[nat.U5, nat.U2, nat.U3]()
//
// The zero value of a proof is not a proof.
package nat
