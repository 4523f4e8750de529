package nat

import (
	"fmt"

	"github.com/wippyai/fixedseq/errors"
)

// Nat is a type-level natural number. The value is carried by the type;
// Len is called on the zero value and must not depend on any state.
type Nat interface {
	Len() int
}

// Z is zero.
type Z struct{}

// Len returns 0.
func (Z) Len() int { return 0 }

// S is the successor of N, i.e. N+1.
type S[N Nat] struct{}

// Len returns N+1.
func (S[N]) Len() int {
	var n N
	return n.Len() + 1
}

// Value returns the runtime view of N.
// A natural that reports a negative length panics with KindInvalidLength.
func Value[N Nat]() int {
	var n N
	v := n.Len()
	if v < 0 {
		panic(errors.InvalidLength(Name[N](), v))
	}
	return v
}

// Name returns a printable name for N.
func Name[N Nat]() string {
	var n N
	return fmt.Sprintf("%T", n)
}

type (
	U0  = Z
	U1  = S[U0]
	U2  = S[U1]
	U3  = S[U2]
	U4  = S[U3]
	U5  = S[U4]
	U6  = S[U5]
	U7  = S[U6]
	U8  = S[U7]
	U9  = S[U8]
	U10 = S[U9]
	U11 = S[U10]
	U12 = S[U11]
	U13 = S[U12]
	U14 = S[U13]
	U15 = S[U14]
	U16 = S[U15]
	U17 = S[U16]
	U18 = S[U17]
	U19 = S[U18]
	U20 = S[U19]
	U21 = S[U20]
	U22 = S[U21]
	U23 = S[U22]
	U24 = S[U23]
	U25 = S[U24]
	U26 = S[U25]
	U27 = S[U26]
	U28 = S[U27]
	U29 = S[U28]
	U30 = S[U29]
	U31 = S[U30]
	U32 = S[U31]
)
