package seq

import (
	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/nat"
)

// Split divides s at pivot K into [0,K) and [K,N). R must equal N-K:
//
//	head, tail := seq.Split[nat.U2, nat.U2](s4)
//
// A pivot past the end or a wrong R panics with an *errors.Error naming the
// expected and actual lengths. s is consumed; both parts reuse its storage.
func Split[K, R nat.Nat, T any, N nat.Nat](s Sequence[T, N]) (Sequence[T, K], Sequence[T, R]) {
	p, err := nat.Sub[N, K, R]()
	if err != nil {
		panic(violation("split", err))
	}
	return SplitProven(p, s)
}

// SplitProven is Split for a caller that already holds the length proof.
func SplitProven[T any, N, K, R nat.Nat](p nat.Diff[N, K, R], s Sequence[T, N]) (Sequence[T, K], Sequence[T, R]) {
	if !p.Proven() {
		panic(unproven("split"))
	}
	elems := s.take("split")
	k := nat.Value[K]()
	// The head is capped at the pivot so growing it never reaches the tail.
	return wrap[T, K]("split", elems[:k:k]), wrap[T, R]("split", elems[k:])
}

// violation restates a failed proof as a transform contract violation.
func violation(op string, err error) *errors.Error {
	e, ok := err.(*errors.Error)
	if !ok {
		return errors.Wrap(errors.PhaseTransform, errors.KindLengthMismatch, err, op)
	}
	b := errors.New(errors.PhaseTransform, e.Kind).Op(op).Value(e.Value).Detail("%s", e.Detail)
	if e.HasLengths() {
		b.Lengths(e.Expected, e.Actual)
	}
	return b.Build()
}

func unproven(op string) *errors.Error {
	return errors.New(errors.PhaseTransform, errors.KindLengthMismatch).
		Op(op).
		Detail("zero-value length proof").
		Build()
}
