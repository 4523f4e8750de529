package seq

import (
	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/nat"
)

// Concat joins s and rest in argument order. R must equal N+M:
//
//	s4 := seq.Concat[nat.U4](s2, r2)
//
// A wrong R panics with an *errors.Error naming the expected and actual
// lengths. Both inputs are consumed.
func Concat[R nat.Nat, T any, N, M nat.Nat](s Sequence[T, N], rest Sequence[T, M]) Sequence[T, R] {
	p, err := nat.Add[N, M, R]()
	if err != nil {
		panic(violation("concat", err))
	}
	return ConcatProven(p, s, rest)
}

// ConcatProven is Concat for a caller that already holds the length proof.
func ConcatProven[T any, N, M, R nat.Nat](p nat.Sum[N, M, R], s Sequence[T, N], rest Sequence[T, M]) Sequence[T, R] {
	if !p.Proven() {
		panic(unproven("concat"))
	}
	if s.cell != nil && s.cell == rest.cell {
		panic(errors.New(errors.PhaseTransform, errors.KindConsumed).
			Op("concat").
			Detail("both arguments are the same sequence").
			Build())
	}
	rest.view("concat")
	head := s.take("concat")
	tail := rest.take("concat")
	n, m := len(head), len(tail)
	if cap(head)-n >= m {
		out := append(head, tail...)
		clear(tail)
		return wrap[T, R]("concat", out)
	}
	b := newBuilder[T]("concat", n+m)
	b.move(0, head)
	b.move(n, tail)
	return wrap[T, R]("concat", b.finish())
}
