package nat

import "github.com/wippyai/fixedseq/errors"

// Sum certifies N + M == R. Obtain one from Add or MustAdd.
type Sum[N, M, R Nat] struct {
	proven bool
}

// Proven reports whether p came from Add.
func (p Sum[N, M, R]) Proven() bool { return p.proven }

// Diff certifies K <= N and N - K == R. Obtain one from Sub or MustSub.
type Diff[N, K, R Nat] struct {
	proven bool
}

// Proven reports whether p came from Sub.
func (p Diff[N, K, R]) Proven() bool { return p.proven }

// Add proves N + M == R.
func Add[N, M, R Nat]() (Sum[N, M, R], error) {
	n, m, r := Value[N](), Value[M](), Value[R]()
	if n+m != r {
		return Sum[N, M, R]{}, errors.New(errors.PhaseProve, errors.KindLengthMismatch).
			Op("sum").
			Lengths(n+m, r).
			Value(r).
			Detail("%d + %d is not %d", n, m, r).
			Build()
	}
	return Sum[N, M, R]{proven: true}, nil
}

// MustAdd is Add that panics when the relation does not hold.
func MustAdd[N, M, R Nat]() Sum[N, M, R] {
	p, err := Add[N, M, R]()
	if err != nil {
		panic(err)
	}
	return p
}

// Sub proves K <= N and N - K == R.
func Sub[N, K, R Nat]() (Diff[N, K, R], error) {
	n, k, r := Value[N](), Value[K](), Value[R]()
	if k > n {
		return Diff[N, K, R]{}, errors.New(errors.PhaseProve, errors.KindOutOfBounds).
			Op("diff").
			Lengths(n, k).
			Value(k).
			Detail("pivot %d past end of length %d", k, n).
			Build()
	}
	if n-k != r {
		return Diff[N, K, R]{}, errors.New(errors.PhaseProve, errors.KindLengthMismatch).
			Op("diff").
			Lengths(n-k, r).
			Value(r).
			Detail("%d - %d is not %d", n, k, r).
			Build()
	}
	return Diff[N, K, R]{proven: true}, nil
}

// MustSub is Sub that panics when the relation does not hold.
func MustSub[N, K, R Nat]() Diff[N, K, R] {
	p, err := Sub[N, K, R]()
	if err != nil {
		panic(err)
	}
	return p
}
