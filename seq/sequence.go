package seq

import (
	"fmt"
	"iter"
	"slices"

	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/nat"
)

// Sequence is an owned handle to exactly nat.Value[N]() elements of T.
//
// Copies of a Sequence share one cell. Transforms consume the cell, after
// which every copy panics with errors.KindConsumed on use. The zero value is
// not a sequence.
type Sequence[T any, N nat.Nat] struct {
	cell *cell[T]
}

type cell[T any] struct {
	elems      []T
	consumedBy string
}

// wrap hands elems to a new handle. elems must not be referenced elsewhere.
func wrap[T any, N nat.Nat](op string, elems []T) Sequence[T, N] {
	if n := nat.Value[N](); len(elems) != n {
		panic(errors.LengthMismatch(errors.PhaseTransform, op, n, len(elems)))
	}
	return Sequence[T, N]{cell: &cell[T]{elems: elems}}
}

func (s Sequence[T, N]) view(op string) []T {
	if s.cell == nil {
		panic(errors.NotInitialized(op))
	}
	if s.cell.consumedBy != "" {
		panic(errors.Consumed(op, s.cell.consumedBy))
	}
	return s.cell.elems
}

// take moves the elements out of the handle and invalidates it.
func (s Sequence[T, N]) take(op string) []T {
	elems := s.view(op)
	s.cell.elems = nil
	s.cell.consumedBy = op
	return elems
}

// New builds a sequence from a copy of elems.
func New[N nat.Nat, T any](elems ...T) (Sequence[T, N], error) {
	n := nat.Value[N]()
	if len(elems) != n {
		return Sequence[T, N]{}, errors.LengthMismatch(errors.PhaseConstruct, "new", n, len(elems))
	}
	b := newBuilder[T]("new", n)
	b.copyIn(0, elems)
	return wrap[T, N]("new", b.finish()), nil
}

// MustNew is New that panics on a wrong element count.
func MustNew[N nat.Nat, T any](elems ...T) Sequence[T, N] {
	s, err := New[N](elems...)
	if err != nil {
		panic(err)
	}
	return s
}

// Fill builds a sequence with every element set to v.
func Fill[N nat.Nat, T any](v T) Sequence[T, N] {
	return Generate[N](func(int) T { return v })
}

// Generate builds a sequence whose element i is f(i).
func Generate[N nat.Nat, T any](f func(i int) T) Sequence[T, N] {
	n := nat.Value[N]()
	b := newBuilder[T]("generate", n)
	for i := 0; i < n; i++ {
		b.put(i, f(i))
	}
	return wrap[T, N]("generate", b.finish())
}

// Len returns N.
func (s Sequence[T, N]) Len() int {
	return nat.Value[N]()
}

// Valid reports whether s is a live sequence.
func (s Sequence[T, N]) Valid() bool {
	return s.cell != nil && s.cell.consumedBy == ""
}

// At returns element i.
func (s Sequence[T, N]) At(i int) T {
	elems := s.view("at")
	if i < 0 || i >= len(elems) {
		panic(errors.OutOfBounds(errors.PhaseTransform, "at", i, len(elems)))
	}
	return elems[i]
}

// Slice returns a copy of the elements.
func (s Sequence[T, N]) Slice() []T {
	return slices.Clone(s.view("slice"))
}

// All iterates over index/element pairs in order.
func (s Sequence[T, N]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.view("all") {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Into consumes s and returns its backing slice.
func (s Sequence[T, N]) Into() []T {
	return s.take("into")
}

// String formats the elements like a slice.
func (s Sequence[T, N]) String() string {
	switch {
	case s.cell == nil:
		return "<nil sequence>"
	case s.cell.consumedBy != "":
		return "<consumed by " + s.cell.consumedBy + ">"
	}
	return fmt.Sprint(s.cell.elems)
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable, N nat.Nat](a, b Sequence[T, N]) bool {
	return slices.Equal(a.view("equal"), b.view("equal"))
}
