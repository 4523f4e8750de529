package seq

import "github.com/wippyai/fixedseq/nat"

// Append returns s with last added after its final element. s is consumed.
func Append[T any, N nat.Nat](s Sequence[T, N], last T) Sequence[T, nat.S[N]] {
	elems := s.take("append")
	if cap(elems) > len(elems) {
		// Spare capacity belongs to this sequence alone.
		return wrap[T, nat.S[N]]("append", append(elems, last))
	}
	b := newBuilder[T]("append", len(elems)+1)
	b.move(0, elems)
	b.put(len(elems), last)
	return wrap[T, nat.S[N]]("append", b.finish())
}

// Prepend returns s with first added before its first element. s is consumed.
func Prepend[T any, N nat.Nat](s Sequence[T, N], first T) Sequence[T, nat.S[N]] {
	elems := s.take("prepend")
	b := newBuilder[T]("prepend", len(elems)+1)
	b.put(0, first)
	b.move(1, elems)
	return wrap[T, nat.S[N]]("prepend", b.finish())
}

// PopBack splits off the last element. s is consumed; the shorter sequence
// reuses its storage.
func PopBack[T any, N nat.Nat](s Sequence[T, nat.S[N]]) (Sequence[T, N], T) {
	elems := s.take("pop_back")
	n := len(elems) - 1
	last := elems[n]
	var zero T
	elems[n] = zero
	return wrap[T, N]("pop_back", elems[:n]), last
}

// PopFront splits off the first element. s is consumed; the shorter sequence
// reuses its storage.
func PopFront[T any, N nat.Nat](s Sequence[T, nat.S[N]]) (T, Sequence[T, N]) {
	elems := s.take("pop_front")
	first := elems[0]
	var zero T
	elems[0] = zero
	return first, wrap[T, N]("pop_front", elems[1:])
}
