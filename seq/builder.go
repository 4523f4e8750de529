package seq

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/wippyai/fixedseq/errors"
)

// builder assembles the storage of an output sequence. Every slot must be
// written exactly once before finish hands the storage out.
type builder[T any] struct {
	op      string
	elems   []T
	written *bitset.BitSet
}

func newBuilder[T any](op string, n int) *builder[T] {
	return &builder[T]{
		op:      op,
		elems:   make([]T, n),
		written: bitset.New(uint(n)),
	}
}

func (b *builder[T]) claim(at, count int) {
	if at < 0 || count < 0 || at+count > len(b.elems) {
		panic(errors.OutOfBounds(errors.PhaseTransform, b.op, at+count, len(b.elems)))
	}
	for i := at; i < at+count; i++ {
		if b.written.Test(uint(i)) {
			panic(errors.DoubleWrite(b.op, i))
		}
	}
	for i := at; i < at+count; i++ {
		b.written.Set(uint(i))
	}
}

func (b *builder[T]) put(i int, v T) {
	b.claim(i, 1)
	b.elems[i] = v
}

// move relocates src into slots [at, at+len(src)) and clears src so the
// consumed storage no longer references the elements.
func (b *builder[T]) move(at int, src []T) {
	b.copyIn(at, src)
	clear(src)
}

// copyIn writes a copy of src into slots [at, at+len(src)).
func (b *builder[T]) copyIn(at int, src []T) {
	b.claim(at, len(src))
	copy(b.elems[at:], src)
}

func (b *builder[T]) finish() []T {
	if c := int(b.written.Count()); c != len(b.elems) {
		panic(errors.Unwritten(b.op, c, len(b.elems)))
	}
	elems := b.elems
	b.elems = nil
	return elems
}
