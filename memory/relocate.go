package memory

import (
	"go.uber.org/zap"

	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/layout"
	"github.com/wippyai/fixedseq/nat"
	"github.com/wippyai/fixedseq/seq"
)

// Store relocates s into mem at offset as a single block and returns the
// number of bytes written. The offset must be aligned to the element size.
// s is consumed only once the block has been written; on error it stays live.
func Store[T layout.Scalar, N nat.Nat](mem Memory, offset uint32, s seq.Sequence[T, N]) (uint32, error) {
	info, _, err := layout.Sequence[T, N]()
	if err != nil {
		return 0, err
	}
	if err := checkRegion("store", mem, offset, info); err != nil {
		return 0, err
	}

	buf := make([]byte, info.Size)
	layout.EncodeAll(buf, s.Slice())

	if err := mem.Write(offset, buf); err != nil {
		return 0, errors.Wrap(errors.PhaseRelocate, errors.KindOutOfBounds, err, "store")
	}
	elems := s.Into()
	clear(elems)

	Logger().Debug("stored sequence",
		zap.Uint32("offset", offset),
		zap.Uint32("size", info.Size),
		zap.Int("len", len(elems)))
	return info.Size, nil
}

// Load relocates N consecutive T values at offset out of mem into a new
// sequence. The memory is left unchanged.
func Load[N nat.Nat, T layout.Scalar](mem Memory, offset uint32) (seq.Sequence[T, N], error) {
	info, _, err := layout.Sequence[T, N]()
	if err != nil {
		return seq.Sequence[T, N]{}, err
	}
	if err := checkRegion("load", mem, offset, info); err != nil {
		return seq.Sequence[T, N]{}, err
	}

	data, err := mem.Read(offset, info.Size)
	if err != nil {
		return seq.Sequence[T, N]{}, errors.Wrap(errors.PhaseRelocate, errors.KindOutOfBounds, err, "load")
	}

	elems := make([]T, nat.Value[N]())
	layout.DecodeAll(elems, data)
	s, err := seq.New[N](elems...)
	if err != nil {
		return seq.Sequence[T, N]{}, err
	}

	Logger().Debug("loaded sequence",
		zap.Uint32("offset", offset),
		zap.Uint32("size", info.Size),
		zap.Int("len", s.Len()))
	return s, nil
}

func checkRegion(op string, mem Memory, offset uint32, info layout.Info) error {
	if mem == nil {
		return errors.New(errors.PhaseRelocate, errors.KindNotInitialized).Op(op).Detail("nil memory").Build()
	}
	if offset%info.Align != 0 {
		return errors.Misaligned(op, offset, info.Align)
	}
	end, ok := layout.SafeAddU32(offset, info.Size)
	if !ok || end > mem.Size() {
		return errors.RegionOutOfBounds(op, offset, info.Size, mem.Size())
	}
	return nil
}
