package memory

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/fixedseq/errors"
	"github.com/wippyai/fixedseq/nat"
	"github.com/wippyai/fixedseq/seq"
)

func TestStoreLoad_Wazero(t *testing.T) {
	mem := newTestScratch(t, 1).Memory()

	s := seq.MustNew[nat.U4](uint32(1), 2, 3, 0xFFFFFFFF)
	n, err := Store(mem, 64, s)
	require.NoError(t, err)
	assert.Equal(t, uint32(16), n)
	assert.False(t, s.Valid(), "Store must consume the sequence")

	raw, err := mem.Read(64, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0}, raw)

	loaded, err := Load[nat.U4, uint32](mem, 64)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3, 0xFFFFFFFF}, loaded.Slice())
}

func TestStoreLoad_Buffer(t *testing.T) {
	buf := NewBuffer(64)

	_, err := Store(buf, 8, seq.MustNew[nat.U3](-1.5, 0.0, 2.25))
	require.NoError(t, err)

	loaded, err := Load[nat.U3, float64](buf, 8)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.5, 0, 2.25}, loaded.Slice())
}

func TestLoad_SplitAndConcatInMemory(t *testing.T) {
	buf := NewBuffer(32)

	head := seq.MustNew[nat.U2](int16(-1), 2)
	tail := seq.MustNew[nat.U3](int16(3), 4, 5)
	_, err := Store(buf, 0, seq.Concat[nat.U5](head, tail))
	require.NoError(t, err)

	whole, err := Load[nat.U5, int16](buf, 0)
	require.NoError(t, err)
	first, rest := seq.Split[nat.U2, nat.U3](whole)
	assert.Equal(t, []int16{-1, 2}, first.Slice())
	assert.Equal(t, []int16{3, 4, 5}, rest.Slice())

	// The tail alone sits right after the head's two elements.
	again, err := Load[nat.U3, int16](buf, 4)
	require.NoError(t, err)
	assert.True(t, seq.Equal(rest, again))
}

func TestStore_EmptySequence(t *testing.T) {
	buf := NewBuffer(4)
	n, err := Store(buf, 4, seq.MustNew[nat.U0, uint64]())
	require.NoError(t, err)
	assert.Equal(t, uint32(0), n)

	loaded, err := Load[nat.U0, uint64](buf, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestStore_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		mem    Memory
		offset uint32
		kind   errors.Kind
	}{
		{"out of bounds", NewBuffer(8), 0, errors.KindOutOfBounds},
		{"wrapping offset", NewBuffer(8), 0xFFFFFFF8, errors.KindOutOfBounds},
		{"misaligned", NewBuffer(64), 2, errors.KindMisaligned},
		{"nil memory", nil, 0, errors.KindNotInitialized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seq.MustNew[nat.U2](uint64(1), 2)
			_, err := Store(tt.mem, tt.offset, s)

			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, errors.PhaseRelocate, e.Phase)
			assert.Equal(t, tt.kind, e.Kind)
			assert.True(t, s.Valid(), "rejected store must leave the sequence live")
		})
	}
}

// readOnly is a memory whose writes always fail.
type readOnly struct {
	*Buffer
}

func (readOnly) Write(uint32, []byte) error {
	return stderrors.New("read-only memory")
}

func TestStore_WriteFailureKeepsSequence(t *testing.T) {
	s := seq.MustNew[nat.U2](uint32(5), 6)
	_, err := Store(readOnly{NewBuffer(16)}, 0, s)

	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.PhaseRelocate, e.Phase)
	assert.ErrorContains(t, err, "read-only memory")
	require.True(t, s.Valid(), "failed write must leave the sequence live")
	assert.Equal(t, []uint32{5, 6}, s.Slice())
}

func TestLoad_Rejected(t *testing.T) {
	mem := newTestScratch(t, 1).Memory()

	_, err := Load[nat.U4, uint32](mem, 65536-8)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindOutOfBounds, e.Kind)

	_, err = Load[nat.U1, uint32](mem, 1)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.KindMisaligned, e.Kind)
}

func TestStore_ConsumedSequencePanics(t *testing.T) {
	s := seq.MustNew[nat.U1](uint8(7))
	_ = s.Into()
	assert.Panics(t, func() { _, _ = Store(NewBuffer(4), 0, s) })
}

func TestRelocationLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	buf := NewBuffer(8)
	_, err := Store(buf, 0, seq.MustNew[nat.U2](uint16(1), 2))
	require.NoError(t, err)
	_, err = Load[nat.U2, uint16](buf, 0)
	require.NoError(t, err)

	entries := logs.FilterMessage("stored sequence").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint32(4), entries[0].ContextMap()["size"])
	assert.Equal(t, uint32(0), entries[0].ContextMap()["offset"])
	assert.Len(t, logs.FilterMessage("loaded sequence").All(), 1)
}
