package nat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/fixedseq/errors"
)

type l100 struct{}

func (l100) Len() int { return 100 }

type negative struct{}

func (negative) Len() int { return -1 }

func TestValue(t *testing.T) {
	assert.Equal(t, 0, Value[Z]())
	assert.Equal(t, 1, Value[U1]())
	assert.Equal(t, 3, Value[S[S[S[Z]]]]())
	assert.Equal(t, 16, Value[U16]())
	assert.Equal(t, 32, Value[U32]())
	assert.Equal(t, 100, Value[l100]())
	assert.Equal(t, 101, Value[S[l100]]())
}

func TestValue_Negative(t *testing.T) {
	defer func() {
		r := recover()
		e, ok := r.(*errors.Error)
		require.True(t, ok, "expected *errors.Error panic, got %v", r)
		assert.Equal(t, errors.KindInvalidLength, e.Kind)
		assert.Contains(t, e.Error(), "negative")
	}()
	Value[negative]()
}

func TestAliasesAreSuccessors(t *testing.T) {
	// U3 and S[U2] are the same type, so this assignment must compile.
	var a U3
	var b S[U2] = a
	_ = b
	assert.Equal(t, Value[U3](), Value[S[U2]]())
}

func TestAdd(t *testing.T) {
	p, err := Add[U2, U3, U5]()
	require.NoError(t, err)
	assert.True(t, p.Proven())

	p0, err := Add[Z, Z, Z]()
	require.NoError(t, err)
	assert.True(t, p0.Proven())

	_, err = Add[U2, U3, U6]()
	require.Error(t, err)
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errors.PhaseProve, e.Phase)
	assert.Equal(t, errors.KindLengthMismatch, e.Kind)
	assert.Equal(t, 5, e.Expected)
	assert.Equal(t, 6, e.Actual)
	assert.Equal(t, 6, e.Value)
}

func TestSub(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		kind errors.Kind
	}{
		{"exact", func() error { _, err := Sub[U4, U2, U2](); return err }, ""},
		{"pivot zero", func() error { _, err := Sub[U4, Z, U4](); return err }, ""},
		{"pivot at end", func() error { _, err := Sub[U4, U4, Z](); return err }, ""},
		{"wrong remainder", func() error { _, err := Sub[U4, U1, U2](); return err }, errors.KindLengthMismatch},
		{"pivot past end", func() error { _, err := Sub[U2, U3, Z](); return err }, errors.KindOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if tt.kind == "" {
				require.NoError(t, err)
				return
			}
			var e *errors.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestMust(t *testing.T) {
	assert.True(t, MustAdd[U1, U1, U2]().Proven())
	assert.True(t, MustSub[U3, U1, U2]().Proven())

	assert.Panics(t, func() { MustAdd[U1, U1, U3]() })
	assert.Panics(t, func() { MustSub[U1, U2, Z]() })
}

func TestZeroProof(t *testing.T) {
	var s Sum[U1, U1, U2]
	var d Diff[U2, U1, U1]
	assert.False(t, s.Proven())
	assert.False(t, d.Proven())
}

func TestName(t *testing.T) {
	assert.Contains(t, Name[Z](), "Z")
	assert.Contains(t, Name[l100](), "l100")
}
