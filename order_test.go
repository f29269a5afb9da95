package blobvec

import (
	"encoding/binary"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortAscending(t *testing.T) {
	t.Parallel()

	gofakeit.Seed(7)

	v := New()
	for i := 0; i < 100; i++ {
		require.NoError(t, v.Append(uint32Blob(uint32(gofakeit.Number(0, 1000))), 4))
	}

	require.NoError(t, v.Sort(ascendingUint32))

	values := uint32Values(t, v)
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, values[i-1], values[i], "sorted sequence must be non-decreasing")
	}
	assert.Equal(t, 100, v.Len(), "sort must not add or drop elements")
}

func TestSortEmpty(t *testing.T) {
	t.Parallel()

	v := New()
	require.NoError(t, v.Sort(ascendingUint32))
	assert.Equal(t, 0, v.Len())
}

func TestSortInvalid(t *testing.T) {
	t.Parallel()

	v := New()
	require.NoError(t, v.Append(uint32Blob(1), 4))
	assert.ErrorIs(t, v.Sort(nil), ErrNotInitialized)

	v.Release()
	assert.ErrorIs(t, v.Sort(ascendingUint32), ErrNotInitialized)
}

func TestSortComparatorIndirection(t *testing.T) {
	t.Parallel()

	v := New()
	for _, n := range []uint32{3, 1, 2} {
		require.NoError(t, v.Append(uint32Blob(n), 4))
	}

	// The comparator sees pointers to the blob references.
	err := v.Sort(func(a, b *[]byte) int {
		require.NotNil(t, a)
		require.NotNil(t, b)
		return int(binary.LittleEndian.Uint32(*a)) - int(binary.LittleEndian.Uint32(*b))
	})
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3}, uint32Values(t, v))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	v := New()
	for i := 0; i < 5; i++ {
		require.NoError(t, v.Append(uint32Blob(uint32(i)), 4))
	}

	v.Reverse()
	assert.Equal(t, []uint32{4, 3, 2, 1, 0}, uint32Values(t, v))

	// Even length as well.
	require.NoError(t, v.Append(uint32Blob(9), 4))
	v.Reverse()
	assert.Equal(t, []uint32{9, 0, 1, 2, 3, 4}, uint32Values(t, v))
}

func TestReverseInvolution(t *testing.T) {
	t.Parallel()

	gofakeit.Seed(11)

	for _, size := range []int{0, 1, 2, 7, 64} {
		v := New()
		for i := 0; i < size; i++ {
			require.NoError(t, v.Append(uint32Blob(uint32(gofakeit.Number(0, 1000))), 4))
		}
		before := uint32Values(t, v)

		v.Reverse()
		v.Reverse()
		assert.Equal(t, before, uint32Values(t, v), "double reverse must restore the sequence")
	}
}
