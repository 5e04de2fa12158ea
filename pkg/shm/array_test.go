package shm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSequence = []int32{4, 8, 6286, 2, 264}

const testChecksum = int32(6564)

func TestArrayRoundTrip(t *testing.T) {
	requireLinux(t)
	name := testName(t)

	sender, err := NewArray[int32](name, 8, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = sender.Close() }()

	for i, v := range testSequence {
		require.NoError(t, sender.Set(i, v))
	}

	receiver, err := NewArray[int32](name, 8, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = receiver.Close() }()

	var sum int32
	for _, v := range receiver.Slice() {
		sum += v
	}
	assert.Equal(t, testChecksum, sum)
	assert.Equal(t, []int32{4, 8, 6286, 2, 264, 0, 0, 0}, receiver.Slice())
}

func TestArrayAtBounds(t *testing.T) {
	requireLinux(t)
	arr, err := NewArray[int32](testName(t), 8, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = arr.Close() }()

	for i := 0; i < arr.Len(); i++ {
		_, err := arr.At(i)
		require.NoError(t, err, "At(%d)", i)
	}

	for _, i := range []int{8, 18, -1} {
		_, err := arr.At(i)
		var ierr *IndexError
		require.ErrorAs(t, err, &ierr, "At(%d)", i)
		assert.Equal(t, i, ierr.Index)
		assert.Equal(t, 8, ierr.Len)
	}

	_, err = arr.At(18)
	assert.EqualError(t, err, "shm: tried to access element 18 (size = 8)")
}

func TestArraySetBoundsAndPermission(t *testing.T) {
	requireLinux(t)
	name := testName(t)

	rw, err := NewArray[int32](name, 4, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = rw.Close() }()

	var ierr *IndexError
	assert.ErrorAs(t, rw.Set(4, 1), &ierr)

	ro, err := NewArray[int32](name, 4, ReadOnly)
	require.NoError(t, err)
	defer func() { _ = ro.Close() }()
	assert.ErrorIs(t, ro.Set(0, 1), ErrReadOnly)
}

func TestArrayIndexUnchecked(t *testing.T) {
	requireLinux(t)
	arr, err := NewArray[uint64](testName(t), 4, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = arr.Close() }()

	*arr.Index(3) = 0xDEAD
	assert.Equal(t, uint64(0xDEAD), arr.Slice()[3])
	assert.Equal(t, arr.Data(), arr.Index(0))
}

func TestArrayLenAndSegmentSize(t *testing.T) {
	requireLinux(t)
	arr, err := NewArray[int32](testName(t), 8, ReadWrite)
	require.NoError(t, err)
	defer func() { _ = arr.Close() }()

	assert.Equal(t, 8, arr.Len())
	assert.Equal(t, 8*4, arr.Segment().Size())
}

func TestArrayZeroElementsRejected(t *testing.T) {
	requireLinux(t)
	_, err := NewArray[int32](testName(t), 0, ReadWrite)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
