package tickbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceSource_YieldsInOrder(t *testing.T) {
	t.Parallel()

	src := FromSlice([]string{"x", "y"})

	v, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, "x", v)

	v, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, "y", v)

	v, ok = src.Next()
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSliceSource_LenReportsRemaining(t *testing.T) {
	t.Parallel()

	src := FromSlice([]int{1, 2, 3})
	assert.Equal(t, 3, src.Len())

	_, _ = src.Next()
	assert.Equal(t, 2, src.Len())

	_, _ = src.Next()
	_, _ = src.Next()
	assert.Equal(t, 0, src.Len())

	_, _ = src.Next()
	assert.Equal(t, 0, src.Len())
}

func TestSeqSource_DrainsSequence(t *testing.T) {
	t.Parallel()

	released := false
	src := FromSeq(func(yield func(int) bool) {
		defer func() { released = true }()
		for i := 0; i < 3; i++ {
			if !yield(i) {
				return
			}
		}
	})

	var got []int
	for {
		v, ok := src.Next()
		if !ok {
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []int{0, 1, 2}, got)
	assert.True(t, released, "pull iterator not released on exhaustion")

	// Exhausted sources stay exhausted.
	_, ok := src.Next()
	assert.False(t, ok)
}

func TestSeqSource_StopReleasesEarly(t *testing.T) {
	t.Parallel()

	released := false
	src := FromSeq(func(yield func(int) bool) {
		defer func() { released = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})

	_, ok := src.Next()
	require.True(t, ok)

	src.Stop()
	src.Stop() // idempotent
	assert.True(t, released)

	_, ok = src.Next()
	assert.False(t, ok)
}

func TestChanSource_DrainsUntilClosed(t *testing.T) {
	t.Parallel()

	ch := make(chan int, 2)
	ch <- 7
	ch <- 8
	close(ch)

	src := FromChan(ch)

	v, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	v, ok = src.Next()
	require.True(t, ok)
	assert.Equal(t, 8, v)

	_, ok = src.Next()
	assert.False(t, ok)
}

func TestFuncSource_Forwards(t *testing.T) {
	t.Parallel()

	calls := 0
	src := FromFunc(func() (int, bool) {
		calls++
		return calls, calls <= 2
	})

	v, ok := src.Next()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = src.Next()
	require.True(t, ok)

	_, ok = src.Next()
	assert.False(t, ok)
}
