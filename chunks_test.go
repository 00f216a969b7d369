package seqarr

import (
	"iter"
	"slices"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestChunks(t *testing.T) {
	pad := func() int { return -1 }

	chunks := slices.Collect(Chunks(rangeSeq(0, 8), 4, pad))
	require.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, chunks)

	chunks = slices.Collect(Chunks(rangeSeq(0, 9), 4, pad))
	require.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, -1, -1, -1}}, chunks)

	chunks = slices.Collect(Chunks(rangeSeq(0, 4), 4, pad))
	require.Equal(t, [][]int{{0, 1, 2, 3}}, chunks)

	chunks = slices.Collect(Chunks(rangeSeq(0, 0), 4, pad))
	require.Empty(t, chunks)
}

func TestChunksCycled(t *testing.T) {
	cycled := iter.Seq[int](func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			if !yield(i % 5) {
				return
			}
		}
	})
	count := 0
	for chunk := range ChunksDefault(cycled, 5) {
		require.Equal(t, []int{0, 1, 2, 3, 4}, chunk)
		count++
	}
	require.Equal(t, 20, count)
}

func TestChunksDefaultMatchesZeroPad(t *testing.T) {
	chunks1 := slices.Collect(Chunks(rangeSeq(0, 30), 6, func() int { return 0 }))
	chunks2 := slices.Collect(ChunksDefault(rangeSeq(0, 30), 6))
	require.Equal(t, chunks1, chunks2)
	require.Len(t, chunks2, 5)
}

func TestChunksEarlyBreak(t *testing.T) {
	var first []int
	for chunk := range Chunks(rangeSeq(0, 100), 4, func() int { return -1 }) {
		first = chunk
		break
	}
	require.Equal(t, []int{0, 1, 2, 3}, first)
}

func TestChunksPanicsOnBadSize(t *testing.T) {
	require.Panics(t, func() { Chunks(rangeSeq(0, 5), 0, func() int { return 0 }) })
}

func TestChunksCount(t *testing.T) {
	condition := func(l, n uint8) bool {
		size := int(n%16) + 1
		length := int(l)
		count := 0
		for chunk := range ChunksDefault(rangeSeq(0, length), size) {
			if len(chunk) != size {
				return false
			}
			count++
		}
		want := (length + size - 1) / size
		return count == want
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
