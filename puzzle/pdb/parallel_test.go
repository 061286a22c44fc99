package pdb

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterateParallelCoversEveryIndexExactlyOnce(t *testing.T) {
	const n = uint64(50000)

	for _, jobs := range []int{1, 4, 17} {
		var mu sync.Mutex
		var seen []uint64

		IterateParallel(n, jobs, func(start, end uint64) {
			chunk := make([]uint64, 0, end-start)
			for i := start; i < end; i++ {
				chunk = append(chunk, i)
			}
			mu.Lock()
			seen = append(seen, chunk...)
			mu.Unlock()
		})

		require.Len(t, seen, int(n), "jobs=%d", jobs)
		sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
		for i, v := range seen {
			require.Equal(t, uint64(i), v, "jobs=%d", jobs)
		}
	}
}

func TestIterateParallelClampsJobCount(t *testing.T) {
	var calls int32
	IterateParallel(1, 1000, func(start, end uint64) {
		calls++
	})
	require.Equal(t, int32(1), calls)
}
