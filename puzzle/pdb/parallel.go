package pdb

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ChunkSize is the number of consecutive indices a single claim grants
// a worker in IterateParallel.
const ChunkSize = 4096

// MaxJobs is the hard ceiling on worker count, mirroring the
// original's compile-time PDB_MAX_JOBS.
const MaxJobs = 64

// Kernel processes the index range [start, end).
type Kernel func(start, end uint64)

// IterateParallel exposes the index range [0, n) as work, claimed in
// contiguous chunks of ChunkSize by a shared atomic counter so that
// workers load-balance dynamically rather than by static partition.
// jobs is clamped to [1, MaxJobs]; jobs == 1 runs the kernel directly
// on the calling goroutine, skipping the worker pool entirely (the
// original skips thread creation in this case to simplify debugging).
func IterateParallel(n uint64, jobs int, kernel Kernel) {
	if jobs < 1 {
		jobs = 1
	}
	if jobs > MaxJobs {
		jobs = MaxJobs
	}

	if jobs == 1 {
		kernel(0, n)
		return
	}

	var cursor uint64
	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < jobs; w++ {
		g.Go(func() error {
			for {
				start := atomic.AddUint64(&cursor, ChunkSize) - ChunkSize
				if start >= n {
					return nil
				}
				end := start + ChunkSize
				if end > n {
					end = n
				}
				kernel(start, end)
			}
		})
	}
	// Goroutine creation cannot fail the way pthread_create can; the
	// original's "abort only if the first worker fails to start"
	// contract has no Go analogue and is satisfied vacuously. A
	// kernel panic still propagates normally once Wait returns.
	_ = g.Wait()
}
