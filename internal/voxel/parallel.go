package voxel

import (
	"runtime"
	"sync"
)

// parallelFor fans fn out over [0, n) across up to runtime.NumCPU workers in
// contiguous chunks. fn must be safe to call concurrently for distinct i and
// must not share mutable state across rows. Results land at their row index,
// so output order is row order regardless of completion order.
func parallelFor(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// chunkBounds splits [0, n) into contiguous chunks for up to
// runtime.NumCPU workers, returning the half-open bounds of each chunk.
func chunkBounds(n int) [][2]int {
	if n == 0 {
		return nil
	}
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var bounds [][2]int
	for lo := 0; lo < n; lo += chunk {
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		bounds = append(bounds, [2]int{lo, hi})
	}
	return bounds
}
