package study

import "sync"

// forEachParameter executes fn over contiguous chunks covering [0, n),
// fanned out to at most workers goroutines. Parameters share no mutable
// state and every chunk owns a disjoint slice of the output array, so no
// synchronization is needed beyond the final join.
func forEachParameter(n, workers int, fn func(start, end int)) {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if start >= n {
			break
		}
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
