package potential

import "golang.org/x/sync/errgroup"

// parallelRange calls fn on contiguous sub-ranges of [start,end) with at
// most workers of them in flight, and waits for all to return.
func parallelRange(start, end, workers int, fn func(lo, hi int)) {
	total := end - start
	if total <= 0 {
		return
	}
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := start; lo < end; lo += chunk {
		hi := min(lo+chunk, end)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait() // fn never fails
}
