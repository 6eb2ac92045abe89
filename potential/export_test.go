// SPDX-License-Identifier: MIT

package potential

// White-box bridge for potential_test. Lives in a _test.go file so the
// wrappers never reach the production API.

// ParallelRangeTestOnly exposes the column splitter used by the parallel sweep.
func ParallelRangeTestOnly(start, end, workers int, fn func(lo, hi int)) {
	parallelRange(start, end, workers, fn)
}
