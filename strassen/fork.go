// SPDX-License-Identifier: MIT

// Package strassen - fork/join helpers.
//
// Two axes of parallelism are expressed here and nowhere else:
//   - task fan-out (forkJoin): independent steps of one frame (the ten sums,
//     the seven products, the four combinations) run as sibling goroutines
//     and are joined before the frame moves on;
//   - row bands (forEachBand): one elementwise step over a tall region is cut
//     into contiguous row ranges processed concurrently.
//
// Whether either axis is used is decided by the caller from a pure function
// of the frame depth (Multiplier.Forks); the helpers only execute the
// decision. Tasks write disjoint regions by construction, so no locks exist.

package strassen

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// forkJoin runs tasks and returns the first non-nil error.
// fork == false: tasks run in order on the calling goroutine and the first
// failure stops the sequence. fork == true: every task runs in its own
// goroutine; Wait is the join barrier, so all tasks have finished when
// forkJoin returns, whether or not one of them failed.
func forkJoin(fork bool, tasks ...func() error) error {
	if !fork {
		for _, task := range tasks {
			if err := task(); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	for _, task := range tasks {
		g.Go(task)
	}

	return g.Wait()
}

// forEachBand calls fn over contiguous row ranges [lo, hi) covering [0, n).
// Bands are only formed when fork is set and n holds at least two grains;
// their count is capped by GOMAXPROCS. Otherwise fn(0, n) runs inline.
func forEachBand(fork bool, n, grain int, fn func(lo, hi int) error) error {
	workers := 1
	if fork && grain > 0 {
		workers = min(runtime.GOMAXPROCS(0), n/grain)
	}
	if workers <= 1 {
		return fn(0, n)
	}

	// Ceil division so the last band absorbs the remainder.
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
