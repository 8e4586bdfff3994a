package audit

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// chunksPerWorker oversplits the outer index range: pairwise scans visit
// j > i, so early chunks carry more pairs than late ones.
const chunksPerWorker = 4

// chunks splits [0, n) into contiguous ranges for the given worker count.
func chunks(n, workers int) [][2]int {
	parts := workers * chunksPerWorker
	if parts > n {
		parts = n
	}
	if parts < 1 {
		return nil
	}
	out := make([][2]int, 0, parts)
	size := n / parts
	rem := n % parts
	lo := 0
	for k := 0; k < parts; k++ {
		hi := lo + size
		if k < rem {
			hi++
		}
		out = append(out, [2]int{lo, hi})
		lo = hi
	}
	return out
}

func never() bool { return false }

// run executes fn over every chunk on at most workers goroutines.
func run(n, workers int, fn func(k, lo, hi int)) {
	var g errgroup.Group
	g.SetLimit(workers)
	for k, c := range chunks(n, workers) {
		k, c := k, c
		g.Go(func() error {
			fn(k, c[0], c[1])
			return nil
		})
	}
	_ = g.Wait()
}

// anyChunk is a boolean-or reduction over the outer index range. stop lets a
// chunk abandon its scan once another chunk has found a match.
func anyChunk(n, workers int, fn func(lo, hi int, stop func() bool) bool) bool {
	if workers <= 1 || n < 2 {
		return fn(0, n, never)
	}
	var found atomic.Bool
	run(n, workers, func(_, lo, hi int) {
		if fn(lo, hi, found.Load) {
			found.Store(true)
		}
	})
	return found.Load()
}

// maxChunk is a maximum reduction. Once any chunk reaches bound the others
// are told to stop.
func maxChunk(n, workers, bound int, fn func(lo, hi int, stop func() bool) int) int {
	if workers <= 1 || n < 2 {
		return fn(0, n, never)
	}
	var done atomic.Bool
	parts := make([]int, len(chunks(n, workers)))
	run(n, workers, func(k, lo, hi int) {
		parts[k] = fn(lo, hi, done.Load)
		if parts[k] >= bound {
			done.Store(true)
		}
	})
	best := 0
	for _, v := range parts {
		best = max(best, v)
	}
	return best
}

// minChunk is a minimum reduction over chunks that may find nothing
// (ok == false). Once any chunk reaches floor the others are told to stop.
func minChunk(n, workers, floor int, fn func(lo, hi int, stop func() bool) (int, bool)) (int, bool) {
	if workers <= 1 || n < 2 {
		return fn(0, n, never)
	}
	var done atomic.Bool
	type part struct {
		v  int
		ok bool
	}
	parts := make([]part, len(chunks(n, workers)))
	run(n, workers, func(k, lo, hi int) {
		v, ok := fn(lo, hi, done.Load)
		parts[k] = part{v, ok}
		if ok && v <= floor {
			done.Store(true)
		}
	})
	best, found := 0, false
	for _, p := range parts {
		if p.ok && (!found || p.v < best) {
			best, found = p.v, true
		}
	}
	return best, found
}

// sumChunk is a sum reduction; every chunk runs to completion.
func sumChunk(n, workers int, fn func(lo, hi int) (sum, count int64)) (int64, int64) {
	if workers <= 1 || n < 2 {
		return fn(0, n)
	}
	sums := make([][2]int64, len(chunks(n, workers)))
	run(n, workers, func(k, lo, hi int) {
		s, c := fn(lo, hi)
		sums[k] = [2]int64{s, c}
	})
	var sum, count int64
	for _, s := range sums {
		sum += s[0]
		count += s[1]
	}
	return sum, count
}
