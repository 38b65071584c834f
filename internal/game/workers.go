package game

import (
	"runtime"
	"sync"
)

// workerPool parallelizes independent per-element passes within one
// simulation step. Runs are fully joined before returning: step N+1 never
// observes in-flight work from step N.
type workerPool struct {
	workers int
}

func newWorkerPool() *workerPool {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if n > 8 {
		n = 8
	}
	return &workerPool{workers: n}
}

// run partitions [0,count) into contiguous spans, one per worker, and
// blocks until every span has been processed. fn receives its worker index
// so passes needing scratch buffers can keep one per worker; fn must not
// touch elements outside its span.
func (wp *workerPool) run(count int, fn func(worker, start, end int)) {
	if count <= 0 {
		return
	}
	workers := wp.workers
	if count < workers*64 {
		// Not worth the fan-out for small element counts.
		fn(0, 0, count)
		return
	}
	span := (count + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * span
		end := start + span
		if end > count {
			end = count
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(idx, s, e int) {
			defer wg.Done()
			fn(idx, s, e)
		}(w, start, end)
	}
	wg.Wait()
}
