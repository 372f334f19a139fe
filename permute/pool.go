/*
 * kronexus - deterministic parallel Kronecker-graph generator
 *
 * MIT License
 *
 * Copyright (c) 2018-2026 The kronexus authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package permute

import (
	"strconv"

	"github.com/frankkopp/workerpool"
)

// rangeJob applies fn to every index in [from, to); one job covers one
// worker-sized chunk of the table rather than a single index, so the pool's
// queueing overhead stays negligible against the per-index work.
type rangeJob struct {
	from, to uint64
	fn       func(uint64)
}

func (j *rangeJob) Run() error {
	for i := j.from; i < j.to; i++ {
		j.fn(i)
	}
	return nil
}

func (j *rangeJob) Id() string {
	return "range-" + strconv.FormatUint(j.from, 10)
}

// runPooled applies fn to every index in [0, count) using a bounded worker
// pool, falling back to a sequential loop when workers <= 1. Every call is
// independent of every other, so fn is free to run out of order or
// concurrently; callers must not rely on completion order.
func runPooled(workers int, count uint64, fn func(uint64)) {
	if workers <= 1 || count == 0 {
		for i := uint64(0); i < count; i++ {
			fn(i)
		}
		return
	}

	chunks := uint64(4 * workers)
	chunkSize := (count + chunks - 1) / chunks

	pool := workerpool.NewWorkerPool(workers, int(chunks), true)
	queued := 0
	for from := uint64(0); from < count; from += chunkSize {
		to := from + chunkSize
		if to > count {
			to = count
		}
		_ = pool.QueueJob(&rangeJob{from: from, to: to, fn: fn})
		queued++
	}
	pool.Close()
	for i := 0; i < queued; i++ {
		pool.GetFinishedWait()
	}
	pool.Stop()
}
