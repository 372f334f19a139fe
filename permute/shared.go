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
	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/logging"
	"github.com/kgen/kronexus/rng"
)

var log = logging.GetPermuteLog()

// RandSortShared produces a reproducible permutation of [0,n), the
// Cong-Bader rand_sort variant: every element is hashed into a
// closed-indexing table under its own forked PRNG sub-stream, bucketed by
// hash-table index, and each bucket is canonically sorted then
// Fisher-Yates shuffled with a second forked sub-stream. workers bounds the
// goroutine pool used for the per-index bucket-count and gather+shuffle
// passes.
func RandSortShared(seed [5]uint32, n uint64, workers int) []uint64 {
	root := rng.Seed(seed[0], seed[1], seed[2], seed[3], seed[4])

	htSize := 2*n + 128
	log.Debugf("rand_sort_shared: n=%d hash table size=%d pool workers=%d", n, htSize, workers)
	table := newTable(htSize)

	// Hashing contends on shared slots (insertCAS may probe past an
	// in-flight neighbor), so this pass stays sequential even though the
	// passes below are index-independent and safe to pool.
	for i := uint64(0); i < n; i++ {
		s := root.Skip(1, i, 0)
		h := RandomUpTo(htSize, &s)
		insertCAS(table, h, i, h)
	}

	bucketStarts := make([]uint64, htSize)
	runPooled(workers, htSize, func(i uint64) {
		bucketStarts[i] = uint64(countKey(table, i, i))
	})

	var running uint64
	for i := uint64(0); i < htSize; i++ {
		old := running
		running += bucketStarts[i]
		bucketStarts[i] = old
	}
	assert.Invariant(running == n, "rand_sort_shared: bucket total %d != n %d", running, n)

	result := make([]uint64, n)
	runPooled(workers, htSize, func(i uint64) {
		dst := result[bucketStarts[i]:]
		count := gatherValues(table, i, i, dst)
		bucket := dst[:count]
		if count > 1 {
			SelectionSort(bucket)
			s := root.Skip(1, i, 100)
			FisherYatesShuffle(bucket, &s)
		}
	})

	return result
}
