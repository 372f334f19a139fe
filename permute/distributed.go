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
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/rng"
)

// kvPair is one (hash-table index, global element index) pair in flight
// between the local hashing phase and the all-to-all exchange.
type kvPair struct {
	index uint64
	value uint64
}

// RandSortDistributed simulates the distributed rand_sort variant across
// `ranks` in-process goroutines standing in for MPI ranks: the all-to-all
// exchange is a plain in-memory gather between the two errgroup phases
// instead of a real collective. It returns one slice per rank; the
// concatenation of those slices in rank order is the same permutation
// RandSortShared would produce for the same seed and n.
func RandSortDistributed(seed [5]uint32, n uint64, ranks int) [][]uint64 {
	assert.Fatal(ranks >= 1, "RandSortDistributed: ranks must be >= 1, got %d", ranks)

	root := rng.Seed(seed[0], seed[1], seed[2], seed[3], seed[4])
	size := uint64(ranks)
	htTotal := 2*n + 128
	log.Debugf("rand_sort_distributed: n=%d hash table size=%d ranks=%d", n, htTotal, ranks)

	base := htTotal / size
	cutoffRank := htTotal % size
	cutoffIndex := cutoffRank * (base + 1)

	htStart := func(rank uint64) uint64 {
		if rank < cutoffRank {
			return rank * (base + 1)
		}
		return cutoffIndex + (rank-cutoffRank)*base
	}
	owner := func(e uint64) uint64 {
		if e < cutoffIndex {
			return e / (base + 1)
		}
		return cutoffRank + (e-cutoffIndex)/base
	}

	// sendBuf[src][dest] holds the pairs rank src computed for rank dest's
	// hash-table slice -- the payload an MPI_Alltoallv would carry.
	sendBuf := make([][][]kvPair, ranks)
	for r := range sendBuf {
		sendBuf[r] = make([][]kvPair, ranks)
	}

	hashPhase, _ := errgroup.WithContext(context.Background())
	for r := 0; r < ranks; r++ {
		r := r
		hashPhase.Go(func() error {
			rankU := uint64(r)
			eltCount := n / size
			if rankU < n%size {
				eltCount++
			}
			for i := uint64(0); i < eltCount; i++ {
				globalIdx := i*size + rankU
				s := root.Skip(1, globalIdx, 0)
				h := RandomUpTo(htTotal, &s)
				dest := owner(h)
				sendBuf[r][dest] = append(sendBuf[r][dest], kvPair{index: h, value: globalIdx})
			}
			return nil
		})
	}
	assert.Fatal(hashPhase.Wait() == nil, "RandSortDistributed: local hashing phase failed")

	// The all-to-all: gather every source's contribution to each
	// destination's slice.
	recvBuf := make([][]kvPair, ranks)
	for dest := 0; dest < ranks; dest++ {
		for src := 0; src < ranks; src++ {
			recvBuf[dest] = append(recvBuf[dest], sendBuf[src][dest]...)
		}
	}

	results := make([][]uint64, ranks)
	localPhase, _ := errgroup.WithContext(context.Background())
	for r := 0; r < ranks; r++ {
		r := r
		localPhase.Go(func() error {
			rankU := uint64(r)
			myStart := htStart(rankU)
			myEnd := htStart(rankU + 1)
			mySize := myEnd - myStart

			table := newTable(mySize)
			for _, kv := range recvBuf[r] {
				assert.Invariant(owner(kv.index) == rankU, "rand_sort_distributed: misrouted index %d to rank %d", kv.index, r)
				local := kv.index - myStart
				insertCAS(table, local, kv.value, local)
			}

			bucketStarts := make([]uint64, mySize)
			for i := uint64(0); i < mySize; i++ {
				bucketStarts[i] = uint64(countKey(table, i, i))
			}
			var running uint64
			for i := uint64(0); i < mySize; i++ {
				old := running
				running += bucketStarts[i]
				bucketStarts[i] = old
			}
			total := uint64(len(recvBuf[r]))
			assert.Invariant(running == total, "rand_sort_distributed: bucket total %d != local count %d", running, total)

			local := make([]uint64, total)
			for i := uint64(0); i < mySize; i++ {
				dst := local[bucketStarts[i]:]
				count := gatherValues(table, i, i, dst)
				bucket := dst[:count]
				if count > 1 {
					SelectionSort(bucket)
					s := root.Skip(1, myStart+i, 100)
					FisherYatesShuffle(bucket, &s)
				}
			}
			results[r] = local
			return nil
		})
	}
	assert.Fatal(localPhase.Wait() == nil, "RandSortDistributed: local bucketing phase failed")

	return results
}
