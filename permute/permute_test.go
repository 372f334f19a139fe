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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgen/kronexus/rng"
)

var permSeed = [5]uint32{1, 2, 3, 4, 5}

// rand_sort of n=1000 must sort back to 0..999.
func TestScenario4SharedIsPermutation(t *testing.T) {
	const n = 1000
	result := RandSortShared(permSeed, n, 1)
	assertIsPermutation(t, result, n)
}

func TestRandSortSharedWorkerCountInvariant(t *testing.T) {
	const n = 2000
	single := RandSortShared(permSeed, n, 1)
	pooled := RandSortShared(permSeed, n, 4)
	assert.Equal(t, single, pooled)
}

func TestRandSortDistributedMatchesShared(t *testing.T) {
	const n = 1500
	shared := RandSortShared(permSeed, n, 1)

	for _, ranks := range []int{1, 3, 5} {
		parts := RandSortDistributed(permSeed, n, ranks)
		var combined []uint64
		for _, p := range parts {
			combined = append(combined, p...)
		}
		assert.Equal(t, shared, combined, "ranks=%d", ranks)
	}
}

func TestRandSortDistributedIsPermutation(t *testing.T) {
	const n = 777
	parts := RandSortDistributed(permSeed, n, 6)
	var combined []uint64
	for _, p := range parts {
		combined = append(combined, p...)
	}
	assertIsPermutation(t, combined, n)
}

func TestSelectionSortStableSmall(t *testing.T) {
	vals := []uint64{5, 3, 3, 1, 4}
	SelectionSort(vals)
	assert.Equal(t, []uint64{1, 3, 3, 4, 5}, vals)
}

func TestFisherYatesShuffleIsPermutationOfInput(t *testing.T) {
	vals := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	before := append([]uint64{}, vals...)
	state := rng.Seed(1, 1, 1, 1, 1)
	FisherYatesShuffle(vals, &state)

	sorted := append([]uint64{}, vals...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	beforeSorted := append([]uint64{}, before...)
	sort.Slice(beforeSorted, func(i, j int) bool { return beforeSorted[i] < beforeSorted[j] })
	assert.Equal(t, beforeSorted, sorted)
}

func TestRandomUptoFastPathInRange(t *testing.T) {
	state := rng.Seed(2, 4, 6, 8, 10)
	for i := 0; i < 5000; i++ {
		v := RandomUpTo(1000, &state)
		assert.Less(t, v, uint64(1000))
	}
}

func TestRandomUptoWidePathInRange(t *testing.T) {
	state := rng.Seed(3, 1, 4, 1, 5)
	const n = uint64(1) << 40
	for i := 0; i < 2000; i++ {
		v := RandomUpTo(n, &state)
		assert.Less(t, v, n)
	}
}

// random_up_to(3) called many times with a fresh fork each time stays
// close to uniform across its three buckets.
func TestScenario6RandomUptoUnbiased(t *testing.T) {
	const trials = 300000
	root := rng.Seed(1, 2, 3, 4, 5)
	var buckets [3]int
	for i := 0; i < trials; i++ {
		s := root.Skip(uint64(i), 0, 0)
		buckets[RandomUpTo(3, &s)]++
	}
	for _, c := range buckets {
		frac := float64(c) / float64(trials)
		assert.InDelta(t, 1.0/3.0, frac, 0.01)
	}
}

func assertIsPermutation(t *testing.T, result []uint64, n uint64) {
	t.Helper()
	assert.Len(t, result, int(n))
	sorted := append([]uint64{}, result...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, v := range sorted {
		assert.Equal(t, uint64(i), v)
	}
}
