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

// Package permute implements the Cong-Bader rand_sort permutation generator:
// a closed-indexing hash table used as a bucket sort, with a canonical sort
// and a forked-PRNG shuffle within each bucket so the result is reproducible
// regardless of worker count.
package permute

import "github.com/kgen/kronexus/assert"

// emptyIndex marks an unused hash-table slot.
const emptyIndex = ^uint64(0)

// slot is one closed-indexing hash-table cell: {index, value} with
// index=emptyIndex denoting an empty cell.
type slot struct {
	index uint64
	value uint64
}

func newTable(size uint64) []slot {
	t := make([]slot, size)
	for i := range t {
		t[i].index = emptyIndex
	}
	return t
}

// insertCAS claims the first empty slot starting at hashval (wrapping
// around the table) and stores {index, value} there. On a sequential target
// compare-and-set degenerates to the plain conditional store below; the
// abstraction it models is "atomically claim the slot if empty".
func insertCAS(table []slot, index, value, hashval uint64) {
	size := uint64(len(table))
	for i := hashval; i < size; i++ {
		if table[i].index == emptyIndex {
			table[i].index = index
			table[i].value = value
			return
		}
	}
	for i := uint64(0); i < hashval; i++ {
		if table[i].index == emptyIndex {
			table[i].index = index
			table[i].value = value
			return
		}
	}
	assert.Invariant(false, "hash table overflow inserting index %d", index)
}

// countKey counts slots holding key index, probing from hashval and
// stopping at the first empty slot (wrapping once around the table).
func countKey(table []slot, index, hashval uint64) int {
	size := uint64(len(table))
	count := 0
	var i uint64
	for i = hashval; i < size && table[i].index != emptyIndex; i++ {
		if table[i].index == index {
			count++
		}
	}
	if i == size {
		for i = 0; i < hashval && table[i].index != emptyIndex; i++ {
			if table[i].index == index {
				count++
			}
		}
	}
	return count
}

// gatherValues copies every value stored under key index into dst, using
// the same probe order as countKey, and returns the count written.
func gatherValues(table []slot, index, hashval uint64, dst []uint64) int {
	size := uint64(len(table))
	x := 0
	var i uint64
	for i = hashval; i < size && table[i].index != emptyIndex; i++ {
		if table[i].index == index {
			dst[x] = table[i].value
			x++
		}
	}
	if i == size {
		for i = 0; i < hashval && table[i].index != emptyIndex; i++ {
			if table[i].index == index {
				dst[x] = table[i].value
				x++
			}
		}
	}
	return x
}
