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

package kron

import "github.com/kgen/kronexus/util"

// WorkerRange returns the "remainder-in-front" balanced split of m edges
// across size workers: rank gets [first, last).
func WorkerRange(rank, size int, m uint64) (first, last uint64) {
	r := uint64(rank)
	n := uint64(size)
	first = r*(m/n) + util.MinU64(r, m%n)
	last = (r+1)*(m/n) + util.MinU64(r+1, m%n)
	return first, last
}

// pos is the three-valued position function: it says where an edge
// index falls relative to a worker's assigned [myFirst, myLast) range.
func pos(x, myFirst, myLast uint64) int {
	switch {
	case x < myFirst:
		return -1
	case x < myLast:
		return 0
	default:
		return 1
	}
}

// intersects applies the pruning test to the half-open edge-index interval
// [start, start+count) and a worker's [myFirst, myLast) range: the subtree is
// visited unless pos gives both start and start+count the same side of the
// range. Because the end is tested with pos, an interval that ends exactly at
// myFirst is also visited, although it shares no index with the range.
func intersects(start, count, myFirst, myLast uint64) bool {
	lhs := pos(start, myFirst, myLast)
	rhs := pos(start+count, myFirst, myLast)
	return lhs == 0 || rhs == 0 || lhs != rhs
}
