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

// Package kron implements the recursive Kronecker-graph edge placer: the
// categorical sampler, the quadrant-count splitter, undirected clip-and-flip,
// the work-range pruning filter, and the entry points that tie them together.
package kron

import (
	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
)

// PickQuadrant draws a quadrant index j in [0,K) from the initiator
// distribution. The sweep order is row-major and the
// last-index fallback absorbs floating-point slack; both are part of the
// reproducibility contract, not incidental implementation choices.
func PickQuadrant(initiator types.Initiator, state *rng.State) int {
	u := state.Float64()
	last := len(initiator) - 1
	for j, p := range initiator {
		if j == last || u < p {
			return j
		}
		u -= p
	}
	return last
}
