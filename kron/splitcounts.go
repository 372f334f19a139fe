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

import (
	"github.com/kgen/kronexus/binomial"
	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
)

// directThreshold is the "E ≤ 20" cutoff between the direct and the
// conditional-binomial regimes of SplitCounts. This value, and the row-major
// sweep order used by both regimes, are part of the reproducibility
// contract: changing either changes the output for a fixed seed.
const directThreshold = 20

// SplitCounts partitions e edges across the K=len(initiator) sub-blocks of a
// Kronecker block: e independent categorical draws below the threshold,
// K-1 sequential conditional binomial draws above it.
func SplitCounts(e uint64, initiator types.Initiator, state *rng.State) []uint64 {
	counts := make([]uint64, len(initiator))
	if e <= directThreshold {
		for i := uint64(0); i < e; i++ {
			counts[PickQuadrant(initiator, state)]++
		}
		return counts
	}

	remaining := e
	divisor := initiator.Sum()
	for j := 0; j < len(initiator)-1; j++ {
		p := initiator[j] / divisor
		counts[j] = binomial.Draw(remaining, p, state)
		remaining -= counts[j]
		divisor -= initiator[j]
	}
	counts[len(counts)-1] = remaining
	return counts
}

// FoldDiagonal applies the undirected clip-and-flip to a diagonal block's
// sub-block counts: every strictly-below-diagonal quadrant is
// folded onto its mirror above the diagonal and zeroed, so the recursion
// never descends into a quadrant that would emit a src > tgt edge.
func FoldDiagonal(counts []uint64, s int) {
	for i := 0; i < s; i++ {
		for j := i + 1; j < s; j++ {
			counts[i*s+j] += counts[j*s+i]
			counts[j*s+i] = 0
		}
	}
}
