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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
)

func TestSplitCountsConservesTotalDirectRegime(t *testing.T) {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	state := rng.Seed(1, 2, 3, 4, 5)
	counts := SplitCounts(15, initiator, &state)

	var sum uint64
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, uint64(15), sum)
}

func TestSplitCountsConservesTotalBinomialRegime(t *testing.T) {
	initiator := types.Initiator{0.57, 0.19, 0.19, 0.05}
	state := rng.Seed(5, 4, 3, 2, 1)
	counts := SplitCounts(500, initiator, &state)

	var sum uint64
	for _, c := range counts {
		sum += c
	}
	assert.Equal(t, uint64(500), sum)
}

func TestSplitCountsThresholdBoundary(t *testing.T) {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	state := rng.Seed(7, 7, 7, 7, 7)

	exactlyDirect := SplitCounts(directThreshold, initiator, &state)
	var sum uint64
	for _, c := range exactlyDirect {
		sum += c
	}
	assert.Equal(t, uint64(directThreshold), sum)
}

func TestFoldDiagonalZerosBelowDiagonal(t *testing.T) {
	// S=2 layout: [0,0]=idx0 [0,1]=idx1 [1,0]=idx2 [1,1]=idx3
	counts := []uint64{3, 5, 7, 2}
	FoldDiagonal(counts, 2)

	assert.Equal(t, uint64(0), counts[2], "below-diagonal quadrant must be zeroed")
	assert.Equal(t, uint64(12), counts[1], "folded mass must land on the mirror above the diagonal")
	assert.Equal(t, uint64(3), counts[0])
	assert.Equal(t, uint64(2), counts[3])
}

func TestFoldDiagonalPreservesTotal(t *testing.T) {
	counts := []uint64{4, 6, 9, 1}
	var before uint64
	for _, c := range counts {
		before += c
	}
	FoldDiagonal(counts, 2)
	var after uint64
	for _, c := range counts {
		after += c
	}
	assert.Equal(t, before, after)
}
