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
	"math"

	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/logging"
	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
)

var log = logging.GetGeneratorLog()

// ComputeEdgeArraySize returns how many edge slots worker rank must allocate
// for a run of m total edges split across size workers.
func ComputeEdgeArraySize(rank, size int, m uint64) uint64 {
	first, last := WorkerRange(rank, size, m)
	return last - first
}

// GenerateKronecker produces worker rank's slice of the canonical edge
// sequence. The returned Output holds exactly
// ComputeEdgeArraySize(rank, size, m) edges, laid out per mode.
func GenerateKronecker(rank, size int, seed [5]uint32, logN uint, m uint64, initiator types.Initiator, undirected bool, mode types.OutputMode) Output {
	assert.Fatal(rank >= 0 && rank < size, "rank %d out of range [0,%d)", rank, size)
	assert.Fatal(size >= 1, "size must be >= 1, got %d", size)
	assert.Fatal(!(seed[0] == 0 && seed[1] == 0 && seed[2] == 0 && seed[3] == 0 && seed[4] == 0), "seed must not be all zero")
	assert.Fatal(initiator.InBounds(), "initiator entries must lie in [0,1]")
	assert.Fatal(initiator.Normalized(1e-9), "initiator must sum to 1, got %f", initiator.Sum())

	s := int(math.Round(math.Sqrt(float64(len(initiator)))))
	assert.Fatal(s*s == len(initiator), "initiator length %d is not a perfect square", len(initiator))

	n := ipow(uint64(s), logN)
	first, last := WorkerRange(rank, size, m)
	count := last - first
	log.Debugf("rank %d/%d: generating edge range [%d, %d) of %d total (N=%d, %s)",
		rank, size, first, last, m, n, mode.String())

	var out Output
	out.Mode = mode
	switch mode {
	case types.KeepMultiplicity:
		out.Edges = make([]types.Edge, count)
	case types.TombstoneDuplicates:
		out.Pairs = make([]types.VertexID, 2*count)
	}

	p := &placer{
		s:           s,
		totalNVerts: n,
		initiator:   initiator,
		undirected:  undirected,
		myFirst:     first,
		myLast:      last,
		out:         &out,
	}

	root := rng.Seed(seed[0], seed[1], seed[2], seed[3], seed[4])
	if m > 0 {
		p.place(root, 0, m, n, 0, 0)
	}

	return out
}

// ipow computes base^exp over uint64, exp expected small (logN is typically
// well under 64).
func ipow(base uint64, exp uint) uint64 {
	result := uint64(1)
	for i := uint(0); i < exp; i++ {
		result *= base
	}
	return result
}
