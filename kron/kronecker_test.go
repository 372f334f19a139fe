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

	"github.com/kgen/kronexus/types"
)

var concreteSeed = [5]uint32{1, 2, 3, 4, 5}

// Scenario 1: single-worker output must equal the two-worker output
// concatenated in rank order, and total multiplicity must equal M.
func TestScenario1SizeInvariance(t *testing.T) {
	initiator := types.Initiator{0.57, 0.19, 0.19, 0.05}
	const logN, m = 4, 32

	single := GenerateKronecker(0, 1, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)

	out0 := GenerateKronecker(0, 2, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)
	out1 := GenerateKronecker(1, 2, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)
	combined := append(append([]types.Edge{}, out0.Edges...), out1.Edges...)

	assert.Equal(t, single.Edges, combined)

	var totalMult uint64
	for _, e := range single.Edges {
		totalMult += e.Multiplicity
	}
	assert.Equal(t, uint64(m), totalMult)
}

// Scenario 2: undirected run, all edges within bounds and src <= tgt.
func TestScenario2UndirectedBoundsAndOrder(t *testing.T) {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	const logN, m = 10, 8000
	n := uint64(1) << logN

	out := GenerateKronecker(0, 1, concreteSeed, logN, m, initiator, true, types.KeepMultiplicity)
	for _, e := range out.Edges {
		assert.Less(t, uint64(e.Src), n)
		assert.Less(t, uint64(e.Tgt), n)
		assert.LessOrEqual(t, uint64(e.Src), uint64(e.Tgt))
	}
}

// Scenario 3: logN=6, M=2, 16 workers: at most two workers' slices are
// non-empty, and the populated edges match the single-worker run.
func TestScenario3SparseWorkerDistribution(t *testing.T) {
	initiator := types.Initiator{0.57, 0.19, 0.19, 0.05}
	const logN, m, workers = 6, 2, 16

	single := GenerateKronecker(0, 1, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)

	var gathered []types.Edge
	nonEmpty := 0
	for rank := 0; rank < workers; rank++ {
		out := GenerateKronecker(rank, workers, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)
		any := false
		for _, e := range out.Edges {
			if !e.Unwritten() {
				any = true
			}
			gathered = append(gathered, e)
		}
		if any {
			nonEmpty++
		}
	}
	assert.LessOrEqual(t, nonEmpty, 2)
	assert.Equal(t, single.Edges, gathered)
}

// Scenario 5: a degenerate initiator forces a fully deterministic single
// edge at (0,0) with multiplicity 1.
func TestScenario5DegenerateInitiatorSingleEdge(t *testing.T) {
	initiator := types.Initiator{1, 0, 0, 0}
	const logN, m = 4, 1

	out := GenerateKronecker(0, 1, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)
	assert.Len(t, out.Edges, 1)
	assert.Equal(t, types.VertexID(0), out.Edges[0].Src)
	assert.Equal(t, types.VertexID(0), out.Edges[0].Tgt)
	assert.Equal(t, uint64(1), out.Edges[0].Multiplicity)
}

func TestComputeEdgeArraySizeMatchesGeneratedLength(t *testing.T) {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	const logN, m = 8, 777
	for rank := 0; rank < 5; rank++ {
		size := ComputeEdgeArraySize(rank, 5, m)
		out := GenerateKronecker(rank, 5, concreteSeed, logN, m, initiator, false, types.KeepMultiplicity)
		assert.Equal(t, size, uint64(len(out.Edges)))
	}
}

func TestTombstoneModeEdgeCountConservation(t *testing.T) {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	const logN, m = 6, 300

	out := GenerateKronecker(0, 1, concreteSeed, logN, m, initiator, false, types.TombstoneDuplicates)
	assert.Len(t, out.Pairs, int(2*m))

	nonTombstones := 0
	for i := 0; i < len(out.Pairs); i += 2 {
		if !out.Pairs[i].IsTombstone() {
			nonTombstones++
		}
	}
	assert.Greater(t, nonTombstones, 0)
	assert.LessOrEqual(t, nonTombstones, int(m))
}
