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
	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
	"github.com/kgen/kronexus/util"
)

// Output is the caller-owned edge buffer a placer writes into; exactly one
// of Edges or Pairs is populated, selected by Mode.
type Output struct {
	Mode  types.OutputMode
	Edges []types.Edge
	Pairs []types.VertexID
}

// placer holds one generation run's fixed parameters: everything a call to
// place needs that does not change across the recursion.
type placer struct {
	s           int
	totalNVerts uint64
	initiator   types.Initiator
	undirected  bool
	myFirst     uint64
	myLast      uint64
	out         *Output
}

// place descends the Kronecker quadtree for one block. root
// is the untouched seed state for the whole run: every level re-derives its
// own stream position from root, rather than chaining skips, so the same
// block always sees the same randomness regardless of traversal order.
func (p *placer) place(root rng.State, fei, numEdges, nverts uint64, baseSrc, baseTgt types.VertexID) {
	state := root.Skip(0, (uint64(baseSrc)+p.totalNVerts)/nverts, (uint64(baseTgt)+p.totalNVerts)/nverts)

	if p.undirected {
		assert.Invariant(baseSrc <= baseTgt, "undirected block base_src=%d > base_tgt=%d", baseSrc, baseTgt)
	}

	switch {
	case nverts == 1:
		assert.Invariant(numEdges != 0, "leaf block at (%d,%d) with zero edges", baseSrc, baseTgt)
		p.writeEdges(fei, numEdges, baseSrc, baseTgt)
	case numEdges == 1:
		p.placeSingleEdge(&state, fei, nverts, baseSrc, baseTgt)
	default:
		p.placeRecursive(root, &state, fei, numEdges, nverts, baseSrc, baseTgt)
	}
}

// placeSingleEdge is the cheaper per-level categorical walk used once a
// block's edge count drops to one: it picks one quadrant per remaining
// level without recursing, then writes the terminal cell.
func (p *placer) placeSingleEdge(state *rng.State, fei, nverts uint64, baseSrc, baseTgt types.VertexID) {
	for nverts > 1 {
		square := PickQuadrant(p.initiator, state)
		srcOffset := square / p.s
		tgtOffset := square % p.s

		if p.undirected && baseSrc == baseTgt && srcOffset > tgtOffset {
			srcOffset, tgtOffset = tgtOffset, srcOffset
		}

		nverts /= uint64(p.s)
		baseSrc += types.VertexID(nverts) * types.VertexID(srcOffset)
		baseTgt += types.VertexID(nverts) * types.VertexID(tgtOffset)
	}
	p.writeEdges(fei, 1, baseSrc, baseTgt)
}

// placeRecursive is the general recursive case: it splits the
// block's edge count across the K sub-blocks, prunes sub-blocks whose
// edge-index interval falls entirely outside this worker's range, and
// descends into the rest in row-major order.
func (p *placer) placeRecursive(root rng.State, state *rng.State, fei, numEdges, nverts uint64, baseSrc, baseTgt types.VertexID) {
	counts := SplitCounts(numEdges, p.initiator, state)
	if p.undirected && baseSrc == baseTgt {
		FoldDiagonal(counts, p.s)
	}

	newNVerts := nverts / uint64(p.s)
	cur := fei
	for j, c := range counts {
		if c != 0 && intersects(cur, c, p.myFirst, p.myLast) {
			subSrc := baseSrc + types.VertexID(newNVerts)*types.VertexID(j/p.s)
			subTgt := baseTgt + types.VertexID(newNVerts)*types.VertexID(j%p.s)
			p.place(root, cur, c, newNVerts, subSrc, subTgt)
		}
		cur += c
	}
}

// writeEdges writes one leaf block's run of count edge indices starting at
// fei, silently dropping the block if fei itself falls outside this
// worker's [myFirst, myLast) range.
func (p *placer) writeEdges(fei, count uint64, src, tgt types.VertexID) {
	if fei < p.myFirst || fei >= p.myLast {
		return
	}
	offset := fei - p.myFirst

	switch p.out.Mode {
	case types.KeepMultiplicity:
		slot := &p.out.Edges[offset]
		assert.Invariant(slot.Unwritten(), "edge slot %d written twice", offset)
		slot.Src = src
		slot.Tgt = tgt
		slot.Multiplicity = count
	case types.TombstoneDuplicates:
		p.out.Pairs[2*offset] = src
		p.out.Pairs[2*offset+1] = tgt
		// A collapsed leaf whose duplicate run crosses myLast would spill
		// past this worker's slice; the slots beyond it belong to (and are
		// dropped by) the next rank, so the fill stops at the slice end.
		end := util.MinU64(count, p.myLast-fei)
		for i := uint64(1); i < end; i++ {
			p.out.Pairs[2*(offset+i)] = types.VertexSentinel
			p.out.Pairs[2*(offset+i)+1] = types.VertexSentinel
		}
	}
}
