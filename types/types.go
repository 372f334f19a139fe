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

// Package types holds the value types shared by the generator and the
// permutation packages: vertex and edge-index integers, the output-mode
// switch, and the initiator vector.
package types

import "fmt"

// VertexID indexes a vertex in [0, N). VertexSentinel is the tombstone value
// used by tombstone-mode output slots: the maximum representable value of the
// unsigned vertex type, i.e. the wraparound of -1.
type VertexID uint64

// VertexSentinel marks a deduplicated slot in tombstone-mode output.
const VertexSentinel VertexID = ^VertexID(0)

// IsTombstone reports whether v is the tombstone sentinel. Consumers must use
// this rather than comparing against a negative literal, since the sentinel
// is an unsigned wraparound of -1.
func (v VertexID) IsTombstone() bool {
	return v == VertexSentinel
}

// EdgeIndex identifies an edge's position in the canonical edge sequence,
// a global integer in [0, M).
type EdgeIndex uint64

// Edge is one record of keep-multiplicity output.
type Edge struct {
	Src          VertexID
	Tgt          VertexID
	Multiplicity uint64
}

// Unwritten reports whether the slot has not yet been written to (all-zero),
// the precondition the keep-multiplicity writer asserts before filling it.
func (e Edge) Unwritten() bool {
	return e.Multiplicity == 0
}

// OutputMode selects the shape of the generator's output buffer.
type OutputMode uint8

const (
	// KeepMultiplicity produces a dense []Edge array, multiplicity=0 marking
	// an unwritten slot.
	KeepMultiplicity OutputMode = iota
	// TombstoneDuplicates produces a flat [2*n]VertexID array with
	// (VertexSentinel, VertexSentinel) marking removed duplicates.
	TombstoneDuplicates
)

func (m OutputMode) String() string {
	switch m {
	case KeepMultiplicity:
		return "keep_multiplicity"
	case TombstoneDuplicates:
		return "tombstone_duplicates"
	default:
		return fmt.Sprintf("OutputMode(%d)", uint8(m))
	}
}

// ParseOutputMode parses the config-file spelling of an output mode.
func ParseOutputMode(s string) (OutputMode, bool) {
	switch s {
	case "keep_multiplicity", "":
		return KeepMultiplicity, true
	case "tombstone_duplicates":
		return TombstoneDuplicates, true
	default:
		return KeepMultiplicity, false
	}
}

// Initiator is a K=S*S probability vector; Sum() and InBounds() back the
// caller's obligation that it sums to 1 with entries in [0,1].
type Initiator []float64

// Sum returns the sum of the initiator's entries.
func (ini Initiator) Sum() float64 {
	var s float64
	for _, p := range ini {
		s += p
	}
	return s
}

// InBounds reports whether every entry lies in [0, 1].
func (ini Initiator) InBounds() bool {
	for _, p := range ini {
		if p < 0 || p > 1 {
			return false
		}
	}
	return true
}

// Normalized reports whether the initiator sums to 1 within tolerance eps.
func (ini Initiator) Normalized(eps float64) bool {
	d := ini.Sum() - 1
	if d < 0 {
		d = -d
	}
	return d <= eps
}
