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

func TestPickQuadrantAlwaysZeroWithDegenerateInitiator(t *testing.T) {
	initiator := types.Initiator{1, 0, 0, 0}
	state := rng.Seed(1, 2, 3, 4, 5)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 0, PickQuadrant(initiator, &state))
	}
}

func TestPickQuadrantInRange(t *testing.T) {
	initiator := types.Initiator{0.1, 0.2, 0.3, 0.4}
	state := rng.Seed(9, 9, 9, 9, 9)
	for i := 0; i < 5000; i++ {
		j := PickQuadrant(initiator, &state)
		assert.GreaterOrEqual(t, j, 0)
		assert.Less(t, j, 4)
	}
}

func TestPickQuadrantLastIndexFallback(t *testing.T) {
	// A sum slightly over 1 must still resolve to a valid index via the
	// last-index fallback, never falling off the end of the sweep.
	initiator := types.Initiator{0.3, 0.3, 0.3, 0.3}
	state := rng.Seed(1, 1, 1, 1, 1)
	for i := 0; i < 5000; i++ {
		j := PickQuadrant(initiator, &state)
		assert.GreaterOrEqual(t, j, 0)
		assert.Less(t, j, 4)
	}
}
