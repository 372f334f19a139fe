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

package permute

import (
	"github.com/kgen/kronexus/assert"
	"github.com/kgen/kronexus/rng"
)

// uint31Limit is the PRNG's documented draw range, [0, uint31Limit).
const uint31Limit = 0x7FFFFFFF

// uint62Limit is the largest n the composed two-draw path can serve.
const uint62Limit = 0x3FFFFFFF00000001

// RandomUpTo draws an unbiased uniform integer in [0, n) from state.
// Up to 2^31-1 it rejection-samples a single draw; above that it composes
// two draws in a fixed order. The reproducibility contract depends on that
// draw order, not just on the final value.
func RandomUpTo(n uint64, state *rng.State) uint64 {
	assert.Fatal(n > 0 && n <= uint62Limit, "RandomUpTo: n=%d out of supported range", n)

	if n == 1 {
		return 0
	}

	if n <= uint31Limit {
		limit := (uint31Limit / n) * n
		for {
			v := uint64(state.Uint31())
			if v >= limit {
				continue
			}
			return v % n
		}
	}

	limit := (uint62Limit / n) * n
	for {
		v := uint64(state.Uint31()) * uint31Limit
		v += uint64(state.Uint31())
		if v >= limit {
			continue
		}
		return v % n
	}
}
