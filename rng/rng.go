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

// Package rng implements the splittable, skippable PRNG facade the
// generator and the permutation routines are built on. It satisfies the
// addressing contract (a pure-functional Skip, a plain value-type state,
// position-addressable draws) without claiming bitwise parity with any
// particular multiple-recursive generator.
package rng

import "math/bits"

// maxUint31 is the exclusive upper bound of Uint31's range.
const maxUint31 = 0x7FFFFFFF

// State is the PRNG's addressable position: five seed words plus a stream
// offset. It is a plain value type with no hidden ownership, so a caller
// forks a child computation simply by copying it (Go's normal struct copy
// semantics) before calling Skip, exactly as the design calls for.
type State struct {
	seed     [5]uint32
	position uint64
	draws    uint64
}

// Seed creates the root stream state from five words. It does not validate
// them: kron.GenerateKronecker aborts on an all-zero seed, no caller checks
// the range of the individual words, and the permute entry points accept
// any seed.
func Seed(s0, s1, s2, s3, s4 uint32) State {
	return State{seed: [5]uint32{s0, s1, s2, s3, s4}}
}

// Skip returns a NEW state advanced by n0 + 2^31*n1 + 2^62*n2 steps from s,
// without modifying s. This is the position-addressing primitive: every
// (block, element) in the recursion tree maps to a unique offset here, so
// any worker that visits the same block sees the same subsequent draws.
func (s State) Skip(n0, n1, n2 uint64) State {
	offset := n0 + (n1 << 31) + (n2 << 62)
	return State{seed: s.seed, position: s.position + offset, draws: 0}
}

// Float64 draws the next uniform double in [0, 1) from the stream, mutating
// s's internal draw counter (not its position: repeated draws from the same
// Skip-addressed position are consumed in a fixed, deterministic order).
func (s *State) Float64() float64 {
	s.draws++
	w := mix(s.seed, s.position, s.draws)
	return float64(w>>11) * (1.0 / (1 << 53))
}

// Uint31 draws the next uniform integer in [0, 2^31 - 1) from the stream.
func (s *State) Uint31() uint32 {
	s.draws++
	w := mix(s.seed, s.position, s.draws)
	return uint32(w % maxUint31)
}

// mix combines the seed words with the stream position and the in-position
// draw count into a 64-bit pseudorandom word. The avalanche is a splitmix64
// fold over the seed followed by the xorshift64* finalizer used by the
// reference xorshift stream this package generalizes: its shift amounts
// (25, 27, 12) and multiplier, applied here in the order <<25, >>27, >>12
// to a counter-derived state instead of a running single word, so draws
// stay addressable by (position, draws) alone.
func mix(seed [5]uint32, position, draws uint64) uint64 {
	h := uint64(0x9E3779B97F4A7C15)
	for _, w := range seed {
		h ^= uint64(w)
		h *= 0xD1B54A32D192ED03
		h = bits.RotateLeft64(h, 29)
	}
	h ^= position
	h *= 0xBF58476D1CE4E5B9
	h ^= position >> 31
	h ^= draws * 0x94D049BB133111EB

	h ^= h << 25
	h ^= h >> 27
	h ^= h >> 12
	return h * 2685821657736338717
}
