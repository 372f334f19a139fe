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

package config

// permutationConfiguration holds the parameters of a rand_sort run.
type permutationConfiguration struct {
	Size uint64

	// PoolWorkers bounds the goroutine pool used by the shared-memory
	// variant's bucket-count and gather-shuffle passes; table init and
	// hashing run sequentially.
	PoolWorkers int

	// Ranks is the number of simulated ranks the distributed variant splits
	// the hash table and the input elements across.
	Ranks int
}

func init() {
	Settings.Permutation.Size = 1 << 16
	Settings.Permutation.PoolWorkers = 4
	Settings.Permutation.Ranks = 1
}

func setupPermutation() {
	if Settings.Permutation.PoolWorkers <= 0 {
		Settings.Permutation.PoolWorkers = 4
	}
	if Settings.Permutation.Ranks <= 0 {
		Settings.Permutation.Ranks = 1
	}
}
