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

// generatorConfiguration holds the parameters of a single Kronecker-graph
// generation run.
type generatorConfiguration struct {
	Seed      [5]uint32
	LogN      uint
	Edges     uint64
	Initiator []float64

	// Undirected is false for the default "directed" mode and true to enable
	// clip-and-flip symmetrization for undirected graphs.
	Undirected bool

	// OutputMode is "keep_multiplicity" or "tombstone_duplicates".
	OutputMode string

	// Workers is the number of simulated worker ranks the CLI driver fans
	// generation out across.
	Workers int
}

// sets defaults which might be overwritten by the config file
func init() {
	Settings.Generator.Seed = [5]uint32{1, 2, 3, 4, 5}
	Settings.Generator.LogN = 16
	Settings.Generator.Edges = 1 << 18
	Settings.Generator.Initiator = []float64{0.57, 0.19, 0.19, 0.05}
	Settings.Generator.OutputMode = "keep_multiplicity"
	Settings.Generator.Workers = 1
}

func setupGenerator() {
	if len(Settings.Generator.Initiator) == 0 {
		Settings.Generator.Initiator = []float64{0.57, 0.19, 0.19, 0.05}
	}
	if Settings.Generator.Workers <= 0 {
		Settings.Generator.Workers = 1
	}
	if Settings.Generator.OutputMode == "" {
		Settings.Generator.OutputMode = "keep_multiplicity"
	}
}
