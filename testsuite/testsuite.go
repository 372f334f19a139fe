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

// Package testsuite runs the generator's built-in end-to-end scenarios as a
// batch and reports a pass/fail summary per scenario. The scenarios cover
// worker-count invariance of the edge list and the permutation, edge-count
// conservation, vertex bounds, the undirected ordering guarantee, sparse
// worker distributions and the uniformity of the unbiased integer draw.
package testsuite

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kgen/kronexus/kron"
	"github.com/kgen/kronexus/logging"
	"github.com/kgen/kronexus/permute"
	"github.com/kgen/kronexus/rng"
	"github.com/kgen/kronexus/types"
)

var out = message.NewPrinter(language.English)
var log = logging.GetLog()

// resultType define possible results for a scenario as a type and constants
type resultType uint8

const (
	NotTested resultType = iota
	Failed    resultType = iota
	Success   resultType = iota
)

func (rt resultType) String() string {
	switch rt {
	case Failed:
		return "Failed"
	case Success:
		return "Success"
	default:
		return "Not tested"
	}
}

// suiteSeed is the fixed seed all built-in scenarios run with.
var suiteSeed = [5]uint32{1, 2, 3, 4, 5}

// Scenario is one end-to-end check: a run function returning a failure
// description (empty on success), plus the result stored back after the run.
type Scenario struct {
	id     string
	run    func() string
	rType  resultType
	detail string
}

// TestSuite is the data structure for running the built-in scenario batch.
type TestSuite struct {
	Scenarios []*Scenario
}

// suiteResult data structure to collect sum of the results of scenarios
type suiteResult struct {
	counter        int
	successCounter int
	failedCounter  int
}

// NewTestSuite creates an instance of a TestSuite holding the built-in
// end-to-end scenarios, ready to be run with RunTests().
func NewTestSuite() *TestSuite {
	return &TestSuite{
		Scenarios: []*Scenario{
			{id: "worker invariance, logN=4 M=32", run: scenarioWorkerInvariance},
			{id: "undirected bounds, logN=10 M=8000", run: scenarioUndirectedBounds},
			{id: "sparse slices, logN=6 M=2 size=16", run: scenarioSparseSlices},
			{id: "rand_sort permutation, n=1000", run: scenarioRandSort},
			{id: "degenerate initiator, M=1", run: scenarioDegenerateInitiator},
			{id: "random_up_to(3) uniformity", run: scenarioRandomUpToUniform},
		},
	}
}

// RunTests runs all scenarios of the suite and prints a result report.
func (ts *TestSuite) RunTests() {
	startTime := time.Now()

	out.Printf("Running Kronecker generator scenario suite\n")
	out.Printf("==================================================================\n")
	out.Printf("Scenarios: %d\n", len(ts.Scenarios))
	out.Printf("Date:      %s\n", time.Now().Local())
	out.Println()

	for _, sc := range ts.Scenarios {
		out.Printf("Scenario: %s\n", sc.id)
		startTime2 := time.Now()
		sc.detail = sc.run()
		if sc.detail == "" {
			sc.rType = Success
		} else {
			sc.rType = Failed
			log.Warningf("scenario '%s' failed: %s", sc.id, sc.detail)
		}
		elapsed := time.Since(startTime2)
		out.Printf("Scenario finished in %d ms with result %s\n\n",
			elapsed.Milliseconds(), sc.rType.String())
	}

	tr := suiteResult{}
	for _, sc := range ts.Scenarios {
		tr.counter++
		switch sc.rType {
		case Failed:
			tr.failedCounter++
		case Success:
			tr.successCounter++
		}
	}

	elapsed := time.Since(startTime)

	out.Printf("Results for scenario suite\n")
	out.Printf("==================================================================\n")
	out.Printf(" %-4s | %-10s | %-40s | %s\n", "Nr.", "Result", "Scenario", "Detail")
	out.Printf("==================================================================\n")
	for i, sc := range ts.Scenarios {
		out.Printf(" %-4d | %-10s | %-40s | %s\n", i+1, sc.rType.String(), sc.id, sc.detail)
	}
	out.Printf("==================================================================\n")
	out.Printf("Successful: %-3d (%d %%)\n", tr.successCounter, 100*tr.successCounter/tr.counter)
	out.Printf("Failed:     %-3d (%d %%)\n", tr.failedCounter, 100*tr.failedCounter/tr.counter)
	out.Printf("\n")
	out.Printf("Suite time: %d ms\n", elapsed.Milliseconds())
}

// Failures returns the ids of all scenarios that did not succeed; empty
// after a fully green run.
func (ts *TestSuite) Failures() []string {
	var failed []string
	for _, sc := range ts.Scenarios {
		if sc.rType != Success {
			failed = append(failed, sc.id)
		}
	}
	return failed
}

// scenarioWorkerInvariance: a single-worker run must equal the rank-order
// concatenation of a two-worker run, with total multiplicity M.
func scenarioWorkerInvariance() string {
	initiator := types.Initiator{0.57, 0.19, 0.19, 0.05}
	const logN, m = 4, 32

	single := kron.GenerateKronecker(0, 1, suiteSeed, logN, m, initiator, false, types.KeepMultiplicity)

	var gathered []types.Edge
	for rank := 0; rank < 2; rank++ {
		part := kron.GenerateKronecker(rank, 2, suiteSeed, logN, m, initiator, false, types.KeepMultiplicity)
		gathered = append(gathered, part.Edges...)
	}

	if len(single.Edges) != len(gathered) {
		return fmt.Sprintf("length mismatch: %d vs %d", len(single.Edges), len(gathered))
	}
	for i := range single.Edges {
		if single.Edges[i] != gathered[i] {
			return fmt.Sprintf("edge %d differs between 1-worker and 2-worker runs", i)
		}
	}

	var totalMult uint64
	for _, e := range single.Edges {
		totalMult += e.Multiplicity
	}
	if totalMult != m {
		return fmt.Sprintf("multiplicity sum %d != %d", totalMult, m)
	}
	return ""
}

// scenarioUndirectedBounds: every undirected edge lies in bounds with
// src <= tgt.
func scenarioUndirectedBounds() string {
	initiator := types.Initiator{0.25, 0.25, 0.25, 0.25}
	const logN, m = 10, 8000
	n := types.VertexID(1) << logN

	res := kron.GenerateKronecker(0, 1, suiteSeed, logN, m, initiator, true, types.KeepMultiplicity)
	for i, e := range res.Edges {
		if e.Src >= n || e.Tgt >= n {
			return fmt.Sprintf("edge %d (%d,%d) out of bounds N=%d", i, e.Src, e.Tgt, n)
		}
		if e.Src > e.Tgt {
			return fmt.Sprintf("edge %d (%d,%d) violates src <= tgt", i, e.Src, e.Tgt)
		}
	}
	return ""
}

// scenarioSparseSlices: M=2 split over 16 workers leaves at most two slices
// non-empty, and those edges equal the single-worker run.
func scenarioSparseSlices() string {
	initiator := types.Initiator{0.57, 0.19, 0.19, 0.05}
	const logN, m, workers = 6, 2, 16

	single := kron.GenerateKronecker(0, 1, suiteSeed, logN, m, initiator, false, types.KeepMultiplicity)

	nonEmpty := 0
	var gathered []types.Edge
	for rank := 0; rank < workers; rank++ {
		part := kron.GenerateKronecker(rank, workers, suiteSeed, logN, m, initiator, false, types.KeepMultiplicity)
		populated := false
		for _, e := range part.Edges {
			if !e.Unwritten() {
				populated = true
			}
			gathered = append(gathered, e)
		}
		if populated {
			nonEmpty++
		}
	}
	if nonEmpty > 2 {
		return fmt.Sprintf("%d populated slices, expected at most 2", nonEmpty)
	}
	if len(gathered) != len(single.Edges) {
		return fmt.Sprintf("length mismatch: %d vs %d", len(gathered), len(single.Edges))
	}
	for i := range gathered {
		if gathered[i] != single.Edges[i] {
			return fmt.Sprintf("edge %d differs between 1-worker and 16-worker runs", i)
		}
	}
	return ""
}

// scenarioRandSort: the shared permutation of [0,1000) sorts back to
// 0..999 and matches the distributed variant at several rank counts.
func scenarioRandSort() string {
	const n = 1000
	shared := permute.RandSortShared(suiteSeed, n, 1)

	sorted := append([]uint64{}, shared...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i, v := range sorted {
		if v != uint64(i) {
			return fmt.Sprintf("not a permutation: sorted[%d]=%d", i, v)
		}
	}

	for _, ranks := range []int{2, 4, 7} {
		parts := permute.RandSortDistributed(suiteSeed, n, ranks)
		var combined []uint64
		for _, p := range parts {
			combined = append(combined, p...)
		}
		if len(combined) != n {
			return fmt.Sprintf("ranks=%d: combined length %d != %d", ranks, len(combined), n)
		}
		for i := range combined {
			if combined[i] != shared[i] {
				return fmt.Sprintf("ranks=%d: element %d differs from shared variant", ranks, i)
			}
		}
	}
	return ""
}

// scenarioDegenerateInitiator: initiator [1,0,0,0] forces the single edge
// (0,0) with multiplicity 1.
func scenarioDegenerateInitiator() string {
	initiator := types.Initiator{1, 0, 0, 0}
	res := kron.GenerateKronecker(0, 1, suiteSeed, 4, 1, initiator, false, types.KeepMultiplicity)
	if len(res.Edges) != 1 {
		return fmt.Sprintf("expected 1 edge, got %d", len(res.Edges))
	}
	e := res.Edges[0]
	if e.Src != 0 || e.Tgt != 0 || e.Multiplicity != 1 {
		return fmt.Sprintf("expected (0,0) multiplicity 1, got (%d,%d) multiplicity %d", e.Src, e.Tgt, e.Multiplicity)
	}
	return ""
}

// scenarioRandomUpToUniform: random_up_to(3) with a fresh fork per call
// stays within 0.2% of 1/3 per bucket.
func scenarioRandomUpToUniform() string {
	const trials = 3_000_000
	root := rng.Seed(suiteSeed[0], suiteSeed[1], suiteSeed[2], suiteSeed[3], suiteSeed[4])
	var buckets [3]int
	for i := 0; i < trials; i++ {
		s := root.Skip(uint64(i), 0, 0)
		buckets[permute.RandomUpTo(3, &s)]++
	}
	for b, c := range buckets {
		frac := float64(c) / float64(trials)
		dev := frac - 1.0/3.0
		if dev < 0 {
			dev = -dev
		}
		if dev > 0.002 {
			return fmt.Sprintf("bucket %d frequency %f deviates more than 0.2%% from 1/3", b, frac)
		}
	}
	return ""
}
