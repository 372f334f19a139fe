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

// Package binomial draws from Binomial(n, p): direct inversion for small
// n*p, the Hörmann (1993) BTRD acceptance-rejection method otherwise. The
// generator package only ever sees Draw's (n, p, *rng.State) -> uint64
// contract.
package binomial

import (
	"math"

	"github.com/kgen/kronexus/rng"
)

// inversionThreshold bounds n*p below which direct inversion (summing the
// Binomial pmf until the drawn uniform is exhausted) is cheaper and exact
// enough than setting up the BTRD envelope.
const inversionThreshold = 30

// Draw returns one sample from Binomial(n, p), consuming draws from state.
// Callers hold the exclusive state for the block they're drawing into
// (typically a Skip'd child), so the number and order of draws Draw consumes
// is part of the reproducibility contract, not an implementation detail.
func Draw(n uint64, p float64, state *rng.State) uint64 {
	if n == 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}

	// Binomial(n, p) with p > 1/2 is sampled as n - Binomial(n, 1-p), so the
	// envelope below only ever has to cover p <= 1/2.
	flip := p > 0.5
	q := p
	if flip {
		q = 1 - p
	}

	var k uint64
	if float64(n)*q < inversionThreshold {
		k = drawInversion(n, q, state)
	} else {
		k = drawBTRD(n, q, state)
	}

	if flip {
		return n - k
	}
	return k
}

// drawInversion sums the pmf term by term until the cumulative probability
// exceeds a single uniform draw. Exact and fast for small n*p.
func drawInversion(n uint64, p float64, state *rng.State) uint64 {
	u := state.Float64()
	q := 1 - p
	// Start from Binomial(n,p)'s value at k=0 and build up via the standard
	// term ratio r(k) = p/q * (n-k)/(k+1).
	term := math.Pow(q, float64(n))
	cumulative := term
	var k uint64
	for cumulative < u && k < n {
		term *= p / q * float64(n-k) / float64(k+1)
		cumulative += term
		k++
	}
	return k
}

// drawBTRD implements Hörmann's 1993 "Binomial Triangle-Rectangle-Ellipse-
// Deviate" rejection sampler: a symmetric envelope built from the normal
// approximation around the mode, shaped to the discrete pmf by a triangular
// correction near the mode and exponential tails beyond it. Each loop
// iteration draws a candidate k from the envelope and a second uniform u2
// for the inside/outside-the-square fast accept before falling back to the
// exact log-pmf-ratio test.
func drawBTRD(n uint64, p float64, state *rng.State) uint64 {
	fn := float64(n)
	r := p / (1 - p)
	nrp := fn * p

	spq := math.Sqrt(nrp * (1 - p))
	b := 1.15 + 2.53*spq
	a := -0.0873 + 0.0248*b + 0.01*p
	c := nrp + 0.5
	alpha := (2.83 + 5.1/b) * spq
	vr := 0.92 - 4.2/b

	m := math.Floor((fn + 1) * p)

	for {
		u := state.Float64() - 0.5
		v := state.Float64()

		us := 0.5 - math.Abs(u)
		k := math.Floor((2*a/us+b)*u + c)
		if k < 0 || k > fn {
			continue
		}

		// Squeeze: the triangular region around the mode accepts without
		// the exact ratio test.
		if us >= 0.07 && v <= vr {
			return uint64(k)
		}

		v = v * alpha / (a/(us*us) + b)
		if acceptBTRD(v, k, m, r, fn) {
			return uint64(k)
		}
	}
}

// acceptBTRD evaluates the exact acceptance test for candidate k: log(v)
// against the log of the true pmf ratio f(k)/f(m), computed from log-gamma
// via logChoose, so no lookup table of log-factorials is required.
func acceptBTRD(v, k, m, r, n float64) bool {
	if k < 0 || k > n {
		return false
	}
	logRatio := logBinomialRatio(k, m, n, r)
	return math.Log(v) <= logRatio
}

// logBinomialRatio returns log( C(n,k) r^k / (C(n,m) r^m) ) using
// logChoose, avoiding overflow for large n.
func logBinomialRatio(k, m, n, r float64) float64 {
	return logChoose(n, k) + k*math.Log(r) - logChoose(n, m) - m*math.Log(r)
}

// logChoose returns log(C(n, k)) via log-gamma.
func logChoose(n, k float64) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
