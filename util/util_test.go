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

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMaxU64(t *testing.T) {
	assert.Equal(t, uint64(3), MinU64(3, 5))
	assert.Equal(t, uint64(5), MaxU64(3, 5))
	assert.Equal(t, uint64(0), MinU64(0, 0))
}

func TestMinMaxInt(t *testing.T) {
	assert.Equal(t, -5, MinInt(-5, -3))
	assert.Equal(t, -3, MaxInt(-5, -3))
}

var resultU64 uint64

func BenchmarkMaxU64(b *testing.B) {
	var r uint64
	for i := 0; i < b.N; i++ {
		r = MaxU64(uint64(i), uint64(i+2))
	}
	resultU64 = r
}
