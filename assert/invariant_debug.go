// +build debug

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

package assert

import (
	"fmt"
	"os"
)

// InvariantsEnabled is true in debug builds (built with -tags debug).
const InvariantsEnabled = true

// Invariant aborts the process if cond is false. Build with -tags debug to
// enable; reserved for internal invariants that "can only fire on a bug in
// the core" (e.g. a multiplicity slot written twice, a hash-table probe that
// wraps all the way around without finding an empty slot) rather than
// caller-supplied preconditions, which always use assert.Fatal instead.
func Invariant(cond bool, format string, a ...interface{}) {
	if cond {
		return
	}
	fmt.Fprintf(os.Stderr, "kronexus: internal invariant violated: "+format+"\n", a...)
	os.Exit(1)
}
