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

// Package assert standardizes the fatal-assertion error model the generator
// relies on: precondition violations and internal invariant breaks are bugs,
// not recoverable errors, so they abort the process with a diagnostic rather
// than being threaded through a return value.
package assert

import (
	"fmt"
	"os"
)

// Fatal aborts the process with a formatted diagnostic on stderr if cond is
// false. Used for precondition violations (caller's bug), which must abort
// in every build.
func Fatal(cond bool, format string, a ...interface{}) {
	if cond {
		return
	}
	fmt.Fprintf(os.Stderr, "kronexus: fatal: "+format+"\n", a...)
	os.Exit(1)
}
