// +build !debug

/*
 * pcsolver - four-wide perfect-clear reachability and search engine
 *
 * MIT License
 *
 * Copyright (c) 2026 pcsolver contributors
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

// Package assert is a helper to allow assertions in a more standardized
// and simple manner. Using it makes it clear that this is an assertion
// used in non production settings - it is compiled out entirely unless
// built with the "debug" build tag.
package assert

// DEBUG is true only in binaries built with the "debug" build tag.
const DEBUG = false

// That panics with msg if cond is false. Compiled to a no-op in release
// builds, so it must never be relied on for control flow.
func That(cond bool, msg string) {
	// no-op in release builds
}
