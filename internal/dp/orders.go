//
// pcsolver - four-wide perfect-clear reachability and search engine
//
// MIT License
//
// Copyright (c) 2026 pcsolver contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package dp implements the hold-aware PC-planning DP of spec.md §4.5 and
// the queue-order/saves helpers of §4.6.
package dp

// Orders yields every string obtainable by interleaving q[0] (the
// currently-held piece) with the remainder under a one-piece hold: either
// emit q[0] next and recurse on q[1:], or swap hold with q[1] and recurse
// on q[0]+q[2:]. Each order is produced exactly once (spec.md §9); the
// recursion terminates because both branches shrink the input by one
// character.
func Orders(q string) []string {
	if len(q) <= 1 {
		return []string{q}
	}

	var out []string
	for _, rest := range Orders(q[1:]) {
		out = append(out, string(q[0])+rest)
	}
	for _, rest := range Orders(q[0:1] + q[2:]) {
		out = append(out, string(q[1])+rest)
	}
	return out
}
