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

package dp

import "github.com/tmikkel/pcsolver/internal/types"

// Saves builds, per spec.md §4.6, the map of which piece to hold (keyed by
// the held piece's shape byte) or whether no hold is needed at all (keyed
// by types.Terminator) in order to realize pcQueue as a catalog member.
//
// For every interleaving o of pcQueue: if o without its last piece is a
// catalog member, the last piece is the one that must be saved to hold;
// if o itself (the full interleaving) is a catalog member, no piece needs
// to be held afterwards, recorded under the reserved terminator key.
func Saves(pcQueue string, catalog map[string]bool) map[byte]string {
	saves := map[byte]string{}
	for _, o := range Orders(pcQueue) {
		if len(o) > 0 && catalog[o[:len(o)-1]] {
			saves[o[len(o)-1]] = o[:len(o)-1]
		}
		if catalog[o] {
			saves[types.Terminator] = o
		}
	}
	return saves
}
