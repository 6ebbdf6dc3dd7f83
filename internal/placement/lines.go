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

package placement

import "github.com/tmikkel/pcsolver/internal/board"

// linesToInsert enumerates every weakly-increasing multiset of insertion
// heights for at most w full rows over a board of height h, per spec.md
// §4.3 step 2 / §9's design note. Each returned slice is sorted ascending
// and has length in [0, w].
func linesToInsert(h, w int) [][]int {
	if w == 1 {
		out := [][]int{{}}
		for height := 0; height <= h; height++ {
			out = append(out, []int{height})
		}
		return out
	}

	var out [][]int
	for _, ins := range linesToInsert(h, w-1) {
		extended := make([]int, len(ins), len(ins)+1)
		copy(extended, ins)
		extended = append(extended, h)
		out = append(out, extended)
	}
	if h > 0 {
		out = append(out, linesToInsert(h-1, w)...)
	} else {
		out = append(out, []int{})
	}
	return out
}

// insertLines applies a multiset of insertion heights (sorted ascending)
// to base, inserting a full row before each original position, re-indexed
// into the growing board as each insertion shifts later ones up by one.
func insertLines(base board.Board, positions []int) board.Board {
	out := append(board.Board{}, base...)
	for i, p := range positions {
		out = out.InsertRow(p+i, fullRowMask)
	}
	return out
}

const fullRowMask uint8 = (1 << board.Width) - 1
