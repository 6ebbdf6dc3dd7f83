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

import (
	"sort"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/piece"
	"github.com/tmikkel/pcsolver/internal/types"
)

// PrevBoards returns every board hash B such that h is in
// NextBoards(B, shape): the line-insertion + forward-confirmation
// algorithm of spec.md §4.3.
func PrevBoards(h board.Hash, shape types.Shape, tbl *piece.Table, cache *Cache) ([]board.Hash, error) {
	b := board.Unhash(h)
	height := b.Height()
	width := piece.Width(shape)

	priorSet := map[board.Hash]bool{}

	for _, positions := range linesToInsert(height, width) {
		candidate := insertLines(b, positions)
		enumeratePriorPlacements(candidate, tbl, shape, priorSet)
	}

	var out []board.Hash
	for prior := range priorSet {
		fwd, err := NextBoards(prior, shape, tbl, cache)
		if err != nil {
			return nil, err
		}
		for _, next := range fwd {
			if next == h {
				out = append(out, prior)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// enumeratePriorPlacements walks every (y, x, rotation) over candidate and
// records the hash of "candidate minus shape's cells" whenever those four
// cells are all filled and subtracting them leaves no full row - spec.md
// §4.3 step 3.
func enumeratePriorPlacements(candidate board.Board, tbl *piece.Table, shape types.Shape, out map[board.Hash]bool) {
	height := candidate.Height()
	for rot := types.Rotation(0); rot < 4; rot++ {
		cells := tbl.Cells(shape, rot)
		if cells == nil {
			continue
		}
		minDx, maxDx := 0, 0
		for _, c := range cells {
			if c.Dx < minDx {
				minDx = c.Dx
			}
			if c.Dx > maxDx {
				maxDx = c.Dx
			}
		}
		for x := -minDx; x < board.Width-maxDx; x++ {
			for y := 0; y < height; y++ {
				if !allCellsFilled(candidate, cells, y, x) {
					continue
				}
				prior := subtractCells(candidate, cells, y, x)
				if !prior.HasFullRow() {
					out[board.HashOf(prior)] = true
				}
			}
		}
	}
}

func allCellsFilled(b board.Board, cells []types.CellOffset, y, x int) bool {
	for _, c := range cells {
		cy, cx := y+c.Dy, x+c.Dx
		if cx < 0 || cx >= board.Width || cy < 0 {
			return false
		}
		if !b.At(cy, cx) {
			return false
		}
	}
	return true
}

func subtractCells(b board.Board, cells []types.CellOffset, y, x int) board.Board {
	out := append(board.Board{}, b...)
	for _, c := range cells {
		out[y+c.Dy] &^= 1 << uint(x+c.Dx)
	}
	return out
}
