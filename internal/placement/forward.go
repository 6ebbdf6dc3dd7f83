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

// placementState is (y, x, rotation), deduplicated by the forward BFS
// exactly as spec.md §3 describes - the active piece is never persisted
// beyond this struct's lifetime.
type placementState struct {
	Y, X int
	Rot  types.Rotation
}

// spawnColumn centers a piece of the given width on the four-wide board,
// generalizing spec.md §4.2's "x = 1" example (which is exactly this rule
// for a width-2 piece) to every width.
func spawnColumn(width int) int {
	return (board.Width - width) / 2
}

func legal(b board.Board, cells []types.CellOffset, y, x int) bool {
	for _, c := range cells {
		cx := x + c.Dx
		cy := y + c.Dy
		if cx < 0 || cx >= board.Width || cy < 0 {
			return false
		}
		if b.At(cy, cx) {
			return false
		}
	}
	return true
}

// dropFrom finds the resting y at or below startY: it decrements y from
// startY while cells stay legal and returns the last legal y, the lowest
// row the piece falls to. Returns ok=false if cells are not legal at
// startY itself.
func dropFrom(b board.Board, cells []types.CellOffset, x, startY int) (int, bool) {
	y := startY
	for y >= 0 && legal(b, cells, y, x) {
		y--
	}
	y++
	if y < 0 || !legal(b, cells, y, x) {
		return 0, false
	}
	return y, true
}

// spawn finds the highest empty 100g-rest position for shape's spawn
// rotation at its centered spawn column, per spec.md §4.2 step 2.
func spawn(b board.Board, tbl *piece.Table, shape types.Shape) (placementState, bool) {
	x := spawnColumn(piece.Width(shape))
	cells := tbl.Cells(shape, types.Spawn)
	y, ok := dropFrom(b, cells, x, b.Height())
	if !ok {
		return placementState{}, false
	}
	return placementState{Y: y, X: x, Rot: types.Spawn}, true
}

// NextBoards returns the sorted, distinct board hashes reachable by
// locking shape on the board identified by h under 100g, per spec.md §4.2.
// A nil, nil result means the shape has no legal placement - this is
// types.NoResult, not an error.
func NextBoards(h board.Hash, shape types.Shape, tbl *piece.Table, cache *Cache) ([]board.Hash, error) {
	if cache != nil {
		if v, ok := cache.Get(h, shape); ok {
			return v, nil
		}
	}

	b := board.Unhash(h)
	start, ok := spawn(b, tbl, shape)
	if !ok {
		if cache != nil {
			cache.Put(h, shape, nil)
		}
		return nil, nil
	}

	visited := map[placementState]bool{start: true}
	queue := []placementState{start}
	resultSet := map[board.Hash]bool{}

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		lockCells := tbl.Cells(shape, s.Rot)
		resultSet[lockHash(b, lockCells, s.Y, s.X)] = true

		// slide left/right
		for _, dx := range []int{-1, 1} {
			nx := s.X + dx
			cells := tbl.Cells(shape, s.Rot)
			if !legal(b, cells, s.Y, nx) {
				continue
			}
			ny, ok := dropFrom(b, cells, nx, s.Y)
			if !ok {
				continue
			}
			ns := placementState{Y: ny, X: nx, Rot: s.Rot}
			if !visited[ns] {
				visited[ns] = true
				queue = append(queue, ns)
			}
		}

		// rotate CW, 180, CCW
		for _, turn := range []int{1, 2, 3} {
			nrot := s.Rot.Add(turn)
			kicks := tbl.Kicks(shape, s.Rot, turn)
			for _, k := range kicks {
				cy := s.Y + k.Dy
				cx := s.X + k.Dx
				cells := tbl.Cells(shape, nrot)
				if !legal(b, cells, cy, cx) {
					continue
				}
				ny, ok := dropFrom(b, cells, cx, cy)
				if !ok {
					continue
				}
				ns := placementState{Y: ny, X: cx, Rot: nrot}
				if !visited[ns] {
					visited[ns] = true
					queue = append(queue, ns)
				}
				break // first accepted kick wins, spec.md §9
			}
		}
	}

	out := make([]board.Hash, 0, len(resultSet))
	for hh := range resultSet {
		out = append(out, hh)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	if cache != nil {
		cache.Put(h, shape, out)
	}
	return out, nil
}

// lockHash ORs cells into b's bits at (y, x), clears full rows, and
// returns the re-hashed result - spec.md §4.2 step 4.
func lockHash(b board.Board, cells []types.CellOffset, y, x int) board.Hash {
	locked := append(board.Board{}, b...)
	for _, c := range cells {
		locked = locked.Set(y+c.Dy, x+c.Dx)
	}
	return board.HashOf(locked.ClearFullRows())
}
