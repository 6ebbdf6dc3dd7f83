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

// Package board implements the bit-packed four-wide board codec of
// spec.md §4.1: Hash is the canonical identity used throughout the engine,
// the same role FrankyGo's position.Key plays for a chess Position, except
// here the hash is a direct structural encoding rather than a randomized
// Zobrist key.
package board

import (
	"fmt"
	"strings"

	"github.com/tmikkel/pcsolver/internal/types"
)

// Hash is the canonical integer fingerprint of a board: base-16 digits,
// least-significant first, encode successive rows; within a row bit 0 is
// column 0 and bit 3 is column 3. The empty board has Hash 0.
type Hash uint64

// Width is the fixed number of columns every row has.
const Width = 4

// fullRow is a completely filled row, 0b1111.
const fullRow uint8 = (1 << Width) - 1

// Board is a variable-height board: one 4-bit row mask per element, row 0
// first (bottom). A well-formed Board never contains a row equal to
// fullRow - any locking step clears full rows immediately.
type Board []uint8

// HashOf packs b into its canonical Hash: hash = sum over y,x of
// b[y][x] * 2^(4y+x).
func HashOf(b Board) Hash {
	var h Hash
	for y, row := range b {
		h |= Hash(row) << uint(Width*y)
	}
	return h
}

// Unhash decodes h into a Board with exactly as many rows as needed to
// represent its highest set bit; an all-zero hash yields an empty Board.
func Unhash(h Hash) Board {
	if h == 0 {
		return Board{}
	}
	var rows []uint8
	for h != 0 {
		rows = append(rows, uint8(h&Hash(fullRow)))
		h >>= Width
	}
	return Board(rows)
}

// MaxBoard returns 2^(4h) - 1, the largest Hash representable with a board
// of height h. GeneratePcCatalog prunes any intermediate hash at or above
// this bound.
func MaxBoard(h int) (Hash, error) {
	if Width*h > 64 {
		return 0, &types.DomainError{Reason: "height bound exceeds the 64-bit hash width", Detail: fmt.Sprintf("h=%d", h)}
	}
	if Width*h == 64 {
		return ^Hash(0), nil
	}
	return (Hash(1) << uint(Width*h)) - 1, nil
}

// Height returns the number of rows in b.
func (b Board) Height() int { return len(b) }

// At reports whether cell (y, x) is filled. Out-of-range cells read as
// empty, matching an implicit infinite stack of empty rows above the top.
func (b Board) At(y, x int) bool {
	if y < 0 || x < 0 || x >= Width || y >= len(b) {
		return false
	}
	return b[y]&(1<<uint(x)) != 0
}

// Set returns a copy of b with cell (y, x) filled, growing the row slice
// if y is beyond the current height.
func (b Board) Set(y, x int) Board {
	out := b.grow(y + 1)
	out[y] |= 1 << uint(x)
	return out
}

func (b Board) grow(n int) Board {
	if len(b) >= n {
		out := make(Board, len(b))
		copy(out, b)
		return out
	}
	out := make(Board, n)
	copy(out, b)
	return out
}

// ClearFullRows drops every row equal to fullRow, the step spec.md §4.2
// requires before re-hashing a locked board.
func (b Board) ClearFullRows() Board {
	out := make(Board, 0, len(b))
	for _, row := range b {
		if row != fullRow {
			out = append(out, row)
		}
	}
	return out
}

// HasFullRow reports whether b contains any row equal to fullRow.
func (b Board) HasFullRow() bool {
	for _, row := range b {
		if row == fullRow {
			return true
		}
	}
	return false
}

// InsertRow returns a copy of b with row inserted at index pos (0-based
// from the bottom), used by the backward enumerator's line-insertion step.
func (b Board) InsertRow(pos int, row uint8) Board {
	out := make(Board, 0, len(b)+1)
	out = append(out, b[:pos]...)
	out = append(out, row)
	out = append(out, b[pos:]...)
	return out
}

// String renders b top-to-bottom as '#'/'.' rows, for debugging/logging.
func (b Board) String() string {
	var s strings.Builder
	for y := len(b) - 1; y >= 0; y-- {
		for x := 0; x < Width; x++ {
			if b.At(y, x) {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
		s.WriteByte('\n')
	}
	return s.String()
}
