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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/piece"
	"github.com/tmikkel/pcsolver/internal/types"
)

func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func loadTable(t *testing.T) *piece.Table {
	t.Helper()
	tbl, err := piece.LoadGeometry("data/pieces.txt")
	require.NoError(t, err)
	require.NoError(t, piece.LoadKicks("data/kicks.txt", tbl))
	return tbl
}

func TestNextBoardsOnEmptyBoardNeverReturnsFullRow(t *testing.T) {
	tbl := loadTable(t)
	cache := NewCache()
	for _, s := range types.Shapes {
		next, err := NextBoards(0, s, tbl, cache)
		require.NoError(t, err)
		for _, h := range next {
			assert.False(t, board.Unhash(h).HasFullRow(), "shape %s produced a board with a full row", s)
		}
	}
}

func TestNextBoardsDeterministicAndSorted(t *testing.T) {
	tbl := loadTable(t)
	cache := NewCache()
	next, err := NextBoards(0, types.ShapeT, tbl, cache)
	require.NoError(t, err)
	require.NotEmpty(t, next)
	for i := 1; i < len(next); i++ {
		assert.Less(t, next[i-1], next[i], "results must be sorted ascending with no duplicates")
	}

	next2, err := NextBoards(0, types.ShapeT, tbl, cache)
	require.NoError(t, err)
	assert.Equal(t, next, next2)
}

func TestNextBoardsCacheHit(t *testing.T) {
	tbl := loadTable(t)
	cache := NewCache()
	_, err := NextBoards(0, types.ShapeO, tbl, cache)
	require.NoError(t, err)
	_, err = NextBoards(0, types.ShapeO, tbl, cache)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cache.Stats().Misses)
	assert.EqualValues(t, 1, cache.Stats().Hits)
}

func TestForwardBackwardConsistency(t *testing.T) {
	tbl := loadTable(t)
	cache := NewCache()

	for _, s := range types.Shapes {
		next, err := NextBoards(0, s, tbl, cache)
		require.NoError(t, err)
		for _, resultHash := range next {
			prior, err := PrevBoards(resultHash, s, tbl, cache)
			require.NoError(t, err)
			found := false
			for _, p := range prior {
				if p == 0 {
					found = true
					break
				}
			}
			assert.Truef(t, found, "shape %s: 0 must be a witness in PrevBoards(%d, %s)", s, resultHash, s)
		}
	}
}

func TestLinesToInsertBaseCase(t *testing.T) {
	out := linesToInsert(2, 1)
	// empty insertion plus one per height 0..2
	assert.Len(t, out, 4)
}

func TestLinesToInsertWidths(t *testing.T) {
	for _, m := range linesToInsert(3, 2) {
		assert.LessOrEqual(t, len(m), 2)
		for i := 1; i < len(m); i++ {
			assert.LessOrEqual(t, m[i-1], m[i])
		}
	}
}
