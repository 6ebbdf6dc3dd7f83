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

package api

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmikkel/pcsolver/internal/board"
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

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine("data/pieces.txt", "data/kicks.txt", 2)
	require.NoError(t, err)
	return e
}

func TestNextBoardsAndPrevBoardsRoundTrip(t *testing.T) {
	e := newEngine(t)
	next, err := e.NextBoards(0, types.ShapeO)
	require.NoError(t, err)
	require.NotEmpty(t, next)

	prior, err := e.PrevBoards(next[0], types.ShapeO)
	require.NoError(t, err)
	assert.Contains(t, prior, board.Hash(0))
}

func TestNextBoardsAfterQueueChainsPlacements(t *testing.T) {
	e := newEngine(t)
	single, err := e.NextBoards(0, types.ShapeT)
	require.NoError(t, err)

	chained, err := e.NextBoardsAfterQueue(0, "T")
	require.NoError(t, err)
	assert.Equal(t, single, chained)
}

func TestNextBoardsAfterQueueRejectsInvalidQueue(t *testing.T) {
	e := newEngine(t)
	_, err := e.NextBoardsAfterQueue(0, "Q")
	require.Error(t, err)
	var de *types.DomainError
	assert.ErrorAs(t, err, &de)
}

func TestMaxPcsRequiresCatalogFirst(t *testing.T) {
	e := newEngine(t)
	_, _, err := e.MaxPcs("I")
	require.Error(t, err)
	var de *types.DomainError
	assert.ErrorAs(t, err, &de)
}

func TestGenerateThenMaxPcs(t *testing.T) {
	e := newEngine(t)
	dir := t.TempDir()
	p := filepath.Join(dir, "pc-queues.txt")

	catalog, err := e.GeneratePcCatalog(p, 3, 6, true)
	require.NoError(t, err)
	require.NotEmpty(t, catalog)

	count, segments, err := e.MaxPcs("I")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 1)
	assert.NotEmpty(t, segments)
}
