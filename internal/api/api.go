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

// Package api is the thin language-neutral surface spec.md §6 describes:
// next_boards, prev_boards, next_boards_after_queue,
// prev_boards_before_queue, generate_pc_catalog and max_pcs, all hung off
// one Engine that owns the loaded piece table, the shared transition
// cache, and (once generated) the PC-catalog planner. This mirrors
// FrankyGo's uci.UciHandler: a single struct bundling the position,
// search, and book objects behind the handful of entry points the
// outside world is allowed to call.
package api

import (
	"sort"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/dp"
	"github.com/tmikkel/pcsolver/internal/pcsolver"
	"github.com/tmikkel/pcsolver/internal/piece"
	"github.com/tmikkel/pcsolver/internal/placement"
	"github.com/tmikkel/pcsolver/internal/types"
)

// Engine is the single entry point an embedder needs: construct one with
// NewEngine, then call its methods. Engine is not safe for concurrent use
// of GeneratePcCatalog alongside other methods, since that call replaces
// the planner; the placement queries themselves are safe for concurrent
// use because placement.Cache is.
type Engine struct {
	Table   *piece.Table
	Cache   *placement.Cache
	Workers int64

	planner *dp.Planner
}

// NewEngine loads the piece geometry and kick tables from piecesPath and
// kicksPath and returns a ready Engine. workers bounds the concurrency of
// any subsequent GeneratePcCatalog call.
func NewEngine(piecesPath, kicksPath string, workers int64) (*Engine, error) {
	tbl, err := piece.LoadGeometry(piecesPath)
	if err != nil {
		return nil, err
	}
	if err := piece.LoadKicks(kicksPath, tbl); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	return &Engine{Table: tbl, Cache: placement.NewCache(), Workers: workers}, nil
}

// NextBoards implements spec.md's next_boards(hash, shape).
func (e *Engine) NextBoards(h board.Hash, shape types.Shape) ([]board.Hash, error) {
	return placement.NextBoards(h, shape, e.Table, e.Cache)
}

// PrevBoards implements spec.md's prev_boards(hash, shape).
func (e *Engine) PrevBoards(h board.Hash, shape types.Shape) ([]board.Hash, error) {
	return placement.PrevBoards(h, shape, e.Table, e.Cache)
}

// NextBoardsAfterQueue implements spec.md's next_boards_after_queue(hash,
// queue): the sorted, deduplicated set of boards reachable from h after
// placing every piece of queue in order.
func (e *Engine) NextBoardsAfterQueue(h board.Hash, queue types.Queue) ([]board.Hash, error) {
	if err := queue.Validate(); err != nil {
		return nil, err
	}
	frontier := map[board.Hash]bool{h: true}
	for i := 0; i < len(queue); i++ {
		shape := types.Shape(queue[i])
		next := map[board.Hash]bool{}
		for b := range frontier {
			results, err := e.NextBoards(b, shape)
			if err != nil {
				return nil, err
			}
			for _, r := range results {
				next[r] = true
			}
		}
		frontier = next
	}
	return sortedHashes(frontier), nil
}

// PrevBoardsBeforeQueue implements spec.md's prev_boards_before_queue(hash,
// queue): the sorted, deduplicated set of boards that reach h after
// placing every piece of queue in order, walking the queue back to front.
func (e *Engine) PrevBoardsBeforeQueue(h board.Hash, queue types.Queue) ([]board.Hash, error) {
	if err := queue.Validate(); err != nil {
		return nil, err
	}
	frontier := map[board.Hash]bool{h: true}
	for i := len(queue) - 1; i >= 0; i-- {
		shape := types.Shape(queue[i])
		prev := map[board.Hash]bool{}
		for b := range frontier {
			results, err := e.PrevBoards(b, shape)
			if err != nil {
				return nil, err
			}
			for _, r := range results {
				prev[r] = true
			}
		}
		frontier = prev
	}
	return sortedHashes(frontier), nil
}

// GeneratePcCatalog implements spec.md's generate_pc_catalog(path, n, h,
// regenerate): runs (or loads) the PC catalog and indexes it into this
// Engine's planner, so a subsequent MaxPcs call can use it.
func (e *Engine) GeneratePcCatalog(path string, n, h int, regenerate bool) ([]types.Queue, error) {
	g := pcsolver.NewGenerator(e.Table, e.Workers)
	g.Cache = e.Cache
	catalog, err := pcsolver.GenerateAndPersist(g, path, n, h, regenerate)
	if err != nil {
		return nil, err
	}
	e.planner = dp.NewPlanner(catalog)
	return catalog, nil
}

// MaxPcs implements spec.md's max_pcs(queue). GeneratePcCatalog must have
// been called at least once first, to build the catalog this DP indexes.
func (e *Engine) MaxPcs(queue types.Queue) (int, []types.Queue, error) {
	if e.planner == nil {
		return 0, nil, &types.DomainError{Reason: "no PC catalog loaded", Detail: "call GeneratePcCatalog before MaxPcs"}
	}
	return e.planner.MaxPcs(queue)
}

func sortedHashes(set map[board.Hash]bool) []board.Hash {
	out := make([]board.Hash, 0, len(set))
	for h := range set {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
