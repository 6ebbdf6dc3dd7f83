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

// Package pcsolver implements the bidirectional BFS PC-queue generator of
// spec.md §4.4. Its driver, Generator, is structurally grounded in
// FrankyGo's search.Search: a struct holding a logger and a
// Statistics-shaped counters block, with a semaphore.Weighted bounding
// concurrent frontier expansion and frontier sizes logged at debug level.
package pcsolver

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/logging"
	"github.com/tmikkel/pcsolver/internal/piece"
	"github.com/tmikkel/pcsolver/internal/placement"
	"github.com/tmikkel/pcsolver/internal/types"
)

// Statistics counts BFS activity, logged at debug level the way FrankyGo's
// search.Statistics logs node counts.
type Statistics struct {
	BackwardStates uint64
	ForwardStates  uint64
	Merged         uint64
}

// Generator drives the bidirectional BFS. It owns the shared
// placement.Cache threaded through both directions (spec.md §4.4's
// "backward generator shares the forward cache") and bounds the
// concurrency of each frontier round with a semaphore, the same
// golang.org/x/sync/semaphore FrankyGo's search package uses to guard
// concurrent StartSearch calls.
type Generator struct {
	Table   *piece.Table
	Cache   *placement.Cache
	Workers int64
	Stats   Statistics

	log *logging.Logger
}

// NewGenerator returns a Generator ready to run, with its own transition
// cache and a logger preconfigured via internal/logging.
func NewGenerator(tbl *piece.Table, workers int64) *Generator {
	if workers < 1 {
		workers = 1
	}
	return &Generator{
		Table:   tbl,
		Cache:   placement.NewCache(),
		Workers: workers,
		log:     logging.GetGenLog(),
	}
}

type frontierEntry struct {
	Hash    board.Hash
	History string
}

// GeneratePcCatalog runs the bidirectional BFS of spec.md §4.4 bounded by
// queue length n and height bound h, and returns the sorted PC catalog.
// It never persists - callers that want the §7 atomic-write cache
// behavior should use internal/pcsolver/persist.go around this call.
func (g *Generator) GeneratePcCatalog(n, h int) ([]types.Queue, error) {
	maxBoard, err := board.MaxBoard(h)
	if err != nil {
		return nil, err
	}

	nBack := n/4 + 1
	nFwd := n - nBack

	backwardReachable := g.bfs(nBack, maxBoard, placement.PrevBoards, func(p types.Shape, hist string) string {
		return p.String() + hist
	})
	g.Stats.BackwardStates = uint64(len(backwardReachable))
	g.log.Debugf("backward frontier complete: %d boards reachable within %d steps", len(backwardReachable), nBack)

	forwardReachable := g.bfsFiltered(nFwd, maxBoard, placement.NextBoards, func(hist string, p types.Shape) string {
		return hist + p.String()
	}, backwardReachable)
	g.Stats.ForwardStates = uint64(len(forwardReachable))
	g.log.Debugf("forward frontier complete: %d boards reachable within %d steps", len(forwardReachable), nFwd)

	pcSet := map[string]bool{}
	for b, backHists := range backwardReachable {
		fwdHists, ok := forwardReachable[b]
		if !ok {
			continue
		}
		for _, first := range fwdHists {
			for _, second := range backHists {
				pcSet[first+second] = true
			}
		}
	}

	// "I" is an unconditional sentinel, not a bug - spec.md §9.
	pcSet["I"] = true
	g.Stats.Merged = uint64(len(pcSet))

	out := make([]types.Queue, 0, len(pcSet))
	for q := range pcSet {
		out = append(out, types.Queue(q))
	}
	sortQueues(out)
	return out, nil
}

// bfs runs a single-direction BFS from (0, "") up to depth bound,
// recording every intermediate board strictly between 0 and maxBoard.
func (g *Generator) bfs(bound int, maxBoard board.Hash, transition func(board.Hash, types.Shape, *piece.Table, *placement.Cache) ([]board.Hash, error), combine func(types.Shape, string) string) map[board.Hash][]string {
	reachable := map[board.Hash][]string{}
	frontier := []frontierEntry{{Hash: 0, History: ""}}

	for len(frontier) > 0 {
		results := g.expandRound(frontier, transition)

		var next []frontierEntry
		for i, entry := range frontier {
			if len(entry.History) >= bound {
				continue
			}
			for shapeIdx, shape := range types.Shapes {
				for _, b := range results[i][shapeIdx] {
					if b <= 0 || b >= maxBoard {
						continue
					}
					hist := combine(shape, entry.History)
					reachable[b] = append(reachable[b], hist)
					next = append(next, frontierEntry{Hash: b, History: hist})
				}
			}
		}
		sort.Slice(next, func(i, j int) bool {
			if next[i].Hash != next[j].Hash {
				return next[i].Hash < next[j].Hash
			}
			return next[i].History < next[j].History
		})
		frontier = next
	}
	return reachable
}

// bfsFiltered is bfs's forward-direction counterpart: it only records a
// board if it already appears in backwardReachable, per spec.md §4.4.
func (g *Generator) bfsFiltered(bound int, maxBoard board.Hash, transition func(board.Hash, types.Shape, *piece.Table, *placement.Cache) ([]board.Hash, error), combine func(string, types.Shape) string, backwardReachable map[board.Hash][]string) map[board.Hash][]string {
	reachable := map[board.Hash][]string{}
	frontier := []frontierEntry{{Hash: 0, History: ""}}

	for len(frontier) > 0 {
		results := g.expandRound(frontier, transition)

		var next []frontierEntry
		for i, entry := range frontier {
			if len(entry.History) >= bound {
				continue
			}
			for shapeIdx, shape := range types.Shapes {
				for _, b := range results[i][shapeIdx] {
					if b <= 0 || b >= maxBoard {
						continue
					}
					hist := combine(entry.History, shape)
					if _, ok := backwardReachable[b]; ok {
						reachable[b] = append(reachable[b], hist)
					}
					next = append(next, frontierEntry{Hash: b, History: hist})
				}
			}
		}
		sort.Slice(next, func(i, j int) bool {
			if next[i].Hash != next[j].Hash {
				return next[i].Hash < next[j].Hash
			}
			return next[i].History < next[j].History
		})
		frontier = next
	}
	return reachable
}

// expandRound computes transition(board, shape) for every entry in
// frontier and every shape, bounding concurrency with a fresh semaphore of
// g.Workers slots per round, the way FrankyGo's search package bounds
// concurrent search goroutines.
// results[i][shapeIdx] holds the transitions for frontier[i] under
// types.Shapes[shapeIdx].
func (g *Generator) expandRound(frontier []frontierEntry, transition func(board.Hash, types.Shape, *piece.Table, *placement.Cache) ([]board.Hash, error)) [][][]board.Hash {
	results := make([][][]board.Hash, len(frontier))
	for i := range results {
		results[i] = make([][]board.Hash, len(types.Shapes))
	}

	sem := semaphore.NewWeighted(g.Workers)
	var wg sync.WaitGroup
	ctx := context.Background()

	for i, entry := range frontier {
		for shapeIdx, shape := range types.Shapes {
			i, entry, shapeIdx, shape := i, entry, shapeIdx, shape
			_ = sem.Acquire(ctx, 1)
			wg.Add(1)
			go func() {
				defer sem.Release(1)
				defer wg.Done()
				r, err := transition(entry.Hash, shape, g.Table, g.Cache)
				if err != nil {
					g.log.Errorf("transition(%d, %s) failed: %v", entry.Hash, shape, err)
					return
				}
				results[i][shapeIdx] = r
			}()
		}
	}
	wg.Wait()
	return results
}

func sortQueues(qs []types.Queue) {
	sort.Slice(qs, func(i, j int) bool {
		if len(qs[i]) != len(qs[j]) {
			return len(qs[i]) < len(qs[j])
		}
		return qs[i] < qs[j]
	})
}
