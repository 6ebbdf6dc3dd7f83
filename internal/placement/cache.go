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

// Package placement implements the forward and backward placement
// enumerators of spec.md §4.2-4.3.
package placement

import (
	"sync"
	"sync/atomic"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/types"
)

// cacheKey identifies a memoized forward transition by (board, shape),
// spec.md §3's "transition caches (keyed by (board_hash, shape))".
type cacheKey struct {
	Hash  board.Hash
	Shape types.Shape
}

// Stats counts cache activity, the same probe/hit/miss/put counters
// FrankyGo's transpositiontable.TtTable reports.
type Stats struct {
	Probes uint64
	Hits   uint64
	Misses uint64
	Puts   uint64
}

// Cache memoizes NextBoards results keyed by (board, shape) and is shared
// across both the forward and backward enumerators and threaded through
// the bidirectional BFS in internal/pcsolver, exactly as spec.md §4.4's
// design note calls for. It generalizes FrankyGo's fixed-size, array-backed
// TtTable into a sync.Map because the domain's key space (sparse 64-bit
// board hashes) does not suit a masked array index the way a chess
// zobrist key does.
type Cache struct {
	m      sync.Map // cacheKey -> []board.Hash
	probes uint64
	hits   uint64
	misses uint64
	puts   uint64
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the memoized result for (h, shape) and whether it was present.
func (c *Cache) Get(h board.Hash, shape types.Shape) ([]board.Hash, bool) {
	atomic.AddUint64(&c.probes, 1)
	v, ok := c.m.Load(cacheKey{h, shape})
	if !ok {
		atomic.AddUint64(&c.misses, 1)
		return nil, false
	}
	atomic.AddUint64(&c.hits, 1)
	return v.([]board.Hash), true
}

// Put stores the result for (h, shape), overwriting any prior entry.
func (c *Cache) Put(h board.Hash, shape types.Shape, result []board.Hash) {
	atomic.AddUint64(&c.puts, 1)
	c.m.Store(cacheKey{h, shape}, result)
}

// Stats returns a snapshot of the cache's counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Probes: atomic.LoadUint64(&c.probes),
		Hits:   atomic.LoadUint64(&c.hits),
		Misses: atomic.LoadUint64(&c.misses),
		Puts:   atomic.LoadUint64(&c.puts),
	}
}
