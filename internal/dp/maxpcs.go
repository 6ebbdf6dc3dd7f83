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

// Planner holds a PC catalog indexed for repeated MaxPcs queries. There is
// no FrankyGo analogue for this table - it is new code, written in
// FrankyGo's general idiom of a small struct plus a New* constructor
// (compare search.NewSearch).
type Planner struct {
	catalog map[string]bool
	maxLen  int
}

// NewPlanner indexes catalog for membership tests and records the longest
// entry, which bounds how far ahead any DP transition may look.
func NewPlanner(catalog []types.Queue) *Planner {
	set := make(map[string]bool, len(catalog))
	maxLen := 0
	for _, q := range catalog {
		set[string(q)] = true
		if len(q) > maxLen {
			maxLen = len(q)
		}
	}
	return &Planner{catalog: set, maxLen: maxLen}
}

type pcState struct {
	i    int
	hold byte
}

type pcEntry struct {
	count   int
	pred    pcState
	witness string
	hasPred bool
}

// MaxPcs implements the hold-aware DP of spec.md §4.5: given a piece
// queue q, find the maximum number of disjoint perfect clears realizable
// by segmenting q (with a one-piece hold carried between segments) such
// that every segment, once the hold is folded in via Saves, is a member
// of this planner's catalog.
//
// It returns the count and the witnessing segments in queue order; the
// segments' witnesses always come from catalog membership, so every
// returned segment is itself a catalog entry.
func (p *Planner) MaxPcs(q types.Queue) (int, []types.Queue, error) {
	if err := q.Validate(); err != nil {
		return 0, nil, err
	}
	if len(q) == 0 {
		return 0, nil, nil
	}

	// The reserved Terminator is appended so the piece still held after
	// the last real piece can complete a final segment.
	aug := string(q) + string(types.Terminator)

	dp := map[pcState]pcEntry{}
	start := pcState{i: 1, hold: q[0]}
	dp[start] = pcEntry{count: 0}
	best := start

	pending := []pcState{start}
	for len(pending) > 0 {
		s := pending[0]
		pending = pending[1:]
		cur := dp[s]

		if cur.count > dp[best].count || (cur.count == dp[best].count && s.i > best.i) {
			best = s
		}

		maxK := len(q) + 1 - s.i
		if maxK > p.maxLen {
			maxK = p.maxLen
		}
		for k := 1; k <= maxK; k++ {
			if s.i+k > len(aug) {
				break
			}
			segment := string(s.hold) + aug[s.i:s.i+k]
			for saveKey, witness := range Saves(segment, p.catalog) {
				next := pcState{i: s.i + k, hold: saveKey}
				candidate := cur.count + 1
				if existing, ok := dp[next]; !ok || candidate > existing.count {
					dp[next] = pcEntry{count: candidate, pred: s, witness: witness, hasPred: true}
					pending = append(pending, next)
				}
			}
		}
	}

	var segments []types.Queue
	for cur := best; dp[cur].hasPred; cur = dp[cur].pred {
		e := dp[cur]
		segments = append([]types.Queue{types.Queue(e.witness)}, segments...)
	}
	return dp[best].count, segments, nil
}
