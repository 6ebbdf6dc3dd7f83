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

// Package replay independently verifies a PC catalog by simulation,
// adapted from FrankyGo's internal/testsuite: that package runs EPD test
// positions through the search engine and tallies a SuiteResult; this one
// runs catalog queues through the placement engine and tallies an
// equivalent Report. Where testsuite trusts nothing about a test file
// until the engine confirms it finds the claimed move, Suite trusts
// nothing about a catalog entry until replay confirms it really empties
// the board (spec.md §8 property 4).
package replay

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tmikkel/pcsolver/internal/board"
	"github.com/tmikkel/pcsolver/internal/dp"
	"github.com/tmikkel/pcsolver/internal/logging"
	"github.com/tmikkel/pcsolver/internal/piece"
	"github.com/tmikkel/pcsolver/internal/placement"
	"github.com/tmikkel/pcsolver/internal/types"
)

var out = message.NewPrinter(language.English)

// Outcome is the per-queue replay result, the Suite equivalent of
// testsuite.Test after RunTests has filled in its actual/result fields.
type Outcome struct {
	Queue    types.Queue
	Verified bool
	Order    string
	Elapsed  time.Duration
	Err      error
}

// Report sums a Suite run the way testsuite.SuiteResult sums an EPD run.
type Report struct {
	Total    int
	Verified int
	Failed   int
	Elapsed  time.Duration
	Outcomes []Outcome
}

// Suite replays a PC catalog against the placement engine to confirm
// every entry is genuinely realizable, independent of whatever generator
// produced it.
type Suite struct {
	Table *piece.Table
	Cache *placement.Cache
	log   *logging.Logger
}

// NewSuite returns a Suite with its own transition cache, ready to run.
func NewSuite(tbl *piece.Table) *Suite {
	return &Suite{
		Table: tbl,
		Cache: placement.NewCache(),
		log:   logging.GetLog(),
	}
}

// Run replays every queue in catalog under every legal hold order
// (dp.Orders) and records whether at least one order drives the board
// from empty back to empty.
func (s *Suite) Run(catalog []types.Queue) *Report {
	start := time.Now()
	report := &Report{Outcomes: make([]Outcome, 0, len(catalog))}

	for _, q := range catalog {
		qStart := time.Now()
		verified, order, err := s.verifyOne(q)
		elapsed := time.Since(qStart)

		o := Outcome{Queue: q, Verified: verified, Order: order, Elapsed: elapsed, Err: err}
		report.Outcomes = append(report.Outcomes, o)
		report.Total++
		switch {
		case err != nil:
			report.Failed++
			s.log.Errorf("replay of %q errored: %v", string(q), err)
		case verified:
			report.Verified++
		default:
			report.Failed++
			s.log.Warningf("replay of %q could not reproduce an empty board under any hold order", string(q))
		}
	}

	report.Elapsed = time.Since(start)
	return report
}

// verifyOne tries every hold order of q and reports the first one that
// carries the board from Hash(0) back to Hash(0).
func (s *Suite) verifyOne(q types.Queue) (bool, string, error) {
	if err := q.Validate(); err != nil {
		return false, "", err
	}

	for _, o := range dp.Orders(string(q)) {
		frontier := map[board.Hash]bool{0: true}
		for i := 0; i < len(o) && len(frontier) > 0; i++ {
			shape := types.Shape(o[i])
			next := map[board.Hash]bool{}
			for h := range frontier {
				results, err := placement.NextBoards(h, shape, s.Table, s.Cache)
				if err != nil {
					return false, "", err
				}
				for _, b := range results {
					next[b] = true
				}
			}
			frontier = next
		}
		if frontier[0] {
			return true, o, nil
		}
	}
	return false, "", nil
}

// String renders a summary table in testsuite.RunTests's style.
func (r *Report) String() string {
	var pctVerified, pctFailed int
	if r.Total > 0 {
		pctVerified = 100 * r.Verified / r.Total
		pctFailed = 100 * r.Failed / r.Total
	}
	return out.Sprintf(
		"Replay Report\nTotal:    %d\nVerified: %d (%d%%)\nFailed:   %d (%d%%)\nTime:     %s\n",
		r.Total, r.Verified, pctVerified, r.Failed, pctFailed, r.Elapsed)
}
