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

package replay

import (
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestRunVerifiesTheSentinel(t *testing.T) {
	tbl := loadTable(t)
	s := NewSuite(tbl)
	report := s.Run([]types.Queue{"I"})

	require.Len(t, report.Outcomes, 1)
	assert.True(t, report.Outcomes[0].Verified, "the I sentinel must replay to an empty board")
	assert.Equal(t, 1, report.Verified)
	assert.Equal(t, 0, report.Failed)
}

func TestRunRejectsAnUnrealizableQueue(t *testing.T) {
	tbl := loadTable(t)
	s := NewSuite(tbl)
	// no four-wide board can be perfectly cleared by a single T piece alone
	report := s.Run([]types.Queue{"T"})

	require.Len(t, report.Outcomes, 1)
	assert.False(t, report.Outcomes[0].Verified)
	assert.Equal(t, 1, report.Failed)
}

func TestRunRejectsInvalidQueue(t *testing.T) {
	tbl := loadTable(t)
	s := NewSuite(tbl)
	report := s.Run([]types.Queue{"Q"})

	require.Len(t, report.Outcomes, 1)
	assert.Error(t, report.Outcomes[0].Err)
	assert.Equal(t, 1, report.Failed)
}

func TestReportStringContainsSummary(t *testing.T) {
	r := &Report{Total: 2, Verified: 1, Failed: 1}
	s := r.String()
	assert.True(t, strings.Contains(s, "Verified"))
	assert.True(t, strings.Contains(s, "Failed"))
}
