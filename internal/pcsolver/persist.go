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

package pcsolver

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tmikkel/pcsolver/internal/logging"
	"github.com/tmikkel/pcsolver/internal/types"
)

// LoadCatalog reads a persisted PC catalog file (spec.md §6): line 1 is
// the count N, the next N lines are the queues. Grounded in FrankyGo's
// openingbook.Book.Initialize, which logs and falls back gracefully when
// a cache file is absent rather than treating it as fatal.
func LoadCatalog(path string) ([]types.Queue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.IOError{Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, &types.ParseError{Path: path, Line: 1, Msg: "missing count line"}
	}
	n, err := strconv.Atoi(scanner.Text())
	if err != nil {
		return nil, &types.ParseError{Path: path, Line: 1, Msg: fmt.Sprintf("count %q is not an integer", scanner.Text())}
	}

	out := make([]types.Queue, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, &types.ParseError{Path: path, Line: i + 2, Msg: fmt.Sprintf("expected %d queues, found %d", n, i)}
		}
		out = append(out, types.Queue(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, &types.IOError{Path: path, Err: err}
	}
	return out, nil
}

// SaveCatalog writes qs atomically: to a temporary file in the same
// directory, then os.Rename over path, so a crash mid-write never leaves
// a truncated cache (spec.md §7).
func SaveCatalog(path string, qs []types.Queue) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".pc-queues-*.tmp")
	if err != nil {
		return &types.IOError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	w := bufio.NewWriter(tmp)
	fmt.Fprintln(w, len(qs))
	for _, q := range qs {
		fmt.Fprintln(w, string(q))
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &types.IOError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &types.IOError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &types.IOError{Path: path, Err: err}
	}
	return nil
}

// GenerateAndPersist implements the full spec.md §4.4 entry point: if
// path exists and regenerate is false, load and return it; otherwise run
// the bidirectional BFS and persist the result before returning it.
func GenerateAndPersist(g *Generator, path string, n, h int, regenerate bool) ([]types.Queue, error) {
	log := logging.GetGenLog()

	if !regenerate {
		if _, err := os.Stat(path); err == nil {
			catalog, err := LoadCatalog(path)
			if err == nil {
				log.Infof("loaded %d cached PC queues from %s", len(catalog), path)
				return catalog, nil
			}
			log.Warningf("cached catalog %s could not be loaded (%v); regenerating", path, err)
		}
	}

	catalog, err := g.GeneratePcCatalog(n, h)
	if err != nil {
		return nil, err
	}
	if err := SaveCatalog(path, catalog); err != nil {
		return nil, err
	}
	log.Infof("generated and persisted %d PC queues to %s", len(catalog), path)
	return catalog, nil
}
