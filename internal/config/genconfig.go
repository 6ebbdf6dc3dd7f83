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

package config

// genConfiguration is a data structure to hold the bounds used by the
// PC-catalog generator and the hold-aware DP.
type genConfiguration struct {
	// MaxQueueLen bounds how many pieces a generated PC queue may contain.
	MaxQueueLen int

	// HeightBound is the maximum board height h the generator will work
	// with. 4*HeightBound must not exceed 64 so a board still fits in a
	// single Hash.
	HeightBound int

	// Workers bounds the concurrency of the bidirectional BFS frontier
	// expansion.
	Workers int64

	// ForceRegenerate skips a persisted catalog file and regenerates
	// from scratch even if CatalogFile already exists.
	ForceRegenerate bool
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Gen.MaxQueueLen = 7
	Settings.Gen.HeightBound = 8
	Settings.Gen.Workers = 4
	Settings.Gen.ForceRegenerate = false
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupGen() {
}
