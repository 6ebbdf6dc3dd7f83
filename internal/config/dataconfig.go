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

// dataConfiguration is a data structure to hold the paths to the static
// piece/kick data files and to the persisted PC catalog.
type dataConfiguration struct {
	// PiecesFile holds the rotation-0 cell offsets for each of the seven shapes.
	PiecesFile string

	// KicksFile holds the SRS-style kick table used when a rotation is
	// rejected at its naive position.
	KicksFile string

	// CatalogFile is where a generated PC-queue catalog is persisted so
	// repeated runs can skip regeneration.
	CatalogFile string
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Data.PiecesFile = "./data/pieces.txt"
	Settings.Data.KicksFile = "./data/kicks.txt"
	Settings.Data.CatalogFile = "./data/pc-queues.txt"
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupData() {
}
