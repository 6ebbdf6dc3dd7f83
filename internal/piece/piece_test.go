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

package piece

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmikkel/pcsolver/internal/types"
)

// make tests run in the projects root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestLoadGeometry(t *testing.T) {
	tbl, err := LoadGeometry("data/pieces.txt")
	require.NoError(t, err)

	for _, s := range types.Shapes {
		for r := types.Rotation(0); r < 4; r++ {
			cells := tbl.Cells(s, r)
			assert.Lenf(t, cells, 4, "shape %s rotation %d must have 4 cells", s, r)
		}
	}
}

func TestLoadGeometryMissingFile(t *testing.T) {
	_, err := LoadGeometry("data/nonexistent-pieces.txt")
	assert.Error(t, err)
	var ioErr *types.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestLoadKicks(t *testing.T) {
	tbl, err := LoadGeometry("data/pieces.txt")
	require.NoError(t, err)
	require.NoError(t, LoadKicks("data/kicks.txt", tbl))

	for _, s := range types.Shapes {
		for r := types.Rotation(0); r < 4; r++ {
			for turn := 1; turn <= 3; turn++ {
				kicks := tbl.Kicks(s, r, turn)
				require.NotEmptyf(t, kicks, "shape %s rotation %d turn %d", s, r, turn)
				assert.Equal(t, types.CellOffset{}, kicks[0], "first kick must be (0,0)")
			}
		}
	}
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 2, Width(types.ShapeO))
	assert.Equal(t, 4, Width(types.ShapeI))
	assert.Equal(t, 3, Width(types.ShapeT))
	assert.Equal(t, 3, Width(types.ShapeL))
}

func TestRotateCWRotatesAboutOrigin(t *testing.T) {
	tbl, err := LoadGeometry("data/pieces.txt")
	require.NoError(t, err)
	// (y, x) -> (-x, y) turns the O's spawn square {(0,0),(0,1),(1,0),(1,1)}
	// into the square below row 0.
	want := []types.CellOffset{{Dy: 0, Dx: 0}, {Dy: 0, Dx: 1}, {Dy: -1, Dx: 0}, {Dy: -1, Dx: 1}}
	assert.ElementsMatch(t, want, tbl.Cells(types.ShapeO, types.CW), "O rotated clockwise about the origin")
}
