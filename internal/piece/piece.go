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

// Package piece holds the geometry and kick tables of spec.md §3/§6: the
// seven shapes' cell offsets in all four rotations, and the ordered kick
// candidates tried on rotation. Both tables are loaded once and treated as
// immutable afterward, the same lifecycle FrankyGo gives its magic-bitboard
// attack tables in internal/attacks.
package piece

import (
	"github.com/tmikkel/pcsolver/internal/types"
)

// rotationKey identifies a kick lookup by shape, originating rotation and
// turn direction (1=CW, 2=180, 3=CCW).
type rotationKey struct {
	Shape types.Shape
	From  types.Rotation
	Turn  int
}

// Table holds the loaded geometry and kick data for all seven shapes.
type Table struct {
	geometry map[types.Shape][4][]types.CellOffset
	kicks    map[rotationKey][]types.CellOffset
}

// Cells returns the four cell offsets for shape at rotation, or nil if the
// shape was never loaded.
func (t *Table) Cells(shape types.Shape, rot types.Rotation) []types.CellOffset {
	rows, ok := t.geometry[shape]
	if !ok {
		return nil
	}
	return rows[rot]
}

// Kicks returns the ordered kick candidates for rotating shape from from
// by turn steps. An empty/nil result means the shape or turn was never
// loaded - the caller should treat that rotation as always failing.
func (t *Table) Kicks(shape types.Shape, from types.Rotation, turn int) []types.CellOffset {
	return t.kicks[rotationKey{shape, from, turn}]
}

// Width reports the bounding-box width of shape, used by the backward
// enumerator to bound how many rows to consider inserting (spec.md §4.3).
func Width(shape types.Shape) int {
	switch shape {
	case types.ShapeO:
		return 2
	case types.ShapeI:
		return 4
	default:
		return 3
	}
}

// rotateCW applies the 90-degree rotation (y, x) -> (-x, y) to offsets,
// the transform spec.md §3 specifies for deriving rotations 1-3 from
// rotation 0.
func rotateCW(offsets []types.CellOffset) []types.CellOffset {
	out := make([]types.CellOffset, len(offsets))
	for i, c := range offsets {
		out[i] = types.CellOffset{Dy: -c.Dx, Dx: c.Dy}
	}
	return out
}

// deriveRotations builds all four rotations of a shape from its rotation-0
// cell offsets.
func deriveRotations(rot0 []types.CellOffset) [4][]types.CellOffset {
	var rows [4][]types.CellOffset
	rows[0] = rot0
	for r := 1; r < 4; r++ {
		rows[r] = rotateCW(rows[r-1])
	}
	return rows
}
