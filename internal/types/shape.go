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

// Package types holds the domain-wide value types and the error taxonomy
// shared by every package under internal/ - the pcsolver equivalent of
// FrankyGo's internal/types package of chess primitives (Square, Piece,
// Color, ...).
package types

import "strings"

// Shape identifies one of the seven tetromino pieces.
type Shape byte

// The seven shapes in canonical order, matching the header line of pieces.txt.
const (
	ShapeI Shape = 'I'
	ShapeO Shape = 'O'
	ShapeT Shape = 'T'
	ShapeS Shape = 'S'
	ShapeZ Shape = 'Z'
	ShapeJ Shape = 'J'
	ShapeL Shape = 'L'
)

// Terminator is the reserved DP augmentation character. It never appears
// in a valid Queue and is rejected by Queue.Validate/IsValidShape.
const Terminator byte = 'X'

// Shapes lists the seven valid shapes in canonical order.
var Shapes = []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String renders the shape as its single-character identifier.
func (s Shape) String() string {
	return string(rune(s))
}

// IsValidShape reports whether b is one of the seven canonical shape bytes.
func IsValidShape(b byte) bool {
	switch Shape(b) {
	case ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL:
		return true
	default:
		return false
	}
}

// Rotation is one of the four orientations a piece may be in.
type Rotation uint8

// The four rotations: spawn, clockwise, 180, counter-clockwise.
const (
	Spawn Rotation = 0
	CW    Rotation = 1
	Half  Rotation = 2
	CCW   Rotation = 3
)

// Add returns the rotation reached by turning r by turn steps clockwise,
// wrapping modulo four.
func (r Rotation) Add(turn int) Rotation {
	return Rotation((int(r) + turn + 4) % 4)
}

// CellOffset is a single occupied cell of a piece, relative to its
// reference center. Dy grows upward, matching spec.md's board orientation.
type CellOffset struct {
	Dy, Dx int
}

// Queue is an ordered sequence of upcoming shapes.
type Queue string

// Validate checks that every character of q is one of the seven canonical
// shapes, returning a DomainError naming the offending character otherwise.
func (q Queue) Validate() error {
	for i := 0; i < len(q); i++ {
		if !IsValidShape(q[i]) {
			return &DomainError{Reason: "queue contains character outside the seven-shape alphabet", Detail: string(q[i])}
		}
	}
	return nil
}

// String renders the queue, trimming no whitespace - queues carry none.
func (q Queue) String() string {
	var b strings.Builder
	b.WriteString(string(q))
	return b.String()
}
