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

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashOfEmptyBoard(t *testing.T) {
	assert.Equal(t, Hash(0), HashOf(Board{}))
	assert.Equal(t, Board{}, Unhash(0))
}

func TestHashOfTwoRows(t *testing.T) {
	b := Board{0b0011, 0b0011}
	assert.Equal(t, Hash(51), HashOf(b))
}

func TestUnhashRoundTrip(t *testing.T) {
	tests := []Hash{0, 1, 15, 51, 0xFFFF, 0b1010_0101_0011}
	for _, h := range tests {
		b := Unhash(h)
		assert.Equal(t, h, HashOf(b), "hash(unhash(%d)) must equal %d", h, h)
	}
}

func TestUnhashStructural(t *testing.T) {
	b := Unhash(51)
	assert.Equal(t, Board{0b0011, 0b0011}, b)
}

func TestClearFullRows(t *testing.T) {
	b := Board{0b0011, 0b1111, 0b0101}
	cleared := b.ClearFullRows()
	assert.Equal(t, Board{0b0011, 0b0101}, cleared)
	assert.False(t, cleared.HasFullRow())
}

func TestAtOutOfRange(t *testing.T) {
	b := Board{0b0001}
	assert.True(t, b.At(0, 0))
	assert.False(t, b.At(0, 1))
	assert.False(t, b.At(5, 0))
	assert.False(t, b.At(0, -1))
}

func TestInsertRow(t *testing.T) {
	b := Board{0b0001, 0b0010}
	out := b.InsertRow(1, 0b1111)
	assert.Equal(t, Board{0b0001, 0b1111, 0b0010}, out)
}

func TestMaxBoard(t *testing.T) {
	m, err := MaxBoard(8)
	assert.NoError(t, err)
	assert.Equal(t, Hash((1<<32)-1), m)

	_, err = MaxBoard(17)
	assert.Error(t, err)
}
