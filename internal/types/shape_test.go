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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeString(t *testing.T) {
	tests := []struct {
		shape Shape
		want  string
	}{
		{ShapeI, "I"},
		{ShapeO, "O"},
		{ShapeT, "T"},
		{ShapeS, "S"},
		{ShapeZ, "Z"},
		{ShapeJ, "J"},
		{ShapeL, "L"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.String())
		})
	}
}

func TestIsValidShape(t *testing.T) {
	for _, s := range Shapes {
		assert.True(t, IsValidShape(byte(s)))
	}
	assert.False(t, IsValidShape('X'))
	assert.False(t, IsValidShape('Q'))
}

func TestRotationAdd(t *testing.T) {
	assert.Equal(t, CW, Spawn.Add(1))
	assert.Equal(t, Half, Spawn.Add(2))
	assert.Equal(t, CCW, Spawn.Add(3))
	assert.Equal(t, Spawn, Spawn.Add(4))
	assert.Equal(t, Spawn, CW.Add(3))
}

func TestQueueValidate(t *testing.T) {
	assert.NoError(t, Queue("IJLOSTZ").Validate())
	err := Queue("IJX").Validate()
	assert.Error(t, err)
	var de *DomainError
	assert.ErrorAs(t, err, &de)
}
