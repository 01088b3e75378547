// This file is part of Glaze.
//
// Glaze is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glaze is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glaze.  If not, see <https://www.gnu.org/licenses/>.

package buffer_test

import (
	"testing"

	"github.com/jetsetilly/glaze/buffer"
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/mock"
	"github.com/jetsetilly/glaze/test"
)

// stubSource implements buffer.AttribSource from a plain map; names not in
// the map resolve to the not-found sentinel
type stubSource map[string]int32

func (s stubSource) AttribLocation(ct *device.Context, name string) int32 {
	if location, ok := s[name]; ok {
		return location
	}
	return -1
}

type vertex struct {
	Position [2]float32
	Color    [3]float32
}

var vertexAttribs = []buffer.VertexAttrib{
	{Name: "position", Size: 2, Type: device.Float},
	{Name: "color", Size: 3, Type: device.Float},
}

var vertexSource = stubSource{
	"position": 0,
	"color":    1,
}

func TestArrayAttribLayout(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 8)
	_ = buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)

	// two attributes, bound in order, at the running offset, with a stride
	// equal to the element size
	test.DemandEquality(t, len(drv.AttribPointers), 2)

	test.ExpectEquality(t, drv.AttribPointers[0].Location, 0)
	test.ExpectEquality(t, drv.AttribPointers[0].Size, 2)
	test.ExpectEquality(t, drv.AttribPointers[0].Stride, 20)
	test.ExpectEquality(t, drv.AttribPointers[0].Offset, 0)
	test.ExpectEquality(t, drv.AttribPointers[0].Integral, false)

	test.ExpectEquality(t, drv.AttribPointers[1].Location, 1)
	test.ExpectEquality(t, drv.AttribPointers[1].Size, 3)
	test.ExpectEquality(t, drv.AttribPointers[1].Stride, 20)
	test.ExpectEquality(t, drv.AttribPointers[1].Offset, 8)
	test.ExpectEquality(t, drv.AttribPointers[1].Integral, false)
}

func TestArrayIntegralAttrib(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	type cell struct {
		Position [2]float32
		Flags    uint32
	}

	b := buffer.NewBuffer[cell](e, ct, 8)
	_ = buffer.NewArray(e, ct,
		stubSource{"position": 0, "flags": 1},
		[]buffer.VertexAttrib{
			{Name: "position", Size: 2, Type: device.Float},
			{Name: "flags", Size: 1, Type: device.UInt},
		},
		device.Points, b)

	// integer components go through the integer pointer path
	test.DemandEquality(t, len(drv.AttribPointers), 2)
	test.ExpectEquality(t, drv.AttribPointers[0].Integral, false)
	test.ExpectEquality(t, drv.AttribPointers[1].Integral, true)
}

// an attribute layout that does not exactly tile the element type is a
// configuration bug, caught at construction
func TestArrayTiling(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	// a 24 byte element type against 20 bytes of attributes
	b := buffer.NewBuffer[[6]float32](e, ct, 8)
	test.ExpectPanic(t, func() {
		_ = buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)
	})

	// attributes that overshoot the element type are just as wrong
	b2 := buffer.NewBuffer[[4]float32](e, ct, 8)
	test.ExpectPanic(t, func() {
		_ = buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b2)
	})
}

func TestArrayAttribNotFound(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 8)
	test.ExpectPanic(t, func() {
		_ = buffer.NewArray(e, ct, stubSource{"position": 0}, vertexAttribs, device.Triangles, b)
	})
}

func TestArrayPushRollback(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 2)
	a := buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)
	a.Bind(ct)

	vs := []vertex{
		{Position: [2]float32{0, 0.5}, Color: [3]float32{1, 0, 0}},
		{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{0, 1, 0}},
		{Position: [2]float32{0.5, -0.5}, Color: [3]float32{0, 0, 1}},
	}

	// three vertices into a two vertex buffer. length must not move
	ok := a.Push(ct, vs)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, a.Len(), 0)

	ok = a.Push(ct, vs[:2])
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a.Len(), 2)

	a.SwapRemove(ct, 0, 1)
	test.ExpectEquality(t, a.Len(), 1)
}

// an array built over a buffer that already holds elements starts at the
// buffer's length
func TestArrayPrePopulated(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 4)
	b.Bind(ct)
	test.DemandSuccess(t, b.Push(ct, make([]vertex, 3)))

	a := buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)
	test.ExpectEquality(t, a.Len(), 3)
}

func TestArrayDraw(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 8)
	a := buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)
	a.Bind(ct)
	test.DemandSuccess(t, a.Push(ct, make([]vertex, 6)))

	a.Draw(ct)
	test.DemandEquality(t, len(drv.Draws), 1)
	test.ExpectEquality(t, drv.Draws[0], mock.DrawCall{Mode: device.Triangles, First: 0, Count: 6})

	a.DrawSlice(ct, 2, 3)
	test.DemandEquality(t, len(drv.Draws), 2)
	test.ExpectEquality(t, drv.Draws[1], mock.DrawCall{Mode: device.Triangles, First: 2, Count: 3})
}

// drawing a slice beyond the array's length is a contract violation
func TestArrayDrawSliceRange(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 8)
	a := buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)
	a.Bind(ct)
	test.DemandSuccess(t, a.Push(ct, make([]vertex, 4)))

	test.ExpectPanic(t, func() {
		a.DrawSlice(ct, 1, 5)
	})

	// drawing everything through DrawSlice directly is fine
	a.DrawSlice(ct, 0, 4)
	test.ExpectEquality(t, len(drv.Draws), 1)
}

func TestArrayDestroy(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[vertex](e, ct, 8)
	bufID := b.ID()
	a := buffer.NewArray(e, ct, vertexSource, vertexAttribs, device.Triangles, b)

	// the array owns the buffer. destroying the array destroys both
	a.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(bufID), 1)

	a.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(bufID), 1)
}
