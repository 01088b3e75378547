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

package buffer

import (
	"fmt"

	"github.com/jetsetilly/glaze/device"
)

// Array is a vertex array: a device buffer of elements of type T plus the
// description of how each element feeds the input attributes of a shader
// program. An Array owns its Buffer; destroying the array destroys the
// buffer with it.
type Array[T any] struct {
	buffer *Buffer[T]
	handle *device.Handle
	mode   device.DrawMode

	// length in elements. kept in lockstep with the buffer's length by
	// Push() and SwapRemove()
	length int
}

// NewArray binds the layout of a Buffer to the input attributes of a
// shader program. The attributes are bound in the order given, each at the
// running byte offset of the attributes before it, with a stride equal to
// the size of the element type.
//
// The attribute list must exactly tile the element type: the sum of the
// attribute byte widths has to equal the size of T, with no padding and no
// gap. A mismatch is a configuration bug and panics at construction rather
// than corrupting draws later. A name with no matching input in the
// program also panics.
//
// The buffer may already hold elements; the array's length starts at the
// buffer's current length.
func NewArray[T any](e *device.Existence, ct *device.Context, prog AttribSource, attribs []VertexAttrib, mode device.DrawMode, buf *Buffer[T]) *Array[T] {
	drv := e.Driver()

	handle := device.NewHandle(drv.GenVertexArray, drv.DeleteVertexArray)
	drv.BindVertexArray(handle.ID())

	// the attribute pointers fix on the buffer that is bound as they are
	// configured, so the backing buffer must be the bound one
	buf.Bind(ct)

	attribSpan := 0
	for _, a := range attribs {
		attribSpan += a.width()
	}

	offset := 0
	for _, a := range attribs {
		location := prog.AttribLocation(ct, a.Name)
		if location < 0 {
			panic(fmt.Sprintf("buffer: shader attribute %q not found", a.Name))
		}

		drv.EnableVertexAttribArray(uint32(location))
		if a.Type.Integral() {
			drv.VertexAttribIPointer(uint32(location), a.Size, a.Type, attribSpan, offset)
		} else {
			drv.VertexAttribPointer(uint32(location), a.Size, a.Type, attribSpan, offset)
		}

		offset += a.width()
	}

	if code := drv.Error(); code != device.NoError {
		panic(fmt.Sprintf("buffer: %v", code))
	}

	if attribSpan != buf.elemSize {
		panic(fmt.Sprintf("buffer: attribute layout is %d bytes but element type %T is %d bytes", attribSpan, *new(T), buf.elemSize))
	}

	return &Array[T]{
		buffer: buf,
		handle: handle,
		mode:   mode,
		length: buf.Len(),
	}
}

// NewArrayHandle returns a bare vertex-array handle with no attached
// buffer or attributes. Useful for draw calls where the shader generates
// its own vertices and the device only requires that some array is bound
func NewArrayHandle(e *device.Existence, ct *device.Context) *device.Handle {
	drv := e.Driver()
	return device.NewHandle(drv.GenVertexArray, drv.DeleteVertexArray)
}

// Bind makes this array and its backing buffer the active ones. It must be
// called before Push(), SwapRemove() or the draw functions
func (a *Array[T]) Bind(ct *device.Context) {
	ct.Driver().BindVertexArray(a.handle.ID())
	a.buffer.Bind(ct)
}

// Len returns the number of live elements in the array
func (a *Array[T]) Len() int {
	return a.length
}

// Push appends elements to the backing buffer. If the elements do not fit
// in the remaining capacity, Push returns false and neither the buffer nor
// the array's length is changed
func (a *Array[T]) Push(ct *device.Context, vs []T) bool {
	if !a.buffer.Push(ct, vs) {
		return false
	}
	a.length += len(vs)
	return true
}

// SwapRemove removes count elements at element idx from the backing
// buffer. Element order is not preserved
func (a *Array[T]) SwapRemove(ct *device.Context, idx int, count int) {
	a.buffer.SwapRemove(ct, idx, count)
	a.length -= count
}

// Draw issues a draw call over every element in the array
func (a *Array[T]) Draw(ct *device.Context) {
	a.DrawSlice(ct, 0, a.length)
}

// DrawSlice issues a draw call over the elements in [start, start+num).
// A range beyond the array's length is a contract violation and panics
func (a *Array[T]) DrawSlice(ct *device.Context, start int, num int) {
	if start < 0 || num < 0 || start+num > a.length {
		panic(fmt.Sprintf("buffer: draw of [%d, %d) exceeds array length %d", start, start+num, a.length))
	}
	ct.Driver().DrawArrays(a.mode, start, num)
}

// Destroy releases the vertex array and the buffer it owns
func (a *Array[T]) Destroy(ct *device.Context) {
	a.handle.Release()
	a.buffer.Destroy(ct)
}
