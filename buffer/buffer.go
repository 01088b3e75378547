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
	"unsafe"

	"github.com/jetsetilly/glaze/device"
)

// Buffer is a fixed-capacity device buffer of elements of type T. It is a
// unit-conversion layer over ByteBuffer: every index and count is
// multiplied by the element size on the way through, so the byte buffer's
// length and capacity are always exact multiples of the element size.
//
// T must be a scalar type, or an array or struct composed (recursively) of
// scalar types with no padding. NewBuffer panics for any other type.
type Buffer[T any] struct {
	bytes    *ByteBuffer
	elemSize int
}

// NewBuffer allocates a device buffer with room for capacity elements of
// type T. The new buffer is left bound
func NewBuffer[T any](e *device.Existence, ct *device.Context, capacity int) *Buffer[T] {
	verifyPacking[T]()

	elemSize := int(unsafe.Sizeof(*new(T)))

	return &Buffer[T]{
		bytes:    NewByteBuffer(e, ct, capacity*elemSize),
		elemSize: elemSize,
	}
}

// Bind makes this the buffer that subsequent mutating calls operate on
func (b *Buffer[T]) Bind(ct *device.Context) {
	b.bytes.Bind(ct)
}

// Len returns the number of live elements in the buffer
func (b *Buffer[T]) Len() int {
	return b.bytes.Len() / b.elemSize
}

// Cap returns the capacity of the buffer in elements
func (b *Buffer[T]) Cap() int {
	return b.bytes.Cap() / b.elemSize
}

// ID returns the device id of the underlying buffer object
func (b *Buffer[T]) ID() uint32 {
	return b.bytes.ID()
}

// Push appends elements at the end of the live region. If the elements do
// not fit in the remaining capacity, Push returns false and the buffer is
// untouched
func (b *Buffer[T]) Push(ct *device.Context, vs []T) bool {
	return b.bytes.Push(ct, asBytes(vs))
}

// Update overwrites elements in place, starting at element idx
func (b *Buffer[T]) Update(ct *device.Context, idx int, vs []T) {
	b.bytes.Update(ct, idx*b.elemSize, asBytes(vs))
}

// SwapRemove removes count elements at element idx by moving the final
// count elements of the live region into the hole. Element order is not
// preserved
func (b *Buffer[T]) SwapRemove(ct *device.Context, idx int, count int) {
	b.bytes.SwapRemove(ct, idx*b.elemSize, count*b.elemSize)
}

// Destroy releases the device buffer
func (b *Buffer[T]) Destroy(ct *device.Context) {
	b.bytes.Destroy(ct)
}
