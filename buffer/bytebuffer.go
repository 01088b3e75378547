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

// ByteBuffer is a fixed-capacity buffer of device memory, addressed in
// bytes. The capacity is decided at creation and never grows.
type ByteBuffer struct {
	handle *device.Handle

	// number of live bytes in the buffer. never exceeds capacity
	length int

	// maximum number of bytes in the buffer
	capacity int
}

// NewByteBuffer allocates a region of device memory of the given capacity,
// with the dynamic usage hint. The new buffer is left bound.
//
// Allocation failure is fatal. A device that cannot satisfy an allocation
// at startup has nothing useful left to offer the program.
func NewByteBuffer(e *device.Existence, ct *device.Context, capacity int) *ByteBuffer {
	drv := e.Driver()

	handle := device.NewHandle(drv.GenBuffer, drv.DeleteBuffer)
	drv.BindBuffer(handle.ID())
	drv.BufferData(capacity)

	switch code := drv.Error(); code {
	case device.NoError:
	case device.OutOfMemory:
		panic("buffer: out of VRAM")
	default:
		panic(fmt.Sprintf("buffer: %v", code))
	}

	return &ByteBuffer{
		handle:   handle,
		capacity: capacity,
	}
}

// Bind makes this the buffer that subsequent Push(), Update() and
// SwapRemove() calls operate on. Those functions never rebind for
// themselves
func (b *ByteBuffer) Bind(ct *device.Context) {
	ct.Driver().BindBuffer(b.handle.ID())
}

// Len returns the number of live bytes in the buffer
func (b *ByteBuffer) Len() int {
	return b.length
}

// Cap returns the capacity of the buffer in bytes
func (b *ByteBuffer) Cap() int {
	return b.capacity
}

// ID returns the device id of the underlying buffer object
func (b *ByteBuffer) ID() uint32 {
	return b.handle.ID()
}

// Push appends data at the end of the live region. If the data does not fit
// in the remaining capacity, Push returns false and the buffer is untouched.
// A full buffer is an expected condition and the only recoverable error in
// the package; callers must check the return value
func (b *ByteBuffer) Push(ct *device.Context, data []byte) bool {
	if b.length+len(data) > b.capacity {
		return false
	}

	b.upload(ct, b.length, data)
	b.length += len(data)

	return true
}

// Update overwrites bytes inside the live region, starting at idx. Writing
// beyond the live region is a contract violation and panics
func (b *ByteBuffer) Update(ct *device.Context, idx int, data []byte) {
	if idx < 0 || idx+len(data) > b.length {
		panic(fmt.Sprintf("buffer: update of %d bytes at offset %d exceeds length %d", len(data), idx, b.length))
	}
	b.upload(ct, idx, data)
}

// SwapRemove removes count bytes at idx by moving the final count bytes of
// the live region into the hole and shrinking the length. Element order is
// not preserved.
//
// The copy is performed as a single device-side transfer between
// non-overlapping regions. A removal that would require an overlapping copy
// is rejected with a panic, as is any out-of-range removal. Removing the
// tail of the live region performs no copy at all
func (b *ByteBuffer) SwapRemove(ct *device.Context, idx int, count int) {
	if count < 0 || count > b.length {
		panic(fmt.Sprintf("buffer: swap remove of %d bytes from a buffer of length %d", count, b.length))
	}

	b.length -= count

	if idx < 0 || idx > b.length {
		panic(fmt.Sprintf("buffer: swap remove at offset %d exceeds length %d", idx, b.length))
	}

	// in the idx == b.length case we don't bother with the swap; decreasing
	// the length is enough
	if idx == b.length {
		return
	}

	if idx > b.length-count {
		panic("buffer: swap remove would copy between overlapping regions")
	}

	ct.Driver().CopyBufferSubData(b.length, idx, count)
}

// Destroy releases the device buffer. Calling Destroy more than once is
// safe; only the first call releases anything
func (b *ByteBuffer) Destroy(ct *device.Context) {
	b.handle.Release()
}

// upload transfers bytes into the bound buffer at the given offset.
// offsets beyond the buffer's capacity indicate a bug in this package
func (b *ByteBuffer) upload(ct *device.Context, idx int, data []byte) {
	if idx+len(data) > b.capacity {
		panic(fmt.Sprintf("buffer: upload of %d bytes at offset %d exceeds capacity %d", len(data), idx, b.capacity))
	}
	if len(data) == 0 {
		return
	}
	ct.Driver().BufferSubData(idx, data)
}
