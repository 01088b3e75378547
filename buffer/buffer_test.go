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
	"encoding/binary"
	"math"
	"testing"

	"github.com/jetsetilly/glaze/buffer"
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/mock"
	"github.com/jetsetilly/glaze/test"
)

func TestTypedPushAndSwapRemove(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	// an element of three four-byte floats, capacity of two elements
	b := buffer.NewBuffer[[3]float32](e, ct, 2)
	b.Bind(ct)

	test.ExpectEquality(t, b.Cap(), 2)

	e0 := [3]float32{1.0, 2.0, 3.0}
	e1 := [3]float32{4.0, 5.0, 6.0}

	ok := b.Push(ct, [][3]float32{e0, e1})
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, b.Len(), 2)

	// removing the first element moves the second into its place
	b.SwapRemove(ct, 0, 1)
	test.ExpectEquality(t, b.Len(), 1)

	contents := drv.BufferContents(b.ID())
	test.ExpectEquality(t, string(contents[:12]), string(floatBytes(e1)))
}

func TestTypedPushCapacity(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[[3]float32](e, ct, 2)
	b.Bind(ct)

	vs := [][3]float32{{1, 1, 1}, {2, 2, 2}, {3, 3, 3}}

	// three elements do not fit in two
	ok := b.Push(ct, vs)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, b.Len(), 0)

	ok = b.Push(ct, vs[:2])
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b.Len(), 2)
}

// the byte range touched by a typed update must be exactly the element
// range multiplied by the element size
func TestTypedUpdateRange(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	b := buffer.NewBuffer[[3]float32](e, ct, 4)
	b.Bind(ct)
	test.DemandSuccess(t, b.Push(ct, make([][3]float32, 4)))

	drv.SubData = drv.SubData[:0]
	b.Update(ct, 1, [][3]float32{{9, 9, 9}, {8, 8, 8}})

	test.DemandEquality(t, len(drv.SubData), 1)
	test.ExpectEquality(t, drv.SubData[0].Offset, 12)
	test.ExpectEquality(t, drv.SubData[0].Length, 24)
}

// element types with padding, or with fields that have no device
// representation, are rejected at construction
func TestTypedPacking(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	// a byte followed by a float32 leaves three bytes of padding
	type padded struct {
		A byte
		B float32
	}
	test.ExpectPanic(t, func() {
		_ = buffer.NewBuffer[padded](e, ct, 4)
	})

	// strings have no device representation
	type stringly struct {
		S string
	}
	test.ExpectPanic(t, func() {
		_ = buffer.NewBuffer[stringly](e, ct, 4)
	})

	// a tightly packed struct is fine, including nested arrays
	type vertex struct {
		Position [2]float32
		Color    [3]float32
	}
	b := buffer.NewBuffer[vertex](e, ct, 4)
	test.ExpectEquality(t, b.Cap(), 4)
	test.ExpectEquality(t, drv.BoundBuffer(), b.ID())
}

// floatBytes serialises float32 values the way the device receives them
func floatBytes(vs [3]float32) []byte {
	b := make([]byte, 0, 12)
	for _, v := range vs {
		b = binary.NativeEndian.AppendUint32(b, math.Float32bits(v))
	}
	return b
}
