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
	"reflect"
	"unsafe"
)

// asBytes reinterprets a slice of elements as the raw bytes that will be
// transferred to the device. This is the only place in the project where a
// typed slice crosses into untyped bytes.
//
// The reinterpretation is only sound for element types that satisfy
// tightlyPacked(). NewBuffer() checks that once, at construction, so every
// slice arriving here has already been vetted.
func asBytes[T any](vs []T) []byte {
	if len(vs) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vs[0])), len(vs)*int(unsafe.Sizeof(vs[0])))
}

// verifyPacking panics if the element type cannot be safely reinterpreted
// as bytes for the device
func verifyPacking[T any]() {
	var v T
	rt := reflect.TypeOf(&v).Elem()
	if !tightlyPacked(rt) {
		panic(fmt.Sprintf("buffer: element type %s is not tightly packed or contains non-scalar fields", rt))
	}
}

// tightlyPacked returns true if a value of the type occupies its full
// memory footprint with scalar data. A type with internal padding would
// leak uninitialised bytes to the device; a type containing pointers,
// slices, strings, etc. has no meaningful device representation at all
func tightlyPacked(rt reflect.Type) bool {
	switch rt.Kind() {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true

	case reflect.Array:
		return tightlyPacked(rt.Elem()) && rt.Size() == rt.Elem().Size()*uintptr(rt.Len())

	case reflect.Struct:
		var sum uintptr
		for i := 0; i < rt.NumField(); i++ {
			f := rt.Field(i)
			if !tightlyPacked(f.Type) {
				return false
			}
			sum += f.Type.Size()
		}
		return sum == rt.Size()
	}

	return false
}
