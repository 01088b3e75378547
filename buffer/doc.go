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

// Package buffer manages fixed-capacity buffers of device memory and the
// vertex arrays that describe their layout to a shader program.
//
// ByteBuffer is the foundation: an append/overwrite/remove region of device
// memory addressed in bytes. Buffer is a thin generic layer that converts
// element counts to byte counts for a fixed element type. Array ties a
// Buffer's memory layout to the input attributes of a compiled shader
// program and issues draw calls.
//
// The only recoverable error in the package is a full buffer, reported by
// the boolean return value of the Push() functions. Everything else that
// can go wrong (out-of-range indices, attribute layouts that do not tile
// the element type, device errors during setup) is either a bug in the
// calling code or a failure of the device, and results in a panic.
//
// Operations on a buffer or array require the object to have been bound.
// Binding is never performed implicitly by the mutating functions; it is
// the caller's responsibility and is deliberately kept out of the hot path.
package buffer
