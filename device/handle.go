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

package device

// Handle owns a single device-allocated id. A Handle belongs to exactly one
// higher level type (byte buffer, vertex array, texture, program, shader
// stage) and is released exactly once, when that owner is destroyed.
type Handle struct {
	id  uint32
	del func(uint32)
}

// NewHandle runs the generate primitive and wraps the resulting id. A zero
// id means the device failed to allocate the object, which is fatal.
//
// The del function is the matching delete primitive. It is stored rather
// than run immediately, Release() being the only code path that calls it.
func NewHandle(gen func() uint32, del func(uint32)) *Handle {
	id := gen()
	if id == 0 {
		panic("device: id generation failed (zero id)")
	}

	return &Handle{
		id:  id,
		del: del,
	}
}

// ID returns the device id the handle owns. The id of a released handle is
// zero
func (h *Handle) ID() uint32 {
	return h.id
}

// Release runs the delete primitive for the owned id. The first call
// releases the object; any further calls do nothing
func (h *Handle) Release() {
	if h.id != 0 {
		h.del(h.id)
		h.id = 0
	}
}
