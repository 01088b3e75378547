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

import "github.com/jetsetilly/glaze/device"

// VertexAttrib specifies how one field of the element type is passed to
// the vertex shader
type VertexAttrib struct {
	// corresponds to the shader's input variable
	Name string

	// the number of components in the attribute, in units of the
	// component type
	Size int

	Type device.AttribType
}

// width returns the number of bytes the attribute occupies in the element
func (a VertexAttrib) width() int {
	return a.Size * a.Type.Size()
}

// AttribSource resolves shader input names to binding locations. The
// shader package's Program type implements the interface.
//
// A negative return value means the named input does not exist in the
// program. NewArray() treats that as fatal; the AttribSource itself should
// not
type AttribSource interface {
	AttribLocation(ct *device.Context, name string) int32
}
