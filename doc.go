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

// Glaze is a resource-safety layer over OpenGL. It wraps buffers, vertex
// arrays, shader programs, textures and framebuffers in handle-owning types
// whose constructors require proof that a rendering context is live, and
// whose mutating operations require the working context value.
//
// The device package defines the driver interface and the context pair. The
// buffer package provides byte buffers, typed buffers and vertex arrays.
// The shader, texture and framebuffer packages wrap the remaining object
// kinds. The window package creates a window with a live context for the
// example binaries in the cmd directory.
package glaze
