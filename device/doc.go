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

// Package device is the boundary between Glaze and the graphics driver. It
// provides three things: the Driver interface, which is the complete device
// call surface used by the rest of the project; the Existence and Context
// types, which prove that a rendering context is live on the current thread;
// and the Handle type, which owns a single device-allocated id and releases
// it exactly once.
//
// Only the gldriver sub-package touches the real OpenGL bindings. Every
// other package works through the Driver interface, which means the core
// buffer and vertex-array logic can be exercised against the mock
// sub-package without a display or a GPU.
//
// The rules for Existence and Context are the same as for an OpenGL context:
// one per thread, acquired once, and every resource created against it must
// be used and destroyed on that same thread. Acquire() enforces the
// once-per-process part and fails loudly if it is violated. The per-thread
// part cannot be policed by the Go runtime and remains a caller obligation,
// as it is with any OpenGL program.
package device
