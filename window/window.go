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

// Package window creates a display window with a live rendering context and
// acquires the device against it. Two backends are provided, SDL and GLFW.
// Example binaries use one or the other; real applications embedding the
// project will usually bring their own windowing and call device.Acquire
// themselves
package window

import (
	"github.com/jetsetilly/glaze/device"
)

// Spec is the description of the window to create
type Spec struct {
	Title  string
	Width  int
	Height int
}

// Window is a display window with the device acquired against its rendering
// context
type Window interface {
	// Device returns the context pair acquired when the window was created
	Device() (*device.Existence, *device.Context)

	// ShouldQuit polls window events and reports whether the user has asked
	// to close the window
	ShouldQuit() bool

	// Swap presents the frame drawn since the previous Swap
	Swap()

	// Destroy closes the window and shuts the backend down
	Destroy()
}
