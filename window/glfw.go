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

package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/gldriver"
)

type glfwWindow struct {
	window *glfw.Window
	e      *device.Existence
	ct     *device.Context
}

// NewGLFW is the preferred method of initialisation for the GLFW backend
func NewGLFW(spec Spec) (Window, error) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	w, err := glfw.CreateWindow(spec.Width, spec.Height, spec.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw: %w", err)
	}

	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	win := &glfwWindow{window: w}

	win.e, win.ct, err = device.Acquire(gldriver.New())
	if err != nil {
		win.Destroy()
		return nil, err
	}

	w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	return win, nil
}

func (win *glfwWindow) Device() (*device.Existence, *device.Context) {
	return win.e, win.ct
}

func (win *glfwWindow) ShouldQuit() bool {
	glfw.PollEvents()
	return win.window.ShouldClose()
}

func (win *glfwWindow) Swap() {
	win.window.SwapBuffers()
}

func (win *glfwWindow) Destroy() {
	if win.window != nil {
		win.window.Destroy()
		win.window = nil
	}
	glfw.Terminate()
}
