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

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/jetsetilly/glaze/logger"
)

// Existence is proof that a rendering context is live. Resource constructors
// take an Existence so that a resource can never be created without a
// context to create it against. It is deliberately inert; nothing can be
// drawn or mutated through it
type Existence struct {
	drv Driver
}

// Context is the working half of the context pair. Mutating operations and
// draw calls take a Context
type Context struct {
	drv Driver
}

// Driver returns the driver the context pair was acquired with
func (e *Existence) Driver() Driver {
	return e.drv
}

// Driver returns the driver the context pair was acquired with
func (ct *Context) Driver() Driver {
	return ct.drv
}

// acquired is the process-wide acquisition guard
var acquired atomic.Bool

// Acquire initialises the driver and returns the context pair for it. The
// OS thread is locked and all further use of the pair, and of any resource
// created against it, must happen on this thread.
//
// Acquire may be called at most once per process. A second call panics
// because a second live context pair would break the exclusivity that the
// rest of the project relies on.
func Acquire(drv Driver) (*Existence, *Context, error) {
	runtime.LockOSThread()

	if !acquired.CompareAndSwap(false, true) {
		panic("device: context acquired twice")
	}

	err := drv.Init()
	if err != nil {
		acquired.Store(false)
		return nil, nil, fmt.Errorf("device: %w", err)
	}

	e, ct := NewContext(drv)
	ct.LogStats()

	return e, ct, nil
}

// NewContext returns a context pair for the driver without engaging the
// acquisition guard and without initialising the driver. It exists so that
// tests can drive the project against a stub driver. Production code should
// always use Acquire()
func NewContext(drv Driver) (*Existence, *Context) {
	return &Existence{drv: drv}, &Context{drv: drv}
}

// EnableCulling stops the processing of any triangles that face away from
// the viewer
func (ct *Context) EnableCulling() {
	ct.drv.EnableCulling()
}

// EnableAlphaBlending blends incoming fragments with the framebuffer
// according to their alpha channel
func (ct *Context) EnableAlphaBlending() {
	ct.drv.EnableAlphaBlending()
}

// EnableSmoothLines turns on line anti-aliasing
func (ct *Context) EnableSmoothLines() {
	ct.drv.EnableSmoothLines()
}

// EnableDepthBuffer turns on depth testing. depth is the value the depth
// buffer is cleared to
func (ct *Context) EnableDepthBuffer(depth float64) {
	ct.drv.EnableDepthBuffer(depth)
}

// SetBackgroundColor sets the color the buffer is cleared to at the start
// of each frame
func (ct *Context) SetBackgroundColor(r, g, b, a float32) {
	ct.drv.SetBackgroundColor(r, g, b, a)
}

// ClearBuffer replaces the current buffer with the background color
func (ct *Context) ClearBuffer() {
	ct.drv.ClearBuffer()
}

// Error returns and clears the driver's error flag. Resource constructors
// poll this themselves; it is exposed for callers that want to check their
// own multi-step setup sequences
func (ct *Context) Error() ErrorCode {
	return ct.drv.Error()
}

// LogStats adds the driver version information to the central logger
func (ct *Context) LogStats() {
	version, shadingLanguage := ct.drv.Version()
	logger.Logf(logger.Allow, "device", "driver: %s", version)
	logger.Logf(logger.Allow, "device", "shading language: %s", shadingLanguage)
}
