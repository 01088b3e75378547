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

// Package framebuffer provides handle-owning off-screen render targets
package framebuffer

import (
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/texture"
)

// Framebuffer is a handle-owning off-screen render target. Attached
// textures are not owned by the Framebuffer and must be destroyed by their
// owners
type Framebuffer struct {
	handle *device.Handle
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type
func NewFramebuffer(e *device.Existence, ct *device.Context) *Framebuffer {
	drv := ct.Driver()
	return &Framebuffer{
		handle: device.NewHandle(drv.GenFramebuffer, drv.DeleteFramebuffer),
	}
}

// ID returns the device id for the framebuffer
func (fb *Framebuffer) ID() uint32 {
	return fb.handle.ID()
}

// Bind makes the framebuffer the target of subsequent draws
func (fb *Framebuffer) Bind(ct *device.Context) {
	ct.Driver().BindFramebuffer(fb.handle.ID())
}

// Attach2D attaches a 2D texture to the framebuffer at the given attachment
// point. The framebuffer must be bound
func (fb *Framebuffer) Attach2D(ct *device.Context, attachment device.Attachment, tex *texture.Texture2D) {
	ct.Driver().FramebufferTexture2D(attachment, tex.ID())
}

// Destroy releases the framebuffer. It is safe to call Destroy more than
// once
func (fb *Framebuffer) Destroy(ct *device.Context) {
	fb.handle.Release()
}

// BindDefault restores the window-system framebuffer as the target of
// subsequent draws
func BindDefault(ct *device.Context) {
	ct.Driver().BindFramebuffer(0)
}
