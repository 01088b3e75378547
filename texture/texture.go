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

// Package texture provides handle-owning wrappers for 2D textures and
// buffer-backed textures
package texture

import (
	"github.com/jetsetilly/glaze/buffer"
	"github.com/jetsetilly/glaze/device"
)

// Unit identifies a texture unit. The value is the GLSL sampler id. The
// driver applies the device-enum offset when the unit is activated
type Unit uint32

// Activate makes the unit the active texture unit
func (u Unit) Activate(ct *device.Context) {
	ct.Driver().ActiveTexture(uint32(u))
}

// GLSLID returns the value to assign to a sampler uniform for this unit
func (u Unit) GLSLID() int32 {
	return int32(u)
}

// Texture2D is a handle-owning 2D texture
type Texture2D struct {
	handle *device.Handle
}

// NewTexture2D is the preferred method of initialisation for the Texture2D
// type
func NewTexture2D(e *device.Existence, ct *device.Context) *Texture2D {
	drv := ct.Driver()
	return &Texture2D{
		handle: device.NewHandle(drv.GenTexture, drv.DeleteTexture),
	}
}

// ID returns the device id for the texture
func (tex *Texture2D) ID() uint32 {
	return tex.handle.ID()
}

// Bind makes the texture current on the 2D target of the active unit
func (tex *Texture2D) Bind(ct *device.Context) {
	ct.Driver().BindTexture2D(tex.handle.ID())
}

// RenderStorage allocates storage suitable for use as a render target. The
// texture must be bound
func (tex *Texture2D) RenderStorage(ct *device.Context, width int, height int) {
	ct.Driver().RenderStorage(width, height)
}

// Destroy releases the texture. It is safe to call Destroy more than once
func (tex *Texture2D) Destroy(ct *device.Context) {
	tex.handle.Release()
}

// BufferTexture is a texture whose storage is a typed buffer bound through
// the texture-buffer target. The buffer is owned by the BufferTexture and is
// accessible through the Buffer field for pushing and updating elements
type BufferTexture[T any] struct {
	handle *device.Handle
	Buffer *buffer.Buffer[T]
}

// NewBufferTexture is the preferred method of initialisation for the
// BufferTexture type. The element type T is subject to the same packing
// rules as buffer.NewBuffer. The caller is responsible for choosing a format
// that matches T
func NewBufferTexture[T any](e *device.Existence, ct *device.Context, format device.TextureFormat, capacity int) *BufferTexture[T] {
	drv := ct.Driver()

	buf := buffer.NewBuffer[T](e, ct, capacity)
	tex := &BufferTexture[T]{
		handle: device.NewHandle(drv.GenTexture, drv.DeleteTexture),
		Buffer: buf,
	}

	drv.BindTextureBuffer(tex.handle.ID())
	drv.TexBuffer(format, buf.ID())

	return tex
}

// ID returns the device id for the texture
func (tex *BufferTexture[T]) ID() uint32 {
	return tex.handle.ID()
}

// Bind makes the texture current on the texture-buffer target of the active
// unit
func (tex *BufferTexture[T]) Bind(ct *device.Context) {
	ct.Driver().BindTextureBuffer(tex.handle.ID())
}

// Destroy releases the texture and the buffer that backs it. It is safe to
// call Destroy more than once
func (tex *BufferTexture[T]) Destroy(ct *device.Context) {
	tex.handle.Release()
	tex.Buffer.Destroy(ct)
}
