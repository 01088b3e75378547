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

// Package mock implements device.Driver in memory, with no GPU and no
// display. It exists for the test suites of the buffer, shader, texture and
// framebuffer packages.
//
// The mock keeps real storage for every buffer so that tests can read back
// what a sequence of operations actually did to device memory. It also
// records draw calls and attribute-pointer configuration, tracks which
// objects have been deleted, and allows error codes and compile/link
// failures to be injected.
package mock

import (
	"fmt"

	"github.com/jetsetilly/glaze/device"
)

// AttribPointerCall records one vertex-attribute-pointer configuration call
type AttribPointerCall struct {
	Location uint32
	Size     int
	Type     device.AttribType
	Integral bool
	Stride   int
	Offset   int
}

// DrawCall records one call to DrawArrays
type DrawCall struct {
	Mode  device.DrawMode
	First int
	Count int
}

// SubDataCall records the byte range of one BufferSubData call
type SubDataCall struct {
	Buffer uint32
	Offset int
	Length int
}

// Driver is the in-memory implementation of device.Driver
type Driver struct {
	buffers map[uint32][]byte
	deleted map[uint32]int

	nextID uint32

	boundBuffer      uint32
	boundVertexArray uint32
	boundTexture2D   uint32
	boundTextureBuf  uint32
	boundFramebuffer uint32
	activeProgram    uint32

	// queued error codes returned by Error() in order. when the queue is
	// empty Error() returns device.NoError
	errorQueue []device.ErrorCode

	// attribute and uniform name tables consulted by AttribLocation and
	// UniformLocation. names not in the table resolve to -1
	attribLocations  map[string]int32
	uniformLocations map[string]int32

	// UniformLookups counts the calls to UniformLocation, for testing that
	// lookups are cached by the caller
	UniformLookups int

	// CompileFailLog and LinkFailLog, when non-empty, cause CompileShader
	// and LinkProgram to report failure with that log text
	CompileFailLog string
	LinkFailLog    string

	// call records
	AttribPointers []AttribPointerCall
	Draws          []DrawCall
	SubData        []SubDataCall
}

// NewDriver is the preferred method of initialisation for the mock Driver
func NewDriver() *Driver {
	return &Driver{
		buffers:          make(map[uint32][]byte),
		deleted:          make(map[uint32]int),
		attribLocations:  make(map[string]int32),
		uniformLocations: make(map[string]int32),
	}
}

// QueueError adds an error code to the queue returned by Error()
func (drv *Driver) QueueError(code device.ErrorCode) {
	drv.errorQueue = append(drv.errorQueue, code)
}

// SetAttribLocations defines the attribute names the mock's programs will
// resolve
func (drv *Driver) SetAttribLocations(locations map[string]int32) {
	drv.attribLocations = locations
}

// SetUniformLocations defines the uniform names the mock's programs will
// resolve
func (drv *Driver) SetUniformLocations(locations map[string]int32) {
	drv.uniformLocations = locations
}

// BufferContents returns the backing storage for a buffer id. Tests use
// this to verify what a sequence of operations left in device memory
func (drv *Driver) BufferContents(id uint32) []byte {
	return drv.buffers[id]
}

// BoundBuffer returns the id of the currently bound byte buffer
func (drv *Driver) BoundBuffer() uint32 {
	return drv.boundBuffer
}

// BoundVertexArray returns the id of the currently bound vertex array
func (drv *Driver) BoundVertexArray() uint32 {
	return drv.boundVertexArray
}

// Deletions returns the number of times the object id has been deleted,
// counting all object kinds together. used to verify exactly-once release
func (drv *Driver) Deletions(id uint32) int {
	return drv.deleted[id]
}

func (drv *Driver) Init() error {
	return nil
}

func (drv *Driver) Version() (string, string) {
	return "mock", "mock"
}

func (drv *Driver) Error() device.ErrorCode {
	if len(drv.errorQueue) == 0 {
		return device.NoError
	}
	code := drv.errorQueue[0]
	drv.errorQueue = drv.errorQueue[1:]
	return code
}

func (drv *Driver) EnableCulling()                        {}
func (drv *Driver) EnableAlphaBlending()                  {}
func (drv *Driver) EnableSmoothLines()                    {}
func (drv *Driver) EnableDepthBuffer(depth float64)       {}
func (drv *Driver) SetBackgroundColor(r, g, b, a float32) {}
func (drv *Driver) ClearBuffer()                          {}

func (drv *Driver) genID() uint32 {
	drv.nextID++
	return drv.nextID
}

func (drv *Driver) GenBuffer() uint32 {
	id := drv.genID()
	drv.buffers[id] = nil
	return id
}

func (drv *Driver) DeleteBuffer(id uint32) {
	delete(drv.buffers, id)
	drv.deleted[id]++
}

func (drv *Driver) BindBuffer(id uint32) {
	drv.boundBuffer = id
}

func (drv *Driver) BufferData(size int) {
	drv.buffers[drv.boundBuffer] = make([]byte, size)
}

func (drv *Driver) BufferSubData(offset int, data []byte) {
	store, ok := drv.buffers[drv.boundBuffer]
	if !ok {
		panic("mock: BufferSubData on an unallocated buffer")
	}
	if offset < 0 || offset+len(data) > len(store) {
		panic(fmt.Sprintf("mock: BufferSubData out of range (%d+%d of %d)", offset, len(data), len(store)))
	}
	copy(store[offset:], data)
	drv.SubData = append(drv.SubData, SubDataCall{
		Buffer: drv.boundBuffer,
		Offset: offset,
		Length: len(data),
	})
}

func (drv *Driver) CopyBufferSubData(readOffset int, writeOffset int, size int) {
	store, ok := drv.buffers[drv.boundBuffer]
	if !ok {
		panic("mock: CopyBufferSubData on an unallocated buffer")
	}
	if readOffset+size > len(store) || writeOffset+size > len(store) {
		panic("mock: CopyBufferSubData out of range")
	}
	copy(store[writeOffset:writeOffset+size], store[readOffset:readOffset+size])
}

func (drv *Driver) GenVertexArray() uint32 {
	return drv.genID()
}

func (drv *Driver) DeleteVertexArray(id uint32) {
	drv.deleted[id]++
}

func (drv *Driver) BindVertexArray(id uint32) {
	drv.boundVertexArray = id
}

func (drv *Driver) EnableVertexAttribArray(location uint32) {}

func (drv *Driver) VertexAttribPointer(location uint32, size int, typ device.AttribType, stride int, offset int) {
	drv.AttribPointers = append(drv.AttribPointers, AttribPointerCall{
		Location: location,
		Size:     size,
		Type:     typ,
		Stride:   stride,
		Offset:   offset,
	})
}

func (drv *Driver) VertexAttribIPointer(location uint32, size int, typ device.AttribType, stride int, offset int) {
	drv.AttribPointers = append(drv.AttribPointers, AttribPointerCall{
		Location: location,
		Size:     size,
		Type:     typ,
		Integral: true,
		Stride:   stride,
		Offset:   offset,
	})
}

func (drv *Driver) DrawArrays(mode device.DrawMode, first int, count int) {
	drv.Draws = append(drv.Draws, DrawCall{
		Mode:  mode,
		First: first,
		Count: count,
	})
}

func (drv *Driver) CreateProgram() uint32 {
	return drv.genID()
}

func (drv *Driver) DeleteProgram(id uint32) {
	drv.deleted[id]++
}

func (drv *Driver) CompileShader(stage device.ShaderStage, source string) (uint32, string, bool) {
	if drv.CompileFailLog != "" {
		return 0, drv.CompileFailLog, false
	}
	return drv.genID(), "", true
}

func (drv *Driver) DeleteShader(id uint32) {
	drv.deleted[id]++
}

func (drv *Driver) AttachShader(program uint32, shader uint32) {}

func (drv *Driver) LinkProgram(program uint32) (string, bool) {
	if drv.LinkFailLog != "" {
		return drv.LinkFailLog, false
	}
	return "", true
}

func (drv *Driver) UseProgram(id uint32) {
	drv.activeProgram = id
}

func (drv *Driver) AttribLocation(program uint32, name string) int32 {
	if location, ok := drv.attribLocations[name]; ok {
		return location
	}
	return -1
}

func (drv *Driver) UniformLocation(program uint32, name string) int32 {
	drv.UniformLookups++
	if location, ok := drv.uniformLocations[name]; ok {
		return location
	}
	return -1
}

func (drv *Driver) Uniform1i(location int32, value int32) {}

func (drv *Driver) GenTexture() uint32 {
	return drv.genID()
}

func (drv *Driver) DeleteTexture(id uint32) {
	drv.deleted[id]++
}

func (drv *Driver) ActiveTexture(unit uint32) {}

func (drv *Driver) BindTexture2D(id uint32) {
	drv.boundTexture2D = id
}

func (drv *Driver) BindTextureBuffer(id uint32) {
	drv.boundTextureBuf = id
}

func (drv *Driver) RenderStorage(width int, height int) {}

func (drv *Driver) TexBuffer(format device.TextureFormat, buffer uint32) {}

func (drv *Driver) GenFramebuffer() uint32 {
	return drv.genID()
}

func (drv *Driver) DeleteFramebuffer(id uint32) {
	drv.deleted[id]++
}

func (drv *Driver) BindFramebuffer(id uint32) {
	drv.boundFramebuffer = id
}

func (drv *Driver) FramebufferTexture2D(attachment device.Attachment, texture uint32) {}
