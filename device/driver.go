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

import "fmt"

// DrawMode describes how the vertices in a buffer are assembled into
// primitives by a draw call
type DrawMode int

// List of valid DrawMode values
const (
	Lines DrawMode = iota
	Triangles
	TriangleStrip
	Points
)

// AttribType is the component type of a vertex attribute
type AttribType int

// List of valid AttribType values
const (
	Float AttribType = iota
	Int
	UInt
)

// Size returns the width of a single component of the type, in bytes
func (typ AttribType) Size() int {
	// GLfloat, GLint and GLuint are all four bytes wide
	return 4
}

// Integral differentiates the types that must be bound through the integer
// attribute-pointer path from those bound through the float path
func (typ AttribType) Integral() bool {
	return typ == Int || typ == UInt
}

func (typ AttribType) String() string {
	switch typ {
	case Float:
		return "Float"
	case Int:
		return "Int"
	case UInt:
		return "UInt"
	}
	return "unknown"
}

// ShaderStage identifies the pipeline stage a shader source string is
// compiled for
type ShaderStage int

// List of valid ShaderStage values
const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (stage ShaderStage) String() string {
	switch stage {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// TextureFormat is the internal format of a buffer-backed texture
type TextureFormat int

// List of valid TextureFormat values
const (
	R32F TextureFormat = iota
	R32UI
	RGBA32F
)

// Attachment is a framebuffer attachment point
type Attachment int

// List of valid Attachment values
const (
	ColorAttachment0 Attachment = iota
	ColorAttachment1
	ColorAttachment2
	ColorAttachment3
	DepthAttachment
)

// ErrorCode is the value of the driver's error flag. The numeric values are
// the OpenGL error codes so that a real driver can return them unchanged
type ErrorCode uint32

// ErrorCode values that the project distinguishes by name. Any other
// non-zero value is an unexpected device error
const (
	NoError     ErrorCode = 0x0000
	OutOfMemory ErrorCode = 0x0505
)

func (code ErrorCode) String() string {
	switch code {
	case NoError:
		return "no error"
	case OutOfMemory:
		return "out of memory"
	}
	return fmt.Sprintf("device error 0x%04x", uint32(code))
}

// Driver is the complete device call surface used by Glaze. The production
// implementation is in the gldriver sub-package; the mock sub-package
// provides an in-memory implementation for testing.
//
// Functions that operate on "the bound buffer", "the bound texture", etc.
// mirror the stateful nature of the underlying device API. The binding
// state is process-global and it is always the caller's responsibility to
// have bound the correct object first.
type Driver interface {
	// Init prepares the driver for use. it must be called (via
	// device.Acquire) before any other function in the interface
	Init() error

	// Version returns the version strings for the driver and for its
	// shading language
	Version() (driver string, shadingLanguage string)

	// Error returns and clears the driver's error flag
	Error() ErrorCode

	// context capabilities
	EnableCulling()
	EnableAlphaBlending()
	EnableSmoothLines()
	EnableDepthBuffer(depth float64)
	SetBackgroundColor(r, g, b, a float32)
	ClearBuffer()

	// byte buffers. BufferData allocates storage for the bound buffer with
	// the dynamic-draw usage hint. BufferSubData and CopyBufferSubData
	// operate on the bound buffer; offsets and sizes are in bytes
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(id uint32)
	BufferData(size int)
	BufferSubData(offset int, data []byte)
	CopyBufferSubData(readOffset int, writeOffset int, size int)

	// vertex arrays. stride and offset are in bytes. first and count for
	// DrawArrays are in vertices
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(location uint32)
	VertexAttribPointer(location uint32, size int, typ AttribType, stride int, offset int)
	VertexAttribIPointer(location uint32, size int, typ AttribType, stride int, offset int)
	DrawArrays(mode DrawMode, first int, count int)

	// shader programs. CompileShader and LinkProgram return the driver's
	// information log verbatim when compilation or linking has failed.
	// AttribLocation and UniformLocation return -1 if the named variable
	// does not exist in the linked program
	CreateProgram() uint32
	DeleteProgram(id uint32)
	CompileShader(stage ShaderStage, source string) (id uint32, infoLog string, ok bool)
	DeleteShader(id uint32)
	AttachShader(program uint32, shader uint32)
	LinkProgram(program uint32) (infoLog string, ok bool)
	UseProgram(id uint32)
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	Uniform1i(location int32, value int32)

	// textures. ActiveTexture takes the texture unit index, not the device
	// enum. RenderStorage allocates float RGBA storage for the bound 2D
	// texture, with the edge-clamping and linear filtering appropriate for
	// a render target. TexBuffer attaches a byte buffer to the bound
	// texture-buffer target
	GenTexture() uint32
	DeleteTexture(id uint32)
	ActiveTexture(unit uint32)
	BindTexture2D(id uint32)
	BindTextureBuffer(id uint32)
	RenderStorage(width int, height int)
	TexBuffer(format TextureFormat, buffer uint32)

	// framebuffers. binding id 0 selects the window-system framebuffer
	GenFramebuffer() uint32
	DeleteFramebuffer(id uint32)
	BindFramebuffer(id uint32)
	FramebufferTexture2D(attachment Attachment, texture uint32)
}
