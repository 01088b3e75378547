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

// Package gldriver implements the device.Driver interface over OpenGL 3.2
// core, using the go-gl bindings. It is the only package in the project
// that imports go-gl.
//
// All functions must be called from the thread on which the OpenGL context
// was made current. The device package's Acquire() function takes care of
// locking the OS thread.
package gldriver

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glaze/device"
)

type driver struct{}

// New returns the production OpenGL implementation of device.Driver. The
// returned driver is stateless; all state lives in the OpenGL context
func New() device.Driver {
	return &driver{}
}

// Init loads the OpenGL function pointers. An OpenGL context must be
// current on the calling thread
func (drv *driver) Init() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("gldriver: %w", err)
	}
	return nil
}

func (drv *driver) Version() (string, string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))
}

func (drv *driver) Error() device.ErrorCode {
	return device.ErrorCode(gl.GetError())
}

func (drv *driver) EnableCulling() {
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)
}

func (drv *driver) EnableAlphaBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

func (drv *driver) EnableSmoothLines() {
	gl.Enable(gl.LINE_SMOOTH)
	gl.LineWidth(2.5)
}

func (drv *driver) EnableDepthBuffer(depth float64) {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearDepth(depth)
}

func (drv *driver) SetBackgroundColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (drv *driver) ClearBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (drv *driver) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (drv *driver) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (drv *driver) BindBuffer(id uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
}

func (drv *driver) BufferData(size int) {
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
}

func (drv *driver) BufferSubData(offset int, data []byte) {
	gl.BufferSubData(gl.ARRAY_BUFFER, offset, len(data), gl.Ptr(data))
}

func (drv *driver) CopyBufferSubData(readOffset int, writeOffset int, size int) {
	gl.CopyBufferSubData(gl.ARRAY_BUFFER, gl.ARRAY_BUFFER, readOffset, writeOffset, size)
}

func (drv *driver) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (drv *driver) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (drv *driver) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (drv *driver) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
}

func (drv *driver) VertexAttribPointer(location uint32, size int, typ device.AttribType, stride int, offset int) {
	gl.VertexAttribPointerWithOffset(location, int32(size), attribTypeEnum(typ), false, int32(stride), uintptr(offset))
}

func (drv *driver) VertexAttribIPointer(location uint32, size int, typ device.AttribType, stride int, offset int) {
	gl.VertexAttribIPointerWithOffset(location, int32(size), attribTypeEnum(typ), int32(stride), uintptr(offset))
}

func (drv *driver) DrawArrays(mode device.DrawMode, first int, count int) {
	gl.DrawArrays(drawModeEnum(mode), int32(first), int32(count))
}

func (drv *driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (drv *driver) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (drv *driver) CompileShader(stage device.ShaderStage, source string) (uint32, string, bool) {
	id := gl.CreateShader(shaderStageEnum(stage))

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
	gl.CompileShader(id)

	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(id)
		gl.DeleteShader(id)
		return 0, infoLog, false
	}

	return id, "", true
}

func (drv *driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (drv *driver) AttachShader(program uint32, shader uint32) {
	gl.AttachShader(program, shader)
}

func (drv *driver) LinkProgram(program uint32) (string, bool) {
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			infoLog := strings.Repeat("\x00", int(logLength+1))
			gl.GetProgramInfoLog(program, logLength, &logLength, gl.Str(infoLog))
			return strings.TrimRight(infoLog, "\x00"), false
		}
		return "", false
	}

	return "", true
}

func (drv *driver) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (drv *driver) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (drv *driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (drv *driver) Uniform1i(location int32, value int32) {
	gl.Uniform1i(location, value)
}

func (drv *driver) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (drv *driver) DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

func (drv *driver) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

func (drv *driver) BindTexture2D(id uint32) {
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (drv *driver) BindTextureBuffer(id uint32) {
	gl.BindTexture(gl.TEXTURE_BUFFER, id)
}

func (drv *driver) RenderStorage(width int, height int) {
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, int32(width), int32(height), 0, gl.RGBA, gl.FLOAT, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
}

func (drv *driver) TexBuffer(format device.TextureFormat, buffer uint32) {
	gl.TexBuffer(gl.TEXTURE_BUFFER, textureFormatEnum(format), buffer)
}

func (drv *driver) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

func (drv *driver) DeleteFramebuffer(id uint32) {
	gl.DeleteFramebuffers(1, &id)
}

func (drv *driver) BindFramebuffer(id uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
}

func (drv *driver) FramebufferTexture2D(attachment device.Attachment, texture uint32) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, attachmentEnum(attachment), gl.TEXTURE_2D, texture, 0)
}

// shaderInfoLog returns the information log for a shader that has failed
// to compile
func shaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, &logLength, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func drawModeEnum(mode device.DrawMode) uint32 {
	switch mode {
	case device.Lines:
		return gl.LINES
	case device.Triangles:
		return gl.TRIANGLES
	case device.TriangleStrip:
		return gl.TRIANGLE_STRIP
	case device.Points:
		return gl.POINTS
	}
	panic(fmt.Sprintf("gldriver: unsupported draw mode (%d)", mode))
}

func attribTypeEnum(typ device.AttribType) uint32 {
	switch typ {
	case device.Float:
		return gl.FLOAT
	case device.Int:
		return gl.INT
	case device.UInt:
		return gl.UNSIGNED_INT
	}
	panic(fmt.Sprintf("gldriver: unsupported attribute type (%d)", typ))
}

func shaderStageEnum(stage device.ShaderStage) uint32 {
	switch stage {
	case device.VertexShader:
		return gl.VERTEX_SHADER
	case device.FragmentShader:
		return gl.FRAGMENT_SHADER
	}
	panic(fmt.Sprintf("gldriver: unsupported shader stage (%d)", stage))
}

func textureFormatEnum(format device.TextureFormat) uint32 {
	switch format {
	case device.R32F:
		return gl.R32F
	case device.R32UI:
		return gl.R32UI
	case device.RGBA32F:
		return gl.RGBA32F
	}
	panic(fmt.Sprintf("gldriver: unsupported texture format (%d)", format))
}

func attachmentEnum(attachment device.Attachment) uint32 {
	switch attachment {
	case device.ColorAttachment0:
		return gl.COLOR_ATTACHMENT0
	case device.ColorAttachment1:
		return gl.COLOR_ATTACHMENT1
	case device.ColorAttachment2:
		return gl.COLOR_ATTACHMENT2
	case device.ColorAttachment3:
		return gl.COLOR_ATTACHMENT3
	case device.DepthAttachment:
		return gl.DEPTH_ATTACHMENT
	}
	panic(fmt.Sprintf("gldriver: unsupported attachment (%d)", attachment))
}
