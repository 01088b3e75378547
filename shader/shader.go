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

// Package shader compiles and links shader programs. Shader source is a
// fixed part of an application, so a compile or link failure is a bug rather
// than a runtime condition. Both panic with the driver's complete info log.
package shader

import (
	"fmt"

	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/logger"
)

// StageSource pairs shader source with the pipeline stage it compiles for
type StageSource struct {
	Stage  device.ShaderStage
	Source string
}

// Program is a compiled and linked shader program. The program and all of
// its stage objects are owned by the Program and released together by
// Destroy()
type Program struct {
	handle *device.Handle
	stages []*device.Handle

	// uniform locations are cached on first lookup. entries are never
	// invalidated, locations do not change after linking
	uniforms map[string]int32
}

// NewProgram is the preferred method of initialisation for the Program type.
// Each stage is compiled and the results linked into a single program. A
// compile or link failure panics with the driver's info log
func NewProgram(e *device.Existence, ct *device.Context, stages []StageSource) *Program {
	drv := ct.Driver()

	prg := &Program{
		handle:   device.NewHandle(drv.CreateProgram, drv.DeleteProgram),
		uniforms: make(map[string]int32),
	}

	for _, s := range stages {
		id, infoLog, ok := drv.CompileShader(s.Stage, s.Source)
		if !ok {
			logger.Logf(logger.Allow, "shader", "%s stage failed to compile", s.Stage)
			panic(fmt.Sprintf("shader: %s stage: %s", s.Stage, infoLog))
		}
		h := device.NewHandle(func() uint32 { return id }, drv.DeleteShader)
		prg.stages = append(prg.stages, h)
		drv.AttachShader(prg.handle.ID(), h.ID())
	}

	if infoLog, ok := drv.LinkProgram(prg.handle.ID()); !ok {
		logger.Log(logger.Allow, "shader", "program failed to link")
		panic(fmt.Sprintf("shader: link: %s", infoLog))
	}

	return prg
}

// ID returns the device id for the program
func (prg *Program) ID() uint32 {
	return prg.handle.ID()
}

// Use makes the program the active program for subsequent draws
func (prg *Program) Use(ct *device.Context) {
	ct.Driver().UseProgram(prg.handle.ID())
}

// AttribLocation returns the location of the named vertex attribute, or -1
// if the program has no attribute of that name. Whether -1 is an error is
// for the caller to decide
func (prg *Program) AttribLocation(ct *device.Context, name string) int32 {
	return ct.Driver().AttribLocation(prg.handle.ID(), name)
}

// UniformLocation returns the location of the named uniform. Locations are
// cached per name. A uniform that does not exist in the linked program is a
// contract violation and the function panics
func (prg *Program) UniformLocation(ct *device.Context, name string) int32 {
	if location, ok := prg.uniforms[name]; ok {
		return location
	}
	location := ct.Driver().UniformLocation(prg.handle.ID(), name)
	if location < 0 {
		panic(fmt.Sprintf("shader: uniform %q not found in program", name))
	}
	prg.uniforms[name] = location
	return location
}

// Destroy releases the program and its stage objects. It is safe to call
// Destroy more than once
func (prg *Program) Destroy(ct *device.Context) {
	for _, h := range prg.stages {
		h.Release()
	}
	prg.handle.Release()
}
