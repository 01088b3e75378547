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

package shader_test

import (
	"testing"

	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/mock"
	"github.com/jetsetilly/glaze/shader"
	"github.com/jetsetilly/glaze/test"
)

var stages = []shader.StageSource{
	{Stage: device.VertexShader, Source: "void main() {}"},
	{Stage: device.FragmentShader, Source: "void main() {}"},
}

func TestProgram(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	drv.SetAttribLocations(map[string]int32{"position": 0})

	prg := shader.NewProgram(e, ct, stages)
	test.ExpectInequality(t, prg.ID(), 0)

	prg.Use(ct)

	test.ExpectEquality(t, prg.AttribLocation(ct, "position"), 0)

	// an unknown attribute is not an error at this level
	test.ExpectEquality(t, prg.AttribLocation(ct, "normal"), -1)
}

func TestProgramCompileFailure(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	drv.CompileFailLog = "0:1(1): error: syntax error, unexpected NEW_IDENTIFIER"

	test.ExpectPanic(t, func() {
		_ = shader.NewProgram(e, ct, stages)
	})
}

func TestProgramLinkFailure(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	drv.LinkFailLog = "error: unresolved symbol"

	test.ExpectPanic(t, func() {
		_ = shader.NewProgram(e, ct, stages)
	})
}

func TestUniformCache(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	drv.SetUniformLocations(map[string]int32{"texture": 3})

	prg := shader.NewProgram(e, ct, stages)

	// repeated lookups of the same name reach the driver once
	test.ExpectEquality(t, prg.UniformLocation(ct, "texture"), 3)
	test.ExpectEquality(t, prg.UniformLocation(ct, "texture"), 3)
	test.ExpectEquality(t, drv.UniformLookups, 1)
}

func TestUniformNotFound(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	prg := shader.NewProgram(e, ct, stages)
	test.ExpectPanic(t, func() {
		_ = prg.UniformLocation(ct, "missing")
	})
}

func TestProgramDestroy(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	prg := shader.NewProgram(e, ct, stages)
	id := prg.ID()

	prg.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(id), 1)

	// a second Destroy must not release anything twice
	prg.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(id), 1)
}
