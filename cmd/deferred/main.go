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

// The deferred example renders a triangle into an off-screen framebuffer
// texture and then composites the texture to the screen with a second
// program. The compositing pass generates a full-screen strip in the vertex
// shader and draws it from an empty vertex array.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/glaze/buffer"
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/framebuffer"
	"github.com/jetsetilly/glaze/logger"
	"github.com/jetsetilly/glaze/shader"
	"github.com/jetsetilly/glaze/statsview"
	"github.com/jetsetilly/glaze/texture"
	"github.com/jetsetilly/glaze/version"
	"github.com/jetsetilly/glaze/window"
)

const windowWidth = 800
const windowHeight = 600

const vertexShader = `
#version 330

in vec2 position;
in vec3 color;

out vec3 v_color;

void main() {
	v_color = color;
	gl_Position = vec4(position, 0, 1);
}
`

const fragmentShader = `
#version 330

in vec3 v_color;

layout (location = 0) out vec4 frag_color;

void main() {
	frag_color = vec4(v_color, 1.0);
}
`

const deferredVertexShader = `
#version 330

void main() {
	if (gl_VertexID == 0) {
		gl_Position = vec4(1, -1, 0, 1);
	} else if (gl_VertexID == 1) {
		gl_Position = vec4(1, 1, 0, 1);
	} else if (gl_VertexID == 2) {
		gl_Position = vec4(-1, -1, 0, 1);
	} else if (gl_VertexID == 3) {
		gl_Position = vec4(-1, 1, 0, 1);
	} else {
		gl_Position = vec4(0, 0, 0, 1);
	}
}
`

const deferredFragmentShader = `
#version 330

uniform sampler2D colors;

layout (location = 0) out vec4 frag_color;

void main() {
	vec2 tex_pos = vec2(gl_FragCoord.x / 800, gl_FragCoord.y / 600);
	frag_color = texture(colors, tex_pos);
}
`

type vertex struct {
	Position [2]float32
	Color    [3]float32
}

var vertices = []vertex{
	{Position: [2]float32{0.0, 0.5}, Color: [3]float32{1.0, 0.0, 0.0}},
	{Position: [2]float32{-0.5, -0.5}, Color: [3]float32{0.0, 1.0, 0.0}},
	{Position: [2]float32{0.5, -0.5}, Color: [3]float32{0.0, 0.0, 1.0}},
}

func run() error {
	useGLFW := flag.Bool("glfw", false, "use the GLFW backend rather than SDL")
	useStatsview := flag.Bool("statsview", false, "run the stats server")
	flag.Parse()

	logger.SetEcho(os.Stderr)

	ver, rev, _ := version.Version()
	logger.Logf(logger.Allow, version.ApplicationName, "%s (%s)", ver, rev)

	if *useStatsview {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			return fmt.Errorf("no statsview in this build (build with the statsview tag)")
		}
	}

	newWindow := window.NewSDL
	if *useGLFW {
		newWindow = window.NewGLFW
	}

	win, err := newWindow(window.Spec{Title: "Deferred", Width: windowWidth, Height: windowHeight})
	if err != nil {
		return err
	}
	defer win.Destroy()

	e, ct := win.Device()
	drv := ct.Driver()

	// the first pass draws the triangle into the off-screen framebuffer
	prg := shader.NewProgram(e, ct, []shader.StageSource{
		{Stage: device.VertexShader, Source: vertexShader},
		{Stage: device.FragmentShader, Source: fragmentShader},
	})
	defer prg.Destroy(ct)

	buf := buffer.NewBuffer[vertex](e, ct, len(vertices))
	vao := buffer.NewArray(e, ct, prg,
		[]buffer.VertexAttrib{
			{Name: "position", Size: 2, Type: device.Float},
			{Name: "color", Size: 3, Type: device.Float},
		},
		device.Triangles, buf)
	defer vao.Destroy(ct)

	vao.Bind(ct)
	if !vao.Push(ct, vertices) {
		return fmt.Errorf("deferred: vertices do not fit in the buffer")
	}

	// the second pass samples the framebuffer texture and needs no vertex
	// data at all
	deferred := shader.NewProgram(e, ct, []shader.StageSource{
		{Stage: device.VertexShader, Source: deferredVertexShader},
		{Stage: device.FragmentShader, Source: deferredFragmentShader},
	})
	defer deferred.Destroy(ct)

	empty := buffer.NewArrayHandle(e, ct)
	defer empty.Release()

	unit := texture.Unit(0)
	unit.Activate(ct)

	colors := texture.NewTexture2D(e, ct)
	defer colors.Destroy(ct)
	colors.Bind(ct)
	colors.RenderStorage(ct, windowWidth, windowHeight)

	fbo := framebuffer.NewFramebuffer(e, ct)
	defer fbo.Destroy(ct)
	fbo.Bind(ct)
	fbo.Attach2D(ct, device.ColorAttachment0, colors)

	deferred.Use(ct)
	drv.Uniform1i(deferred.UniformLocation(ct, "colors"), unit.GLSLID())

	if code := ct.Error(); code != device.NoError {
		return fmt.Errorf("deferred: setup: %s", code)
	}

	for !win.ShouldQuit() {
		fbo.Bind(ct)
		prg.Use(ct)

		ct.ClearBuffer()
		vao.Bind(ct)
		vao.Draw(ct)

		framebuffer.BindDefault(ct)
		colors.Bind(ct)
		deferred.Use(ct)

		drv.BindVertexArray(empty.ID())
		drv.DrawArrays(device.TriangleStrip, 0, 4)

		win.Swap()
		time.Sleep(10 * time.Millisecond)
	}

	return nil
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
