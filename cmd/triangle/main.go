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

// The triangle example draws a colored triangle from a three element vertex
// array.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jetsetilly/glaze/buffer"
	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/logger"
	"github.com/jetsetilly/glaze/shader"
	"github.com/jetsetilly/glaze/statsview"
	"github.com/jetsetilly/glaze/version"
	"github.com/jetsetilly/glaze/window"
)

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

	win, err := newWindow(window.Spec{Title: "Triangle", Width: 800, Height: 600})
	if err != nil {
		return err
	}
	defer win.Destroy()

	e, ct := win.Device()

	prg := shader.NewProgram(e, ct, []shader.StageSource{
		{Stage: device.VertexShader, Source: vertexShader},
		{Stage: device.FragmentShader, Source: fragmentShader},
	})
	defer prg.Destroy(ct)
	prg.Use(ct)

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
		return fmt.Errorf("triangle: vertices do not fit in the buffer")
	}

	if code := ct.Error(); code != device.NoError {
		return fmt.Errorf("triangle: setup: %s", code)
	}

	for !win.ShouldQuit() {
		ct.ClearBuffer()

		vao.Bind(ct)
		vao.Draw(ct)

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
