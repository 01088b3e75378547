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

package texture_test

import (
	"testing"

	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/mock"
	"github.com/jetsetilly/glaze/test"
	"github.com/jetsetilly/glaze/texture"
)

func TestUnit(t *testing.T) {
	u := texture.Unit(2)
	test.ExpectEquality(t, u.GLSLID(), 2)
}

func TestTexture2D(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	tex := texture.NewTexture2D(e, ct)
	test.ExpectInequality(t, tex.ID(), 0)

	tex.Bind(ct)
	tex.RenderStorage(ct, 800, 600)
}

func TestTexture2DDestroy(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	tex := texture.NewTexture2D(e, ct)
	id := tex.ID()

	tex.Destroy(ct)
	tex.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(id), 1)
}

func TestBufferTexture(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	tex := texture.NewBufferTexture[float32](e, ct, device.R32F, 16)
	test.ExpectInequality(t, tex.ID(), 0)

	// the backing buffer is a full typed buffer
	tex.Buffer.Bind(ct)
	test.ExpectSuccess(t, tex.Buffer.Push(ct, []float32{1, 2, 3}))
	test.ExpectEquality(t, tex.Buffer.Len(), 3)

	texID := tex.ID()
	bufID := tex.Buffer.ID()

	tex.Destroy(ct)
	tex.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(texID), 1)
	test.ExpectEquality(t, drv.Deletions(bufID), 1)
}
