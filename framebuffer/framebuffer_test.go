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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/device/mock"
	"github.com/jetsetilly/glaze/framebuffer"
	"github.com/jetsetilly/glaze/test"
	"github.com/jetsetilly/glaze/texture"
)

func TestFramebuffer(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	fb := framebuffer.NewFramebuffer(e, ct)
	test.ExpectInequality(t, fb.ID(), 0)

	tex := texture.NewTexture2D(e, ct)
	tex.Bind(ct)
	tex.RenderStorage(ct, 256, 256)

	fb.Bind(ct)
	fb.Attach2D(ct, device.ColorAttachment0, tex)

	// drawing to the screen again goes through the default framebuffer
	framebuffer.BindDefault(ct)
}

func TestFramebufferDestroy(t *testing.T) {
	drv := mock.NewDriver()
	e, ct := device.NewContext(drv)

	fb := framebuffer.NewFramebuffer(e, ct)
	id := fb.ID()

	fb.Destroy(ct)
	fb.Destroy(ct)
	test.ExpectEquality(t, drv.Deletions(id), 1)
}
