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

package device_test

import (
	"testing"

	"github.com/jetsetilly/glaze/device"
	"github.com/jetsetilly/glaze/test"
)

func TestHandle(t *testing.T) {
	deletions := 0

	h := device.NewHandle(
		func() uint32 { return 5 },
		func(id uint32) {
			test.ExpectEquality(t, id, 5)
			deletions++
		})
	test.ExpectEquality(t, h.ID(), 5)

	// release is exactly-once no matter how often it is called
	h.Release()
	h.Release()
	test.ExpectEquality(t, deletions, 1)
	test.ExpectEquality(t, h.ID(), 0)
}

// a zero id from the generation function means the device could not create
// the object. there is no way to continue from that
func TestHandleZeroID(t *testing.T) {
	test.ExpectPanic(t, func() {
		_ = device.NewHandle(
			func() uint32 { return 0 },
			func(id uint32) {})
	})
}
